package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/lepinkainen/uploaddemo/sequencer"
	"github.com/lepinkainen/uploaddemo/video"
)

// UploadModel is the TUI model for a single simulated upload
type UploadModel struct {
	// Application state
	payload  video.Payload
	state    sequencer.State
	trigger  func() error
	notice   string
	err      error
	finished bool

	// UI components
	bar progress.Model

	// Layout
	width int

	// Control state
	stay     bool
	quitting bool

	// Header line for display
	Title string
}

// NewUploadModel creates a new upload model. trigger hands the payload to the
// uploader; it runs on Init and again on every "r" key press. With stay set
// the model keeps running after a completed or rejected upload.
func NewUploadModel(p video.Payload, title string, trigger func() error, stay bool) UploadModel {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
	)

	return UploadModel{
		payload: p,
		trigger: trigger,
		bar:     bar,
		stay:    stay,
		Title:   title,
	}
}

// Err returns the last error shown to the user, if any
func (m UploadModel) Err() error {
	return m.err
}

// Finished reports whether at least one upload completed
func (m UploadModel) Finished() bool {
	return m.finished
}

func (m UploadModel) runTrigger() tea.Cmd {
	if m.trigger == nil {
		return nil
	}
	trigger := m.trigger
	return func() tea.Msg {
		return TriggerResultMsg{Err: trigger()}
	}
}

// Init implements tea.Model
func (m UploadModel) Init() tea.Cmd {
	return m.runTrigger()
}

// Update implements tea.Model
func (m UploadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "r":
			m.err = nil
			return m, m.runTrigger()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = max(min(msg.Width-10, 80), 10)

	case StartedMsg:
		m.state = msg.State
		m.notice = ""
		m.err = nil

	case ProgressMsg:
		m.state = msg.State

	case CompletedMsg:
		m.state = msg.State
		m.notice = SuccessNotice
		m.finished = true
		if !m.stay {
			return m, tea.Quit
		}

	case RejectedMsg:
		m.err = msg.Err
		m.notice = ""
		if !m.stay {
			return m, tea.Quit
		}

	case TriggerResultMsg:
		// Rejections already arrived as RejectedMsg
		if msg.Err != nil && !errors.Is(msg.Err, video.ErrInvalidPayloadType) {
			m.err = msg.Err
		}
	}

	return m, nil
}

// statusText mirrors the progress label of the upload panel
func (m UploadModel) statusText() string {
	switch m.state.Status {
	case sequencer.StatusRunning, sequencer.StatusCompleted:
		return fmt.Sprintf("Uploading: %d%%", m.state.Value)
	default:
		return "Waiting for upload"
	}
}

// View implements tea.Model
func (m UploadModel) View() string {
	if m.quitting {
		return "Shutting down...\n"
	}

	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render(m.Title))
	sb.WriteString("\n")

	// File info
	sb.WriteString(fmt.Sprintf("  📁 %s\n", m.payload.Name))
	sb.WriteString(fmt.Sprintf("  📊 %s  %s\n\n",
		humanize.Bytes(uint64(max(m.payload.Size, 0))),
		InfoStyle.Render(m.payload.Type),
	))

	// Progress bar
	sb.WriteString("  ")
	sb.WriteString(m.bar.ViewAs(m.state.Fraction()))
	sb.WriteString("\n  ")
	sb.WriteString(ProcessingStyle.Render(m.statusText()))
	sb.WriteString("\n\n")

	switch {
	case m.err != nil && errors.Is(m.err, video.ErrInvalidPayloadType):
		sb.WriteString(ErrorStyle.Render(fmt.Sprintf("  ❌ %s (%s)", RejectionNotice, m.payload.Type)))
		sb.WriteString("\n\n")
	case m.err != nil:
		sb.WriteString(ErrorStyle.Render(fmt.Sprintf("  ❌ %v", m.err)))
		sb.WriteString("\n\n")
	case m.notice != "":
		sb.WriteString(SuccessStyle.Render(fmt.Sprintf("  ✅ %s", m.notice)))
		sb.WriteString("\n\n")
	}

	// Controls
	sb.WriteString(HelpStyle.Render("  Controls: [r] Upload again  [q] Quit"))
	sb.WriteString("\n")

	return sb.String()
}
