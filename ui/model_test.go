package ui

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lepinkainen/uploaddemo/sequencer"
	"github.com/lepinkainen/uploaddemo/video"
)

var clip = video.Payload{Name: "clip.mp4", Type: "video/mp4", Size: 2048}

func keyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func update(t *testing.T, m UploadModel, msg tea.Msg) (UploadModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	um, ok := next.(UploadModel)
	if !ok {
		t.Fatalf("Expected UploadModel, got %T", next)
	}
	return um, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewUploadModel(t *testing.T) {
	model := NewUploadModel(clip, "dev", nil, false)

	if model.state.Status != sequencer.StatusIdle {
		t.Errorf("Expected idle state, got %s", model.state.Status)
	}
	if model.Err() != nil {
		t.Errorf("Expected no error, got %v", model.Err())
	}

	view := model.View()
	if !strings.Contains(view, "clip.mp4") {
		t.Errorf("Expected view to contain file name, got:\n%s", view)
	}
	if !strings.Contains(view, "2.0 kB") {
		t.Errorf("Expected view to contain humanized size, got:\n%s", view)
	}
	if !strings.Contains(view, "Waiting for upload") {
		t.Errorf("Expected idle status text, got:\n%s", view)
	}
}

func TestUploadModelInitRunsTrigger(t *testing.T) {
	calls := 0
	model := NewUploadModel(clip, "dev", func() error {
		calls++
		return nil
	}, false)

	cmd := model.Init()
	if cmd == nil {
		t.Fatal("Expected Init to return a trigger command")
	}

	msg := cmd()
	if _, ok := msg.(TriggerResultMsg); !ok {
		t.Errorf("Expected TriggerResultMsg, got %T", msg)
	}
	if calls != 1 {
		t.Errorf("Expected trigger to run once, got %d", calls)
	}
}

func TestUploadModelInitWithoutTrigger(t *testing.T) {
	model := NewUploadModel(clip, "dev", nil, false)

	if cmd := model.Init(); cmd != nil {
		t.Error("Expected no command without a trigger")
	}
}

func TestUploadModelProgress(t *testing.T) {
	model := NewUploadModel(clip, "dev", nil, false)

	model, _ = update(t, model, StartedMsg{State: sequencer.State{Payload: clip, Status: sequencer.StatusRunning}})
	if !strings.Contains(model.View(), "Uploading: 0%") {
		t.Errorf("Expected 0%% after start, got:\n%s", model.View())
	}

	for value := 10; value <= 40; value += 10 {
		var cmd tea.Cmd
		model, cmd = update(t, model, ProgressMsg{State: sequencer.State{Payload: clip, Value: value, Status: sequencer.StatusRunning}})
		if cmd != nil {
			t.Errorf("Expected no command on progress, got one at %d", value)
		}
	}

	if !strings.Contains(model.View(), "Uploading: 40%") {
		t.Errorf("Expected 40%% status text, got:\n%s", model.View())
	}
}

func TestUploadModelCompletedQuits(t *testing.T) {
	model := NewUploadModel(clip, "dev", nil, false)

	model, _ = update(t, model, ProgressMsg{State: sequencer.State{Value: 100, Status: sequencer.StatusCompleted}})
	if !strings.Contains(model.View(), "Uploading: 100%") {
		t.Errorf("Expected 100%% status text, got:\n%s", model.View())
	}

	model, cmd := update(t, model, CompletedMsg{State: sequencer.State{Payload: clip, Status: sequencer.StatusIdle}})
	if !isQuit(cmd) {
		t.Error("Expected quit after completion")
	}
	if !model.Finished() {
		t.Error("Expected model to be finished")
	}
	if !strings.Contains(model.View(), SuccessNotice) {
		t.Errorf("Expected success notice, got:\n%s", model.View())
	}
}

func TestUploadModelCompletedStays(t *testing.T) {
	model := NewUploadModel(clip, "dev", nil, true)

	model, cmd := update(t, model, CompletedMsg{State: sequencer.State{Payload: clip, Status: sequencer.StatusIdle}})
	if cmd != nil {
		t.Error("Expected no command after completion in stay mode")
	}
	if !strings.Contains(model.View(), SuccessNotice) {
		t.Errorf("Expected success notice, got:\n%s", model.View())
	}
	if !strings.Contains(model.View(), "Waiting for upload") {
		t.Errorf("Expected idle status text after reset, got:\n%s", model.View())
	}

	// A new run clears the notice
	model, _ = update(t, model, StartedMsg{State: sequencer.State{Payload: clip, Status: sequencer.StatusRunning}})
	if strings.Contains(model.View(), SuccessNotice) {
		t.Errorf("Expected success notice to clear on restart, got:\n%s", model.View())
	}
}

func TestUploadModelRejected(t *testing.T) {
	pdf := video.Payload{Name: "doc.pdf", Type: "application/pdf"}
	model := NewUploadModel(pdf, "dev", nil, false)

	err := fmt.Errorf("%w: %q", video.ErrInvalidPayloadType, pdf.Type)
	model, cmd := update(t, model, RejectedMsg{Payload: pdf, Err: err})

	if !isQuit(cmd) {
		t.Error("Expected quit after rejection")
	}
	if model.Err() == nil {
		t.Fatal("Expected rejection error to be kept")
	}
	if !strings.Contains(model.View(), RejectionNotice) {
		t.Errorf("Expected rejection notice, got:\n%s", model.View())
	}
	if model.state.Status != sequencer.StatusIdle {
		t.Errorf("Expected idle after rejection, got %s", model.state.Status)
	}

	// The trigger result for the same rejection does not replace it
	model, _ = update(t, model, TriggerResultMsg{Err: err})
	if !strings.Contains(model.View(), RejectionNotice) {
		t.Errorf("Expected rejection notice to remain, got:\n%s", model.View())
	}
}

func TestUploadModelBusyRetrigger(t *testing.T) {
	calls := 0
	model := NewUploadModel(clip, "dev", func() error {
		calls++
		return sequencer.ErrBusy
	}, true)

	model, cmd := update(t, model, keyMsg("r"))
	if cmd == nil {
		t.Fatal("Expected a trigger command on 'r'")
	}
	model, _ = update(t, model, cmd())

	if calls != 1 {
		t.Errorf("Expected trigger to run once, got %d", calls)
	}
	if !strings.Contains(model.View(), sequencer.ErrBusy.Error()) {
		t.Errorf("Expected busy error in view, got:\n%s", model.View())
	}
}

func TestUploadModelQuit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"q", keyMsg("q")},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := NewUploadModel(clip, "dev", nil, true)

			model, cmd := update(t, model, tt.msg)
			if !isQuit(cmd) {
				t.Error("Expected quit command")
			}
			if model.View() != "Shutting down...\n" {
				t.Errorf("Expected shutdown view, got %q", model.View())
			}
		})
	}
}

func TestUploadModelWindowResize(t *testing.T) {
	model := NewUploadModel(clip, "dev", nil, false)

	model, _ = update(t, model, tea.WindowSizeMsg{Width: 60, Height: 20})
	if model.bar.Width != 50 {
		t.Errorf("Expected bar width 50, got %d", model.bar.Width)
	}

	model, _ = update(t, model, tea.WindowSizeMsg{Width: 200, Height: 20})
	if model.bar.Width != 80 {
		t.Errorf("Expected bar width capped at 80, got %d", model.bar.Width)
	}

	model, _ = update(t, model, tea.WindowSizeMsg{Width: 5, Height: 20})
	if model.bar.Width != 10 {
		t.Errorf("Expected bar width floored at 10, got %d", model.bar.Width)
	}
}
