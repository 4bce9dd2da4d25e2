package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lepinkainen/uploaddemo/sequencer"
	"github.com/lepinkainen/uploaddemo/types"
	"github.com/lepinkainen/uploaddemo/ui"
	"github.com/lepinkainen/uploaddemo/upload"
	"github.com/lepinkainen/uploaddemo/video"
)

// SessionFlags are shared by the trigger commands
type SessionFlags struct {
	TimingFlags `embed:""`

	Type  string `help:"Override the declared media type (e.g. video/mp4)"`
	NoTUI bool   `name:"no-tui" help:"Use a plain progress bar instead of the interactive TUI"`
	Stay  bool   `help:"Keep the TUI open after the upload finishes ([r] uploads again)"`
}

// loadPayload reads the file and applies the type override
func (f SessionFlags) loadPayload(path string) (video.Payload, error) {
	payload, err := video.PayloadFromFile(path)
	if err != nil {
		return video.Payload{}, err
	}
	if f.Type != "" {
		payload.Type = f.Type
	}
	return payload, nil
}

// session wires one payload from one source to a sequencer and a presentation sink
type session struct {
	src     upload.Source
	payload video.Payload
	flags   SessionFlags
	header  string
	logger  *log.Logger
}

func newSession(src upload.Source, path string, flags SessionFlags, appCtx *types.AppContext, logger *log.Logger) (*session, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	payload, err := flags.loadPayload(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return &session{
		src:     src,
		payload: payload,
		flags:   flags,
		header:  appCtx.Header(),
		logger:  logger.With("source", src),
	}, nil
}

func (s *session) run(ctx context.Context) error {
	if s.flags.NoTUI {
		return s.runPlain(ctx)
	}
	return s.runTUI(ctx)
}

// runPlain drives the upload with a plain progress bar and console output
func (s *session) runPlain(ctx context.Context) error {
	fmt.Println(ui.HeaderStyle.Render(s.header))

	seq := sequencer.New(s.flags.Options(ui.NewBarObserver(os.Stdout), s.logger)...)
	handler := upload.NewHandler(seq, ui.NewConsoleNotifier(os.Stderr), s.logger)

	if err := handler.Handle(s.src, s.payload); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	if err := seq.Wait(ctx); err != nil {
		seq.Cancel()
		return fmt.Errorf("upload interrupted: %w", err)
	}
	return nil
}

// runTUI drives the upload inside a bubbletea program
func (s *session) runTUI(ctx context.Context) error {
	var handler *upload.Handler
	trigger := func() error {
		return handler.Handle(s.src, s.payload)
	}

	model := ui.NewUploadModel(s.payload, s.header, trigger, s.flags.Stay)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	observer := ui.NewProgramObserver(p)
	seq := sequencer.New(s.flags.Options(observer, s.logger)...)
	handler = upload.NewHandler(seq, observer, s.logger)

	final, err := p.Run()
	seq.Cancel()
	if err != nil {
		return fmt.Errorf("TUI failed: %w", err)
	}
	return s.tuiResult(final)
}

// tuiResult reports how the TUI session ended
func (s *session) tuiResult(final tea.Model) error {
	m, ok := final.(ui.UploadModel)
	if !ok {
		return nil
	}
	if m.Err() != nil {
		return m.Err()
	}
	if !m.Finished() {
		s.logger.Warn("Quit before the upload finished", "file", s.payload.Name)
	}
	return nil
}
