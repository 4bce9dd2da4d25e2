// Package upload routes payloads from the two trigger sources into the
// sequencer. Only the drop source filters by media type; the picker relies on
// whatever filter the picker itself applied.
package upload

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lepinkainen/uploaddemo/video"
)

// Source identifies where a payload came from
type Source int

const (
	SourcePicker Source = iota
	SourceDrop
)

func (s Source) String() string {
	switch s {
	case SourcePicker:
		return "picker"
	case SourceDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// Starter begins a simulated upload
type Starter interface {
	Start(p video.Payload) error
}

// Notifier reports rejected payloads to the user
type Notifier interface {
	Rejected(p video.Payload, err error)
}

// Handler validates payloads per source and starts the upload
type Handler struct {
	starter  Starter
	notifier Notifier
	logger   *log.Logger
}

// NewHandler creates a handler. A nil logger discards output.
func NewHandler(starter Starter, notifier Notifier, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Handler{
		starter:  starter,
		notifier: notifier,
		logger:   logger,
	}
}

// Handle starts an upload for a payload from the given source. Dropped
// payloads without a video/ type are reported through the notifier and never
// reach the starter.
func (h *Handler) Handle(src Source, p video.Payload) error {
	logger := h.logger.With("source", src, "file", p.Name)

	switch src {
	case SourcePicker:
		if p.IsZero() {
			logger.Debug("No file selected")
			return nil
		}
		if !video.IsVideoType(p.Type) || !video.IsVideoFile(p.Name) {
			logger.Warn("Picked file does not look like a video, uploading anyway", "type", p.Type)
		}

	case SourceDrop:
		if p.IsZero() || !video.IsVideoType(p.Type) {
			err := fmt.Errorf("%w: %q", video.ErrInvalidPayloadType, p.Type)
			logger.Error("Rejected dropped file", "type", p.Type)
			if h.notifier != nil {
				h.notifier.Rejected(p, err)
			}
			return err
		}

	default:
		return fmt.Errorf("unknown source %d", src)
	}

	if err := h.starter.Start(p); err != nil {
		return fmt.Errorf("failed to start upload of %s: %w", p.Name, err)
	}
	return nil
}
