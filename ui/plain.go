package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/lepinkainen/uploaddemo/sequencer"
	"github.com/lepinkainen/uploaddemo/video"
	"github.com/schollz/progressbar/v3"
)

// BarObserver renders upload progress as a plain terminal progress bar
type BarObserver struct {
	w io.Writer

	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

// NewBarObserver creates an observer that writes to w
func NewBarObserver(w io.Writer) *BarObserver {
	return &BarObserver{w: w}
}

func (b *BarObserver) Started(s sequencer.State) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.bar = progressbar.NewOptions(sequencer.MaxValue,
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionSetDescription(fmt.Sprintf("Uploading %s", s.Payload.Name)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetPredictTime(false),
	)
}

func (b *BarObserver) Progressed(s sequencer.State) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.bar == nil {
		return
	}
	_ = b.bar.Set(s.Value)
	if s.Status == sequencer.StatusCompleted {
		_ = b.bar.Finish()
	}
}

func (b *BarObserver) Completed(s sequencer.State) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.bar = nil
	fmt.Fprintf(b.w, "\n%s\n", SuccessStyle.Render(fmt.Sprintf("✅ %s", SuccessNotice)))
}

// ConsoleNotifier prints rejected payloads
type ConsoleNotifier struct {
	w io.Writer
}

// NewConsoleNotifier creates a notifier that writes to w
func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{w: w}
}

func (n *ConsoleNotifier) Rejected(p video.Payload, err error) {
	fmt.Fprintf(n.w, "%s\n", ErrorStyle.Render(fmt.Sprintf("❌ %s: %s (%v)", RejectionNotice, p.Name, err)))
}
