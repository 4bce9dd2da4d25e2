package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lepinkainen/uploaddemo/sequencer"
	"github.com/lepinkainen/uploaddemo/video"
)

// Sender delivers messages into a running program. *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// ProgramObserver forwards sequencer and rejection events to a bubbletea program
type ProgramObserver struct {
	sender Sender
}

// NewProgramObserver creates an observer that sends to the given program
func NewProgramObserver(s Sender) *ProgramObserver {
	return &ProgramObserver{sender: s}
}

func (o *ProgramObserver) Started(s sequencer.State) {
	o.sender.Send(StartedMsg{State: s})
}

func (o *ProgramObserver) Progressed(s sequencer.State) {
	o.sender.Send(ProgressMsg{State: s})
}

func (o *ProgramObserver) Completed(s sequencer.State) {
	o.sender.Send(CompletedMsg{State: s})
}

func (o *ProgramObserver) Rejected(p video.Payload, err error) {
	o.sender.Send(RejectedMsg{Payload: p, Err: err})
}
