package ui

import (
	"github.com/lepinkainen/uploaddemo/sequencer"
	"github.com/lepinkainen/uploaddemo/video"
)

// TUI Message Types for sequencer communication
type StartedMsg struct {
	State sequencer.State
}

type ProgressMsg struct {
	State sequencer.State
}

type CompletedMsg struct {
	State sequencer.State
}

type RejectedMsg struct {
	Payload video.Payload
	Err     error
}

// TriggerResultMsg carries the outcome of handing the payload to the uploader
type TriggerResultMsg struct {
	Err error
}
