package cmd

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/lepinkainen/uploaddemo/types"
	"github.com/lepinkainen/uploaddemo/upload"
)

// PickCmd simulates choosing a file with a file picker. The picker path does
// not check the media type.
type PickCmd struct {
	File string `arg:"" name:"file" help:"File to upload" type:"existingfile"`

	SessionFlags `embed:""`
}

// Validate is called by kong after parsing
func (cmd *PickCmd) Validate() error {
	return cmd.TimingFlags.Validate()
}

func (cmd *PickCmd) Run(appCtx *types.AppContext, logger *log.Logger) error {
	s, err := newSession(upload.SourcePicker, cmd.File, cmd.SessionFlags, appCtx, logger)
	if err != nil {
		return err
	}
	return s.run(context.Background())
}
