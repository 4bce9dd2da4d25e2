package cmd

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/lepinkainen/uploaddemo/types"
	"github.com/lepinkainen/uploaddemo/upload"
)

// DropCmd simulates dropping a file onto the upload area. Only files with a
// video/ media type are accepted.
type DropCmd struct {
	File string `arg:"" name:"file" help:"File to drop" type:"existingfile"`

	SessionFlags `embed:""`
}

// Validate is called by kong after parsing
func (cmd *DropCmd) Validate() error {
	return cmd.TimingFlags.Validate()
}

func (cmd *DropCmd) Run(appCtx *types.AppContext, logger *log.Logger) error {
	s, err := newSession(upload.SourceDrop, cmd.File, cmd.SessionFlags, appCtx, logger)
	if err != nil {
		return err
	}
	return s.run(context.Background())
}
