package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/lepinkainen/uploaddemo/cmd"
	"github.com/lepinkainen/uploaddemo/types"
)

var Version = "dev"

type CLI struct {
	LogLevel string           `name:"log-level" help:"Log level (debug, info, warn, error)" default:"info" enum:"debug,info,warn,error" env:"UPLOADDEMO_LOG_LEVEL"`
	LogFile  string           `name:"log-file" help:"Write logs to this file instead of stderr" type:"path" env:"UPLOADDEMO_LOG_FILE"`
	Title    string           `help:"Header shown above the upload" default:"Video Upload" env:"UPLOADDEMO_TITLE"`
	Version  kong.VersionFlag `help:"Print version and exit"`

	Pick cmd.PickCmd `cmd:"" help:"Upload a file chosen with the file picker (no type check)"`
	Drop cmd.DropCmd `cmd:"" help:"Upload a file dropped on the upload area (videos only)"`
}

// tuiActive reports whether the selected command will take over the terminal
func (cli *CLI) tuiActive(command string) bool {
	switch {
	case strings.HasPrefix(command, "pick"):
		return !cli.Pick.NoTUI
	case strings.HasPrefix(command, "drop"):
		return !cli.Drop.NoTUI
	}
	return false
}

// newLogger builds the application logger. Without a log file, logs are
// discarded while the TUI owns the terminal.
func newLogger(cli *CLI, tui bool) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cli.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer
	)
	switch {
	case cli.LogFile != "":
		f, err := os.OpenFile(cli.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w, closer = f, f
	case tui:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "uploaddemo",
		ReportTimestamp: true,
	})
	return logger, closer, nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("uploaddemo"),
		kong.Description("Simulated video upload with a progress bar"),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
	)

	logger, closer, err := newLogger(&cli, cli.tuiActive(ctx.Command()))
	ctx.FatalIfErrorf(err)
	if closer != nil {
		defer closer.Close()
	}

	err = ctx.Run(&types.AppContext{Title: cli.Title, Version: Version}, logger)
	ctx.FatalIfErrorf(err)
}
