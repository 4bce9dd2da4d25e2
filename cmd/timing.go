package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lepinkainen/uploaddemo/sequencer"
)

// TimingFlags configures the simulated upload cadence
type TimingFlags struct {
	Interval   time.Duration `help:"Time between progress steps" default:"300ms" env:"UPLOADDEMO_INTERVAL"`
	Step       int           `help:"Percentage added per step (1-100)" default:"10" env:"UPLOADDEMO_STEP"`
	ResetDelay time.Duration `name:"reset-delay" help:"How long the finished state lasts before resetting" default:"500ms" env:"UPLOADDEMO_RESET_DELAY"`
}

// Validate checks the flag ranges
func (f TimingFlags) Validate() error {
	if f.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", f.Interval)
	}
	if f.Step < 1 || f.Step > sequencer.MaxValue {
		return fmt.Errorf("step must be between 1 and %d, got %d", sequencer.MaxValue, f.Step)
	}
	if f.ResetDelay < 0 {
		return fmt.Errorf("reset delay must not be negative, got %s", f.ResetDelay)
	}
	return nil
}

// Options converts the flags into sequencer options
func (f TimingFlags) Options(observer sequencer.Observer, logger *log.Logger) []sequencer.Option {
	return []sequencer.Option{
		sequencer.WithInterval(f.Interval),
		sequencer.WithStep(f.Step),
		sequencer.WithResetDelay(f.ResetDelay),
		sequencer.WithObserver(observer),
		sequencer.WithLogger(logger),
	}
}
