package progress

import (
	"time"

	"github.com/briandowns/spinner"
)

// Controller manages the step spinner. All methods are nil-safe so callers
// can hold a nil *Controller when progress display is disabled (non-TTY,
// --quiet, or progress off in config).
type Controller struct {
	spin *spinner.Spinner
}

// NewController creates a spinner controller when the terminal supports it.
// Returns nil when stdout is not a TTY so the caller's nil-safe calls
// degrade to no-ops.
func NewController() *Controller {
	caps := DetectTerminalCapabilities()
	if !caps.IsTTY {
		return nil
	}
	symbols := SelectSymbols(caps)
	return &Controller{
		spin: spinner.New(spinner.CharSets[symbols.SpinnerSet], 100*time.Millisecond),
	}
}

// Start begins spinning with the given step label as suffix.
func (c *Controller) Start(label string) {
	if c == nil {
		return
	}
	c.spin.Suffix = " " + label
	c.spin.Start()
}

// Stop halts the spinner and clears its line.
func (c *Controller) Stop() {
	if c == nil {
		return
	}
	c.spin.Stop()
}
