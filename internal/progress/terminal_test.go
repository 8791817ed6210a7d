package progress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectSymbols(t *testing.T) {
	tests := map[string]struct {
		caps          TerminalCapabilities
		wantCheckmark string
		wantFailure   string
	}{
		"unicode terminal": {
			caps:          TerminalCapabilities{IsTTY: true, SupportsUnicode: true},
			wantCheckmark: "✓",
			wantFailure:   "✗",
		},
		"ascii fallback": {
			caps:          TerminalCapabilities{IsTTY: true, SupportsUnicode: false},
			wantCheckmark: "[OK]",
			wantFailure:   "[FAIL]",
		},
		"non-tty": {
			caps:          TerminalCapabilities{},
			wantCheckmark: "[OK]",
			wantFailure:   "[FAIL]",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			symbols := SelectSymbols(tt.caps)
			require.Equal(t, tt.wantCheckmark, symbols.Checkmark)
			require.Equal(t, tt.wantFailure, symbols.Failure)
		})
	}
}

func TestNilControllerIsSafe(t *testing.T) {
	var c *Controller
	// Must not panic when progress display is disabled.
	c.Start("test")
	c.Stop()
}
