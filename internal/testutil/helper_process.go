// Package testutil provides test utilities and helpers for cicheck tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/bjpop/cicheck/internal/step"
)

// HelperProcessConfig configures the behavior of TestHelperProcess.
type HelperProcessConfig struct {
	// ExitCode is the exit code to return (default 0).
	ExitCode int `json:"exit_code"`
	// Stdout is the content to write to stdout.
	Stdout string `json:"stdout"`
	// Stderr is the content to write to stderr.
	Stderr string `json:"stderr"`
}

// Environment variable names used by TestHelperProcess.
const (
	// EnvWantHelperProcess signals that the test binary should run as a helper process.
	EnvWantHelperProcess = "GO_WANT_HELPER_PROCESS"
	// EnvHelperProcessConfig contains JSON-encoded HelperProcessConfig.
	EnvHelperProcessConfig = "GO_HELPER_PROCESS_CONFIG"
)

// TestHelperProcess implements the helper process pattern. When the test
// binary is re-invoked with GO_WANT_HELPER_PROCESS=1, it behaves as a mock
// subprocess and exits without returning. When the variable is not set it
// returns immediately, allowing normal test execution.
//
// Usage in a test file:
//
//	func TestHelperProcess(t *testing.T) {
//	    testutil.TestHelperProcess(t)
//	}
func TestHelperProcess(t *testing.T) {
	if os.Getenv(EnvWantHelperProcess) != "1" {
		return
	}

	config := HelperProcessConfig{}
	if configJSON := os.Getenv(EnvHelperProcessConfig); configJSON != "" {
		// Ignore parse errors; use defaults on failure
		_ = json.Unmarshal([]byte(configJSON), &config)
	}

	if config.Stdout != "" {
		fmt.Fprint(os.Stdout, config.Stdout)
	}
	if config.Stderr != "" {
		fmt.Fprint(os.Stderr, config.Stderr)
	}
	os.Exit(config.ExitCode)
}

// HelperStep returns a step that re-invokes the test binary as a helper
// process with the given behavior. The helper configuration travels through
// the test process environment, so steps built this way must run one at a
// time within a test.
func HelperStep(t *testing.T, name string, config HelperProcessConfig) step.Step {
	t.Helper()

	testBinary, err := os.Executable()
	if err != nil {
		t.Fatalf("failed to get test binary path: %v", err)
	}

	configJSON, err := json.Marshal(config)
	if err != nil {
		t.Fatalf("failed to marshal helper config: %v", err)
	}

	t.Setenv(EnvWantHelperProcess, "1")
	t.Setenv(EnvHelperProcessConfig, string(configJSON))

	return step.Step{
		Name:    name,
		Command: testBinary,
		Args:    []string{"-test.run=TestHelperProcess"},
	}
}
