// Package output provides terminal output formatting utilities for the
// cicheck CLI. This package is designed to have minimal dependencies to
// avoid import cycles.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// GetTerminalWidth returns the terminal width, defaulting to 80 if unavailable.
func GetTerminalWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}

// PrintRunSeparator prints a dim horizontal rule sized to the terminal,
// separating successive check runs in watch mode.
func PrintRunSeparator(out io.Writer) {
	width := GetTerminalWidth()
	if width > 80 {
		width = 80
	}
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintln(out, dim(strings.Repeat("─", width)))
}

// PrintStepHeader prints a colored step header (e.g., "[1/2] test...").
// Uses cyan for the step indicator and white for the step name.
func PrintStepHeader(out io.Writer, stepNum, totalSteps int, stepName string) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	white := color.New(color.FgWhite, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", cyan(fmt.Sprintf("[%d/%d]", stepNum, totalSteps)), white(stepName+"..."))
}

// PrintExecutingCommand prints the command being executed with colored styling.
// Uses magenta arrow and dim text for the command details.
func PrintExecutingCommand(out io.Writer, command string) {
	magenta := color.New(color.FgMagenta).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", magenta("→"), dim(command))
}

// PrintStepPass prints a green checkmark line for a passed step.
func PrintStepPass(out io.Writer, stepName string, d time.Duration) {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	fmt.Fprintf(out, "%s %s %s\n", green("✓"), stepName, dim(fmt.Sprintf("(%s)", d.Round(time.Millisecond))))
}

// PrintStepFail prints the fixed diagnostic line identifying the failing
// command. This line is emitted for every failed step regardless of --quiet.
func PrintStepFail(out io.Writer, commandLine string) {
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", red("✗"), FailureDiagnostic(commandLine))
}

// FailureDiagnostic returns the diagnostic text for a failed command.
func FailureDiagnostic(commandLine string) string {
	return fmt.Sprintf("%s failed", commandLine)
}

// SummaryFailure returns the aggregate failure summary line.
func SummaryFailure(count int) string {
	return fmt.Sprintf("There were %d errors found", count)
}

// SummarySuccess returns the success confirmation line.
func SummarySuccess() string {
	return "Ok : all checks passed"
}

// PrintSummary prints the final summary line for a run. A failure summary is
// printed in bold red, a success summary in bold green.
func PrintSummary(out io.Writer, failureCount int) {
	if failureCount > 0 {
		red := color.New(color.FgRed, color.Bold).SprintFunc()
		fmt.Fprintf(out, "%s\n", red(SummaryFailure(failureCount)))
		return
	}
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s\n", green(SummarySuccess()))
}
