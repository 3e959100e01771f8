// Package progress renders provisioning feedback on the terminal.
//
// Package manager and sdkmanager output is captured rather than
// streamed, so the reporter keeps a spinner line alive on TTYs while a
// step runs, and falls back to plain lines everywhere else.
package progress

import (
	"fmt"
	"io"
	"os"
)

// Reporter announces plan steps as they start and finish. It satisfies
// the executor's step observer.
type Reporter struct {
	output  io.Writer
	spinner *Spinner
}

// NewReporter creates a reporter writing to output, or os.Stderr when
// output is nil.
func NewReporter(output io.Writer) *Reporter {
	if output == nil {
		output = os.Stderr
	}
	return &Reporter{output: output}
}

func (r *Reporter) StepStarted(index, total int, description string) {
	r.spinner = NewSpinner(r.output)
	r.spinner.Start(fmt.Sprintf("[%d/%d] %s", index, total, description))
}

func (r *Reporter) StepApplied(index, total int, description string) {
	if r.spinner == nil {
		return
	}
	r.spinner.StopWithMessage(fmt.Sprintf("[%d/%d] %s: ok", index, total, description))
	r.spinner = nil
}

func (r *Reporter) StepFailed(index, total int, description string) {
	if r.spinner == nil {
		return
	}
	r.spinner.StopWithMessage(fmt.Sprintf("[%d/%d] %s: FAILED", index, total, description))
	r.spinner = nil
}
