// Package stage tracks the sequential stages of an installation run and
// prints a final PASS/FAIL report with per-stage durations.
package stage

import (
	"fmt"
	"io"
	"os"
	"time"

	"uipcup/internal/cli/output"
)

type Result struct {
	Name     string
	Err      error
	Skipped  bool
	Duration time.Duration
}

type Tracker struct {
	out       io.Writer
	started   time.Time
	results   []Result
	timestamp func() time.Time
}

func NewTracker() *Tracker {
	return &Tracker{
		out:       os.Stdout,
		started:   time.Now(),
		timestamp: time.Now,
	}
}

// NewTrackerWithOutput is used by tests to capture the report.
func NewTrackerWithOutput(out io.Writer) *Tracker {
	tracker := NewTracker()
	tracker.out = out
	return tracker
}

// Run executes one stage, records its outcome and returns the stage error
// unchanged so the caller can decide whether to abort the pipeline.
func (t *Tracker) Run(name string, fn func() error) error {
	ts := t.timestamp().Format("15:04:05")
	fmt.Fprintf(t.out, "[%s] %s %s\n", ts, output.SymbolArrow, output.Bold(name))

	start := t.timestamp()
	err := fn()
	duration := t.timestamp().Sub(start)

	t.results = append(t.results, Result{Name: name, Err: err, Duration: duration})

	ts = t.timestamp().Format("15:04:05")
	if err != nil {
		fmt.Fprintf(t.out, "[%s] %s %s (%s)\n", ts, output.SymbolError, output.Error(name+" failed"), formatDuration(duration))
	} else {
		fmt.Fprintf(t.out, "[%s] %s %s (%s)\n", ts, output.SymbolSuccess, name+" completed", formatDuration(duration))
	}
	return err
}

// Skip records a stage that was not executed.
func (t *Tracker) Skip(name string, reason string) {
	t.results = append(t.results, Result{Name: name, Skipped: true})
	ts := t.timestamp().Format("15:04:05")
	fmt.Fprintf(t.out, "[%s] %s %s\n", ts, output.SymbolInfo, output.Dim(fmt.Sprintf("%s skipped: %s", name, reason)))
}

func (t *Tracker) Failed() bool {
	for _, result := range t.results {
		if result.Err != nil {
			return true
		}
	}
	return false
}

func (t *Tracker) Results() []Result {
	return t.results
}

// Report prints the per-stage verdicts and the overall outcome.
func (t *Tracker) Report() {
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, output.Header("Results"))
	for _, result := range t.results {
		switch {
		case result.Skipped:
			fmt.Fprintf(t.out, "  %-24s %s\n", result.Name, output.Dim("SKIP"))
		case result.Err != nil:
			fmt.Fprintf(t.out, "  %-24s %s  %s\n", result.Name, output.Error("FAIL"), formatDuration(result.Duration))
		default:
			fmt.Fprintf(t.out, "  %-24s %s  %s\n", result.Name, output.Success("PASS"), formatDuration(result.Duration))
		}
	}

	verdict := output.Success("SUCCESS")
	if t.Failed() {
		verdict = output.Error("FAILURE")
	}
	fmt.Fprintf(t.out, "\n%s (%s)\n", verdict, formatDuration(time.Since(t.started)))
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(time.Second).String()
}
