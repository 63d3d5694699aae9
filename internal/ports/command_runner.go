package ports

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTimeout bounds ordinary commands; BuildTimeout is for full
// CMake builds, which can legitimately run for hours on a cold vcpkg cache.
const (
	DefaultTimeout = time.Hour
	BuildTimeout   = 2 * time.Hour
)

// Command is either a shell-interpretable line or an argument vector.
// A vector is dispatched directly, without a shell, so arguments containing
// spaces or glob characters pass through unmodified. A line is handed to the
// platform shell and may use pipes and && chaining.
type Command struct {
	Line string
	Args []string
}

func Shell(line string) Command {
	return Command{Line: line}
}

func Argv(args ...string) Command {
	return Command{Args: args}
}

// Program returns the first token of the command, used to recognize
// environment-manager invocations that must not be rewrapped.
func (c Command) Program() string {
	if len(c.Args) > 0 {
		return c.Args[0]
	}
	fields := strings.Fields(c.Line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func (c Command) String() string {
	if len(c.Args) > 0 {
		return strings.Join(c.Args, " ")
	}
	return c.Line
}

// RunOptions control a single runner invocation.
type RunOptions struct {
	// Dir is the working directory; empty means the current process directory.
	Dir string
	// Timeout is the wall-clock budget. Zero means DefaultTimeout.
	Timeout time.Duration
	// RequireSuccess turns a non-zero exit into an *ExitError.
	RequireSuccess bool
	// Stream merges stderr into stdout and emits lines as they arrive.
	Stream bool
}

// CommandResult is created fresh per invocation and immutable after return.
// Buffered mode fills Stdout and Stderr; streaming mode fills Lines with the
// merged output in arrival order.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Lines    []string
}

// Combined returns all captured output as one string, whichever mode
// produced the result.
func (r *CommandResult) Combined() string {
	if r.Lines != nil {
		return strings.Join(r.Lines, "\n")
	}
	if r.Stdout != "" && r.Stderr != "" {
		return r.Stdout + "\n" + r.Stderr
	}
	return r.Stdout + r.Stderr
}

// CommandRunner executes external commands under a wall-clock budget.
//
// SetEnvironment establishes a named activation context: every subsequent
// command that is not itself an environment-manager invocation is rewritten
// to run inside that context. It is set once after environment setup and
// only read afterwards.
type CommandRunner interface {
	Run(cmd Command, opts RunOptions) (*CommandResult, error)
	SetEnvironment(name string)
}

// TimeoutError reports that a command exceeded its wall-clock budget and
// was killed. It is distinct from a non-zero exit.
type TimeoutError struct {
	Command string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("command %q timed out after %s", e.Command, e.Timeout)
}

// StartError reports that the operating system could not start the command
// at all, e.g. the executable was not found on PATH.
type StartError struct {
	Command string
	Err     error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("failed to start command %q: %v", e.Command, e.Err)
}

func (e *StartError) Unwrap() error {
	return e.Err
}

// ExitError reports a command that ran to completion with a non-zero exit
// code. It is only returned when RunOptions.RequireSuccess is set; otherwise
// the caller branches on CommandResult.ExitCode.
type ExitError struct {
	Command string
	Result  *CommandResult
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command %q exited with code %d", e.Command, e.Result.ExitCode)
}
