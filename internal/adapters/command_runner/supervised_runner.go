package command_runner

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"uipcup/internal/ports"

	"al.essio.dev/pkg/shellescape"
)

// killDelay is how long Wait may block on I/O after the context killed the
// child before the remaining pipes are forcibly closed.
const killDelay = 10 * time.Second

// environmentManagerBinary is excluded from activation rewriting so that
// environment-management commands are never wrapped recursively.
const environmentManagerBinary = "conda"

// SupervisedRunner executes external commands with a wall-clock timeout in
// one of two modes: buffered (stdout and stderr captured separately, logged
// after completion) or streaming (stderr merged into stdout, lines emitted
// as they arrive). Once an environment name is set, commands are rewritten
// to run inside the activated environment for the current platform.
type SupervisedRunner struct {
	platform ports.Platform
	out      io.Writer
	envName  string
}

func ProvideSupervisedRunner(platform ports.Platform) *SupervisedRunner {
	return &SupervisedRunner{platform: platform, out: os.Stdout}
}

// NewSupervisedRunner is like ProvideSupervisedRunner with an explicit
// output sink.
func NewSupervisedRunner(platform ports.Platform, out io.Writer) *SupervisedRunner {
	return &SupervisedRunner{platform: platform, out: out}
}

func (r *SupervisedRunner) SetEnvironment(name string) {
	r.envName = name
}

func (r *SupervisedRunner) Run(cmd ports.Command, opts ports.RunOptions) (*ports.CommandResult, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = ports.DefaultTimeout
	}
	cmd = r.rewriteForEnvironment(cmd)

	fmt.Fprintf(r.out, "-> Running: %s\n", cmd)

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	argv := r.dispatchArgv(cmd)
	child := exec.CommandContext(ctx, argv[0], argv[1:]...)
	child.Dir = opts.Dir
	child.WaitDelay = killDelay
	configureProcessTree(child)

	if opts.Stream {
		return r.runStreaming(ctx, child, cmd, opts)
	}
	return r.runBuffered(ctx, child, cmd, opts)
}

// rewriteForEnvironment wraps the command with the platform activation
// template when an environment context is set. Environment-manager commands
// pass through untouched. Rewriting forces shell dispatch, so argument
// vectors are quoted into a single shell line first.
func (r *SupervisedRunner) rewriteForEnvironment(cmd ports.Command) ports.Command {
	if r.envName == "" || cmd.Program() == environmentManagerBinary {
		return cmd
	}
	return ports.Shell(r.platform.WrapWithEnvironment(r.envName, shellLine(cmd)))
}

func shellLine(cmd ports.Command) string {
	if len(cmd.Args) > 0 {
		return shellescape.QuoteCommand(cmd.Args)
	}
	return cmd.Line
}

// dispatchArgv picks the execution vector: argument vectors run directly,
// shell lines go through the platform shell.
func (r *SupervisedRunner) dispatchArgv(cmd ports.Command) []string {
	if len(cmd.Args) > 0 {
		return cmd.Args
	}
	return r.platform.ShellCommand(cmd.Line)
}

func (r *SupervisedRunner) runBuffered(ctx context.Context, child *exec.Cmd, cmd ports.Command, opts ports.RunOptions) (*ports.CommandResult, error) {
	var stdout, stderr bytes.Buffer
	child.Stdout = &stdout
	child.Stderr = &stderr

	err := child.Run()

	result := &ports.CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if child.ProcessState != nil {
		result.ExitCode = child.ProcessState.ExitCode()
	}

	if result.Stdout != "" {
		fmt.Fprint(r.out, result.Stdout)
		if !bytes.HasSuffix(stdout.Bytes(), []byte("\n")) {
			fmt.Fprintln(r.out)
		}
	}
	if result.Stderr != "" {
		fmt.Fprint(r.out, result.Stderr)
		if !bytes.HasSuffix(stderr.Bytes(), []byte("\n")) {
			fmt.Fprintln(r.out)
		}
	}

	return r.finish(ctx, cmd, opts, result, err)
}

func (r *SupervisedRunner) runStreaming(ctx context.Context, child *exec.Cmd, cmd ports.Command, opts ports.RunOptions) (*ports.CommandResult, error) {
	pipe, err := child.StdoutPipe()
	if err != nil {
		return nil, &ports.StartError{Command: cmd.String(), Err: err}
	}
	// Merge stderr into the stdout pipe so lines arrive as one stream.
	child.Stderr = child.Stdout

	if err := child.Start(); err != nil {
		return nil, &ports.StartError{Command: cmd.String(), Err: err}
	}

	lines := []string{}
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		scanner := bufio.NewScanner(pipe)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			fmt.Fprintln(r.out, line)
			lines = append(lines, line)
		}
	}()

	// Poll the deadline while lines arrive. On expiry the process group is
	// killed and Wait force-closes the pipe after killDelay, so the reader
	// is guaranteed to finish even if a grandchild survives the kill.
	select {
	case <-readDone:
	case <-ctx.Done():
	}
	waitErr := child.Wait()
	<-readDone

	result := &ports.CommandResult{Lines: lines}
	if child.ProcessState != nil {
		result.ExitCode = child.ProcessState.ExitCode()
	}

	return r.finish(ctx, cmd, opts, result, waitErr)
}

// finish translates the wait outcome into the runner's failure taxonomy.
// Both execution modes converge here so they produce the same result shape.
func (r *SupervisedRunner) finish(ctx context.Context, cmd ports.Command, opts ports.RunOptions, result *ports.CommandResult, err error) (*ports.CommandResult, error) {
	// A clean wait means the command finished on its own, even when the
	// deadline fired in the same instant; only a failed wait is attributed
	// to the timeout.
	if err != nil && ctx.Err() == context.DeadlineExceeded {
		return nil, &ports.TimeoutError{Command: cmd.String(), Timeout: opts.Timeout}
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The command never ran: executable not found, permission
			// denied, invalid working directory.
			return nil, &ports.StartError{Command: cmd.String(), Err: err}
		}
	}

	if result.ExitCode != 0 && opts.RequireSuccess {
		return nil, &ports.ExitError{Command: cmd.String(), Result: result}
	}

	return result, nil
}

var _ ports.CommandRunner = (*SupervisedRunner)(nil)
