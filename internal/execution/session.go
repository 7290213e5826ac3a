package execution

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"btp/internal/config"
)

// DiscoveryArgs builds the argv tail for a "list contents" invocation.
func DiscoveryArgs(format config.ListFormat) []string {
	if format == config.ListDOT {
		return []string{"-x", "no", "--list_content=DOT"}
	}
	return []string{"-x", "no", "--list_content"}
}

// RunArgs builds the argv tail for a "run tests" invocation. An empty
// filter means run everything.
func RunArgs(filter string) []string {
	args := []string{"-x", "no", "-l", "test_suite"}
	if filter != "" {
		args = append(args, "-t", filter)
	}
	return args
}

// Session wraps one invocation of the test executable. It exposes both
// output streams as live line channels and a completion signal (Wait).
// Callers must drain both channels; Wait blocks until they are closed.
type Session struct {
	cmd     *exec.Cmd
	stdout  chan string
	stderr  chan string
	readers sync.WaitGroup
}

// StartSession spawns the executable with the given arguments. On any
// failure to establish the streams it closes whatever was opened before
// propagating the error, so no process or open handle outlives a failed
// launch.
func StartSession(ctx context.Context, exe string, args ...string) (*Session, error) {
	cmd := exec.CommandContext(ctx, exe, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("open stdout: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		stdout.Close()
		return nil, fmt.Errorf("open stderr: %w", err)
	}
	if err := cmd.Start(); err != nil {
		stdout.Close()
		stderr.Close()
		return nil, fmt.Errorf("start %s: %w", exe, err)
	}

	s := &Session{
		cmd:    cmd,
		stdout: make(chan string, 64),
		stderr: make(chan string, 64),
	}
	s.readers.Add(2)
	go s.readLines(stdout, s.stdout)
	go s.readLines(stderr, s.stderr)
	return s, nil
}

// Stdout returns the live standard-output line stream. The channel is
// closed when the stream ends.
func (s *Session) Stdout() <-chan string { return s.stdout }

// Stderr returns the live standard-error line stream. The channel is
// closed when the stream ends.
func (s *Session) Stderr() <-chan string { return s.stderr }

// Wait blocks until both streams are exhausted and the process has
// exited. A nonzero exit code is returned as an error.
func (s *Session) Wait() error {
	s.readers.Wait()
	return s.cmd.Wait()
}

func (s *Session) readLines(r io.Reader, out chan<- string) {
	defer s.readers.Done()
	defer close(out)

	scanner := bufio.NewScanner(r)
	// Assertion diagnostics can be long
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		out <- scanner.Text()
	}
}

// IsExecutableMissing reports whether a session failed to launch because
// the executable path does not exist or is not executable.
func IsExecutableMissing(err error) bool {
	return errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, exec.ErrNotFound)
}
