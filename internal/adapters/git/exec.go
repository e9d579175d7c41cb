package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/renato0307/git-pr/internal/logging"
)

// gitCommand describes one git invocation
type gitCommand struct {
	args  []string
	dir   string
	env   []string
	stdin string
}

// run executes git and returns trimmed stdout. Failures carry stderr.
func (c gitCommand) run(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "git", c.args...)
	cmd.Dir = c.dir
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	cmd.Env = append(cmd.Env, c.env...)
	if c.stdin != "" {
		cmd.Stdin = strings.NewReader(c.stdin)
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logging.Logger.Debug("Running git", "dir", c.dir, "args", c.args)

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &commandError{
				args:     c.args,
				err:      err,
				exitCode: exitErr.ExitCode(),
				stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return "", fmt.Errorf("failed to run git %s: %w", strings.Join(c.args, " "), err)
	}

	return strings.TrimSpace(string(output)), nil
}

// commandError is returned when git exits with a non-zero status
type commandError struct {
	args     []string
	err      error
	exitCode int
	stderr   string
}

func (e *commandError) Error() string {
	if e.stderr == "" {
		return fmt.Sprintf("git %s failed: %v", strings.Join(e.args, " "), e.err)
	}
	return fmt.Sprintf("git %s failed: %v\nOutput: %s", strings.Join(e.args, " "), e.err, e.stderr)
}

func (e *commandError) Unwrap() error {
	return e.err
}

// exitCode returns the exit status of a failed git command, or -1 when err
// did not come from git exiting
func exitCode(err error) int {
	var cmdErr *commandError
	if errors.As(err, &cmdErr) {
		return cmdErr.exitCode
	}
	return -1
}
