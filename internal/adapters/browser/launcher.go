package browser

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	clibrowser "github.com/cli/browser"

	"github.com/renato0307/git-pr/internal/logging"
	"github.com/renato0307/git-pr/internal/ports"
)

// openDefault opens a URL with $BROWSER or the platform handler
var openDefault = clibrowser.OpenURL

// startCommand launches a browser command without waiting for it to exit
var startCommand = func(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			logging.Logger.Warn("Browser exited with error", "error", err, "browser", name)
		}
	}()
	return nil
}

// Launcher implements ports.BrowserLauncher
type Launcher struct {
	browser string
}

// Verify interface compliance at compile time
var _ ports.BrowserLauncher = (*Launcher)(nil)

// NewLauncher creates a new browser launcher. browser is the configured
// command and may be empty.
func NewLauncher(browser string) *Launcher {
	// Keep handler chatter out of the single output line
	clibrowser.Stdout = io.Discard
	clibrowser.Stderr = io.Discard
	return &Launcher{browser: browser}
}

// Open opens url in a browser
// Priority: configured browser → $GIT_PR_BROWSER → $BROWSER → platform default
func (l *Launcher) Open(url string) error {
	if url == "" {
		return fmt.Errorf("no url provided")
	}

	name, args := findBrowser(url, l.browser)
	if name == "" {
		logging.Logger.Info("Opening default browser", "url", url)
		if err := openDefault(url); err != nil {
			return fmt.Errorf("failed to open browser: %w", err)
		}
		return nil
	}

	logging.Logger.Info("Opening browser", "browser", name, "url", url)

	if err := startCommand(name, args...); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}
	return nil
}

// findBrowser returns the explicitly chosen browser command, or "" when
// the default handler should be used
func findBrowser(url string, configured string) (string, []string) {
	// 1. Settings take precedence
	if name, args := splitCommand(configured, url); name != "" {
		return name, args
	}

	// 2. Check GIT_PR_BROWSER
	return splitCommand(os.Getenv("GIT_PR_BROWSER"), url)
}

// splitCommand turns "firefox --new-window" into a command and its
// arguments with url appended
func splitCommand(command string, url string) (string, []string) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], append(fields[1:], url)
}
