package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/git-pr/internal/config"
	"github.com/renato0307/git-pr/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Open     OpenCmd     `cmd:"" help:"Open the pull request of the current branch (default)" default:"withargs"`
	Settings SettingsCmd `cmd:"settings" help:"Show settings file location and available options"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	Stdout    io.Writer        `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set

	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("GIT_PR_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("GIT_PR_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if logFilePath != "" {
		logging.Logger.Info("Debug logging enabled", "file", logFilePath)
	}

	// Create container AFTER logging is initialized
	container, err := NewContainer(c.containerOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// containerOptions resolves adapter settings: env vars > settings.json > defaults
func (c *CLI) containerOptions() ContainerOptions {
	settings := c.settings
	if settings == nil {
		settings = &config.Settings{}
	}

	opts := ContainerOptions{
		Browser:      settings.Browser,
		GitHubAPIURL: settings.GitHubAPIURL,
		GitHubToken:  settings.GitHubToken,
		RefSource:    settings.RefSource,
		Remotes:      settings.Remotes,
	}

	if env := os.Getenv("GIT_PR_REMOTES"); env != "" {
		opts.Remotes = config.ParseCommaSeparated(env)
	}
	if env := os.Getenv("GIT_PR_REF_SOURCE"); env != "" {
		opts.RefSource = env
	}
	if opts.RefSource == "" {
		opts.RefSource = config.DefaultRefSource
	}
	// github_token setting wins over GITHUB_TOKEN
	if opts.GitHubToken == "" {
		opts.GitHubToken = os.Getenv("GITHUB_TOKEN")
	}

	logging.Logger.Debug("Resolved options",
		"remotes", opts.Remotes,
		"ref_source", opts.RefSource,
		"github_api_url", opts.GitHubAPIURL,
		"browser", opts.Browser)

	return opts
}

// stdout returns the writer command output goes to
func (c *CLI) stdout() io.Writer {
	if c.Stdout != nil {
		return c.Stdout
	}
	return os.Stdout
}
