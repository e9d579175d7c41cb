package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/git-pr/internal/cmd"
	"github.com/renato0307/git-pr/internal/config"
	"github.com/renato0307/git-pr/internal/theme"
	"github.com/renato0307/git-pr/internal/version"
)

func main() {
	// Load settings from ~/.git-pr/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{} // Use empty settings
	}

	// Parse CLI arguments with Kong
	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings) // Set settings before parsing
	ctx := kong.Parse(&cli,
		kong.Name("git-pr"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	// Execute the selected command
	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, theme.ErrorLine(err))
		os.Exit(1)
	}
}
