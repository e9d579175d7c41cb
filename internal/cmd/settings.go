package cmd

import (
	"encoding/json"
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/renato0307/git-pr/internal/config"
)

// SettingsCmd displays settings metadata
type SettingsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the settings command
func (s *SettingsCmd) Run(cli *CLI) error {
	out := cli.stdout()
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(out, "Example settings.json:")
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case []string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}

	w.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Create or edit this file to configure git-pr.")
	fmt.Fprintln(out, "All settings are optional and have sensible defaults.")
	fmt.Fprintln(out, "GIT_PR_REMOTES, GIT_PR_REF_SOURCE and GIT_PR_BROWSER override the file.")

	return nil
}
