package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Reference sources
const (
	RefSourceGit    = "git"
	RefSourceGitHub = "github"
)

// DefaultRefSource lists references with git ls-remote
const DefaultRefSource = RefSourceGit

// Settings represents the structure of ~/.git-pr/settings.json
type Settings struct {
	Browser      string      `json:"browser,omitempty"`
	Debug        *bool       `json:"debug,omitempty"`
	GitHubAPIURL string      `json:"github_api_url,omitempty"`
	GitHubToken  string      `json:"github_token,omitempty"`
	MaxLogFiles  *int        `json:"max_log_files,omitempty"`
	RefSource    string      `json:"ref_source,omitempty"`
	Remotes      StringArray `json:"remotes,omitempty"`
}

// Validate checks for configuration errors
func (s *Settings) Validate() error {
	if s.RefSource != "" && s.RefSource != RefSourceGit && s.RefSource != RefSourceGitHub {
		return fmt.Errorf("unknown ref_source '%s' (expected '%s' or '%s')", s.RefSource, RefSourceGit, RefSourceGitHub)
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		return fmt.Errorf("max_log_files must not be negative")
	}
	for _, remote := range s.Remotes {
		if strings.ContainsAny(remote, " \t") {
			return fmt.Errorf("invalid remote name '%s'", remote)
		}
	}
	return nil
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	// Try array format first
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	// Fall back to comma-separated string
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = ParseCommaSeparated(str)
	return nil
}

// ParseCommaSeparated splits comma-separated string and trims whitespace
func ParseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $GIT_PR_HOME/settings.json (or ~/.git-pr/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	// Expand Browser path if it starts with ~
	if settings.Browser != "" {
		settings.Browser = ExpandPath(settings.Browser)
	}

	return &settings, nil
}
