package github

import (
	"fmt"
	"strings"

	"github.com/renato0307/git-pr/internal/logging"
)

// parseRepository extracts owner and repository name from a remote URL.
// Supported formats:
//   - https://github.com/owner/repo.git
//   - git@github.com:owner/repo.git
//   - ssh://git@github.com/owner/repo.git
func parseRepository(remoteURL string) (owner, repo string, err error) {
	logging.Logger.Debug("Parsing remote URL", "url", remoteURL)

	if remoteURL == "" {
		return "", "", fmt.Errorf("empty remote URL")
	}

	cleanURL := strings.TrimSuffix(strings.TrimSuffix(remoteURL, "/"), ".git")

	var path string
	switch {
	case strings.HasPrefix(cleanURL, "https://"), strings.HasPrefix(cleanURL, "http://"):
		_, rest, _ := strings.Cut(cleanURL, "://")
		_, path, _ = strings.Cut(rest, "/")
	case strings.HasPrefix(cleanURL, "ssh://"):
		rest := strings.TrimPrefix(cleanURL, "ssh://")
		if idx := strings.Index(rest, "@"); idx >= 0 {
			rest = rest[idx+1:]
		}
		_, path, _ = strings.Cut(rest, "/")
	case strings.HasPrefix(cleanURL, "git@"):
		_, path, _ = strings.Cut(cleanURL, ":")
	}

	parts := strings.Split(path, "/")
	if len(parts) < 2 || parts[len(parts)-2] == "" || parts[len(parts)-1] == "" {
		logging.Logger.Warn("Could not extract owner/repo from URL", "url", remoteURL)
		return "", "", fmt.Errorf("not a GitHub repository URL: %s", remoteURL)
	}

	// Last two components, so nested paths keep the innermost owner
	owner = parts[len(parts)-2]
	repo = parts[len(parts)-1]
	logging.Logger.Debug("Parsed remote repo", "owner", owner, "repo", repo)
	return owner, repo, nil
}
