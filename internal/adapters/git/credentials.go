package git

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/renato0307/git-pr/internal/domain"
	"github.com/renato0307/git-pr/internal/logging"
	"github.com/renato0307/git-pr/internal/ports"
)

// CredentialHelper implements ports.CredentialResolver with git credential fill,
// so whatever helper the user configured (osxkeychain, manager, store) is used
type CredentialHelper struct{}

// Verify interface compliance at compile time
var _ ports.CredentialResolver = (*CredentialHelper)(nil)

// NewCredentialHelper creates a new CredentialHelper
func NewCredentialHelper() *CredentialHelper {
	return &CredentialHelper{}
}

// Resolve implements CredentialResolver.Resolve. git runs inside repoPath so
// repository-local helpers and credential.<url> settings apply.
// Returns (nil, nil) when no helper has credentials for the host.
func (h *CredentialHelper) Resolve(ctx context.Context, repoPath, targetURL string) (*domain.Credentials, error) {
	input, err := credentialRequest(targetURL)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Resolving credentials", "target", targetURL, "repo_path", repoPath)

	output, err := gitCommand{
		args:  []string{"-c", "core.askPass=", "-c", "credential.interactive=false", "credential", "fill"},
		dir:   repoPath,
		env:   []string{"GCM_INTERACTIVE=never", "GIT_ASKPASS=", "SSH_ASKPASS="},
		stdin: input,
	}.run(ctx)
	if err != nil {
		if exitCode(err) >= 0 {
			// Nothing stored and prompting is disabled
			logging.Logger.Debug("No stored credentials", "target", targetURL, "error", err)
			return nil, nil
		}
		return nil, err
	}

	creds := parseCredentialOutput(output)
	if creds == nil {
		logging.Logger.Debug("Credential helper returned no secret", "target", targetURL)
		return nil, nil
	}

	logging.Logger.Debug("Resolved credentials", "target", targetURL, "username", creds.Username)
	return creds, nil
}

// credentialRequest builds the git credential input for a URL
func credentialRequest(targetURL string) (string, error) {
	u, err := url.Parse(targetURL)
	if err != nil {
		return "", fmt.Errorf("invalid credential target %q: %w", targetURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid credential target %q: missing scheme or host", targetURL)
	}

	return fmt.Sprintf("protocol=%s\nhost=%s\n\n", u.Scheme, u.Host), nil
}

// parseCredentialOutput reads key=value lines; nil when no password was given
func parseCredentialOutput(output string) *domain.Credentials {
	creds := &domain.Credentials{}
	for _, line := range strings.Split(output, "\n") {
		key, value, ok := strings.Cut(strings.TrimRight(line, "\r"), "=")
		if !ok {
			continue
		}
		switch key {
		case "username":
			creds.Username = value
		case "password":
			creds.Password = value
		}
	}

	if creds.Password == "" {
		return nil
	}
	return creds
}
