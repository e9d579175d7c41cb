package git

import (
	"context"
	"strings"

	"github.com/renato0307/git-pr/internal/domain"
	"github.com/renato0307/git-pr/internal/logging"
	"github.com/renato0307/git-pr/internal/ports"
)

const (
	peeledSuffix = "^{}"

	envUsername = "GIT_PR_USERNAME"
	envPassword = "GIT_PR_PASSWORD"
)

// inlineCredentialHelper answers "get" requests from the environment so the
// secret never shows up in the process arguments
const inlineCredentialHelper = `!f() { test "$1" = get && echo "username=${` + envUsername + `}" && echo "password=${` + envPassword + `}"; }; f`

// LsRemoteLister implements ports.RefLister with git ls-remote
type LsRemoteLister struct{}

// Verify interface compliance at compile time
var _ ports.RefLister = (*LsRemoteLister)(nil)

// NewLsRemoteLister creates a new LsRemoteLister
func NewLsRemoteLister() *LsRemoteLister {
	return &LsRemoteLister{}
}

// ListReferences implements RefLister.ListReferences
func (l *LsRemoteLister) ListReferences(ctx context.Context, repoPath, remote string, creds *domain.Credentials) ([]domain.Ref, error) {
	logging.Logger.Info("Listing remote references", "remote", remote, "authenticated", creds != nil)

	cmd := gitCommand{dir: repoPath}
	if creds != nil {
		// An empty helper resets the configured list so only ours is asked
		cmd.args = append(cmd.args,
			"-c", "credential.helper=",
			"-c", "credential.helper="+inlineCredentialHelper,
		)
		cmd.env = []string{
			envUsername + "=" + creds.Username,
			envPassword + "=" + creds.Password,
		}
	}
	cmd.args = append(cmd.args, "ls-remote", remote)

	output, err := cmd.run(ctx)
	if err != nil {
		logging.Logger.Error("git ls-remote failed", "remote", remote, "error", err)
		return nil, err
	}

	refs := parseLsRemote(output)
	logging.Logger.Debug("Listed remote references", "remote", remote, "count", len(refs))
	return refs, nil
}

// parseLsRemote parses "<commit>\t<name>" lines. Peeled tag entries and
// malformed lines are skipped.
func parseLsRemote(output string) []domain.Ref {
	var refs []domain.Ref
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		target, name, ok := strings.Cut(line, "\t")
		if !ok {
			logging.Logger.Debug("Skipping malformed ls-remote line", "line", line)
			continue
		}

		target = strings.TrimSpace(target)
		name = strings.TrimSpace(name)
		if target == "" || name == "" || strings.HasSuffix(name, peeledSuffix) {
			continue
		}

		refs = append(refs, domain.Ref{Name: name, Target: target})
	}
	return refs
}
