package ports

import (
	"context"

	"github.com/renato0307/git-pr/internal/domain"
)

// CredentialResolver looks up stored credentials for a host
type CredentialResolver interface {
	// Resolve returns credentials for targetURL (scheme://host[:port]) as
	// configured for the repository at repoPath.
	// Returns (nil, nil) when nothing is stored for the host.
	Resolve(ctx context.Context, repoPath, targetURL string) (*domain.Credentials, error)
}
