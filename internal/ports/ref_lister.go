package ports

import (
	"context"

	"github.com/renato0307/git-pr/internal/domain"
)

// RefLister lists the references a remote currently advertises
type RefLister interface {
	// ListReferences returns every (name, commit) pair of the remote.
	// creds may be nil, in which case the remote is queried unauthenticated.
	ListReferences(ctx context.Context, repoPath, remote string, creds *domain.Credentials) ([]domain.Ref, error)
}
