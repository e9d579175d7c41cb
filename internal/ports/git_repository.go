package ports

import (
	"context"

	"github.com/renato0307/git-pr/internal/domain"
)

// RepoDiscoverer locates the repository enclosing a path
type RepoDiscoverer interface {
	// DiscoverRepository walks upward from path and returns the repository root.
	// Returns domain.ErrRepositoryNotFound when no repository encloses path.
	DiscoverRepository(ctx context.Context, path string) (string, error)
}

// RepoInspector reads branch and remote state of a local repository
type RepoInspector interface {
	CurrentBranch(ctx context.Context, repoPath string) (*domain.Branch, error)
	ListRemotes(ctx context.Context, repoPath string) ([]string, error)
	RemoteURL(ctx context.Context, repoPath, remote string) (string, error)
}

// GitRepository is the composite interface
type GitRepository interface {
	RepoDiscoverer
	RepoInspector
}
