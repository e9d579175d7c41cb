package git

import (
	"context"

	"github.com/renato0307/git-pr/internal/domain"
	"github.com/renato0307/git-pr/internal/ports"
)

// CLIRepository implements ports.GitRepository using local git commands
type CLIRepository struct{}

// Verify interface compliance at compile time
var _ ports.GitRepository = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLIRepository
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{}
}

// RepoDiscoverer methods

// DiscoverRepository implements RepoDiscoverer.DiscoverRepository
func (r *CLIRepository) DiscoverRepository(ctx context.Context, path string) (string, error) {
	return discoverRepository(ctx, path)
}

// RepoInspector methods

// CurrentBranch implements RepoInspector.CurrentBranch
func (r *CLIRepository) CurrentBranch(ctx context.Context, repoPath string) (*domain.Branch, error) {
	return currentBranch(ctx, repoPath)
}

// ListRemotes implements RepoInspector.ListRemotes
func (r *CLIRepository) ListRemotes(ctx context.Context, repoPath string) ([]string, error) {
	return listRemotes(ctx, repoPath)
}

// RemoteURL implements RepoInspector.RemoteURL
func (r *CLIRepository) RemoteURL(ctx context.Context, repoPath, remote string) (string, error) {
	return getRemoteURL(ctx, repoPath, remote)
}
