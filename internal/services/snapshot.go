package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/renato0307/git-pr/internal/domain"
	"github.com/renato0307/git-pr/internal/logging"
	"github.com/renato0307/git-pr/internal/ports"
)

// SnapshotBuilder queries a remote and assembles its reference snapshot
type SnapshotBuilder struct {
	credentials ports.CredentialResolver
	gitRepo     ports.RepoInspector
	lister      ports.RefLister
}

// NewSnapshotBuilder creates a new SnapshotBuilder
func NewSnapshotBuilder(gitRepo ports.RepoInspector, lister ports.RefLister, credentials ports.CredentialResolver) *SnapshotBuilder {
	return &SnapshotBuilder{
		credentials: credentials,
		gitRepo:     gitRepo,
		lister:      lister,
	}
}

// Build describes remote: its base web URL and the snapshot of the
// references it advertises. Listing errors are returned as-is; there is no
// retry.
func (b *SnapshotBuilder) Build(ctx context.Context, repoPath, remote string) (*domain.RemoteRepository, error) {
	remoteURL, err := b.gitRepo.RemoteURL(ctx, repoPath, remote)
	if err != nil {
		return nil, err
	}

	snapshot, err := b.snapshot(ctx, repoPath, remote, remoteURL)
	if err != nil {
		return nil, err
	}

	return &domain.RemoteRepository{
		BaseURL: RepositoryBaseURL(remoteURL),
		Refs:    snapshot,
		Remote:  remote,
	}, nil
}

func (b *SnapshotBuilder) snapshot(ctx context.Context, repoPath, remote, remoteURL string) (domain.RefSnapshot, error) {
	creds, err := b.resolveCredentials(ctx, repoPath, remoteURL)
	if err != nil {
		return domain.RefSnapshot{}, err
	}

	logging.Logger.Debug("Listing remote references",
		"remote", remote,
		"authenticated", creds != nil)

	refs, err := b.lister.ListReferences(ctx, repoPath, remote, creds)
	if err != nil {
		logging.Logger.Error("Failed to list remote references", "remote", remote, "error", err)
		return domain.RefSnapshot{}, err
	}

	snapshot := domain.NewRefSnapshot(refs)
	logging.Logger.Debug("Built reference snapshot", "remote", remote, "refs", snapshot.Len())
	return snapshot, nil
}

// resolveCredentials returns credentials for the remote's host as configured
// for the repository.
// A nil result means the remote is queried unauthenticated.
func (b *SnapshotBuilder) resolveCredentials(ctx context.Context, repoPath, remoteURL string) (*domain.Credentials, error) {
	if b.credentials == nil {
		return nil, nil
	}

	target, ok := credentialTarget(remoteURL)
	if !ok {
		logging.Logger.Debug("Remote does not use HTTP, skipping credential lookup", "url", remoteURL)
		return nil, nil
	}

	creds, err := b.credentials.Resolve(ctx, repoPath, target)
	if err != nil {
		logging.Logger.Error("Credential lookup failed", "target", target, "error", err)
		return nil, err
	}
	return creds, nil
}

// credentialTarget reduces an HTTP(S) remote URL to scheme://host[:port]
func credentialTarget(remoteURL string) (string, bool) {
	u, err := url.Parse(remoteURL)
	if err != nil || u.Host == "" {
		return "", false
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", false
	}

	return scheme + "://" + u.Host, true
}
