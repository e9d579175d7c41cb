package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/git-pr/internal/domain"
	"github.com/renato0307/git-pr/internal/logging"
	"github.com/renato0307/git-pr/internal/ports"
)

// DefaultRemote is the remote looked at when nothing else is configured
const DefaultRemote = "origin"

// LookupKind describes how a lookup ended
type LookupKind int

const (
	LookupNone         LookupKind = iota // Neither a pull request nor a comparable branch
	LookupPullRequests                   // One or more pull requests matched
	LookupCompare                        // No pull request, upstream branch can be compared
)

// LookupResult is the outcome of resolving the current branch
type LookupResult struct {
	Branch     domain.Branch
	CompareURL string
	Kind       LookupKind
	Matches    []domain.PullRequestMatch
}

// URLs returns the URLs to open for this result
func (r *LookupResult) URLs() []string {
	switch r.Kind {
	case LookupPullRequests:
		urls := make([]string, 0, len(r.Matches))
		for _, m := range r.Matches {
			urls = append(urls, PullRequestURL(m.Repository.BaseURL, m.Number))
		}
		return urls
	case LookupCompare:
		return []string{r.CompareURL}
	default:
		return nil
	}
}

// PullRequestService finds the pull requests of the checked-out branch
type PullRequestService struct {
	browser   ports.BrowserLauncher
	gitRepo   ports.GitRepository
	remotes   []string
	snapshots *SnapshotBuilder
}

// NewPullRequestService creates a new PullRequestService.
// remotes lists the remotes to inspect, in order; empty means origin only.
func NewPullRequestService(
	gitRepo ports.GitRepository,
	snapshots *SnapshotBuilder,
	browser ports.BrowserLauncher,
	remotes []string,
) *PullRequestService {
	if len(remotes) == 0 {
		remotes = []string{DefaultRemote}
	}
	return &PullRequestService{
		browser:   browser,
		gitRepo:   gitRepo,
		remotes:   remotes,
		snapshots: snapshots,
	}
}

// Lookup discovers the repository enclosing path and resolves the pull
// requests of its checked-out branch. Returns domain.ErrRepositoryNotFound
// when path is not inside a repository.
func (s *PullRequestService) Lookup(ctx context.Context, path string) (*LookupResult, error) {
	repoPath, err := s.gitRepo.DiscoverRepository(ctx, path)
	if err != nil {
		return nil, err
	}

	repos, err := s.LoadRepositories(ctx, repoPath)
	if err != nil {
		return nil, err
	}

	branch, err := s.gitRepo.CurrentBranch(ctx, repoPath)
	if err != nil {
		return nil, err
	}

	result := &LookupResult{Branch: *branch}

	result.Matches = FindPullRequests(repos, *branch)
	if len(result.Matches) > 0 {
		result.Kind = LookupPullRequests
		logging.Logger.Info("Found pull requests", "branch", branch.Name, "count", len(result.Matches))
		return result, nil
	}

	result.CompareURL = FindCompareURL(repos, *branch)
	if result.CompareURL != "" {
		result.Kind = LookupCompare
		logging.Logger.Info("No pull request, comparing upstream branch", "branch", branch.Name, "url", result.CompareURL)
		return result, nil
	}

	logging.Logger.Info("No pull request or comparable branch found", "branch", branch.Name)
	return result, nil
}

// LoadRepositories builds one repository descriptor per configured remote
// that exists in the repository. Snapshots are fetched concurrently and
// returned in configured order. The first listing error is returned as-is.
func (s *PullRequestService) LoadRepositories(ctx context.Context, repoPath string) ([]*domain.RemoteRepository, error) {
	available, err := s.gitRepo.ListRemotes(ctx, repoPath)
	if err != nil {
		return nil, err
	}

	var remotes []string
	for _, remote := range s.remotes {
		if !slices.Contains(available, remote) {
			logging.Logger.Warn("Configured remote not found, skipping", "remote", remote)
			continue
		}
		remotes = append(remotes, remote)
	}
	if len(remotes) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoRemotes, strings.Join(s.remotes, ", "))
	}

	repos := make([]*domain.RemoteRepository, len(remotes))
	g, ctx := errgroup.WithContext(ctx)
	for i, remote := range remotes {
		g.Go(func() error {
			repo, err := s.snapshots.Build(ctx, repoPath, remote)
			if err != nil {
				return err
			}
			repos[i] = repo
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return repos, nil
}

// Browse opens every URL of the result. Launch failures are logged and do
// not stop the remaining URLs.
func (s *PullRequestService) Browse(result *LookupResult) {
	for _, url := range result.URLs() {
		if err := s.browser.Open(url); err != nil {
			logging.Logger.Warn("Failed to open browser", "url", url, "error", err)
		}
	}
}

// FindPullRequests matches the branch against every repository. The target
// commit is resolved once, against the repository of the upstream remote
// when it was loaded and against the first repository otherwise.
func FindPullRequests(repos []*domain.RemoteRepository, branch domain.Branch) []domain.PullRequestMatch {
	if len(repos) == 0 {
		return nil
	}

	primary := orderByRemote(repos, branch.UpstreamRemote)[0]
	commit := ResolveTargetCommit(branch, primary.Refs)
	logging.Logger.Debug("Resolved target commit", "remote", primary.Remote, "commit", commit)

	var matches []domain.PullRequestMatch
	for _, repo := range repos {
		for _, number := range FindPullRequestNumbers(repo.Refs, commit) {
			matches = append(matches, domain.PullRequestMatch{
				Number:     number,
				Repository: repo,
			})
		}
	}
	return matches
}

// FindCompareURL returns the compare URL for the branch's upstream, or ""
// when the branch has no upstream or no repository advertises it. The
// repository of the upstream remote is preferred.
func FindCompareURL(repos []*domain.RemoteRepository, branch domain.Branch) string {
	if !branch.IsTracking() {
		return ""
	}

	for _, repo := range orderByRemote(repos, branch.UpstreamRemote) {
		if repo.Refs.Has(branch.Upstream) {
			return CompareURL(repo.BaseURL, branch.Upstream)
		}
	}
	return ""
}

// orderByRemote moves the repository of remote to the front
func orderByRemote(repos []*domain.RemoteRepository, remote string) []*domain.RemoteRepository {
	ordered := make([]*domain.RemoteRepository, 0, len(repos))
	for _, repo := range repos {
		if repo.Remote == remote {
			ordered = append(ordered, repo)
		}
	}
	for _, repo := range repos {
		if repo.Remote != remote {
			ordered = append(ordered, repo)
		}
	}
	return ordered
}
