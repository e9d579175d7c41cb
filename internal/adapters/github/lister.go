package github

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"

	"github.com/renato0307/git-pr/internal/domain"
	"github.com/renato0307/git-pr/internal/logging"
	"github.com/renato0307/git-pr/internal/ports"
)

const (
	defaultAPIURL = "https://api.github.com"
	pageSize      = 100
)

// RefLister implements ports.RefLister with the GitHub REST API.
// Open pull requests are reported as refs/pull/<n>/head and branches as
// refs/heads/<name>.
type RefLister struct {
	apiURL     string
	httpClient *http.Client
	remotes    ports.RepoInspector
	token      string
}

// Verify interface compliance at compile time
var _ ports.RefLister = (*RefLister)(nil)

// Option configures the RefLister
type Option func(*RefLister)

// WithAPIURL sets a GitHub Enterprise API base URL
func WithAPIURL(url string) Option {
	return func(l *RefLister) {
		if url != "" {
			l.apiURL = url
		}
	}
}

// WithHTTPClient sets the client used for unauthenticated requests and as
// the base transport for authenticated ones
func WithHTTPClient(client *http.Client) Option {
	return func(l *RefLister) {
		l.httpClient = client
	}
}

// NewRefLister creates a RefLister. token may be empty, in which case the
// resolved credential secret is used when available.
func NewRefLister(remotes ports.RepoInspector, token string, opts ...Option) *RefLister {
	l := &RefLister{
		apiURL:  defaultAPIURL,
		remotes: remotes,
		token:   token,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ListReferences implements RefLister.ListReferences
func (l *RefLister) ListReferences(ctx context.Context, repoPath, remote string, creds *domain.Credentials) ([]domain.Ref, error) {
	remoteURL, err := l.remotes.RemoteURL(ctx, repoPath, remote)
	if err != nil {
		return nil, err
	}

	owner, repo, err := parseRepository(remoteURL)
	if err != nil {
		return nil, err
	}

	client, err := l.client(ctx, creds)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Listing references from GitHub", "owner", owner, "repo", repo, "api", l.apiURL)

	pulls, err := listPullRequestRefs(ctx, client, owner, repo)
	if err != nil {
		logging.Logger.Error("Failed to list pull requests", "owner", owner, "repo", repo, "error", err)
		return nil, err
	}

	branches, err := listBranchRefs(ctx, client, owner, repo)
	if err != nil {
		logging.Logger.Error("Failed to list branches", "owner", owner, "repo", repo, "error", err)
		return nil, err
	}

	refs := append(branches, pulls...)
	logging.Logger.Debug("Listed GitHub references", "owner", owner, "repo", repo, "count", len(refs))
	return refs, nil
}

// client builds a GitHub client authenticated with the configured token or,
// failing that, with the resolved credential secret
func (l *RefLister) client(ctx context.Context, creds *domain.Credentials) (*github.Client, error) {
	token := l.token
	if token == "" && creds != nil {
		token = creds.Password
	}

	httpClient := l.httpClient
	if token != "" {
		if httpClient != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		}
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	client := github.NewClient(httpClient)
	if l.apiURL != defaultAPIURL {
		var err error
		client, err = client.WithEnterpriseURLs(l.apiURL, l.apiURL)
		if err != nil {
			return nil, fmt.Errorf("failed to set GitHub enterprise URL: %w", err)
		}
	}
	return client, nil
}

func listPullRequestRefs(ctx context.Context, client *github.Client, owner, repo string) ([]domain.Ref, error) {
	opts := &github.PullRequestListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: pageSize},
	}

	var refs []domain.Ref
	for {
		pulls, resp, err := client.PullRequests.List(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("listing pull requests: %w", err)
		}
		for _, pr := range pulls {
			refs = append(refs, domain.Ref{
				Name:   fmt.Sprintf("refs/pull/%d/head", pr.GetNumber()),
				Target: pr.GetHead().GetSHA(),
			})
		}
		if resp.NextPage == 0 {
			return refs, nil
		}
		opts.Page = resp.NextPage
	}
}

func listBranchRefs(ctx context.Context, client *github.Client, owner, repo string) ([]domain.Ref, error) {
	opts := &github.BranchListOptions{
		ListOptions: github.ListOptions{PerPage: pageSize},
	}

	var refs []domain.Ref
	for {
		branches, resp, err := client.Repositories.ListBranches(ctx, owner, repo, opts)
		if err != nil {
			return nil, fmt.Errorf("listing branches: %w", err)
		}
		for _, b := range branches {
			refs = append(refs, domain.Ref{
				Name:   "refs/heads/" + b.GetName(),
				Target: b.GetCommit().GetSHA(),
			})
		}
		if resp.NextPage == 0 {
			return refs, nil
		}
		opts.Page = resp.NextPage
	}
}
