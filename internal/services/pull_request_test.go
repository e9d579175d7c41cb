package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/git-pr/internal/domain"
	portsmocks "github.com/renato0307/git-pr/internal/ports/mocks"
)

const testBase = "https://github.com/owner/repo"

type lookupMocks struct {
	browser *portsmocks.MockBrowserLauncher
	gitRepo *portsmocks.MockGitRepository
	lister  *portsmocks.MockRefLister
}

func newLookupService(t *testing.T, remotes ...string) (*PullRequestService, lookupMocks) {
	t.Helper()
	m := lookupMocks{
		browser: portsmocks.NewMockBrowserLauncher(t),
		gitRepo: portsmocks.NewMockGitRepository(t),
		lister:  portsmocks.NewMockRefLister(t),
	}
	builder := NewSnapshotBuilder(m.gitRepo, m.lister, nil)
	return NewPullRequestService(m.gitRepo, builder, m.browser, remotes), m
}

func expectRemote(m lookupMocks, remote, url string, refs []domain.Ref) {
	m.gitRepo.EXPECT().RemoteURL(mock.Anything, "/repo", remote).Return(url, nil)
	m.lister.EXPECT().ListReferences(mock.Anything, "/repo", remote, (*domain.Credentials)(nil)).Return(refs, nil)
}

func TestLookup_ScenarioA_PullRequestFound(t *testing.T) {
	service, m := newLookupService(t)

	m.gitRepo.EXPECT().DiscoverRepository(mock.Anything, "/repo/sub").Return("/repo", nil)
	m.gitRepo.EXPECT().ListRemotes(mock.Anything, "/repo").Return([]string{"origin"}, nil)
	expectRemote(m, "origin", testBase+".git", []domain.Ref{
		{Name: "refs/pull/7/head", Target: "abc123"},
		{Name: "refs/heads/main", Target: "abc123"},
	})
	m.gitRepo.EXPECT().CurrentBranch(mock.Anything, "/repo").
		Return(&domain.Branch{Name: "main", Tip: "abc123"}, nil)

	result, err := service.Lookup(context.Background(), "/repo/sub")

	require.NoError(t, err)
	assert.Equal(t, LookupPullRequests, result.Kind)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, 7, result.Matches[0].Number)
	assert.Equal(t, "origin", result.Matches[0].Repository.Remote)
	assert.Equal(t, []string{testBase + "/pull/7"}, result.URLs())
}

func TestLookup_ScenarioB_CompareURL(t *testing.T) {
	service, m := newLookupService(t)

	m.gitRepo.EXPECT().DiscoverRepository(mock.Anything, "/repo").Return("/repo", nil)
	m.gitRepo.EXPECT().ListRemotes(mock.Anything, "/repo").Return([]string{"origin"}, nil)
	expectRemote(m, "origin", testBase+".git", []domain.Ref{
		{Name: "refs/heads/feature-x", Target: "feat-sha"},
		{Name: "refs/heads/main", Target: "main-sha"},
		{Name: "refs/pull/3/head", Target: "main-sha"},
	})
	m.gitRepo.EXPECT().CurrentBranch(mock.Anything, "/repo").
		Return(&domain.Branch{
			Name:           "feature-x",
			Tip:            "local-sha",
			Upstream:       "refs/heads/feature-x",
			UpstreamRemote: "origin",
		}, nil)

	result, err := service.Lookup(context.Background(), "/repo")

	require.NoError(t, err)
	assert.Equal(t, LookupCompare, result.Kind)
	assert.Empty(t, result.Matches)
	assert.Equal(t, testBase+"/compare/feature-x", result.CompareURL)
	assert.Equal(t, []string{testBase + "/compare/feature-x"}, result.URLs())
}

func TestLookup_ScenarioC_NoResult(t *testing.T) {
	service, m := newLookupService(t)

	m.gitRepo.EXPECT().DiscoverRepository(mock.Anything, "/repo").Return("/repo", nil)
	m.gitRepo.EXPECT().ListRemotes(mock.Anything, "/repo").Return([]string{"origin"}, nil)
	expectRemote(m, "origin", testBase+".git", []domain.Ref{
		{Name: "refs/heads/main", Target: "main-sha"},
		{Name: "refs/pull/3/head", Target: "main-sha"},
	})
	m.gitRepo.EXPECT().CurrentBranch(mock.Anything, "/repo").
		Return(&domain.Branch{Name: "local-only", Tip: "local-sha"}, nil)

	result, err := service.Lookup(context.Background(), "/repo")

	require.NoError(t, err)
	assert.Equal(t, LookupNone, result.Kind)
	assert.Empty(t, result.URLs())
}

func TestLookup_UpstreamNotAdvertisedIsNoResult(t *testing.T) {
	service, m := newLookupService(t)

	m.gitRepo.EXPECT().DiscoverRepository(mock.Anything, "/repo").Return("/repo", nil)
	m.gitRepo.EXPECT().ListRemotes(mock.Anything, "/repo").Return([]string{"origin"}, nil)
	expectRemote(m, "origin", testBase, []domain.Ref{
		{Name: "refs/heads/main", Target: "main-sha"},
	})
	m.gitRepo.EXPECT().CurrentBranch(mock.Anything, "/repo").
		Return(&domain.Branch{
			Name:           "gone",
			Tip:            "local-sha",
			Upstream:       "refs/heads/gone",
			UpstreamRemote: "origin",
		}, nil)

	result, err := service.Lookup(context.Background(), "/repo")

	require.NoError(t, err)
	assert.Equal(t, LookupNone, result.Kind)
	assert.Empty(t, result.CompareURL)
}

func TestLookup_UpstreamAheadOfLocalTip(t *testing.T) {
	service, m := newLookupService(t)

	m.gitRepo.EXPECT().DiscoverRepository(mock.Anything, "/repo").Return("/repo", nil)
	m.gitRepo.EXPECT().ListRemotes(mock.Anything, "/repo").Return([]string{"origin"}, nil)
	expectRemote(m, "origin", testBase+".git", []domain.Ref{
		{Name: "refs/heads/feature-x", Target: "pushed-sha"},
		{Name: "refs/pull/9/head", Target: "pushed-sha"},
		{Name: "refs/pull/4/head", Target: "stale-sha"},
	})
	m.gitRepo.EXPECT().CurrentBranch(mock.Anything, "/repo").
		Return(&domain.Branch{
			Name:           "feature-x",
			Tip:            "stale-sha",
			Upstream:       "refs/heads/feature-x",
			UpstreamRemote: "origin",
		}, nil)

	result, err := service.Lookup(context.Background(), "/repo")

	require.NoError(t, err)
	assert.Equal(t, LookupPullRequests, result.Kind)
	assert.Equal(t, []string{testBase + "/pull/9"}, result.URLs())
}

func TestLookup_MultipleMatchesAreAllReturned(t *testing.T) {
	service, m := newLookupService(t)

	m.gitRepo.EXPECT().DiscoverRepository(mock.Anything, "/repo").Return("/repo", nil)
	m.gitRepo.EXPECT().ListRemotes(mock.Anything, "/repo").Return([]string{"origin"}, nil)
	expectRemote(m, "origin", testBase+".git", []domain.Ref{
		{Name: "refs/pull/12/head", Target: "abc123"},
		{Name: "refs/pull/8/head", Target: "abc123"},
	})
	m.gitRepo.EXPECT().CurrentBranch(mock.Anything, "/repo").
		Return(&domain.Branch{Name: "main", Tip: "abc123"}, nil)

	result, err := service.Lookup(context.Background(), "/repo")

	require.NoError(t, err)
	assert.Equal(t, []string{testBase + "/pull/8", testBase + "/pull/12"}, result.URLs())
}

func TestLookup_RepositoryNotFound(t *testing.T) {
	service, m := newLookupService(t)

	m.gitRepo.EXPECT().DiscoverRepository(mock.Anything, "/tmp").
		Return("", domain.ErrRepositoryNotFound)

	result, err := service.Lookup(context.Background(), "/tmp")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrRepositoryNotFound)
}

func TestLookup_ListingErrorPropagatesUnmodified(t *testing.T) {
	service, m := newLookupService(t)
	listErr := errors.New("could not resolve host")

	m.gitRepo.EXPECT().DiscoverRepository(mock.Anything, "/repo").Return("/repo", nil)
	m.gitRepo.EXPECT().ListRemotes(mock.Anything, "/repo").Return([]string{"origin"}, nil)
	m.gitRepo.EXPECT().RemoteURL(mock.Anything, "/repo", "origin").Return(testBase, nil)
	m.lister.EXPECT().ListReferences(mock.Anything, "/repo", "origin", (*domain.Credentials)(nil)).
		Return(nil, listErr)

	result, err := service.Lookup(context.Background(), "/repo")

	assert.Nil(t, result)
	assert.Same(t, listErr, err)
}

func TestLoadRepositories_SkipsMissingRemotes(t *testing.T) {
	service, m := newLookupService(t, "upstream", "origin")

	m.gitRepo.EXPECT().ListRemotes(mock.Anything, "/repo").Return([]string{"origin"}, nil)
	expectRemote(m, "origin", testBase+".git", nil)

	repos, err := service.LoadRepositories(context.Background(), "/repo")

	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "origin", repos[0].Remote)
}

func TestLoadRepositories_KeepsConfiguredOrder(t *testing.T) {
	service, m := newLookupService(t, "upstream", "origin")

	m.gitRepo.EXPECT().ListRemotes(mock.Anything, "/repo").Return([]string{"origin", "upstream"}, nil)
	expectRemote(m, "origin", "https://github.com/me/repo.git", nil)
	expectRemote(m, "upstream", "https://github.com/org/repo.git", nil)

	repos, err := service.LoadRepositories(context.Background(), "/repo")

	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "upstream", repos[0].Remote)
	assert.Equal(t, "https://github.com/org/repo", repos[0].BaseURL)
	assert.Equal(t, "origin", repos[1].Remote)
	assert.Equal(t, "https://github.com/me/repo", repos[1].BaseURL)
}

func TestLoadRepositories_NoConfiguredRemote(t *testing.T) {
	service, m := newLookupService(t)

	m.gitRepo.EXPECT().ListRemotes(mock.Anything, "/repo").Return([]string{"fork"}, nil)

	repos, err := service.LoadRepositories(context.Background(), "/repo")

	assert.Nil(t, repos)
	assert.ErrorIs(t, err, domain.ErrNoRemotes)
	assert.Contains(t, err.Error(), "origin")
}

func TestFindPullRequests_AcrossRemotes(t *testing.T) {
	fork := &domain.RemoteRepository{
		BaseURL: "https://github.com/me/repo",
		Remote:  "origin",
		Refs: domain.NewRefSnapshot([]domain.Ref{
			{Name: "refs/heads/feature", Target: "feat-sha"},
		}),
	}
	upstream := &domain.RemoteRepository{
		BaseURL: "https://github.com/org/repo",
		Remote:  "upstream",
		Refs: domain.NewRefSnapshot([]domain.Ref{
			{Name: "refs/heads/feature", Target: "unrelated-sha"},
			{Name: "refs/pull/21/head", Target: "feat-sha"},
		}),
	}
	branch := domain.Branch{Name: "feature", Tip: "local-sha", Upstream: "refs/heads/feature", UpstreamRemote: "origin"}

	matches := FindPullRequests([]*domain.RemoteRepository{upstream, fork}, branch)

	require.Len(t, matches, 1)
	assert.Equal(t, 21, matches[0].Number)
	assert.Same(t, upstream, matches[0].Repository)
}

func TestFindPullRequests_UpstreamRemoteNotLoaded(t *testing.T) {
	origin := &domain.RemoteRepository{
		BaseURL: testBase,
		Refs: domain.NewRefSnapshot([]domain.Ref{
			{Name: "refs/heads/feature", Target: "origin-sha"},
			{Name: "refs/pull/5/head", Target: "origin-sha"},
			{Name: "refs/pull/6/head", Target: "local-sha"},
		}),
		Remote: "origin",
	}
	branch := domain.Branch{
		Name:           "feature",
		Tip:            "local-sha",
		Upstream:       "refs/heads/feature",
		UpstreamRemote: "upstream",
	}

	matches := FindPullRequests([]*domain.RemoteRepository{origin}, branch)

	// The upstream name is looked up in the first loaded remote
	require.Len(t, matches, 1)
	assert.Equal(t, 5, matches[0].Number)
	assert.Same(t, origin, matches[0].Repository)
}

func TestFindPullRequests_NoRepositories(t *testing.T) {
	assert.Empty(t, FindPullRequests(nil, domain.Branch{Tip: "abc123"}))
}

func TestFindCompareURL_PrefersUpstreamRemote(t *testing.T) {
	upstream := &domain.RemoteRepository{
		BaseURL: "https://github.com/org/repo",
		Remote:  "upstream",
		Refs:    domain.NewRefSnapshot([]domain.Ref{{Name: "refs/heads/feature", Target: "x"}}),
	}
	fork := &domain.RemoteRepository{
		BaseURL: "https://github.com/me/repo",
		Remote:  "origin",
		Refs:    domain.NewRefSnapshot([]domain.Ref{{Name: "refs/heads/feature", Target: "y"}}),
	}
	branch := domain.Branch{Name: "feature", Upstream: "refs/heads/feature", UpstreamRemote: "origin"}

	url := FindCompareURL([]*domain.RemoteRepository{upstream, fork}, branch)

	assert.Equal(t, "https://github.com/me/repo/compare/feature", url)
}

func TestFindCompareURL_NoUpstream(t *testing.T) {
	repo := &domain.RemoteRepository{
		BaseURL: testBase,
		Remote:  "origin",
		Refs:    domain.NewRefSnapshot([]domain.Ref{{Name: "refs/heads/feature", Target: "x"}}),
	}

	assert.Empty(t, FindCompareURL([]*domain.RemoteRepository{repo}, domain.Branch{Name: "feature"}))
}

func TestBrowse_OpensEveryURL(t *testing.T) {
	service, m := newLookupService(t)
	repo := &domain.RemoteRepository{BaseURL: testBase, Remote: "origin"}
	result := &LookupResult{
		Kind: LookupPullRequests,
		Matches: []domain.PullRequestMatch{
			{Number: 3, Repository: repo},
			{Number: 5, Repository: repo},
		},
	}

	m.browser.EXPECT().Open(testBase + "/pull/3").Return(errors.New("no browser")).Once()
	m.browser.EXPECT().Open(testBase + "/pull/5").Return(nil).Once()

	service.Browse(result)
}

func TestBrowse_NoResultOpensNothing(t *testing.T) {
	service, _ := newLookupService(t)

	service.Browse(&LookupResult{Kind: LookupNone})
}
