package cmd

import (
	"fmt"

	adapterbrowser "github.com/renato0307/git-pr/internal/adapters/browser"
	adaptergit "github.com/renato0307/git-pr/internal/adapters/git"
	adaptergithub "github.com/renato0307/git-pr/internal/adapters/github"
	"github.com/renato0307/git-pr/internal/config"
	"github.com/renato0307/git-pr/internal/ports"
	"github.com/renato0307/git-pr/internal/services"
)

// ContainerOptions holds the resolved settings adapters are built from
type ContainerOptions struct {
	Browser      string
	GitHubAPIURL string
	GitHubToken  string
	RefSource    string
	Remotes      []string
}

// Container holds all dependencies for the application
type Container struct {
	PullRequestService *services.PullRequestService
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	gitRepo := adaptergit.NewCLIRepository()
	credentials := adaptergit.NewCredentialHelper()
	browser := adapterbrowser.NewLauncher(opts.Browser)

	lister, err := newRefLister(opts, gitRepo)
	if err != nil {
		return nil, err
	}

	snapshots := services.NewSnapshotBuilder(gitRepo, lister, credentials)
	pullRequestService := services.NewPullRequestService(gitRepo, snapshots, browser, opts.Remotes)

	return &Container{
		PullRequestService: pullRequestService,
	}, nil
}

// newRefLister picks the reference source
func newRefLister(opts ContainerOptions, gitRepo ports.RepoInspector) (ports.RefLister, error) {
	switch opts.RefSource {
	case "", config.RefSourceGit:
		return adaptergit.NewLsRemoteLister(), nil
	case config.RefSourceGitHub:
		return adaptergithub.NewRefLister(gitRepo, opts.GitHubToken,
			adaptergithub.WithAPIURL(opts.GitHubAPIURL)), nil
	default:
		return nil, fmt.Errorf("unknown ref source '%s' (expected '%s' or '%s')",
			opts.RefSource, config.RefSourceGit, config.RefSourceGitHub)
	}
}
