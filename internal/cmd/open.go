package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/git-pr/internal/domain"
	"github.com/renato0307/git-pr/internal/logging"
	"github.com/renato0307/git-pr/internal/services"
	"github.com/renato0307/git-pr/internal/theme"
)

// OpenCmd finds the pull request of the checked-out branch and opens it
type OpenCmd struct {
	Path string `arg:"" optional:"" help:"Path inside the repository (defaults to the current directory)" default:"." type:"path"`
}

// Run executes the open command
func (o *OpenCmd) Run(cli *CLI) error {
	ctx := context.Background()
	out := cli.stdout()
	svc := cli.Container.PullRequestService

	logging.Logger.Info("Looking up pull request", "path", o.Path)

	result, err := svc.Lookup(ctx, o.Path)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRepositoryNotFound):
			fmt.Fprintln(out, theme.WarningLine("Couldn't find Git repository"))
			return nil
		case errors.Is(err, domain.ErrNoRemotes):
			fmt.Fprintln(out, theme.WarningLine(fmt.Sprintf("Couldn't find remote (%v)", err)))
			return nil
		}
		logging.Logger.Error("Lookup failed", "path", o.Path, "error", err)
		return err
	}

	switch result.Kind {
	case services.LookupPullRequests:
		for _, match := range result.Matches {
			url := services.PullRequestURL(match.Repository.BaseURL, match.Number)
			fmt.Fprintln(out, theme.PullRequestLine(match.Number, url))
		}
	case services.LookupCompare:
		fmt.Fprintln(out, theme.CompareLine(result.CompareURL))
	default:
		fmt.Fprintln(out, theme.MutedLine("Couldn't find pull request or remote branch"))
		return nil
	}

	svc.Browse(result)
	return nil
}
