package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/renato0307/git-pr/internal/domain"
	"github.com/renato0307/git-pr/internal/logging"
)

// localRemote is the pseudo remote used when a branch tracks another local branch
const localRemote = "."

// discoverRepository returns the top level of the work tree enclosing path.
// git itself walks up through the parent directories.
func discoverRepository(ctx context.Context, path string) (string, error) {
	logging.Logger.Debug("Discovering repository", "path", path)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		logging.Logger.Debug("Path does not exist", "path", absPath)
		return "", fmt.Errorf("%w: %s", domain.ErrRepositoryNotFound, absPath)
	}
	if !info.IsDir() {
		absPath = filepath.Dir(absPath)
	}

	output, err := gitCommand{args: []string{"rev-parse", "--show-toplevel"}, dir: absPath}.run(ctx)
	if err != nil {
		if exitCode(err) >= 0 {
			logging.Logger.Debug("Not a git repository", "path", absPath, "error", err)
			return "", fmt.Errorf("%w: %s", domain.ErrRepositoryNotFound, absPath)
		}
		return "", err
	}

	logging.Logger.Info("Found git repository", "repo_root", output)
	return output, nil
}

// currentBranch reads the checked-out branch, its tip and its upstream
func currentBranch(ctx context.Context, repoPath string) (*domain.Branch, error) {
	logging.Logger.Debug("Reading current branch", "repo_path", repoPath)

	branch := &domain.Branch{}

	name, err := gitCommand{args: []string{"symbolic-ref", "--quiet", "--short", "HEAD"}, dir: repoPath}.run(ctx)
	switch {
	case err == nil:
		branch.Name = name
	case exitCode(err) == 1:
		logging.Logger.Debug("HEAD is detached")
	default:
		return nil, fmt.Errorf("failed to read HEAD: %w", err)
	}

	tip, err := gitCommand{args: []string{"rev-parse", "--verify", "--quiet", "HEAD"}, dir: repoPath}.run(ctx)
	switch {
	case err == nil:
		branch.Tip = tip
	case exitCode(err) == 1:
		// Unborn branch, no commits yet
		logging.Logger.Debug("HEAD has no commits", "branch", branch.Name)
	default:
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	if branch.IsDetached() {
		return branch, nil
	}

	remote, err := configValue(ctx, repoPath, fmt.Sprintf("branch.%s.remote", branch.Name))
	if err != nil {
		return nil, err
	}
	merge, err := configValue(ctx, repoPath, fmt.Sprintf("branch.%s.merge", branch.Name))
	if err != nil {
		return nil, err
	}

	if remote != "" && remote != localRemote && merge != "" {
		branch.Upstream = merge
		branch.UpstreamRemote = remote
	}

	logging.Logger.Debug("Current branch",
		"branch", branch.Name,
		"tip", branch.Tip,
		"upstream", branch.Upstream,
		"upstream_remote", branch.UpstreamRemote)
	return branch, nil
}

// configValue reads a single git config value, "" when unset
func configValue(ctx context.Context, repoPath, key string) (string, error) {
	value, err := gitCommand{args: []string{"config", "--get", key}, dir: repoPath}.run(ctx)
	if err != nil {
		if exitCode(err) == 1 {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config %s: %w", key, err)
	}
	return value, nil
}

// listRemotes returns the names of all configured remotes
func listRemotes(ctx context.Context, repoPath string) ([]string, error) {
	output, err := gitCommand{args: []string{"remote"}, dir: repoPath}.run(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}

	var remotes []string
	for _, line := range strings.Split(output, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			remotes = append(remotes, name)
		}
	}
	return remotes, nil
}

// getRemoteURL gets the configured URL of a remote
func getRemoteURL(ctx context.Context, repoPath, remote string) (string, error) {
	output, err := gitCommand{args: []string{"remote", "get-url", remote}, dir: repoPath}.run(ctx)
	if err != nil {
		if exitCode(err) >= 0 {
			logging.Logger.Debug("Remote not found", "remote", remote, "error", err)
			return "", fmt.Errorf("%w: %s", domain.ErrRemoteNotFound, remote)
		}
		return "", err
	}

	logging.Logger.Debug("Remote URL", "remote", remote, "url", output)
	return output, nil
}
