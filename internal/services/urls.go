package services

import (
	"fmt"
	"strings"
)

const (
	branchRefPrefix = "refs/heads/"
	gitSuffix       = ".git"
)

// RepositoryBaseURL derives the web root of a repository from a remote URL
// by dropping a trailing ".git". Anything else passes through unchanged.
func RepositoryBaseURL(remoteURL string) string {
	return strings.TrimSuffix(remoteURL, gitSuffix)
}

// PullRequestURL formats the web URL of a pull request
func PullRequestURL(baseURL string, number int) string {
	return fmt.Sprintf("%s/pull/%d", baseURL, number)
}

// CompareURL formats the web URL comparing a branch against the default branch
func CompareURL(baseURL, upstream string) string {
	return fmt.Sprintf("%s/compare/%s", baseURL, FriendlyBranchName(upstream))
}

// FriendlyBranchName strips the refs/heads/ prefix from a canonical name
func FriendlyBranchName(canonicalName string) string {
	return strings.TrimPrefix(canonicalName, branchRefPrefix)
}
