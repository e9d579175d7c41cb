package services

import "github.com/renato0307/git-pr/internal/domain"

// ResolveTargetCommit picks the commit pull requests are matched against:
// the remote's current value of the upstream when the snapshot has it,
// the local tip otherwise.
func ResolveTargetCommit(branch domain.Branch, refs domain.RefSnapshot) string {
	if branch.IsTracking() {
		if target, ok := refs.Get(branch.Upstream); ok {
			return target
		}
	}
	return branch.Tip
}
