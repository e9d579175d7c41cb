package domain

// Branch describes the checked-out branch of a local repository
type Branch struct {
	Name           string // Short branch name, empty for a detached HEAD
	Tip            string // Commit identifier of the local tip
	Upstream       string // Remote-side canonical name (e.g., refs/heads/feature-x)
	UpstreamRemote string // Remote the upstream belongs to (e.g., origin)
}

// IsTracking reports whether the branch has an upstream tracking reference
func (b Branch) IsTracking() bool {
	return b.Upstream != ""
}

// IsDetached reports whether HEAD is not on a branch
func (b Branch) IsDetached() bool {
	return b.Name == ""
}
