package domain

// PullRequestMatch is a pull request whose head points at the resolved commit
type PullRequestMatch struct {
	Number     int               // Pull request number (always positive)
	Repository *RemoteRepository // Repository the match was found in
}
