package domain

// RemoteRepository pairs a remote's reference snapshot with the web address
// pull requests are browsed under (e.g., https://github.com/owner/repo)
type RemoteRepository struct {
	BaseURL string      // Web root for pull request and compare URLs
	Refs    RefSnapshot // References advertised by the remote
	Remote  string      // Remote name (e.g., origin)
}

// Credentials holds a username/secret pair for a host
type Credentials struct {
	Password string
	Username string
}
