package ports

// BrowserLauncher opens URLs with the host's default handler
type BrowserLauncher interface {
	Open(url string) error
}
