package parasite

import "context"

// Fetcher retrieves catalog page bodies.
type Fetcher interface {
	// Fetch returns the page body at url. A page that does not exist is
	// reported as an ENOTFOUND-coded error; drivers treat that status
	// as the signal to scaffold placeholders instead of extracting.
	// Any other error is a transport failure.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases transport resources.
	Close() error
}
