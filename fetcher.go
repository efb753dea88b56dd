package uidoc

import "context"

// Fetcher retrieves resource bodies from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// content.
type Fetcher interface {
	// Fetch retrieves the resource at the URL and returns its body.
	// Returns ENOTFOUND if the upstream reports the resource missing;
	// any other failure is EINTERNAL. Every fetch is bounded in duration
	// by the implementation regardless of the caller's context.
	// Fetch never retries.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
