package feeds

import "context"

// Fetcher retrieves the raw content of one feed. A source is an
// HTTP(S) URL or a local file path.
type Fetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}
