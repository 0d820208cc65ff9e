package port

import "context"

// PageLoader reads the HTML of a page from a file path or URL.
type PageLoader interface {
	Load(ctx context.Context, target string) ([]byte, error)
}
