// Package port defines interfaces for infrastructure adapters.
package port

import "context"

//go:generate mockgen -destination=mocks/mock_style_sink.go -package=mocks . StyleSink

// StyleSink holds the page's uniquely identified style elements.
// Implementations guarantee at most one element per id.
type StyleSink interface {
	// Upsert creates the element with the given id or replaces its CSS.
	Upsert(ctx context.Context, id, css string) error

	// Remove deletes the element with the given id. Missing ids are not an error.
	Remove(ctx context.Context, id string) error
}
