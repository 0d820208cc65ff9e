// Package messaging routes popup messages to the page style engine.
package messaging

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/readably/internal/domain/entity"
	"github.com/bnema/readably/internal/logging"
)

// Default toggle targets.
const (
	DefaultContrastToggleLevel = entity.ContrastMax
	DefaultZoomToggleOffset    = 20
)

// Engine is the page-side style engine driven by the router.
type Engine interface {
	Apply(ctx context.Context, s entity.Settings, d entity.Dimension) error
}

// Observer is notified after every successfully applied action.
type Observer interface {
	Observe(prev, next entity.Settings)
}

// Options tune toggle behavior.
type Options struct {
	// ContrastToggleLevel is the contrast applied when toggling from off.
	ContrastToggleLevel int
	// ZoomToggleOffset is the zoom offset applied when toggling from 0.
	ZoomToggleOffset int
}

// DefaultOptions returns the stock toggle targets.
func DefaultOptions() Options {
	return Options{
		ContrastToggleLevel: DefaultContrastToggleLevel,
		ZoomToggleOffset:    DefaultZoomToggleOffset,
	}
}

// Router owns the current settings of one page.
// Handle is not safe for concurrent use; Serve provides the event loop.
type Router struct {
	engine    Engine
	optsMu    sync.RWMutex
	opts      Options
	current   entity.Settings
	observers []Observer
}

// NewRouter creates a router whose page currently shows initial.
func NewRouter(engine Engine, initial entity.Settings, opts Options) *Router {
	return &Router{
		engine:  engine,
		opts:    opts.withDefaults(),
		current: initial,
	}
}

func (o Options) withDefaults() Options {
	if o.ContrastToggleLevel == 0 {
		o.ContrastToggleLevel = DefaultContrastToggleLevel
	}
	if o.ZoomToggleOffset == 0 {
		o.ZoomToggleOffset = DefaultZoomToggleOffset
	}
	return o
}

// SetOptions replaces the toggle targets. Safe to call while Serve runs.
func (r *Router) SetOptions(opts Options) {
	r.optsMu.Lock()
	r.opts = opts.withDefaults()
	r.optsMu.Unlock()
}

// AddObserver registers o for applied transitions.
func (r *Router) AddObserver(o Observer) {
	r.observers = append(r.observers, o)
}

// Settings returns the current record.
func (r *Router) Settings() entity.Settings {
	return r.current
}

// Handle applies msg. ok is false when the message is unknown or malformed,
// in which case no response must be sent.
func (r *Router) Handle(ctx context.Context, msg Message) (resp Response, ok bool) {
	log := logging.FromContext(ctx)

	action, err := entity.ParseAction(msg.Action, msg.Value)
	if err != nil {
		log.Debug().Err(err).Str("action", msg.Action).Msg("ignoring message")
		return Response{}, false
	}

	return r.Dispatch(ctx, action), true
}

// Dispatch applies an already validated action.
func (r *Router) Dispatch(ctx context.Context, action entity.Action) Response {
	log := logging.FromContext(ctx)

	d := action.Dimension()
	prev := r.current
	next := prev.With(d, r.target(action))

	if err := r.engine.Apply(ctx, next, d); err != nil {
		log.Error().Err(err).Str("action", string(action.Kind)).Msg("failed to apply action")
		return Response{Status: fmt.Sprintf("error: %v", err)}
	}

	r.current = next
	for _, o := range r.observers {
		o.Observe(prev, next)
	}

	log.Info().
		Str("action", string(action.Kind)).
		Str("dimension", string(d)).
		Int("value", next.Value(d)).
		Msg("action applied")
	return Response{Status: statusFor(d, next)}
}

// target computes the new value for the action's dimension.
func (r *Router) target(action entity.Action) int {
	r.optsMu.RLock()
	opts := r.opts
	r.optsMu.RUnlock()

	switch action.Kind {
	case entity.ActionToggleHighContrast:
		if r.current.Contrast == 0 {
			return opts.ContrastToggleLevel
		}
		return 0
	case entity.ActionToggleZoom:
		if r.current.Zoom == 0 {
			return opts.ZoomToggleOffset
		}
		return 0
	case entity.ActionToggleReadableFont:
		if r.current.ReadableFont {
			return 0
		}
		return 1
	default:
		return action.Value
	}
}

func statusFor(d entity.Dimension, s entity.Settings) string {
	if d == entity.DimensionReadableFont {
		if s.ReadableFont {
			return "readableFont enabled"
		}
		return "readableFont disabled"
	}
	return fmt.Sprintf("%s set to %d", d, s.Value(d))
}
