package messaging

import (
	"context"

	"github.com/bnema/readably/internal/logging"
	"golang.org/x/sync/errgroup"
)

// Request is one message queued for the event loop. Reply, when set, receives
// the response of a handled message and is closed afterwards. Reply should be
// buffered; an unread unbuffered Reply is abandoned once ctx is done.
type Request struct {
	Message Message
	Reply   chan<- Response
}

// Flusher drains pending background work, such as queued settings writes.
type Flusher interface {
	Flush()
}

// Serve runs the page event loop until requests is closed or ctx is done.
// Requests are handled strictly one at a time; a handler already running when
// ctx is cancelled runs to completion. When flusher is non-nil it is drained
// after the loop has stopped, so writes queued by the last handler are included.
func (r *Router) Serve(ctx context.Context, requests <-chan Request, flusher Flusher) error {
	log := logging.FromContext(ctx)
	g, gctx := errgroup.WithContext(ctx)
	stopped := make(chan struct{})

	g.Go(func() error {
		defer close(stopped)
		for {
			select {
			case <-gctx.Done():
				return gctx.Err()
			case req, open := <-requests:
				if !open {
					return nil
				}
				r.serveOne(gctx, req)
			}
		}
	})

	// Only the loop observes gctx: flushing early would race the last handler.
	g.Go(func() error {
		<-stopped
		if flusher != nil {
			flusher.Flush()
		}
		log.Debug().Msg("event loop stopped")
		return nil
	})

	return g.Wait()
}

func (r *Router) serveOne(ctx context.Context, req Request) {
	resp, ok := r.Handle(context.WithoutCancel(ctx), req.Message)
	if req.Reply == nil {
		return
	}
	defer close(req.Reply)
	if !ok {
		return
	}
	select {
	case req.Reply <- resp:
	case <-ctx.Done():
		logging.FromContext(ctx).Debug().Msg("reply dropped, nobody is reading")
	}
}
