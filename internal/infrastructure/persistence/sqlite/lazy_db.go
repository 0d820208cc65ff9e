package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/readably/internal/application/port"
	"github.com/bnema/readably/internal/logging"
)

// ErrClosed is returned by LazyDB.DB once Close has been called.
var ErrClosed = errors.New("database closed")

// LazyDB opens the preferences database on first use. Opening compiles the
// SQLite WASM module and runs migrations, so commands that never touch the
// store skip both.
type LazyDB struct {
	path string

	mu      sync.Mutex
	db      *sql.DB
	openErr error
	opened  bool
	closed  bool
}

var _ port.Database = (*LazyDB)(nil)

// NewLazyDB returns a provider for the database at path. Nothing is opened yet.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB opens the database on the first call and returns the same handle
// afterwards. A failed open is remembered and not retried.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil, ErrClosed
	}
	if !l.opened {
		l.opened = true
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.path).Msg("opening preferences database")

		l.db, l.openErr = NewConnection(ctx, l.path)
		if l.openErr != nil {
			log.Error().Err(l.openErr).Msg("opening preferences database failed")
		}
	}
	if l.openErr != nil {
		return nil, fmt.Errorf("database initialization failed: %w", l.openErr)
	}
	return l.db, nil
}

// Close releases the connection if one was opened. Later DB calls fail with ErrClosed.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}

// IsInitialized reports whether a connection is currently open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database file path.
func (l *LazyDB) Path() string {
	return l.path
}
