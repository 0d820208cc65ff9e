package port

import (
	"context"
	"database/sql"
)

// Database hands out the preferences store connection. Implementations may
// defer opening it until the first call to DB.
type Database interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error
}
