package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"time"

	_ "github.com/lib/pq"
	"github.com/m-mizutani/goerr/v2"

	"github.com/groupbuy/core/pkg/domain/interfaces"
)

//go:embed schema.sql
var schemaSQL string

// Client wraps the Postgres connection pool and implements the
// repository interfaces of the domain layer.
type Client struct {
	db *sql.DB
}

var (
	_ interfaces.ProcurementRepository = (*Client)(nil)
	_ interfaces.UserRepository       = (*Client)(nil)
	_ interfaces.ChatRepository       = (*Client)(nil)
	_ interfaces.PaymentRepository    = (*Client)(nil)
	_ interfaces.AdminStore           = (*Client)(nil)
)

// New opens a connection pool and verifies connectivity
func New(ctx context.Context, dsn string) (*Client, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open postgres connection")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return nil, goerr.Wrap(err, "failed to ping postgres", goerr.V("dsn_set", dsn != ""))
	}

	return &Client{db: db}, nil
}

// Migrate applies the embedded schema. Statements are idempotent
// (CREATE TABLE IF NOT EXISTS), safe to run at every deploy.
func (c *Client) Migrate(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, schemaSQL); err != nil {
		return goerr.Wrap(err, "failed to apply schema")
	}
	return nil
}

// Close releases the connection pool
func (c *Client) Close() error {
	return c.db.Close()
}
