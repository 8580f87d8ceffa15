package repo

import (
	"context"
	"database/sql"
)

// Client bundles the per-entity stores over a shared connection pool.
type Client struct {
	db *sql.DB

	Contact *ContactStore
}

func NewClient(db *sql.DB) *Client {
	return &Client{
		db:      db,
		Contact: &ContactStore{db: db},
	}
}

func (c *Client) Close() error {
	return c.db.Close()
}

// Ping reports whether the underlying pool can reach the database. Used by
// the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

const contactsSchema = `
CREATE TABLE IF NOT EXISTS contacts (
	id         BIGSERIAL PRIMARY KEY,
	first_name VARCHAR(120) NOT NULL,
	last_name  VARCHAR(120),
	email      VARCHAR(200) NOT NULL,
	phone      VARCHAR(50),
	message    TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_contacts_created_at ON contacts (created_at DESC);
`

// Migrate applies the contacts table DDL. Statements are idempotent so the
// command is safe to re-run.
func (c *Client) Migrate(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, contactsSchema)
	return err
}
