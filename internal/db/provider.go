package db

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
)

// Provider hands out the shared database handle, connecting on first
// use. A mutex serializes the first-use connect so two simultaneous
// requests cannot both initialize; a failed attempt leaves the provider
// unconnected and the next request retries.
type Provider struct {
	dsn string

	mu sync.Mutex
	db *sql.DB
}

func NewProvider(dsn string) *Provider {
	return &Provider{dsn: dsn}
}

// Ensure establishes the connection if it does not exist yet.
func (p *Provider) Ensure(ctx context.Context) error {
	_, err := p.DB(ctx)
	return err
}

// DB returns the live handle, connecting lazily.
func (p *Provider) DB(ctx context.Context) (*sql.DB, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db != nil {
		return p.db, nil
	}
	if p.dsn == "" {
		return nil, errors.New("database url is not configured")
	}

	conn, err := sql.Open("pgx", p.dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	p.db = conn
	return p.db, nil
}

// Connected reports whether a live connection exists right now. The
// login flow uses it to tell a missing connection apart from an unknown
// fault.
func (p *Provider) Connected(ctx context.Context) bool {
	p.mu.Lock()
	conn := p.db
	p.mu.Unlock()

	if conn == nil {
		return false
	}

	pingCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return conn.PingContext(pingCtx) == nil
}

func (p *Provider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.db == nil {
		return nil
	}
	err := p.db.Close()
	p.db = nil
	return err
}
