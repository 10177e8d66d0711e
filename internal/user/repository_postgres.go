package user

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"
)

// DBSource resolves the database handle on demand, so a repository can
// be constructed before the first connection exists.
type DBSource interface {
	DB(ctx context.Context) (*sql.DB, error)
}

// PostgresRepository stores each user as a JSONB document keyed by the
// generated identifier.
type PostgresRepository struct {
	src DBSource
}

const (
	createUsersTableQuery = `
		CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			doc JSONB NOT NULL
		)
	`
	insertUserQuery = `INSERT INTO users (id, doc) VALUES ($1, $2)`

	findByEmailQuery = `SELECT doc FROM users WHERE doc->'email'->>'current' = $1`
	findByIDQuery    = `SELECT doc FROM users WHERE id = $1`
)

func NewPostgresRepository(src DBSource) *PostgresRepository {
	return &PostgresRepository{src: src}
}

// EnsureSchema creates the users table when missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	conn, err := r.src.DB(ctx)
	if err != nil {
		return err
	}

	_, err = conn.ExecContext(ctx, createUsersTableQuery)
	return errors.Wrap(err, "create users table")
}

func (r *PostgresRepository) InsertOne(ctx context.Context, u User) error {
	conn, err := r.src.DB(ctx)
	if err != nil {
		return err
	}

	doc, err := json.Marshal(u)
	if err != nil {
		return errors.Wrap(err, "encode user document")
	}

	_, err = conn.ExecContext(ctx, insertUserQuery, u.ID, doc)
	return errors.Wrap(err, "insert user")
}

func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	return r.findOne(ctx, findByEmailQuery, email)
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (User, error) {
	return r.findOne(ctx, findByIDQuery, id)
}

func (r *PostgresRepository) findOne(ctx context.Context, query, arg string) (User, error) {
	conn, err := r.src.DB(ctx)
	if err != nil {
		return User{}, err
	}

	var doc []byte
	if err := conn.QueryRowContext(ctx, query, arg).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, errors.Wrap(err, "query user")
	}

	var u User
	if err := json.Unmarshal(doc, &u); err != nil {
		return User{}, errors.Wrap(err, "decode user document")
	}

	return u, nil
}
