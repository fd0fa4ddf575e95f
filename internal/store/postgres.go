package store

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Postgres keeps the same one-blob-per-key contract on a single table,
// for deployments that want the snapshots to survive the local disk.
type Postgres struct {
	connection *sql.DB
}

func NewPostgres(dataSourceName string) (*Postgres, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, err
	}

	// Connection pool tuning
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &Postgres{connection: db}, nil
}

// EnsureSchema creates the blob table if it does not exist yet.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS kv_blobs (
        key TEXT PRIMARY KEY,
        value JSONB NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`
	_, err := p.connection.ExecContext(ctx, query)
	return err
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	query := `SELECT value FROM kv_blobs WHERE key = $1`
	err := p.connection.QueryRowContext(ctx, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_blobs (key, value, updated_at)
              VALUES ($1, $2, now())
              ON CONFLICT (key) DO UPDATE
                SET value = EXCLUDED.value,
                    updated_at = EXCLUDED.updated_at`
	_, err := p.connection.ExecContext(ctx, query, key, value)
	return err
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	_, err := p.connection.ExecContext(ctx, `DELETE FROM kv_blobs WHERE key = $1`, key)
	return err
}

func (p *Postgres) Close() error {
	return p.connection.Close()
}
