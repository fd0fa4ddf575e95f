package store

import "context"

// Storage key names. Versioning is by key name only; there is no in-place
// schema migration.
const (
	CacheKey = "candidates_cache_v2"
	BoardKey = "pipelines.board.v1"
)

// KV is the persistence boundary: a flat key-value store of JSON blobs.
// Get reports presence explicitly so callers can tell a missing key from
// an empty value. Implementations: Memory, File, Postgres.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
