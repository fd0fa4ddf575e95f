package store

import (
	"context"
	"encoding/json"
	"time"

	"talent-pipeline/internal/candidate"
)

// cacheRecord is the single persisted unit under CacheKey, overwritten
// wholesale on every write.
type cacheRecord struct {
	Timestamp  int64                 `json:"ts"`
	Candidates []candidate.Candidate `json:"data"`
}

// CacheStore holds the one versioned snapshot of the full candidate list.
type CacheStore struct {
	kv KV
}

func NewCacheStore(kv KV) *CacheStore {
	return &CacheStore{kv: kv}
}

// Read returns the cached candidate list. A missing key, unreadable
// backend or unparseable snapshot all read as empty; corruption is
// intentionally never surfaced at this boundary.
func (s *CacheStore) Read(ctx context.Context) []candidate.Candidate {
	raw, ok, err := s.kv.Get(ctx, CacheKey)
	if err != nil || !ok {
		return []candidate.Candidate{}
	}
	var rec cacheRecord
	if err := json.Unmarshal(raw, &rec); err != nil || rec.Candidates == nil {
		return []candidate.Candidate{}
	}
	return rec.Candidates
}

// Replace overwrites the snapshot with a freshly timestamped record.
func (s *CacheStore) Replace(ctx context.Context, list []candidate.Candidate) error {
	rec := cacheRecord{Timestamp: time.Now().UnixMilli(), Candidates: list}
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, CacheKey, raw)
}

// Append concatenates new entries after the existing ones and writes the
// result back. Returns the new total.
func (s *CacheStore) Append(ctx context.Context, list []candidate.Candidate) (int, error) {
	current := s.Read(ctx)
	merged := append(current, list...)
	if err := s.Replace(ctx, merged); err != nil {
		return 0, err
	}
	return len(merged), nil
}

// Prepend puts a single candidate at the head of the list. The manual
// creation path uses this so the newest entry shows first.
func (s *CacheStore) Prepend(ctx context.Context, c candidate.Candidate) error {
	current := s.Read(ctx)
	merged := append([]candidate.Candidate{c}, current...)
	return s.Replace(ctx, merged)
}

// Clear deletes the persisted key entirely.
func (s *CacheStore) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, CacheKey)
}
