package store

import (
	"context"
	"encoding/json"

	"talent-pipeline/internal/candidate"
)

// Board partitions candidates into one ordered list per pipeline stage.
// All six buckets are always present once a board exists.
type Board map[candidate.Status][]candidate.Candidate

// EmptyBoard returns a board with all six buckets present and empty.
func EmptyBoard() Board {
	b := make(Board, len(candidate.AllStatuses))
	for _, s := range candidate.AllStatuses {
		b[s] = []candidate.Candidate{}
	}
	return b
}

// BoardFrom partitions the given list purely by each candidate's current
// status, discarding nothing and deduplicating nothing.
func BoardFrom(list []candidate.Candidate) Board {
	b := EmptyBoard()
	for _, c := range list {
		st := candidate.ParseStatus(string(c.Status))
		b[st] = append(b[st], c)
	}
	return b
}

// Total counts candidates across all buckets.
func (b Board) Total() int {
	n := 0
	for _, s := range candidate.AllStatuses {
		n += len(b[s])
	}
	return n
}

// BoardStore persists the board under its own key, independently of the
// cache snapshot; the two may drift and are only reconciled by an
// explicit rebuild.
type BoardStore struct {
	kv KV
}

func NewBoardStore(kv KV) *BoardStore {
	return &BoardStore{kv: kv}
}

// Load returns the persisted board, or nil when the key is missing or the
// stored JSON does not parse. Callers treat nil as "rebuild from source".
func (s *BoardStore) Load(ctx context.Context) Board {
	raw, ok, err := s.kv.Get(ctx, BoardKey)
	if err != nil || !ok {
		return nil
	}
	var b Board
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil
	}
	for _, st := range candidate.AllStatuses {
		if b[st] == nil {
			b[st] = []candidate.Candidate{}
		}
	}
	return b
}

// RebuildFrom replaces whatever board state exists with a fresh partition
// of the given candidates. Used on first load and on explicit reset.
func (s *BoardStore) RebuildFrom(ctx context.Context, list []candidate.Candidate) (Board, error) {
	b := BoardFrom(list)
	if err := s.save(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Move locates the candidate by id, scanning buckets in the fixed stage
// order and taking the first match, removes it from its source bucket,
// updates its status and prepends it to the destination. It is a no-op
// when the id is not on the board or source and destination coincide; in
// that case nothing is written back. Returns whether a move happened.
func (s *BoardStore) Move(ctx context.Context, b Board, id int64, to candidate.Status) (bool, error) {
	if b == nil {
		return false, nil
	}

	var from candidate.Status
	var moved candidate.Candidate
	found := false

	for _, st := range candidate.AllStatuses {
		for _, c := range b[st] {
			if c.ID == id {
				from = st
				moved = c
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found || from == to {
		return false, nil
	}

	kept := b[from][:0:0]
	for _, c := range b[from] {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		kept = []candidate.Candidate{}
	}
	b[from] = kept

	moved.Status = to
	b[to] = append([]candidate.Candidate{moved}, b[to]...)

	if err := s.save(ctx, b); err != nil {
		return false, err
	}
	return true, nil
}

// Insert prepends a candidate into the bucket matching its status. It is
// a no-op when no board exists yet; the next rebuild will pick the
// candidate up from the cache instead.
func (s *BoardStore) Insert(ctx context.Context, c candidate.Candidate) error {
	b := s.Load(ctx)
	if b == nil {
		return nil
	}
	st := candidate.ParseStatus(string(c.Status))
	b[st] = append([]candidate.Candidate{c}, b[st]...)
	return s.save(ctx, b)
}

// Clear deletes the persisted board key.
func (s *BoardStore) Clear(ctx context.Context) error {
	return s.kv.Delete(ctx, BoardKey)
}

func (s *BoardStore) save(ctx context.Context, b Board) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, BoardKey, raw)
}
