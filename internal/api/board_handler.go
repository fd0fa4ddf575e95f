package api

import (
	"context"
	"encoding/json"
	"net/http"

	"talent-pipeline/internal/candidate"
	"talent-pipeline/internal/store"
)

// loadOrRebuildBoard returns the persisted board, rebuilding it from the
// cache only when no board exists or every bucket is empty. A board that
// already holds records is never rebuilt implicitly, so a user-arranged
// layout survives refetches.
func (a *API) loadOrRebuildBoard(ctx context.Context) (store.Board, error) {
	b := a.board.Load(ctx)
	if b != nil && b.Total() > 0 {
		return b, nil
	}

	list := a.cache.Read(ctx)
	if len(list) == 0 {
		fresh, err := a.fetchIntoCache(ctx, 0)
		if err != nil {
			return nil, err
		}
		list = fresh
	}
	return a.board.RebuildFrom(ctx, list)
}

// GetBoardHandler serves the pipeline board, building it from the cached
// candidates on first load.
// @Summary Get the pipeline board
// @Tags board
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]string
// @Router /board [get]
func (a *API) GetBoardHandler(w http.ResponseWriter, r *http.Request) {
	b, err := a.loadOrRebuildBoard(r.Context())
	if err != nil {
		a.fetchError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"board": b, "total": b.Total()})
}

type moveRequest struct {
	ID int64  `json:"id"`
	To string `json:"to"`
}

// MoveCandidateHandler moves one candidate to another pipeline stage. An
// id that is not on the board, or a move onto the candidate's current
// stage, is a successful no-op reported as moved=false.
// @Summary Move a candidate between stages
// @Tags board
// @Accept json
// @Produce json
// @Param move body moveRequest true "Candidate id and destination stage"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /board/move [post]
func (a *API) MoveCandidateHandler(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	to := candidate.Status(req.To)
	valid := false
	for _, s := range candidate.AllStatuses {
		if s == to {
			valid = true
			break
		}
	}
	if !valid {
		a.writeError(w, http.StatusBadRequest, "unknown destination status")
		return
	}

	ctx := r.Context()
	b := a.board.Load(ctx)
	moved, err := a.board.Move(ctx, b, req.ID, to)
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "failed to persist board")
		return
	}

	a.writeJSON(w, http.StatusOK, map[string]any{"moved": moved, "board": b})
}

// ResetBoardHandler rebuilds the board from the current cache snapshot,
// discarding any user arrangement.
// @Summary Reset the board from cached candidates
// @Tags board
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /board/reset [post]
func (a *API) ResetBoardHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	b, err := a.board.RebuildFrom(ctx, a.cache.Read(ctx))
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "failed to persist board")
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"board": b, "total": b.Total()})
}

// ClearBoardHandler deletes the persisted board and rebuilds it from the
// cache.
// @Summary Clear board storage
// @Tags board
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /board [delete]
func (a *API) ClearBoardHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := a.board.Clear(ctx); err != nil {
		a.writeError(w, http.StatusInternalServerError, "failed to clear board")
		return
	}
	b, err := a.board.RebuildFrom(ctx, a.cache.Read(ctx))
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, "failed to persist board")
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"board": b, "total": b.Total()})
}
