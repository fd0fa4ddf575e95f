package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"talent-pipeline/internal/candidate"
	"talent-pipeline/internal/report"
)

// ListCandidatesHandler serves the cached candidate list with optional
// filtering and sorting. An empty cache triggers a one-time fetch from
// the provider; after that the snapshot is served until a forced refresh.
// @Summary List candidates
// @Description List cached candidates, fetching from the provider on first load
// @Tags candidates
// @Produce json
// @Param q query string false "Substring match over name, title and skills"
// @Param location query string false "Exact location match"
// @Param status query string false "Pipeline stage filter"
// @Param minYears query number false "Minimum experience years"
// @Param sort query string false "Sort order: name, experience or updated"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]string
// @Router /candidates [get]
func (a *API) ListCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	list := a.cache.Read(ctx)
	if len(list) == 0 {
		fresh, err := a.fetchIntoCache(ctx, 0)
		if err != nil {
			a.log.Warnw("initial fetch failed", "error", err)
			a.fetchError(w, err)
			return
		}
		list = fresh
	}

	q := candidate.Query{
		Text:     r.URL.Query().Get("q"),
		Location: r.URL.Query().Get("location"),
		Sort:     r.URL.Query().Get("sort"),
	}
	if s := r.URL.Query().Get("status"); s != "" {
		q.Status = candidate.ParseStatus(s)
	}
	if v := r.URL.Query().Get("minYears"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			q.MinYears = n
		}
	}

	filtered := q.Apply(list)
	a.writeJSON(w, http.StatusOK, map[string]any{
		"candidates": filtered,
		"total":      len(list),
		"matched":    len(filtered),
		"locations":  report.Locations(list),
	})
}

// RefreshCandidatesHandler forces a new provider fetch and replaces the
// cache wholesale. A failed fetch leaves the cached snapshot untouched.
// @Summary Refresh candidates from the provider
// @Tags candidates
// @Produce json
// @Param count query int false "Number of records to request"
// @Success 200 {object} map[string]interface{}
// @Failure 502 {object} map[string]string
// @Router /candidates/refresh [post]
func (a *API) RefreshCandidatesHandler(w http.ResponseWriter, r *http.Request) {
	count := 0
	if v := r.URL.Query().Get("count"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			count = n
		}
	}

	list, err := a.fetchIntoCache(r.Context(), count)
	if err != nil {
		a.log.Warnw("refresh failed", "error", err)
		a.fetchError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]any{"count": len(list)})
}

type createCandidateRequest struct {
	Name            string  `json:"name" validate:"required"`
	Title           string  `json:"title" validate:"required"`
	Location        string  `json:"location"`
	ExperienceYears float64 `json:"experienceYears" validate:"gte=0"`
	Skills          string  `json:"skills"`
	Status          string  `json:"status"`
}

// CreateCandidateHandler adds one candidate manually. The id is allocated
// as max(cached ids)+1 and the location defaults to "Remote" on this path
// only. The new entry is prepended to the cache and, best effort, to the
// matching board bucket when a board already exists.
// @Summary Create a candidate
// @Tags candidates
// @Accept json
// @Produce json
// @Param candidate body createCandidateRequest true "New candidate"
// @Success 201 {object} candidate.Candidate
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /candidates [post]
func (a *API) CreateCandidateHandler(w http.ResponseWriter, r *http.Request) {
	var req createCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := a.validate.Struct(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	existing := a.cache.Read(ctx)

	location := req.Location
	if location == "" {
		location = "Remote"
	}

	c := candidate.Candidate{
		ID:              candidate.NextID(existing),
		Name:            req.Name,
		Title:           req.Title,
		Location:        location,
		ExperienceYears: req.ExperienceYears,
		Skills:          candidate.NormalizeSkills(req.Skills),
		Status:          candidate.ParseStatus(req.Status),
		UpdatedAt:       time.Now().UnixMilli(),
	}

	if err := a.cache.Prepend(ctx, c); err != nil {
		a.writeError(w, http.StatusInternalServerError, "failed to save candidate")
		return
	}

	if err := a.board.Insert(ctx, c); err != nil {
		// the board stays reconcilable via reset, so this is not fatal
		a.log.Warnw("board insert failed", "id", c.ID, "error", err)
	}

	a.writeJSON(w, http.StatusCreated, c)
}

// ClearCacheHandler wipes the cached snapshot entirely.
// @Summary Clear the candidate cache
// @Tags candidates
// @Produce json
// @Success 200 {object} map[string]string
// @Router /candidates/cache [delete]
func (a *API) ClearCacheHandler(w http.ResponseWriter, r *http.Request) {
	if err := a.cache.Clear(r.Context()); err != nil {
		a.writeError(w, http.StatusInternalServerError, "failed to clear cache")
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// ReportSummaryHandler returns derived pipeline statistics for the
// reports view.
// @Summary Pipeline statistics
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /reports/summary [get]
func (a *API) ReportSummaryHandler(w http.ResponseWriter, r *http.Request) {
	list := a.cache.Read(r.Context())
	a.writeJSON(w, http.StatusOK, map[string]any{
		"summary":    report.Summarize(list),
		"topSkills":  report.TopSkills(list, 12),
		"byLocation": report.ByLocation(list),
	})
}
