package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"talent-pipeline/internal/candidate"
	"talent-pipeline/internal/importer"
	"talent-pipeline/internal/provider"
	"talent-pipeline/internal/store"
)

// CandidateSource is what the API needs from the provider; narrowed to an
// interface so handler tests can stub the remote endpoint.
type CandidateSource interface {
	Fetch(ctx context.Context, count int) ([]map[string]any, error)
}

type API struct {
	cache     *store.CacheStore
	board     *store.BoardStore
	kv        store.KV
	source    CandidateSource
	extractor *importer.Extractor
	validate  *validator.Validate
	log       *zap.SugaredLogger
}

func NewAPI(kv store.KV, source CandidateSource, extractor *importer.Extractor, log *zap.SugaredLogger) *API {
	return &API{
		cache:     store.NewCacheStore(kv),
		board:     store.NewBoardStore(kv),
		kv:        kv,
		source:    source,
		extractor: extractor,
		validate:  validator.New(),
		log:       log,
	}
}

// fetchIntoCache pulls fresh records from the provider, normalizes them
// and replaces the cache snapshot. On any fetch error the existing cached
// state is left untouched.
func (a *API) fetchIntoCache(ctx context.Context, count int) ([]candidate.Candidate, error) {
	records, err := a.source.Fetch(ctx, count)
	if err != nil {
		return nil, err
	}
	list := make([]candidate.Candidate, 0, len(records))
	for _, r := range records {
		list = append(list, candidate.Normalize(r))
	}
	if err := a.cache.Replace(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Errorw("response encode failed", "error", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, msg string) {
	a.writeJSON(w, status, map[string]string{"error": msg})
}

// fetchError maps provider failures onto HTTP statuses: configuration
// problems are server errors, upstream failures are bad-gateway with the
// upstream status and body passed through in the message.
func (a *API) fetchError(w http.ResponseWriter, err error) {
	var apiErr *provider.APIError
	switch {
	case errors.As(err, &apiErr):
		a.writeError(w, http.StatusBadGateway, apiErr.Error())
	case errors.Is(err, provider.ErrNotConfigured):
		a.writeError(w, http.StatusInternalServerError, err.Error())
	default:
		a.writeError(w, http.StatusBadGateway, err.Error())
	}
}
