package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"talent-pipeline/internal/importer"
)

const uploadKeyPrefix = "import.upload."

type previewResponse struct {
	UploadID string           `json:"uploadId"`
	Headers  []string         `json:"headers"`
	Mapping  importer.Mapping `json:"mapping"`
	RowCount int              `json:"rowCount"`
	Preview  []any            `json:"preview"`
}

// ImportPreviewHandler accepts an uploaded candidate file, extracts its
// text, parses it and auto-detects the field mapping. The raw text is
// stashed under a fresh upload id so the commit step can re-project it
// after the caller corrected the mapping.
// @Summary Preview a candidate import
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file (or PDF/DOCX to extract text from)"
// @Success 200 {object} previewResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /import/preview [post]
func (a *API) ImportPreviewHandler(w http.ResponseWriter, r *http.Request) {
	// max 10MB
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		a.writeError(w, http.StatusBadRequest, "file too large or invalid (max 10MB)")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		a.writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	text, err := a.extractor.ExtractText(header.Filename, file)
	if err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	parsed := importer.ParseCSV(text)
	if len(parsed) < 1 {
		a.writeError(w, http.StatusBadRequest, "no rows found in file")
		return
	}

	headers := parsed[0]
	rows := parsed[1:]
	mapping := importer.AutoMap(headers)

	ctx := r.Context()
	uploadID := uuid.NewString()
	if err := a.kv.Set(ctx, uploadKeyPrefix+uploadID, []byte(text)); err != nil {
		a.writeError(w, http.StatusInternalServerError, "failed to stash upload")
		return
	}

	candidates := importer.Project(headers, rows, mapping, a.cache.Read(ctx))
	preview := make([]any, 0, 10)
	for i, c := range candidates {
		if i >= 10 {
			break
		}
		preview = append(preview, c)
	}

	a.log.Infow("import preview", "upload_id", uploadID, "file", header.Filename,
		"rows", len(rows), "accepted", len(candidates))

	a.writeJSON(w, http.StatusOK, previewResponse{
		UploadID: uploadID,
		Headers:  headers,
		Mapping:  mapping,
		RowCount: len(rows),
		Preview:  preview,
	})
}

type commitRequest struct {
	UploadID string            `json:"uploadId"`
	Mapping  *importer.Mapping `json:"mapping"`
	Mode     string            `json:"mode"` // "append" (default) or "replace"
}

// ImportCommitHandler projects a stashed upload through the (possibly
// corrected) mapping and writes the result into the cache. Rows without a
// resolved name are skipped silently and only show up in the smaller
// accepted count.
// @Summary Commit a previewed import
// @Tags import
// @Accept json
// @Produce json
// @Param commit body commitRequest true "Upload id, mapping and mode"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /import/commit [post]
func (a *API) ImportCommitHandler(w http.ResponseWriter, r *http.Request) {
	var req commitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.UploadID == "" {
		a.writeError(w, http.StatusBadRequest, "uploadId is required")
		return
	}

	ctx := r.Context()
	raw, ok, err := a.kv.Get(ctx, uploadKeyPrefix+req.UploadID)
	if err != nil || !ok {
		a.writeError(w, http.StatusNotFound, "upload not found or expired")
		return
	}

	parsed := importer.ParseCSV(string(raw))
	if len(parsed) < 1 {
		a.writeError(w, http.StatusBadRequest, "no rows found in upload")
		return
	}
	headers := parsed[0]
	rows := parsed[1:]

	mapping := importer.AutoMap(headers)
	if req.Mapping != nil {
		mapping = *req.Mapping
	}

	existing := a.cache.Read(ctx)
	candidates := importer.Project(headers, rows, mapping, existing)

	// ids always continue from the current cache, even on replace; the
	// projection happens before the old snapshot is dropped
	var total int
	switch req.Mode {
	case "replace":
		if err := a.cache.Replace(ctx, candidates); err != nil {
			a.writeError(w, http.StatusInternalServerError, "failed to write cache")
			return
		}
		total = len(candidates)
	default:
		total, err = a.cache.Append(ctx, candidates)
		if err != nil {
			a.writeError(w, http.StatusInternalServerError, "failed to write cache")
			return
		}
	}

	if err := a.kv.Delete(ctx, uploadKeyPrefix+req.UploadID); err != nil {
		a.log.Warnw("upload stash cleanup failed", "upload_id", req.UploadID, "error", err)
	}

	a.log.Infow("import committed", "upload_id", req.UploadID, "mode", req.Mode,
		"accepted", len(candidates), "skipped", len(rows)-len(candidates), "total", total)

	a.writeJSON(w, http.StatusOK, map[string]any{
		"accepted": len(candidates),
		"skipped":  len(rows) - len(candidates),
		"total":    total,
	})
}

// ImportTemplateHandler serves the downloadable CSV template with the
// canonical headers and three example rows.
// @Summary Download the import template
// @Tags import
// @Produce plain
// @Success 200 {string} string "CSV template"
// @Router /import/template [get]
func (a *API) ImportTemplateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+importer.TemplateFilename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(importer.Template()))
}
