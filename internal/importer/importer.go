package importer

import (
	"strconv"
	"strings"
	"time"

	"talent-pipeline/internal/candidate"
)

// TemplateFilename is the download name for the generated template.
const TemplateFilename = "candidates_template.csv"

var templateRows = [][]string{
	{"name", "title", "location", "experienceYears", "skills", "status", "updatedAt"},
	{"Mira Albrecht", "Frontend Engineer", "Berlin", "5", "React|TypeScript|Tailwind", "applied", "2025-06-01"},
	{"Jonas Weber", "Full-Stack Dev", "Remote", "7", "Node.js|React|TypeScript", "interview", "2025-05-12"},
	{"Aylin Kaya", "UX Engineer", "Hamburg", "3", "React|Tailwind", "sourced", "2025-04-20"},
}

// Template renders the downloadable example CSV: the canonical header row
// plus three example candidates with pipe-delimited skills.
func Template() string {
	lines := make([]string, len(templateRows))
	for i, r := range templateRows {
		lines[i] = strings.Join(r, ",")
	}
	return strings.Join(lines, "\n")
}

// Project turns parsed data rows into candidates using the current field
// mapping. Rows whose resolved name is empty are skipped silently; name is
// the only field the import treats as mandatory. Accepted rows receive
// consecutive ids starting at max(existing)+1, so a batch of N rows gets N
// consecutive ids appended to whatever is already cached.
func Project(headers []string, rows [][]string, mapping Mapping, existing []candidate.Candidate) []candidate.Candidate {
	cols := map[string]int{
		"name":            columnIndex(headers, mapping.Name),
		"title":           columnIndex(headers, mapping.Title),
		"location":        columnIndex(headers, mapping.Location),
		"experienceYears": columnIndex(headers, mapping.ExperienceYears),
		"skills":          columnIndex(headers, mapping.Skills),
		"status":          columnIndex(headers, mapping.Status),
		"updatedAt":       columnIndex(headers, mapping.UpdatedAt),
	}

	nextID := candidate.NextID(existing)

	var out []candidate.Candidate
	for _, row := range rows {
		get := func(field string) string {
			i := cols[field]
			if i < 0 || i >= len(row) {
				return ""
			}
			return row[i]
		}

		name := get("name")
		if name == "" {
			continue
		}

		years := 0.0
		if n, ok := parseYears(get("experienceYears")); ok {
			years = n
		}

		updated := time.Now().UnixMilli()
		if ms, ok := candidate.ToMillis(get("updatedAt")); ok {
			updated = ms
		}

		out = append(out, candidate.Candidate{
			ID:              nextID,
			Name:            name,
			Title:           get("title"),
			Location:        get("location"),
			ExperienceYears: years,
			Skills:          candidate.NormalizeSkills(get("skills")),
			Status:          candidate.ParseStatus(get("status")),
			UpdatedAt:       updated,
		})
		nextID++
	}
	return out
}

// parseYears accepts only finite non-negative values; anything else falls
// back to zero at the call site.
func parseYears(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
