package importer

import "strings"

// Mapping binds each canonical candidate field to a source CSV header.
// An empty value means the field is unbound and the normalizer fallback
// applies. Callers may rebind any field after auto-detection.
type Mapping struct {
	Name            string `json:"name,omitempty"`
	Title           string `json:"title,omitempty"`
	Location        string `json:"location,omitempty"`
	ExperienceYears string `json:"experienceYears,omitempty"`
	Skills          string `json:"skills,omitempty"`
	Status          string `json:"status,omitempty"`
	UpdatedAt       string `json:"updatedAt,omitempty"`
}

// Header aliases per canonical field, in preference order. Matching is
// case-insensitive and the first hit wins.
var fieldAliases = map[string][]string{
	"name":            {"name", "full name"},
	"title":           {"title", "job", "role"},
	"location":        {"location", "city"},
	"experienceYears": {"experienceYears", "years", "exp", "experience"},
	"skills":          {"skills", "skill"},
	"status":          {"status", "stage"},
	"updatedAt":       {"updatedAt", "updated", "date", "last_updated"},
}

// AutoMap guesses which source column feeds each canonical field.
func AutoMap(headers []string) Mapping {
	lower := make([]string, len(headers))
	for i, h := range headers {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}

	pick := func(field string) string {
		for _, alias := range fieldAliases[field] {
			for i, h := range lower {
				if h == strings.ToLower(alias) {
					return headers[i]
				}
			}
		}
		return ""
	}

	return Mapping{
		Name:            pick("name"),
		Title:           pick("title"),
		Location:        pick("location"),
		ExperienceYears: pick("experienceYears"),
		Skills:          pick("skills"),
		Status:          pick("status"),
		UpdatedAt:       pick("updatedAt"),
	}
}

// columnIndex resolves a bound header back to its position in the header
// row, -1 when unbound or no longer present.
func columnIndex(headers []string, bound string) int {
	if bound == "" {
		return -1
	}
	for i, h := range headers {
		if h == bound {
			return i
		}
	}
	return -1
}
