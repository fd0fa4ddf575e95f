package candidate

import (
	"sort"
	"strings"
)

// Query describes the list view filters. Zero values mean "no filter".
type Query struct {
	Text     string  // substring match over name, title and skills
	Location string  // exact match
	Status   Status  // exact match, empty = all
	MinYears float64 // inclusive lower bound
	Sort     string  // "name", "experience" or "updated"
}

// Apply filters and sorts a copy of the list; the input is not mutated.
func (q Query) Apply(list []Candidate) []Candidate {
	out := make([]Candidate, 0, len(list))
	needle := strings.ToLower(strings.TrimSpace(q.Text))

	for _, c := range list {
		if q.Location != "" && c.Location != q.Location {
			continue
		}
		if q.Status != "" && c.Status != q.Status {
			continue
		}
		if c.ExperienceYears < q.MinYears {
			continue
		}
		if needle != "" {
			haystack := strings.ToLower(c.Name + " " + c.Title + " " + strings.Join(c.Skills, " "))
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		out = append(out, c)
	}

	switch q.Sort {
	case "name":
		sort.SliceStable(out, func(i, j int) bool {
			return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
		})
	case "experience":
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ExperienceYears > out[j].ExperienceYears
		})
	case "updated":
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].UpdatedAt > out[j].UpdatedAt
		})
	}
	return out
}
