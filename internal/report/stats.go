// Package report derives pipeline statistics from the cached candidate
// list: KPI totals, per-status counts, top skills and location breakdown.
package report

import (
	"sort"

	"talent-pipeline/internal/candidate"
)

// Summary holds the headline numbers for the reports view.
type Summary struct {
	Total         int                      `json:"total"`
	AvgExperience float64                  `json:"avgExperience"`
	ByStatus      map[candidate.Status]int `json:"byStatus"`
}

// StatRow is one entry of a ranked breakdown.
type StatRow struct {
	Key           string  `json:"key"`
	Count         int     `json:"count"`
	AvgExperience float64 `json:"avgExperience,omitempty"`
}

// Summarize computes totals and per-status counts. Every status key is
// present in the result even when its count is zero.
func Summarize(list []candidate.Candidate) Summary {
	byStatus := make(map[candidate.Status]int, len(candidate.AllStatuses))
	for _, s := range candidate.AllStatuses {
		byStatus[s] = 0
	}

	expSum := 0.0
	for _, c := range list {
		byStatus[c.Status]++
		expSum += c.ExperienceYears
	}

	avg := 0.0
	if len(list) > 0 {
		avg = expSum / float64(len(list))
	}
	return Summary{Total: len(list), AvgExperience: avg, ByStatus: byStatus}
}

// TopSkills ranks skills by how many candidates carry them, descending,
// capped at n. Ties break alphabetically so the order is stable.
func TopSkills(list []candidate.Candidate, n int) []StatRow {
	counts := map[string]int{}
	for _, c := range list {
		for _, s := range c.Skills {
			counts[s]++
		}
	}

	rows := make([]StatRow, 0, len(counts))
	for k, v := range counts {
		rows = append(rows, StatRow{Key: k, Count: v})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Key < rows[j].Key
	})
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// ByLocation breaks candidates down per location with count and average
// experience, ordered by count descending.
func ByLocation(list []candidate.Candidate) []StatRow {
	type agg struct {
		n   int
		sum float64
	}
	buckets := map[string]*agg{}
	for _, c := range list {
		a := buckets[c.Location]
		if a == nil {
			a = &agg{}
			buckets[c.Location] = a
		}
		a.n++
		a.sum += c.ExperienceYears
	}

	rows := make([]StatRow, 0, len(buckets))
	for k, a := range buckets {
		avg := 0.0
		if a.n > 0 {
			avg = a.sum / float64(a.n)
		}
		rows = append(rows, StatRow{Key: k, Count: a.n, AvgExperience: avg})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}

// Locations returns the distinct location values in first-seen order, for
// the filter dropdown.
func Locations(list []candidate.Candidate) []string {
	seen := map[string]bool{}
	var out []string
	for _, c := range list {
		if !seen[c.Location] {
			seen[c.Location] = true
			out = append(out, c.Location)
		}
	}
	return out
}
