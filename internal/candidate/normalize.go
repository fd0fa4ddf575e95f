package candidate

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ParseStatus lower-cases the input and checks it against the closed
// status set. Anything unrecognized, including the empty string, becomes
// StatusSourced.
func ParseStatus(s string) Status {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusSourced, StatusApplied, StatusInterview, StatusOffer, StatusHired, StatusRejected:
		return st
	default:
		return StatusSourced
	}
}

// Normalize coerces one raw provider record into a Candidate. It is a
// total function: every field has a defined fallback and it never fails.
// Missing or unparseable ids fall back to the current timestamp on this
// path (import and manual creation allocate max+1 instead, see NextID).
func Normalize(raw map[string]any) Candidate {
	now := time.Now().UnixMilli()

	id := now
	if n, ok := toNumber(raw["id"]); ok {
		id = int64(n)
	}

	years := 0.0
	if n, ok := toNumber(raw["experienceYears"]); ok && n > 0 {
		years = n
	}

	updated := now
	if ms, ok := ToMillis(raw["updatedAt"]); ok {
		updated = ms
	}

	return Candidate{
		ID:              id,
		Name:            toString(raw["name"]),
		Title:           toString(raw["title"]),
		Location:        toString(raw["location"]),
		ExperienceYears: years,
		Skills:          NormalizeSkills(raw["skills"]),
		Status:          ParseStatus(toString(raw["status"])),
		UpdatedAt:       updated,
	}
}

// NormalizeSkills accepts whatever shape a source hands us: a sequence
// (elements may be plain strings or objects carrying the skill under a
// "name" or "value" field), a JSON-encoded array, or a comma/pipe
// delimited string. Empty entries are dropped, duplicates are kept.
func NormalizeSkills(v any) []string {
	out := []string{}

	appendNonEmpty := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}

	switch val := v.(type) {
	case nil:
		return out
	case []string:
		for _, s := range val {
			appendNonEmpty(s)
		}
		return out
	case []any:
		for _, el := range val {
			appendNonEmpty(skillElement(el))
		}
		return out
	case string:
		var parsed []any
		if err := json.Unmarshal([]byte(val), &parsed); err == nil {
			for _, el := range parsed {
				appendNonEmpty(skillElement(el))
			}
			return out
		}
		for _, part := range strings.FieldsFunc(val, func(r rune) bool { return r == ',' || r == '|' }) {
			appendNonEmpty(part)
		}
		return out
	default:
		return out
	}
}

// skillElement stringifies one element of a skills sequence. Structured
// objects prefer a "name" field, then "value", then the value under the
// smallest key; anything else yields an empty string and gets dropped.
func skillElement(el any) string {
	switch val := el.(type) {
	case string:
		return val
	case map[string]any:
		if s, ok := val["name"].(string); ok {
			return s
		}
		if s, ok := val["value"].(string); ok {
			return s
		}
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		if len(keys) > 0 {
			if s, ok := val[keys[0]].(string); ok {
				return s
			}
		}
		return ""
	default:
		return toString(el)
	}
}

// ToMillis converts a heterogeneous timestamp into epoch milliseconds.
// Numbers above 1e12 are already milliseconds, anything at or below is
// seconds. Strings are tried as calendar dates first, then as numbers
// under the same magnitude rule. The second return is false when nothing
// applied; callers fall back to the current time.
func ToMillis(v any) (int64, bool) {
	switch val := v.(type) {
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, false
		}
		for _, layout := range []string{
			time.RFC3339,
			"2006-01-02T15:04:05",
			"2006-01-02 15:04:05",
			"2006-01-02",
		} {
			if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
				return t.UnixMilli(), true
			}
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return magnitude(n), true
	default:
		n, ok := toNumber(v)
		if !ok {
			return 0, false
		}
		return magnitude(n), true
	}
}

// magnitude applies the seconds-vs-milliseconds disambiguation.
func magnitude(n float64) int64 {
	if n > 1e12 {
		return int64(n)
	}
	return int64(n * 1000)
}

// toNumber coerces scalars and numeric strings into a finite float64.
func toNumber(v any) (float64, bool) {
	var n float64
	switch val := v.(type) {
	case float64:
		n = val
	case float32:
		n = float64(val)
	case int:
		n = float64(val)
	case int64:
		n = float64(val)
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// toString renders a raw scalar for a free-text field; nil becomes "".
func toString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
