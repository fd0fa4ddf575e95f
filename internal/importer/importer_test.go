package importer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent-pipeline/internal/candidate"
)

func TestTemplateRoundTrip(t *testing.T) {
	parsed := ParseCSV(Template())
	require.Len(t, parsed, 4)

	headers := parsed[0]
	mapping := AutoMap(headers)
	got := Project(headers, parsed[1:], mapping, nil)
	require.Len(t, got, 3)

	// ids start at 1 on an empty cache
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, int64(3), got[2].ID)

	assert.Equal(t, "Mira Albrecht", got[0].Name)
	assert.Equal(t, "Frontend Engineer", got[0].Title)
	assert.Equal(t, "Berlin", got[0].Location)
	assert.Equal(t, 5.0, got[0].ExperienceYears)
	assert.Equal(t, []string{"React", "TypeScript", "Tailwind"}, got[0].Skills)
	assert.Equal(t, candidate.StatusApplied, got[0].Status)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local).UnixMilli(), got[0].UpdatedAt)

	assert.Equal(t, "Jonas Weber", got[1].Name)
	assert.Equal(t, []string{"Node.js", "React", "TypeScript"}, got[1].Skills)
	assert.Equal(t, candidate.StatusInterview, got[1].Status)
	assert.Equal(t, time.Date(2025, 5, 12, 0, 0, 0, 0, time.Local).UnixMilli(), got[1].UpdatedAt)

	assert.Equal(t, "Aylin Kaya", got[2].Name)
	assert.Equal(t, "Hamburg", got[2].Location)
	assert.Equal(t, candidate.StatusSourced, got[2].Status)
}

func TestProject(t *testing.T) {
	headers := []string{"name", "years", "stage"}
	mapping := AutoMap(headers)

	t.Run("rows without a name are skipped", func(t *testing.T) {
		rows := [][]string{
			{"Alice", "4", "applied"},
			{"", "9", "hired"},
			{"Bob", "2", "nonsense"},
		}
		got := Project(headers, rows, mapping, nil)
		require.Len(t, got, 2)
		assert.Equal(t, "Alice", got[0].Name)
		assert.Equal(t, "Bob", got[1].Name)
		assert.Equal(t, candidate.StatusSourced, got[1].Status)
	})

	t.Run("ids continue from the existing cache", func(t *testing.T) {
		existing := []candidate.Candidate{{ID: 10}, {ID: 4}}
		rows := [][]string{{"Alice", "4", "applied"}, {"Bob", "2", "offer"}}
		got := Project(headers, rows, mapping, existing)
		require.Len(t, got, 2)
		assert.Equal(t, int64(11), got[0].ID)
		assert.Equal(t, int64(12), got[1].ID)
	})

	t.Run("unbound fields fall back", func(t *testing.T) {
		rows := [][]string{{"Alice", "4", "applied"}}
		got := Project(headers, rows, Mapping{Name: "name"}, nil)
		require.Len(t, got, 1)
		assert.Equal(t, 0.0, got[0].ExperienceYears)
		assert.Equal(t, candidate.StatusSourced, got[0].Status)
		assert.Equal(t, "", got[0].Location)
		assert.Equal(t, []string{}, got[0].Skills)
	})

	t.Run("short rows resolve as empty", func(t *testing.T) {
		rows := [][]string{{"Alice"}}
		got := Project(headers, rows, mapping, nil)
		require.Len(t, got, 1)
		assert.Equal(t, 0.0, got[0].ExperienceYears)
	})

	t.Run("negative years coerce to zero", func(t *testing.T) {
		rows := [][]string{{"Alice", "-3", "applied"}}
		got := Project(headers, rows, mapping, nil)
		require.Len(t, got, 1)
		assert.Equal(t, 0.0, got[0].ExperienceYears)
	})
}

func TestTemplateShape(t *testing.T) {
	parsed := ParseCSV(Template())
	require.NotEmpty(t, parsed)
	assert.Equal(t, []string{"name", "title", "location", "experienceYears", "skills", "status", "updatedAt"}, parsed[0])
}
