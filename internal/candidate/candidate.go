package candidate

// Status is a pipeline stage. Values outside the fixed set are never
// stored; ParseStatus folds them into StatusSourced.
type Status string

const (
	StatusSourced   Status = "sourced"
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusHired     Status = "hired"
	StatusRejected  Status = "rejected"
)

// AllStatuses lists the pipeline stages in board order. Board bucket
// scans depend on this order, do not reorder.
var AllStatuses = []Status{
	StatusSourced,
	StatusApplied,
	StatusInterview,
	StatusOffer,
	StatusHired,
	StatusRejected,
}

// Candidate is the canonical record shared by the provider, the cache,
// the board and the CSV importer. JSON field names match the wire format
// the UI consumes.
type Candidate struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	Title           string   `json:"title"`
	Location        string   `json:"location"`
	ExperienceYears float64  `json:"experienceYears"`
	Skills          []string `json:"skills"`
	Status          Status   `json:"status"`
	UpdatedAt       int64    `json:"updatedAt"` // epoch milliseconds
}

// NextID returns max(existing ids)+1, never below 1. Used by the manual
// creation and CSV import paths; provider-supplied ids are trusted as-is.
func NextID(list []Candidate) int64 {
	var max int64
	for _, c := range list {
		if c.ID > max {
			max = c.ID
		}
	}
	if max < 1 {
		return 1
	}
	return max + 1
}
