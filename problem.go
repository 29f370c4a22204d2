package pcapi

import (
	"context"
	"time"
)

// Default values applied when a problem page omits or garbles the
// corresponding metadata.
const (
	DefaultScore       = 100
	DefaultTimeLimit   = 2.0
	DefaultMemoryLimit = 1024
)

// SampleCase is one input/output pair illustrating expected program
// behavior, optionally with an explanation. Ordering among a problem's
// samples follows document order and is significant.
type SampleCase struct {
	Input       string `json:"input"`
	Output      string `json:"output"`
	Explanation string `json:"explanation"`
}

// Problem represents an extracted competitive-programming problem.
// The content fields (Statement through Samples) hold normalized
// plain/markdown text; any of them may be empty when the source page
// lacks the corresponding section.
type Problem struct {
	ID        string `json:"id"`
	ContestID string `json:"contestId"`
	ProblemID string `json:"problemId"`

	Title        string       `json:"title"`
	Statement    string       `json:"statement"`
	Constraints  string       `json:"constraints"`
	InputFormat  string       `json:"inputFormat"`
	OutputFormat string       `json:"outputFormat"`
	Notes        string       `json:"notes"`
	Samples      []SampleCase `json:"samples"`

	// TimeLimit is in seconds, MemoryLimit in megabytes.
	TimeLimit   float64 `json:"timeLimit"`
	MemoryLimit int     `json:"memoryLimit"`
	Score       int     `json:"score"`

	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the problem contains invalid fields.
func (p *Problem) Validate() error {
	if p.ContestID == "" {
		return Errorf(EINVALID, "problem contest ID required")
	}
	if p.ProblemID == "" {
		return Errorf(EINVALID, "problem ID required")
	}
	if p.TimeLimit <= 0 {
		return Errorf(EINVALID, "problem time limit must be positive")
	}
	if p.MemoryLimit <= 0 {
		return Errorf(EINVALID, "problem memory limit must be positive")
	}
	if p.Score < 0 {
		return Errorf(EINVALID, "problem score must not be negative")
	}
	return nil
}

// ProblemService represents a service for managing extracted problems.
// Problems are keyed by their (contest ID, problem ID) pair.
type ProblemService interface {
	// UpsertProblem creates a problem or replaces the stored record
	// with the same (contest ID, problem ID) pair.
	UpsertProblem(ctx context.Context, problem *Problem) error

	// FindProblem retrieves a problem by its (contest ID, problem ID)
	// pair. Returns ENOTFOUND if the problem does not exist.
	FindProblem(ctx context.Context, contestID, problemID string) (*Problem, error)

	// FindProblems retrieves problems matching the filter.
	FindProblems(ctx context.Context, filter ProblemFilter) ([]*Problem, error)

	// DeleteProblem permanently removes a problem.
	// Returns ENOTFOUND if the problem does not exist.
	DeleteProblem(ctx context.Context, contestID, problemID string) error
}

// ProblemFilter represents a filter for FindProblems.
type ProblemFilter struct {
	ContestID *string `json:"contestId"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ProblemExtractor extracts a structured problem from a raw problem
// page. This is the core engine: a best-effort, locale-sensitive
// parser that degrades to empty fields and documented defaults rather
// than failing, except when the page holds no problem content at all
// (EUNPROCESSABLE).
type ProblemExtractor interface {
	// Extract parses the page HTML and returns the structured problem.
	// The returned problem has its content and metadata fields set;
	// identity fields (ContestID, ProblemID) are the caller's concern.
	Extract(html string) (*Problem, error)
}

// Fetcher retrieves raw problem pages.
// Retry and rate-limit policy live in the scrape package, not here.
type Fetcher interface {
	// Fetch retrieves the document at the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any underlying resources.
	Close() error
}
