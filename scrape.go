package pcapi

import "context"

// SyncSummary reports the outcome of a contest index sync.
type SyncSummary struct {
	Contests int `json:"contests"`
	Problems int `json:"problems"`
}

// ScrapeService coordinates fetching, extraction, and storage.
// Retry, rate limiting, and concurrency policy live behind this
// boundary, not in the extraction core.
type ScrapeService interface {
	// SyncContests refreshes the stored contest index from the
	// external contest source.
	SyncContests(ctx context.Context) (*SyncSummary, error)

	// FetchProblem fetches a problem page, extracts it, stores the
	// result, and returns it. Returns EUNPROCESSABLE when the page
	// holds no problem content.
	FetchProblem(ctx context.Context, contestID, problemID string) (*Problem, error)
}
