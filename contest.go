package pcapi

import (
	"context"
	"time"
)

// Contest represents an AtCoder contest.
type Contest struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	StartTime       time.Time `json:"startTime"`
	DurationMinutes int       `json:"durationMinutes"`
	RateChange      string    `json:"rateChange"`
	URL             string    `json:"url"`

	// Problems lists the contest's tasks as known from the contest
	// index. Extracted content lives in Problem records, not here.
	Problems []*ContestProblem `json:"problems,omitempty"`
}

// Validate returns an error if the contest contains invalid fields.
func (c *Contest) Validate() error {
	if c.ID == "" {
		return Errorf(EINVALID, "contest ID required")
	}
	if c.Title == "" {
		return Errorf(EINVALID, "contest title required")
	}
	return nil
}

// ContestProblem is a contest index entry for one task.
type ContestProblem struct {
	ContestID string `json:"contestId"`
	ProblemID string `json:"problemId"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Position  int    `json:"position"`
}

// ContestService represents a service for managing the contest index.
type ContestService interface {
	// UpsertContest creates a contest or replaces the stored record
	// (including its problem list) with the same ID.
	UpsertContest(ctx context.Context, contest *Contest) error

	// FindContestByID retrieves a contest with its problem list.
	// Returns ENOTFOUND if the contest does not exist.
	FindContestByID(ctx context.Context, id string) (*Contest, error)

	// FindContests retrieves contests matching the filter, newest
	// start time first.
	FindContests(ctx context.Context, filter ContestFilter) ([]*Contest, error)
}

// ContestFilter represents a filter for FindContests.
type ContestFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ContestSource lists contests and their problems from an external
// index (e.g. the kenkoooo AtCoder API). Implementations perform I/O.
type ContestSource interface {
	// Contests returns all known contests, without problem lists.
	Contests(ctx context.Context) ([]*Contest, error)

	// ContestProblems returns all known (contest, problem) index
	// entries across contests.
	ContestProblems(ctx context.Context) ([]*ContestProblem, error)
}
