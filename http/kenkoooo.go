package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	pcapi "github.com/williamsiker/pc-api"
)

// DefaultKenkooooBaseURL is the public kenkoooo AtCoder API endpoint.
const DefaultKenkooooBaseURL = "https://kenkoooo.com/atcoder/atcoder-api/v3"

// atcoderBaseURL is used to build user-facing contest and task URLs.
const atcoderBaseURL = "https://atcoder.jp"

// Ensure ContestSource implements pcapi.ContestSource at compile time.
var _ pcapi.ContestSource = (*ContestSource)(nil)

// ContestSource lists contests and problems from the kenkoooo AtCoder
// API, which mirrors AtCoder's contest index as JSON.
type ContestSource struct {
	client    *http.Client
	baseURL   string
	userAgent string
}

// ContestSourceOption configures a ContestSource.
type ContestSourceOption func(*ContestSource)

// WithBaseURL overrides the API base URL. Used in tests.
func WithBaseURL(baseURL string) ContestSourceOption {
	return func(s *ContestSource) {
		s.baseURL = baseURL
	}
}

// NewContestSource creates a new kenkoooo-backed ContestSource.
func NewContestSource(opts ...ContestSourceOption) *ContestSource {
	s := &ContestSource{
		client:    &http.Client{Timeout: DefaultFetchTimeout},
		baseURL:   DefaultKenkooooBaseURL,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// kenkooooContest is the wire format of one /contests entry.
type kenkooooContest struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	StartEpochSecond int64  `json:"start_epoch_second"`
	DurationSecond   int64  `json:"duration_second"`
	RateChange       string `json:"rate_change"`
}

// kenkooooProblem is the wire format of one /problems entry.
type kenkooooProblem struct {
	ID        string `json:"id"`
	ContestID string `json:"contest_id"`
	Title     string `json:"title"`
}

// Contests returns all known contests, without problem lists.
func (s *ContestSource) Contests(ctx context.Context) ([]*pcapi.Contest, error) {
	var wire []kenkooooContest
	if err := s.getJSON(ctx, "/contests", &wire); err != nil {
		return nil, err
	}

	contests := make([]*pcapi.Contest, 0, len(wire))
	for _, c := range wire {
		contests = append(contests, &pcapi.Contest{
			ID:              c.ID,
			Title:           c.Title,
			StartTime:       time.Unix(c.StartEpochSecond, 0).UTC(),
			DurationMinutes: int(c.DurationSecond / 60),
			RateChange:      c.RateChange,
			URL:             fmt.Sprintf("%s/contests/%s", atcoderBaseURL, c.ID),
		})
	}
	return contests, nil
}

// ContestProblems returns all known (contest, problem) index entries.
func (s *ContestSource) ContestProblems(ctx context.Context) ([]*pcapi.ContestProblem, error) {
	var wire []kenkooooProblem
	if err := s.getJSON(ctx, "/problems", &wire); err != nil {
		return nil, err
	}

	problems := make([]*pcapi.ContestProblem, 0, len(wire))
	for _, p := range wire {
		problems = append(problems, &pcapi.ContestProblem{
			ContestID: p.ContestID,
			ProblemID: p.ID,
			Title:     p.Title,
			URL:       TaskURL(p.ContestID, p.ID),
		})
	}
	return problems, nil
}

func (s *ContestSource) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return pcapi.Errorf(pcapi.EUNAVAILABLE, "contest index request %s: %v", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return pcapi.Errorf(pcapi.EUNAVAILABLE, "contest index HTTP %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode contest index response for %s: %w", path, err)
	}
	return nil
}

// TaskURL returns the AtCoder task page URL for a problem.
func TaskURL(contestID, problemID string) string {
	return fmt.Sprintf("%s/contests/%s/tasks/%s", atcoderBaseURL, contestID, problemID)
}
