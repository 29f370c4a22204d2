// Package scrape provides scraping orchestration. It coordinates the
// contest index, page fetching, extraction, and storage, and owns the
// retry, rate-limit, and concurrency policy that the extraction core
// deliberately does not have.
package scrape

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	pcapi "github.com/williamsiker/pc-api"
)

// DefaultBaseURL is the AtCoder site root used to build task URLs.
const DefaultBaseURL = "https://atcoder.jp"

// DefaultConcurrency bounds parallel problem fetches per contest.
const DefaultConcurrency = 4

// Ensure Scraper implements pcapi.ScrapeService at compile time.
var _ pcapi.ScrapeService = (*Scraper)(nil)

// Scraper orchestrates fetching and extraction of AtCoder problems.
type Scraper struct {
	Source    pcapi.ContestSource
	Fetcher   pcapi.Fetcher
	Extractor pcapi.ProblemExtractor
	Contests  pcapi.ContestService
	Problems  pcapi.ProblemService

	// BaseURL defaults to DefaultBaseURL when empty.
	BaseURL string

	// Limiter throttles outbound page fetches. Optional.
	Limiter *rate.Limiter

	// Concurrency bounds parallel fetches in ScrapeContest.
	Concurrency int

	// RetryDelays overrides the fetch retry backoff. Optional.
	RetryDelays []time.Duration

	// Logger is optional; silent when nil.
	Logger *slog.Logger
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *Scraper) taskURL(contestID, problemID string) string {
	base := s.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return fmt.Sprintf("%s/contests/%s/tasks/%s", base, contestID, problemID)
}

// SyncContests refreshes the stored contest index from the contest
// source. Problem lists are grouped per contest and stored with it.
func (s *Scraper) SyncContests(ctx context.Context) (*pcapi.SyncSummary, error) {
	contests, err := s.Source.Contests(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contests: %w", err)
	}

	problems, err := s.Source.ContestProblems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contest problems: %w", err)
	}

	byContest := make(map[string][]*pcapi.ContestProblem)
	for _, p := range problems {
		byContest[p.ContestID] = append(byContest[p.ContestID], p)
	}

	for _, contest := range contests {
		list := byContest[contest.ID]
		sort.Slice(list, func(i, j int) bool { return list[i].ProblemID < list[j].ProblemID })
		for i, p := range list {
			p.Position = i
		}
		contest.Problems = list

		if err := s.Contests.UpsertContest(ctx, contest); err != nil {
			return nil, fmt.Errorf("store contest %s: %w", contest.ID, err)
		}
	}

	s.logger().Info("contest index synced", "contests", len(contests), "problems", len(problems))
	return &pcapi.SyncSummary{Contests: len(contests), Problems: len(problems)}, nil
}

// FetchProblem fetches one problem page, extracts it, stores the
// result keyed by (contest ID, problem ID), and returns it.
func (s *Scraper) FetchProblem(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error) {
	if contestID == "" || problemID == "" {
		return nil, pcapi.Errorf(pcapi.EINVALID, "contest ID and problem ID required")
	}

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	url := s.taskURL(contestID, problemID)
	page, err := FetchWithRetryDelays(ctx, url, s.Fetcher.Fetch, s.logger(), s.RetryDelays)
	if err != nil {
		return nil, err
	}

	problem, err := s.Extractor.Extract(page)
	if err != nil {
		return nil, err
	}
	problem.ContestID = contestID
	problem.ProblemID = problemID

	if err := s.Problems.UpsertProblem(ctx, problem); err != nil {
		return nil, fmt.Errorf("store problem %s/%s: %w", contestID, problemID, err)
	}

	s.logger().Info("problem fetched",
		"contest", contestID,
		"problem", problemID,
		"samples", len(problem.Samples),
	)
	return problem, nil
}

// Result holds the outcome of a contest scrape.
type Result struct {
	Saved  int
	Failed int
}

// ProgressEvent reports progress during a contest scrape.
type ProgressEvent struct {
	ProblemID string
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// ScrapeContest fetches and extracts every problem of a stored
// contest. Individual problem failures are reported through progress
// and counted, not fatal.
func (s *Scraper) ScrapeContest(ctx context.Context, contestID string, progress ProgressFunc) (*Result, error) {
	contest, err := s.Contests.FindContestByID(ctx, contestID)
	if err != nil {
		return nil, err
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(contest.Problems)
	var completed atomic.Int64
	var saved, failed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, cp := range contest.Problems {
		cp := cp
		g.Go(func() error {
			_, err := s.FetchProblem(gctx, cp.ContestID, cp.ProblemID)
			done := int(completed.Add(1))
			if err != nil {
				failed.Add(1)
				s.logger().Warn("problem scrape failed", "problem", cp.ProblemID, "error", err)
			} else {
				saved.Add(1)
			}
			if progress != nil {
				progress(ProgressEvent{
					ProblemID: cp.ProblemID,
					Completed: done,
					Total:     total,
					Error:     err,
				})
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{Saved: int(saved.Load()), Failed: int(failed.Load())}, nil
}
