package slog

import (
	"log/slog"
	"time"

	pcapi "github.com/williamsiker/pc-api"
)

// Ensure ProblemExtractor implements pcapi.ProblemExtractor.
var _ pcapi.ProblemExtractor = (*ProblemExtractor)(nil)

// ProblemExtractor wraps a pcapi.ProblemExtractor with timing and
// outcome logging.
type ProblemExtractor struct {
	next   pcapi.ProblemExtractor
	logger *slog.Logger
}

// NewProblemExtractor creates a new logging ProblemExtractor.
func NewProblemExtractor(next pcapi.ProblemExtractor, logger *slog.Logger) *ProblemExtractor {
	return &ProblemExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *ProblemExtractor) Extract(html string) (*pcapi.Problem, error) {
	begin := time.Now()
	problem, err := e.next.Extract(html)
	if err != nil {
		e.logger.Warn("extraction failed",
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Info("extraction",
		"title", problem.Title,
		"samples", len(problem.Samples),
		"duration", time.Since(begin),
	)
	return problem, nil
}
