package mock

import (
	"context"

	pcapi "github.com/williamsiker/pc-api"
)

var _ pcapi.ScrapeService = (*ScrapeService)(nil)

// ScrapeService is a mock implementation of pcapi.ScrapeService.
type ScrapeService struct {
	SyncContestsFn func(ctx context.Context) (*pcapi.SyncSummary, error)
	FetchProblemFn func(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error)
}

func (s *ScrapeService) SyncContests(ctx context.Context) (*pcapi.SyncSummary, error) {
	return s.SyncContestsFn(ctx)
}

func (s *ScrapeService) FetchProblem(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error) {
	return s.FetchProblemFn(ctx, contestID, problemID)
}
