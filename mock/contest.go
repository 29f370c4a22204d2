package mock

import (
	"context"

	pcapi "github.com/williamsiker/pc-api"
)

var _ pcapi.ContestService = (*ContestService)(nil)

// ContestService is a mock implementation of pcapi.ContestService.
type ContestService struct {
	UpsertContestFn   func(ctx context.Context, contest *pcapi.Contest) error
	FindContestByIDFn func(ctx context.Context, id string) (*pcapi.Contest, error)
	FindContestsFn    func(ctx context.Context, filter pcapi.ContestFilter) ([]*pcapi.Contest, error)
}

func (s *ContestService) UpsertContest(ctx context.Context, contest *pcapi.Contest) error {
	return s.UpsertContestFn(ctx, contest)
}

func (s *ContestService) FindContestByID(ctx context.Context, id string) (*pcapi.Contest, error) {
	return s.FindContestByIDFn(ctx, id)
}

func (s *ContestService) FindContests(ctx context.Context, filter pcapi.ContestFilter) ([]*pcapi.Contest, error) {
	return s.FindContestsFn(ctx, filter)
}

var _ pcapi.ContestSource = (*ContestSource)(nil)

// ContestSource is a mock implementation of pcapi.ContestSource.
type ContestSource struct {
	ContestsFn        func(ctx context.Context) ([]*pcapi.Contest, error)
	ContestProblemsFn func(ctx context.Context) ([]*pcapi.ContestProblem, error)
}

func (s *ContestSource) Contests(ctx context.Context) ([]*pcapi.Contest, error) {
	return s.ContestsFn(ctx)
}

func (s *ContestSource) ContestProblems(ctx context.Context) ([]*pcapi.ContestProblem, error) {
	return s.ContestProblemsFn(ctx)
}
