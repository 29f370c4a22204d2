package mock

import (
	"context"

	pcapi "github.com/williamsiker/pc-api"
)

var _ pcapi.ProblemService = (*ProblemService)(nil)

// ProblemService is a mock implementation of pcapi.ProblemService.
type ProblemService struct {
	UpsertProblemFn func(ctx context.Context, problem *pcapi.Problem) error
	FindProblemFn   func(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error)
	FindProblemsFn  func(ctx context.Context, filter pcapi.ProblemFilter) ([]*pcapi.Problem, error)
	DeleteProblemFn func(ctx context.Context, contestID, problemID string) error
}

func (s *ProblemService) UpsertProblem(ctx context.Context, problem *pcapi.Problem) error {
	return s.UpsertProblemFn(ctx, problem)
}

func (s *ProblemService) FindProblem(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error) {
	return s.FindProblemFn(ctx, contestID, problemID)
}

func (s *ProblemService) FindProblems(ctx context.Context, filter pcapi.ProblemFilter) ([]*pcapi.Problem, error) {
	return s.FindProblemsFn(ctx, filter)
}

func (s *ProblemService) DeleteProblem(ctx context.Context, contestID, problemID string) error {
	return s.DeleteProblemFn(ctx, contestID, problemID)
}
