package mock

import pcapi "github.com/williamsiker/pc-api"

var _ pcapi.ProblemExtractor = (*ProblemExtractor)(nil)

// ProblemExtractor is a mock implementation of pcapi.ProblemExtractor.
type ProblemExtractor struct {
	ExtractFn func(html string) (*pcapi.Problem, error)
}

func (e *ProblemExtractor) Extract(html string) (*pcapi.Problem, error) {
	return e.ExtractFn(html)
}
