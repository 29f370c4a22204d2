package slog_test

import (
	"bytes"
	stdslog "log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pcapi "github.com/williamsiker/pc-api"
	"github.com/williamsiker/pc-api/mock"
	pcslog "github.com/williamsiker/pc-api/slog"
)

func TestProblemExtractor(t *testing.T) {
	t.Parallel()

	t.Run("logs extraction outcome", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		next := &mock.ProblemExtractor{
			ExtractFn: func(html string) (*pcapi.Problem, error) {
				return &pcapi.Problem{
					Title:   "A - Frog Jumps",
					Samples: []pcapi.SampleCase{{Input: "1", Output: "2"}},
				}, nil
			},
		}

		e := pcslog.NewProblemExtractor(next, logger)
		problem, err := e.Extract("<html></html>")
		require.NoError(t, err)
		assert.Equal(t, "A - Frog Jumps", problem.Title)
		assert.Contains(t, buf.String(), "title=\"A - Frog Jumps\"")
		assert.Contains(t, buf.String(), "samples=1")
	})

	t.Run("logs failure and passes error through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := stdslog.New(stdslog.NewTextHandler(&buf, nil))

		next := &mock.ProblemExtractor{
			ExtractFn: func(html string) (*pcapi.Problem, error) {
				return nil, pcapi.Errorf(pcapi.EUNPROCESSABLE, "problem content not found in document")
			},
		}

		e := pcslog.NewProblemExtractor(next, logger)
		_, err := e.Extract("<html></html>")
		assert.Equal(t, pcapi.EUNPROCESSABLE, pcapi.ErrorCode(err))
		assert.Contains(t, buf.String(), "extraction failed")
	})
}
