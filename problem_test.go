package pcapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pcapi "github.com/williamsiker/pc-api"
)

func validProblem() *pcapi.Problem {
	return &pcapi.Problem{
		ContestID:   "abc405",
		ProblemID:   "abc405_a",
		Title:       "A - Frog Jumps",
		TimeLimit:   pcapi.DefaultTimeLimit,
		MemoryLimit: pcapi.DefaultMemoryLimit,
		Score:       pcapi.DefaultScore,
	}
}

func TestProblem_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, validProblem().Validate())
	})

	t.Run("missing contest ID", func(t *testing.T) {
		t.Parallel()
		p := validProblem()
		p.ContestID = ""
		assert.Equal(t, pcapi.EINVALID, pcapi.ErrorCode(p.Validate()))
	})

	t.Run("missing problem ID", func(t *testing.T) {
		t.Parallel()
		p := validProblem()
		p.ProblemID = ""
		assert.Equal(t, pcapi.EINVALID, pcapi.ErrorCode(p.Validate()))
	})

	t.Run("non-positive time limit", func(t *testing.T) {
		t.Parallel()
		p := validProblem()
		p.TimeLimit = 0
		assert.Equal(t, pcapi.EINVALID, pcapi.ErrorCode(p.Validate()))
	})

	t.Run("non-positive memory limit", func(t *testing.T) {
		t.Parallel()
		p := validProblem()
		p.MemoryLimit = -1
		assert.Equal(t, pcapi.EINVALID, pcapi.ErrorCode(p.Validate()))
	})

	t.Run("negative score", func(t *testing.T) {
		t.Parallel()
		p := validProblem()
		p.Score = -100
		assert.Equal(t, pcapi.EINVALID, pcapi.ErrorCode(p.Validate()))
	})

	t.Run("zero score is valid", func(t *testing.T) {
		t.Parallel()
		p := validProblem()
		p.Score = 0
		assert.NoError(t, p.Validate())
	})
}
