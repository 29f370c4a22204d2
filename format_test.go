package pcapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pcapi "github.com/williamsiker/pc-api"
)

func TestFormatProblem(t *testing.T) {
	t.Parallel()

	t.Run("renders all sections", func(t *testing.T) {
		t.Parallel()

		p := &pcapi.Problem{
			ProblemID:    "abc405_a",
			Title:        "A - Frog Jumps",
			Statement:    "A frog jumps across $N$ stones.",
			Constraints:  "- $1 \\le N \\le 100$",
			InputFormat:  "```\nN\n```",
			OutputFormat: "Print the answer.",
			Notes:        "Watch the edge cases.",
			Samples: []pcapi.SampleCase{
				{Input: "```\n3\n```", Output: "```\n4\n```", Explanation: "The frog jumps twice."},
			},
			TimeLimit:   2,
			MemoryLimit: 1024,
			Score:       100,
		}

		got := pcapi.FormatProblem(p)
		assert.Contains(t, got, "# A - Frog Jumps\n")
		assert.Contains(t, got, "Time Limit: 2 sec / Memory Limit: 1024 MB / Score: 100\n")
		assert.Contains(t, got, "## Problem Statement\n\nA frog jumps across $N$ stones.")
		assert.Contains(t, got, "## Sample Input 1\n\n```\n3\n```")
		assert.Contains(t, got, "## Sample Output 1\n\n```\n4\n```")
		assert.Contains(t, got, "## Sample Explanation 1\n\nThe frog jumps twice.")
		assert.Contains(t, got, "## Notes\n\nWatch the edge cases.")
	})

	t.Run("omits empty sections", func(t *testing.T) {
		t.Parallel()

		p := &pcapi.Problem{
			ProblemID:   "abc405_a",
			Title:       "A - Frog Jumps",
			Statement:   "Just jump.",
			TimeLimit:   2,
			MemoryLimit: 1024,
			Score:       100,
		}

		got := pcapi.FormatProblem(p)
		assert.NotContains(t, got, "## Constraints")
		assert.NotContains(t, got, "## Input")
		assert.NotContains(t, got, "## Sample")
		assert.NotContains(t, got, "## Notes")
	})

	t.Run("falls back to problem ID when title missing", func(t *testing.T) {
		t.Parallel()

		p := &pcapi.Problem{ProblemID: "abc405_a", TimeLimit: 2, MemoryLimit: 1024}
		assert.Contains(t, pcapi.FormatProblem(p), "# abc405_a\n")
	})

	t.Run("fractional time limit", func(t *testing.T) {
		t.Parallel()

		p := &pcapi.Problem{Title: "x", TimeLimit: 4.5, MemoryLimit: 256, Score: 300}
		assert.Contains(t, pcapi.FormatProblem(p), "Time Limit: 4.5 sec / Memory Limit: 256 MB / Score: 300")
	})
}
