package pcapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	pcapi "github.com/williamsiker/pc-api"
)

func TestContest_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		c := &pcapi.Contest{ID: "abc405", Title: "ABC 405"}
		assert.NoError(t, c.Validate())
	})

	t.Run("missing ID", func(t *testing.T) {
		t.Parallel()
		c := &pcapi.Contest{Title: "ABC 405"}
		assert.Equal(t, pcapi.EINVALID, pcapi.ErrorCode(c.Validate()))
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()
		c := &pcapi.Contest{ID: "abc405"}
		assert.Equal(t, pcapi.EINVALID, pcapi.ErrorCode(c.Validate()))
	})
}
