package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pcapi "github.com/williamsiker/pc-api"
	pchttp "github.com/williamsiker/pc-api/http"
)

// Ensure ContestSource implements pcapi.ContestSource at compile time.
var _ pcapi.ContestSource = (*pchttp.ContestSource)(nil)

func TestContestSource_Contests(t *testing.T) {
	t.Parallel()

	t.Run("decodes contest list", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/contests", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id":"abc405","title":"AtCoder Beginner Contest 405","start_epoch_second":1746276000,"duration_second":6000,"rate_change":" ~ 1999"}
			]`))
		}))
		defer server.Close()

		source := pchttp.NewContestSource(pchttp.WithBaseURL(server.URL))
		contests, err := source.Contests(context.Background())

		require.NoError(t, err)
		require.Len(t, contests, 1)
		assert.Equal(t, "abc405", contests[0].ID)
		assert.Equal(t, "AtCoder Beginner Contest 405", contests[0].Title)
		assert.Equal(t, 100, contests[0].DurationMinutes)
		assert.Equal(t, " ~ 1999", contests[0].RateChange)
		assert.Equal(t, "https://atcoder.jp/contests/abc405", contests[0].URL)
		assert.Equal(t, time.Unix(1746276000, 0).UTC(), contests[0].StartTime)
	})

	t.Run("maps upstream failure to EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		source := pchttp.NewContestSource(pchttp.WithBaseURL(server.URL))
		_, err := source.Contests(context.Background())

		require.Error(t, err)
		assert.Equal(t, pcapi.EUNAVAILABLE, pcapi.ErrorCode(err))
	})
}

func TestContestSource_ContestProblems(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/problems", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"abc405_a","contest_id":"abc405","title":"A. Frog Jumps"},
			{"id":"abc405_b","contest_id":"abc405","title":"B. Sum of Digits"}
		]`))
	}))
	defer server.Close()

	source := pchttp.NewContestSource(pchttp.WithBaseURL(server.URL))
	problems, err := source.ContestProblems(context.Background())

	require.NoError(t, err)
	require.Len(t, problems, 2)
	assert.Equal(t, "abc405", problems[0].ContestID)
	assert.Equal(t, "abc405_a", problems[0].ProblemID)
	assert.Equal(t, "A. Frog Jumps", problems[0].Title)
	assert.Equal(t, "https://atcoder.jp/contests/abc405/tasks/abc405_a", problems[0].URL)
}
