package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pcapi "github.com/williamsiker/pc-api"
	pchttp "github.com/williamsiker/pc-api/http"
	"github.com/williamsiker/pc-api/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServer_GetProblem(t *testing.T) {
	t.Parallel()

	t.Run("serves cached problem without scraping", func(t *testing.T) {
		t.Parallel()

		problems := &mock.ProblemService{
			FindProblemFn: func(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error) {
				return &pcapi.Problem{
					ContestID: contestID, ProblemID: problemID,
					Title: "A - Cached", TimeLimit: 2, MemoryLimit: 1024, Score: 100,
				}, nil
			},
		}
		scraper := &mock.ScrapeService{
			FetchProblemFn: func(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error) {
				t.Fatal("scraper must not be called for cached problems")
				return nil, nil
			},
		}

		server := pchttp.NewServer(&mock.ContestService{}, problems, scraper, discardLogger())
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contests/abc405/problems/abc405_a", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got pcapi.Problem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "A - Cached", got.Title)
	})

	t.Run("scrapes on cache miss", func(t *testing.T) {
		t.Parallel()

		problems := &mock.ProblemService{
			FindProblemFn: func(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error) {
				return nil, pcapi.Errorf(pcapi.ENOTFOUND, "not cached")
			},
		}
		scraper := &mock.ScrapeService{
			FetchProblemFn: func(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error) {
				return &pcapi.Problem{
					ContestID: contestID, ProblemID: problemID,
					Title: "A - Fresh", TimeLimit: 2, MemoryLimit: 1024, Score: 100,
				}, nil
			},
		}

		server := pchttp.NewServer(&mock.ContestService{}, problems, scraper, discardLogger())
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contests/abc405/problems/abc405_a", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got pcapi.Problem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "A - Fresh", got.Title)
	})

	t.Run("force_refresh bypasses cache", func(t *testing.T) {
		t.Parallel()

		problems := &mock.ProblemService{
			FindProblemFn: func(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error) {
				t.Fatal("cache must not be consulted with force_refresh")
				return nil, nil
			},
		}
		scraper := &mock.ScrapeService{
			FetchProblemFn: func(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error) {
				return &pcapi.Problem{
					ContestID: contestID, ProblemID: problemID,
					Title: "A - Refreshed", TimeLimit: 2, MemoryLimit: 1024, Score: 100,
				}, nil
			},
		}

		server := pchttp.NewServer(&mock.ContestService{}, problems, scraper, discardLogger())
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contests/abc405/problems/abc405_a?force_refresh=true", nil))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("force_refresh accepts boolean spellings", func(t *testing.T) {
		t.Parallel()

		problems := &mock.ProblemService{
			FindProblemFn: func(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error) {
				t.Fatal("cache must not be consulted with force_refresh")
				return nil, nil
			},
		}
		scraper := &mock.ScrapeService{
			FetchProblemFn: func(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error) {
				return &pcapi.Problem{
					ContestID: contestID, ProblemID: problemID,
					Title: "A - Refreshed", TimeLimit: 2, MemoryLimit: 1024, Score: 100,
				}, nil
			},
		}

		server := pchttp.NewServer(&mock.ContestService{}, problems, scraper, discardLogger())
		for _, value := range []string{"1", "True", "TRUE", "t"} {
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contests/abc405/problems/abc405_a?force_refresh="+value, nil))
			require.Equal(t, http.StatusOK, rec.Code, "force_refresh=%s", value)
		}
	})

	t.Run("maps unprocessable page to 422", func(t *testing.T) {
		t.Parallel()

		problems := &mock.ProblemService{
			FindProblemFn: func(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error) {
				return nil, pcapi.Errorf(pcapi.ENOTFOUND, "not cached")
			},
		}
		scraper := &mock.ScrapeService{
			FetchProblemFn: func(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error) {
				return nil, pcapi.Errorf(pcapi.EUNPROCESSABLE, "problem content not found in document")
			},
		}

		server := pchttp.NewServer(&mock.ContestService{}, problems, scraper, discardLogger())
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contests/abc405/problems/abc405_x", nil))

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "problem content not found")
	})

	t.Run("maps missing page to 404", func(t *testing.T) {
		t.Parallel()

		problems := &mock.ProblemService{
			FindProblemFn: func(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error) {
				return nil, pcapi.Errorf(pcapi.ENOTFOUND, "not cached")
			},
		}
		scraper := &mock.ScrapeService{
			FetchProblemFn: func(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error) {
				return nil, pcapi.Errorf(pcapi.ENOTFOUND, "document not found")
			},
		}

		server := pchttp.NewServer(&mock.ContestService{}, problems, scraper, discardLogger())
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contests/abc405/problems/nope", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_Contests(t *testing.T) {
	t.Parallel()

	t.Run("lists contests", func(t *testing.T) {
		t.Parallel()

		contests := &mock.ContestService{
			FindContestsFn: func(ctx context.Context, filter pcapi.ContestFilter) ([]*pcapi.Contest, error) {
				return []*pcapi.Contest{{ID: "abc405", Title: "ABC 405"}}, nil
			},
		}

		server := pchttp.NewServer(contests, &mock.ProblemService{}, &mock.ScrapeService{}, discardLogger())
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contests", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "abc405")
	})

	t.Run("unknown contest yields 404", func(t *testing.T) {
		t.Parallel()

		contests := &mock.ContestService{
			FindContestByIDFn: func(ctx context.Context, id string) (*pcapi.Contest, error) {
				return nil, pcapi.Errorf(pcapi.ENOTFOUND, "contest %s not found", id)
			},
		}

		server := pchttp.NewServer(contests, &mock.ProblemService{}, &mock.ScrapeService{}, discardLogger())
		rec := httptest.NewRecorder()
		server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contests/xyz", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_Sync(t *testing.T) {
	t.Parallel()

	scraper := &mock.ScrapeService{
		SyncContestsFn: func(ctx context.Context) (*pcapi.SyncSummary, error) {
			return &pcapi.SyncSummary{Contests: 3, Problems: 18}, nil
		},
	}

	server := pchttp.NewServer(&mock.ContestService{}, &mock.ProblemService{}, scraper, discardLogger())
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sync", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "success", got["status"])
	assert.Equal(t, float64(3), got["contests"])
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	server := pchttp.NewServer(&mock.ContestService{}, &mock.ProblemService{}, &mock.ScrapeService{}, discardLogger())
	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
