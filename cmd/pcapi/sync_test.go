package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pcapi "github.com/williamsiker/pc-api"
	main "github.com/williamsiker/pc-api/cmd/pcapi"
	"github.com/williamsiker/pc-api/mock"
	"github.com/williamsiker/pc-api/scrape"
)

func TestSyncCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports sync summary", func(t *testing.T) {
		t.Parallel()

		source := &mock.ContestSource{
			ContestsFn: func(ctx context.Context) ([]*pcapi.Contest, error) {
				return []*pcapi.Contest{{ID: "abc405", Title: "ABC 405"}}, nil
			},
			ContestProblemsFn: func(ctx context.Context) ([]*pcapi.ContestProblem, error) {
				return []*pcapi.ContestProblem{
					{ContestID: "abc405", ProblemID: "abc405_a"},
					{ContestID: "abc405", ProblemID: "abc405_b"},
				}, nil
			},
		}
		contests := &mock.ContestService{
			UpsertContestFn: func(ctx context.Context, contest *pcapi.Contest) error { return nil },
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scraper: &scrape.Scraper{Source: source, Contests: contests},
		}

		require.NoError(t, (&main.SyncCmd{}).Run(deps))
		assert.Contains(t, stdout.String(), "Synced 1 contests (2 problems)")
	})

	t.Run("reports source failure", func(t *testing.T) {
		t.Parallel()

		source := &mock.ContestSource{
			ContestsFn: func(ctx context.Context) ([]*pcapi.Contest, error) {
				return nil, pcapi.Errorf(pcapi.EUNAVAILABLE, "index unreachable")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Scraper: &scrape.Scraper{Source: source, Contests: &mock.ContestService{}},
		}

		err := (&main.SyncCmd{}).Run(deps)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "index unreachable")
	})
}
