package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	pcapi "github.com/williamsiker/pc-api"
)

// Compile-time interface verification.
var _ pcapi.ContestService = (*ContestService)(nil)

// ContestService implements pcapi.ContestService using SQLite.
type ContestService struct {
	db *DB
}

// NewContestService creates a new ContestService.
func NewContestService(db *DB) *ContestService {
	return &ContestService{db: db}
}

// UpsertContest creates a contest or replaces the stored record,
// including its problem list.
func (s *ContestService) UpsertContest(ctx context.Context, contest *pcapi.Contest) error {
	if err := contest.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contests (id, title, start_time, duration_minutes, rate_change, url)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			start_time = excluded.start_time,
			duration_minutes = excluded.duration_minutes,
			rate_change = excluded.rate_change,
			url = excluded.url
	`, contest.ID, contest.Title, contest.StartTime.UTC().Format(time.RFC3339),
		contest.DurationMinutes, contest.RateChange, contest.URL)
	if err != nil {
		return err
	}

	// Replace the problem list wholesale; the index is authoritative.
	if _, err := s.db.ExecContext(ctx, `DELETE FROM contest_problems WHERE contest_id = ?`, contest.ID); err != nil {
		return err
	}
	for _, p := range contest.Problems {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO contest_problems (contest_id, problem_id, title, url, position)
			VALUES (?, ?, ?, ?, ?)
		`, contest.ID, p.ProblemID, p.Title, p.URL, p.Position)
		if err != nil {
			return err
		}
	}
	return nil
}

// FindContestByID retrieves a contest with its problem list.
func (s *ContestService) FindContestByID(ctx context.Context, id string) (*pcapi.Contest, error) {
	var contest pcapi.Contest
	var startTime string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, start_time, duration_minutes, rate_change, url
		FROM contests
		WHERE id = ?
	`, id).Scan(&contest.ID, &contest.Title, &startTime, &contest.DurationMinutes,
		&contest.RateChange, &contest.URL)

	if err == sql.ErrNoRows {
		return nil, pcapi.Errorf(pcapi.ENOTFOUND, "contest %s not found", id)
	}
	if err != nil {
		return nil, err
	}

	contest.StartTime, err = parseRFC3339(startTime, "start_time")
	if err != nil {
		return nil, err
	}

	contest.Problems, err = s.findContestProblems(ctx, id)
	if err != nil {
		return nil, err
	}

	return &contest, nil
}

// FindContests retrieves contests matching the filter, newest start
// time first. Problem lists are not attached.
func (s *ContestService) FindContests(ctx context.Context, filter pcapi.ContestFilter) ([]*pcapi.Contest, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, start_time, duration_minutes, rate_change, url FROM contests WHERE 1=1")
	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	query.WriteString(" ORDER BY start_time DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contests []*pcapi.Contest
	for rows.Next() {
		var contest pcapi.Contest
		var startTime string
		if err := rows.Scan(&contest.ID, &contest.Title, &startTime, &contest.DurationMinutes,
			&contest.RateChange, &contest.URL); err != nil {
			return nil, err
		}
		contest.StartTime, err = parseRFC3339(startTime, "start_time")
		if err != nil {
			return nil, err
		}
		contests = append(contests, &contest)
	}
	return contests, rows.Err()
}

func (s *ContestService) findContestProblems(ctx context.Context, contestID string) ([]*pcapi.ContestProblem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT contest_id, problem_id, title, url, position
		FROM contest_problems
		WHERE contest_id = ?
		ORDER BY position
	`, contestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var problems []*pcapi.ContestProblem
	for rows.Next() {
		var p pcapi.ContestProblem
		if err := rows.Scan(&p.ContestID, &p.ProblemID, &p.Title, &p.URL, &p.Position); err != nil {
			return nil, err
		}
		problems = append(problems, &p)
	}
	return problems, rows.Err()
}
