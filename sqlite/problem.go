package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	pcapi "github.com/williamsiker/pc-api"
)

// Compile-time interface verification.
var _ pcapi.ProblemService = (*ProblemService)(nil)

// ProblemService implements pcapi.ProblemService using SQLite.
type ProblemService struct {
	db *DB
}

// NewProblemService creates a new ProblemService.
func NewProblemService(db *DB) *ProblemService {
	return &ProblemService{db: db}
}

// hashProblem computes xxHash over the problem's content fields and
// returns a hex string. Used to detect whether a re-fetch changed
// anything.
func hashProblem(p *pcapi.Problem) string {
	var sb strings.Builder
	sb.WriteString(p.Title)
	sb.WriteString(p.Statement)
	sb.WriteString(p.Constraints)
	sb.WriteString(p.InputFormat)
	sb.WriteString(p.OutputFormat)
	sb.WriteString(p.Notes)
	for _, s := range p.Samples {
		sb.WriteString(s.Input)
		sb.WriteString(s.Output)
		sb.WriteString(s.Explanation)
	}

	h := xxhash.Sum64String(sb.String())
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b)
}

// UpsertProblem creates a problem or replaces the stored record with
// the same (contest ID, problem ID) pair.
func (s *ProblemService) UpsertProblem(ctx context.Context, problem *pcapi.Problem) error {
	if err := problem.Validate(); err != nil {
		return err
	}

	// A re-fetch must keep the stored row's id: the conflict clause
	// below never updates the id column, so adopt it up front.
	var existingID string
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM problems WHERE contest_id = ? AND problem_id = ?
	`, problem.ContestID, problem.ProblemID).Scan(&existingID)
	switch {
	case err == nil:
		problem.ID = existingID
	case err != sql.ErrNoRows:
		return err
	case problem.ID == "":
		problem.ID = uuid.New().String()
	}
	if problem.FetchedAt.IsZero() {
		problem.FetchedAt = time.Now().UTC()
	}
	problem.ContentHash = hashProblem(problem)

	samples, err := json.Marshal(problem.Samples)
	if err != nil {
		return fmt.Errorf("marshal samples: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO problems (id, contest_id, problem_id, title, statement, constraints,
			input_format, output_format, notes, samples, time_limit, memory_limit, score,
			content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (contest_id, problem_id) DO UPDATE SET
			title = excluded.title,
			statement = excluded.statement,
			constraints = excluded.constraints,
			input_format = excluded.input_format,
			output_format = excluded.output_format,
			notes = excluded.notes,
			samples = excluded.samples,
			time_limit = excluded.time_limit,
			memory_limit = excluded.memory_limit,
			score = excluded.score,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, problem.ID, problem.ContestID, problem.ProblemID, problem.Title, problem.Statement,
		problem.Constraints, problem.InputFormat, problem.OutputFormat, problem.Notes,
		string(samples), problem.TimeLimit, problem.MemoryLimit, problem.Score,
		problem.ContentHash, problem.FetchedAt.Format(time.RFC3339))

	return err
}

const problemColumns = `id, contest_id, problem_id, title, statement, constraints,
	input_format, output_format, notes, samples, time_limit, memory_limit, score,
	content_hash, fetched_at`

// FindProblem retrieves a problem by its (contest ID, problem ID) pair.
func (s *ProblemService) FindProblem(ctx context.Context, contestID, problemID string) (*pcapi.Problem, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+problemColumns+`
		FROM problems
		WHERE contest_id = ? AND problem_id = ?
	`, contestID, problemID)

	problem, err := scanProblem(row.Scan)
	if err == sql.ErrNoRows {
		return nil, pcapi.Errorf(pcapi.ENOTFOUND, "problem %s/%s not found", contestID, problemID)
	}
	return problem, err
}

// FindProblems retrieves problems matching the filter, ordered by
// problem ID.
func (s *ProblemService) FindProblems(ctx context.Context, filter pcapi.ProblemFilter) ([]*pcapi.Problem, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + problemColumns + " FROM problems WHERE 1=1")
	if filter.ContestID != nil {
		query.WriteString(" AND contest_id = ?")
		args = append(args, *filter.ContestID)
	}
	query.WriteString(" ORDER BY contest_id, problem_id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var problems []*pcapi.Problem
	for rows.Next() {
		problem, err := scanProblem(rows.Scan)
		if err != nil {
			return nil, err
		}
		problems = append(problems, problem)
	}
	return problems, rows.Err()
}

// DeleteProblem permanently removes a problem.
func (s *ProblemService) DeleteProblem(ctx context.Context, contestID, problemID string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM problems WHERE contest_id = ? AND problem_id = ?
	`, contestID, problemID)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return pcapi.Errorf(pcapi.ENOTFOUND, "problem %s/%s not found", contestID, problemID)
	}
	return nil
}

// scanProblem scans one problems row using the given scan function.
func scanProblem(scan func(dest ...any) error) (*pcapi.Problem, error) {
	var p pcapi.Problem
	var samples, fetchedAt string

	err := scan(&p.ID, &p.ContestID, &p.ProblemID, &p.Title, &p.Statement, &p.Constraints,
		&p.InputFormat, &p.OutputFormat, &p.Notes, &samples, &p.TimeLimit, &p.MemoryLimit,
		&p.Score, &p.ContentHash, &fetchedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(samples), &p.Samples); err != nil {
		return nil, fmt.Errorf("unmarshal samples: %w", err)
	}
	p.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &p, nil
}
