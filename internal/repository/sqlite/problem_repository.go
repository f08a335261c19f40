package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dsa-tracker/internal/domain"
	"dsa-tracker/internal/repository"
)

const (
	createProblemsTable = `
CREATE TABLE IF NOT EXISTS problems (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	title TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'unsolved',
	platform TEXT NOT NULL DEFAULT '',
	times_solved INTEGER NOT NULL DEFAULT 0,
	date TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`
	createProblemsUserIndex = `
CREATE INDEX IF NOT EXISTS idx_problems_user_id ON problems (user_id);
`
)

type ProblemRepository struct {
	db *sql.DB
}

func NewProblemRepository(db *sql.DB) repository.ProblemRepository {
	return &ProblemRepository{db: db}
}

func (r *ProblemRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createProblemsTable); err != nil {
		return fmt.Errorf("create problems table: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, createProblemsUserIndex); err != nil {
		return fmt.Errorf("create problems user index: %w", err)
	}
	return nil
}

func (r *ProblemRepository) Create(ctx context.Context, problem *domain.Problem) error {
	now := time.Now().UTC()
	problem.CreatedAt = now
	problem.UpdatedAt = now

	_, err := r.db.ExecContext(ctx, `
INSERT INTO problems (id, user_id, title, status, platform, times_solved, date, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		problem.ID,
		problem.UserID,
		problem.Title,
		string(problem.Status),
		problem.Platform,
		problem.TimesSolved,
		problem.Date,
		problem.CreatedAt,
		problem.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert problem: %w", err)
	}
	return nil
}

func (r *ProblemRepository) ListByUser(ctx context.Context, userID string) ([]domain.Problem, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, title, status, platform, times_solved, date, created_at, updated_at
FROM problems
WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	defer rows.Close()

	var problems []domain.Problem
	for rows.Next() {
		var p domain.Problem
		var status string
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Title,
			&status,
			&p.Platform,
			&p.TimesSolved,
			&p.Date,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan problem: %w", err)
		}
		p.Status = domain.ProblemStatus(status)
		problems = append(problems, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate problems: %w", err)
	}
	return problems, nil
}

func (r *ProblemRepository) GetByIDAndUser(ctx context.Context, id, userID string) (*domain.Problem, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, user_id, title, status, platform, times_solved, date, created_at, updated_at
FROM problems
WHERE id = ? AND user_id = ?`,
		id,
		userID,
	)

	var p domain.Problem
	var status string
	if err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&status,
		&p.Platform,
		&p.TimesSolved,
		&p.Date,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("problem not found")
		}
		return nil, fmt.Errorf("scan problem: %w", err)
	}
	p.Status = domain.ProblemStatus(status)
	return &p, nil
}

func (r *ProblemRepository) Update(ctx context.Context, problem *domain.Problem) error {
	problem.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
UPDATE problems
SET title=?, status=?, platform=?, times_solved=?, date=?, updated_at=?
WHERE id=? AND user_id=?`,
		problem.Title,
		string(problem.Status),
		problem.Platform,
		problem.TimesSolved,
		problem.Date,
		problem.UpdatedAt,
		problem.ID,
		problem.UserID,
	)
	if err != nil {
		return fmt.Errorf("update problem: %w", err)
	}
	return nil
}

func (r *ProblemRepository) DeleteByIDAndUser(ctx context.Context, id, userID string) error {
	_, err := r.db.ExecContext(ctx, `
DELETE FROM problems
WHERE id = ? AND user_id = ?`,
		id,
		userID,
	)
	if err != nil {
		return fmt.Errorf("delete problem: %w", err)
	}
	return nil
}
