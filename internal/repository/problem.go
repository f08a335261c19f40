package repository

import (
	"context"

	"dsa-tracker/internal/domain"
)

// ProblemRepository defines persistence operations for Problem entities.
// Every lookup and mutation is keyed by the owning user in addition to the
// problem id, so a caller can never touch another user's records.
type ProblemRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, problem *domain.Problem) error
	ListByUser(ctx context.Context, userID string) ([]domain.Problem, error)
	GetByIDAndUser(ctx context.Context, id, userID string) (*domain.Problem, error)
	Update(ctx context.Context, problem *domain.Problem) error
	DeleteByIDAndUser(ctx context.Context, id, userID string) error
}
