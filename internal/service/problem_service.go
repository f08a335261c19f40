package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"dsa-tracker/internal/domain"
	"dsa-tracker/internal/repository"
)

// ProblemInput carries the caller-supplied fields of a create or update.
// Pointers distinguish "absent" from a zero value, so defaulting rules only
// fire on genuinely missing fields.
type ProblemInput struct {
	Title       *string
	Status      *string
	Platform    *string
	TimesSolved *int
	Date        *string
}

// ProblemService coordinates ownership-scoped problem operations. Every
// method takes the authenticated user id and never touches records owned by
// anyone else.
type ProblemService interface {
	List(ctx context.Context, userID string) ([]domain.Problem, error)
	Create(ctx context.Context, userID string, in ProblemInput) (*domain.Problem, error)
	// Update applies in to the problem matching both id and userID. When no
	// such problem exists (wrong id or wrong owner) it returns (nil, nil)
	// and changes nothing.
	Update(ctx context.Context, userID, id string, in ProblemInput) (*domain.Problem, error)
	// Delete removes the problem matching id and userID. Deleting a missing
	// or foreign id is a successful no-op.
	Delete(ctx context.Context, userID, id string) error
}

type problemService struct {
	problems repository.ProblemRepository
}

func NewProblemService(problems repository.ProblemRepository) ProblemService {
	return &problemService{problems: problems}
}

func (s *problemService) List(ctx context.Context, userID string) ([]domain.Problem, error) {
	return s.problems.ListByUser(ctx, userID)
}

func (s *problemService) Create(ctx context.Context, userID string, in ProblemInput) (*domain.Problem, error) {
	problem := &domain.Problem{
		ID:          uuid.NewString(),
		UserID:      userID,
		Status:      domain.ProblemStatusUnsolved,
		Platform:    "LeetCode",
		TimesSolved: 1,
		Date:        time.Now().Format(domain.DateLayout),
	}

	if in.Title != nil {
		problem.Title = *in.Title
	}
	if in.Status != nil && *in.Status != "" {
		problem.Status = domain.ProblemStatus(*in.Status)
	}
	if in.Platform != nil && *in.Platform != "" {
		problem.Platform = *in.Platform
	}
	if in.TimesSolved != nil {
		problem.TimesSolved = *in.TimesSolved
	}
	// An empty date means "not supplied": the creation-day default stands.
	if in.Date != nil && *in.Date != "" {
		problem.Date = *in.Date
	}

	if err := s.problems.Create(ctx, problem); err != nil {
		return nil, err
	}
	return problem, nil
}

func (s *problemService) Update(ctx context.Context, userID, id string, in ProblemInput) (*domain.Problem, error) {
	problem, err := s.problems.GetByIDAndUser(ctx, id, userID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "not found") {
			return nil, nil
		}
		return nil, err
	}

	// Fields other than date are replaced wholesale with whatever the
	// caller sent, zero values included. Only an empty date is treated as
	// "leave the stored date alone".
	problem.Title = valueOr(in.Title, "")
	problem.Status = domain.ProblemStatus(valueOr(in.Status, ""))
	problem.Platform = valueOr(in.Platform, "")
	problem.TimesSolved = valueOrInt(in.TimesSolved, 0)
	if in.Date != nil && *in.Date != "" {
		problem.Date = *in.Date
	}

	if err := s.problems.Update(ctx, problem); err != nil {
		return nil, err
	}
	return problem, nil
}

func (s *problemService) Delete(ctx context.Context, userID, id string) error {
	return s.problems.DeleteByIDAndUser(ctx, id, userID)
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}

func valueOrInt(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
