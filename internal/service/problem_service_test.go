package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsa-tracker/internal/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateAppliesDefaults(t *testing.T) {
	_, problems := newTestRepos(t)
	svc := NewProblemService(problems)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-a", ProblemInput{Title: strPtr("Two Sum")})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "user-a", created.UserID)
	assert.Equal(t, "Two Sum", created.Title)
	assert.Equal(t, domain.ProblemStatusUnsolved, created.Status)
	assert.Equal(t, "LeetCode", created.Platform)
	assert.Equal(t, 1, created.TimesSolved)
	assert.Equal(t, time.Now().Format(domain.DateLayout), created.Date)
}

func TestCreatePreservesExplicitFields(t *testing.T) {
	_, problems := newTestRepos(t)
	svc := NewProblemService(problems)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-a", ProblemInput{
		Title:       strPtr("Edit Distance"),
		Status:      strPtr("review"),
		Platform:    strPtr("Codeforces"),
		TimesSolved: intPtr(3),
		Date:        strPtr("2023-01-15"),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.ProblemStatusReview, created.Status)
	assert.Equal(t, "Codeforces", created.Platform)
	assert.Equal(t, 3, created.TimesSolved)
	assert.Equal(t, "2023-01-15", created.Date)
}

func TestCreateEmptyDateMeansAbsent(t *testing.T) {
	_, problems := newTestRepos(t)
	svc := NewProblemService(problems)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-a", ProblemInput{Date: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format(domain.DateLayout), created.Date)
}

func TestListScopedToOwner(t *testing.T) {
	_, problems := newTestRepos(t)
	svc := NewProblemService(problems)
	ctx := context.Background()

	mine, err := svc.Create(ctx, "user-a", ProblemInput{Title: strPtr("Two Sum")})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-b", ProblemInput{Title: strPtr("Word Ladder")})
	require.NoError(t, err)

	listed, err := svc.List(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, mine.ID, listed[0].ID)
	assert.Equal(t, "Two Sum", listed[0].Title)
}

func TestListRoundTrip(t *testing.T) {
	_, problems := newTestRepos(t)
	svc := NewProblemService(problems)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-a", ProblemInput{
		Title:       strPtr("LRU Cache"),
		Status:      strPtr("solved"),
		Platform:    strPtr("LeetCode"),
		TimesSolved: intPtr(2),
		Date:        strPtr("2024-06-01"),
	})
	require.NoError(t, err)

	listed, err := svc.List(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, listed, 1)

	got := listed[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Status, got.Status)
	assert.Equal(t, created.Platform, got.Platform)
	assert.Equal(t, created.TimesSolved, got.TimesSolved)
	assert.Equal(t, created.Date, got.Date)
}

func TestUpdateOverwritesSuppliedAndOmittedFields(t *testing.T) {
	_, problems := newTestRepos(t)
	svc := NewProblemService(problems)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-a", ProblemInput{
		Title:    strPtr("Two Sum"),
		Platform: strPtr("Codeforces"),
		Date:     strPtr("2024-06-01"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "user-a", created.ID, ProblemInput{
		Title:  strPtr("Two Sum II"),
		Status: strPtr("solved"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Two Sum II", updated.Title)
	assert.Equal(t, domain.ProblemStatusSolved, updated.Status)
	// omitted fields are overwritten with their zero values
	assert.Equal(t, "", updated.Platform)
	assert.Equal(t, 0, updated.TimesSolved)
	// omitted date is the one field left alone
	assert.Equal(t, "2024-06-01", updated.Date)
}

func TestUpdateEmptyDateLeavesDateUnchanged(t *testing.T) {
	_, problems := newTestRepos(t)
	svc := NewProblemService(problems)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-a", ProblemInput{Date: strPtr("2024-06-01")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "user-a", created.ID, ProblemInput{
		Title: strPtr("renamed"),
		Date:  strPtr(""),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "2024-06-01", updated.Date)

	changed, err := svc.Update(ctx, "user-a", created.ID, ProblemInput{Date: strPtr("2024-07-04")})
	require.NoError(t, err)
	require.NotNil(t, changed)
	assert.Equal(t, "2024-07-04", changed.Date)
}

func TestUpdateForeignOwnerIsSilentNoOp(t *testing.T) {
	_, problems := newTestRepos(t)
	svc := NewProblemService(problems)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-a", ProblemInput{Title: strPtr("Two Sum")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, "user-b", created.ID, ProblemInput{Title: strPtr("stolen")})
	require.NoError(t, err)
	assert.Nil(t, updated)

	// record untouched
	listed, err := svc.List(ctx, "user-a")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Two Sum", listed[0].Title)
}

func TestUpdateUnknownIDIsSilentNoOp(t *testing.T) {
	_, problems := newTestRepos(t)
	svc := NewProblemService(problems)

	updated, err := svc.Update(context.Background(), "user-a", "no-such-id", ProblemInput{Title: strPtr("x")})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteIsIdempotentAndOwnerScoped(t *testing.T) {
	_, problems := newTestRepos(t)
	svc := NewProblemService(problems)
	ctx := context.Background()

	created, err := svc.Create(ctx, "user-a", ProblemInput{Title: strPtr("Two Sum")})
	require.NoError(t, err)

	// deleting under the wrong owner succeeds but removes nothing
	require.NoError(t, svc.Delete(ctx, "user-b", created.ID))
	listed, err := svc.List(ctx, "user-a")
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	require.NoError(t, svc.Delete(ctx, "user-a", created.ID))
	listed, err = svc.List(ctx, "user-a")
	require.NoError(t, err)
	assert.Empty(t, listed)

	// repeat delete of a now-missing id still succeeds
	require.NoError(t, svc.Delete(ctx, "user-a", created.ID))
}
