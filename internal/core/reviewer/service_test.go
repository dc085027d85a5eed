package reviewer_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokereview/pokereview/internal/core/review"
	"github.com/pokereview/pokereview/internal/core/reviewer"
	"github.com/pokereview/pokereview/internal/platform/apperr"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeRepository struct {
	reviewers []*reviewer.Reviewer
	nextID    int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1}
}

func (f *fakeRepository) ListReviewers(_ context.Context) ([]*reviewer.Reviewer, error) {
	return f.reviewers, nil
}

func (f *fakeRepository) GetReviewer(_ context.Context, id int) (*reviewer.Reviewer, error) {
	for _, r := range f.reviewers {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperr.NotFound("Reviewer")
}

func (f *fakeRepository) ReviewerExists(_ context.Context, id int) (bool, error) {
	for _, r := range f.reviewers {
		if r.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) CreateReviewer(_ context.Context, r *reviewer.Reviewer) error {
	r.ID = f.nextID
	f.nextID++
	f.reviewers = append(f.reviewers, r)
	return nil
}

func (f *fakeRepository) UpdateReviewer(_ context.Context, r *reviewer.Reviewer) error {
	for i, existing := range f.reviewers {
		if existing.ID == r.ID {
			f.reviewers[i] = r
			return nil
		}
	}
	return apperr.NotFound("Reviewer")
}

func (f *fakeRepository) ListReviewersOfPokemon(_ context.Context, pokemonID int) ([]*reviewer.Reviewer, error) {
	return nil, nil
}

func (f *fakeRepository) DeleteReviewer(_ context.Context, id int) error {
	for i, r := range f.reviewers {
		if r.ID == id {
			f.reviewers = append(f.reviewers[:i], f.reviewers[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Reviewer")
}

type fakeReviewStore struct {
	reviews    []*review.Review
	failDelete bool
}

func (f *fakeReviewStore) ListReviewsByReviewer(_ context.Context, reviewerID int) ([]*review.Review, error) {
	var result []*review.Review
	for _, r := range f.reviews {
		if r.ReviewerID == reviewerID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeReviewStore) DeleteReviews(_ context.Context, reviews []*review.Review) error {
	if f.failDelete {
		return errors.New("batch delete failed")
	}
	doomed := map[int]bool{}
	for _, r := range reviews {
		doomed[r.ID] = true
	}
	kept := f.reviews[:0]
	for _, r := range f.reviews {
		if !doomed[r.ID] {
			kept = append(kept, r)
		}
	}
	f.reviews = kept
	return nil
}

/*
TestCreateReviewer_Duplicate verifies that the duplicate check is defined on
the first/last name pair, and that the two halves do not blur into each other:
"Ann Amaria" and "Anna Maria" are distinct people.
*/
func TestCreateReviewer_Duplicate(t *testing.T) {
	repo := newFakeRepository()
	service := reviewer.NewService(repo, &fakeReviewStore{}, discardLogger)

	require.NoError(t, service.CreateReviewer(context.Background(), &reviewer.Reviewer{FirstName: "Anna", LastName: "Maria"}))

	err := service.CreateReviewer(context.Background(), &reviewer.Reviewer{FirstName: " anna ", LastName: "MARIA"})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	assert.Len(t, repo.reviewers, 1)

	// Same concatenation, different boundary: allowed.
	require.NoError(t, service.CreateReviewer(context.Background(), &reviewer.Reviewer{FirstName: "Ann", LastName: "Amaria"}))
	assert.Len(t, repo.reviewers, 2)
}

func TestUpdateReviewer_IdentifierMismatch(t *testing.T) {
	repo := newFakeRepository()
	service := reviewer.NewService(repo, &fakeReviewStore{}, discardLogger)
	require.NoError(t, service.CreateReviewer(context.Background(), &reviewer.Reviewer{FirstName: "Gary", LastName: "Oak"}))

	err := service.UpdateReviewer(context.Background(), 1, &reviewer.Reviewer{ID: 2, FirstName: "Blue", LastName: "Oak"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	assert.Equal(t, "Gary", repo.reviewers[0].FirstName)
}

/*
TestDeleteReviewer_Cascade checks the two-phase deletion from the reviewer
side: the reviewer's reviews go first, reviews by other reviewers stay.
*/
func TestDeleteReviewer_Cascade(t *testing.T) {
	repo := newFakeRepository()
	reviews := &fakeReviewStore{}
	service := reviewer.NewService(repo, reviews, discardLogger)

	require.NoError(t, service.CreateReviewer(context.Background(), &reviewer.Reviewer{FirstName: "Gary", LastName: "Oak"}))
	reviews.reviews = []*review.Review{
		{ID: 1, ReviewerID: 1, Rating: 2},
		{ID: 2, ReviewerID: 1, Rating: 4},
		{ID: 3, ReviewerID: 9, Rating: 5},
	}

	require.NoError(t, service.DeleteReviewer(context.Background(), 1))

	assert.Empty(t, repo.reviewers)
	require.Len(t, reviews.reviews, 1)
	assert.Equal(t, 3, reviews.reviews[0].ID)
}

func TestDeleteReviewer_ReviewBatchFailure(t *testing.T) {
	repo := newFakeRepository()
	reviews := &fakeReviewStore{failDelete: true}
	service := reviewer.NewService(repo, reviews, discardLogger)

	require.NoError(t, service.CreateReviewer(context.Background(), &reviewer.Reviewer{FirstName: "Gary", LastName: "Oak"}))
	reviews.reviews = []*review.Review{{ID: 1, ReviewerID: 1, Rating: 2}}

	require.NoError(t, service.DeleteReviewer(context.Background(), 1))
	assert.Empty(t, repo.reviewers)
}

func TestListReviewsByReviewer_NotFound(t *testing.T) {
	service := reviewer.NewService(newFakeRepository(), &fakeReviewStore{}, discardLogger)

	_, err := service.ListReviewsByReviewer(context.Background(), 6)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
