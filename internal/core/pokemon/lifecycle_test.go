package pokemon_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokereview/pokereview/internal/core/pokemon"
	"github.com/pokereview/pokereview/internal/core/review"
	"github.com/pokereview/pokereview/internal/platform/apperr"
)

// The methods below extend the fakes from service_test.go so that
// fakeReviewStore also satisfies review.Repository and fakeDirectory also
// answers reviewer lookups. That lets a real review.Service run against the
// same storage the pokemon service cascades over.

func (f *fakeDirectory) ReviewerExists(_ context.Context, id int) (bool, error) {
	return f.ids[id], nil
}

func (f *fakeReviewStore) ListReviews(_ context.Context) ([]*review.Review, error) {
	return f.reviews, nil
}

func (f *fakeReviewStore) GetReview(_ context.Context, id int) (*review.Review, error) {
	for _, r := range f.reviews {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, apperr.NotFound("Review")
}

func (f *fakeReviewStore) ReviewExists(_ context.Context, id int) (bool, error) {
	for _, r := range f.reviews {
		if r.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReviewStore) CreateReview(_ context.Context, r *review.Review) error {
	r.ID = len(f.reviews) + 1
	f.reviews = append(f.reviews, r)
	return nil
}

func (f *fakeReviewStore) UpdateReview(_ context.Context, r *review.Review) error {
	for i, existing := range f.reviews {
		if existing.ID == r.ID {
			f.reviews[i] = r
			return nil
		}
	}
	return apperr.NotFound("Review")
}

func (f *fakeReviewStore) DeleteReview(_ context.Context, id int) error {
	for i, r := range f.reviews {
		if r.ID == id {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Review")
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

/*
TestCatalogLifecycle walks the primary end-to-end path: an owner and a
category already exist, a pokemon is catalogued under them, two reviews land
on it, the aggregate rating reflects both, and deleting the pokemon takes its
reviews with it.
*/
func TestCatalogLifecycle(t *testing.T) {
	ctx := context.Background()

	pokemonRepo := newFakeRepository()
	reviewStore := &fakeReviewStore{}
	owners := &fakeDirectory{ids: map[int]bool{1: true}}       // Ash
	categories := &fakeDirectory{ids: map[int]bool{1: true}}   // Electric
	reviewerDir := &fakeDirectory{ids: map[int]bool{1: true}}  // Misty

	pokemonService := pokemon.NewService(pokemonRepo, owners, categories, reviewStore, discardLogger)
	reviewService := review.NewService(reviewStore, pokemonRepo, reviewerDir, discardLogger)

	// Catalogue Pikachu under Ash and Electric.
	pikachu := &pokemon.Pokemon{Name: "Pikachu", BirthDate: birthDate}
	require.NoError(t, pokemonService.CreatePokemon(ctx, 1, 1, pikachu))
	require.Len(t, pokemonRepo.junctions, 1)

	// Two reviews land on it.
	require.NoError(t, reviewService.CreateReview(ctx, pikachu.ID, 1,
		&review.Review{Title: "Electrifying", Text: "Best partner there is.", Rating: 5}))
	require.NoError(t, reviewService.CreateReview(ctx, pikachu.ID, 1,
		&review.Review{Title: "A bit stubborn", Text: "Refuses the pokeball.", Rating: 3}))

	rating, err := pokemonService.GetRating(ctx, pikachu.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, rating, 1e-9)

	// Deleting the pokemon removes its reviews along with it.
	require.NoError(t, pokemonService.DeletePokemon(ctx, pikachu.ID))
	assert.Empty(t, pokemonRepo.pokemons)
	assert.Empty(t, pokemonRepo.junctions)
	assert.Empty(t, reviewStore.reviews)

	_, err = pokemonService.GetPokemon(ctx, pikachu.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
