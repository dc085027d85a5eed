package pokemon_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokereview/pokereview/internal/core/pokemon"
	"github.com/pokereview/pokereview/internal/core/review"
	"github.com/pokereview/pokereview/internal/platform/apperr"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

var birthDate = time.Date(1996, time.February, 27, 0, 0, 0, 0, time.UTC)

type junction struct {
	pokemonID  int
	ownerID    int
	categoryID int
}

// fakeRepository is an in-memory pokemon.Repository. It records the junction
// rows written by CreatePokemon so tests can assert on association state.
type fakeRepository struct {
	pokemons  []*pokemon.Pokemon
	junctions []junction
	nextID    int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1}
}

func (f *fakeRepository) ListPokemon(_ context.Context) ([]*pokemon.Pokemon, error) {
	return f.pokemons, nil
}

func (f *fakeRepository) GetPokemon(_ context.Context, id int) (*pokemon.Pokemon, error) {
	for _, p := range f.pokemons {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperr.NotFound("Pokemon")
}

func (f *fakeRepository) PokemonExists(_ context.Context, id int) (bool, error) {
	for _, p := range f.pokemons {
		if p.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) CreatePokemon(_ context.Context, ownerID, categoryID int, p *pokemon.Pokemon) error {
	p.ID = f.nextID
	f.nextID++
	f.pokemons = append(f.pokemons, p)
	f.junctions = append(f.junctions, junction{pokemonID: p.ID, ownerID: ownerID, categoryID: categoryID})
	return nil
}

func (f *fakeRepository) UpdatePokemon(_ context.Context, p *pokemon.Pokemon) error {
	for i, existing := range f.pokemons {
		if existing.ID == p.ID {
			f.pokemons[i] = p
			return nil
		}
	}
	return apperr.NotFound("Pokemon")
}

func (f *fakeRepository) DeletePokemon(_ context.Context, id int) error {
	for i, p := range f.pokemons {
		if p.ID == id {
			f.pokemons = append(f.pokemons[:i], f.pokemons[i+1:]...)
			kept := f.junctions[:0]
			for _, j := range f.junctions {
				if j.pokemonID != id {
					kept = append(kept, j)
				}
			}
			f.junctions = kept
			return nil
		}
	}
	return apperr.NotFound("Pokemon")
}

// fakeDirectory answers existence checks from a fixed id set.
type fakeDirectory struct {
	ids map[int]bool
}

func (f *fakeDirectory) OwnerExists(_ context.Context, id int) (bool, error)    { return f.ids[id], nil }
func (f *fakeDirectory) CategoryExists(_ context.Context, id int) (bool, error) { return f.ids[id], nil }

// fakeReviewStore holds reviews in memory; failDelete simulates a failing
// dependent batch during cascade deletion.
type fakeReviewStore struct {
	reviews    []*review.Review
	failDelete bool
}

func (f *fakeReviewStore) ListReviewsOfPokemon(_ context.Context, pokemonID int) ([]*review.Review, error) {
	var result []*review.Review
	for _, r := range f.reviews {
		if r.PokemonID == pokemonID {
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

func newService(repo *fakeRepository, owners, categories *fakeDirectory, reviews *fakeReviewStore) *pokemon.Service {
	return pokemon.NewService(repo, owners, categories, reviews, discardLogger)
}

func TestGetRating(t *testing.T) {
	repo := newFakeRepository()
	reviews := &fakeReviewStore{}
	service := newService(repo, &fakeDirectory{ids: map[int]bool{1: true}}, &fakeDirectory{ids: map[int]bool{1: true}}, reviews)

	require.NoError(t, service.CreatePokemon(context.Background(), 1, 1, &pokemon.Pokemon{Name: "Pikachu", BirthDate: birthDate}))

	t.Run("no_reviews_is_zero", func(t *testing.T) {
		rating, err := service.GetRating(context.Background(), 1)
		require.NoError(t, err)
		assert.Zero(t, rating)
	})

	t.Run("mean_of_ratings", func(t *testing.T) {
		reviews.reviews = []*review.Review{
			{ID: 1, PokemonID: 1, Rating: 3},
			{ID: 2, PokemonID: 1, Rating: 4},
			{ID: 3, PokemonID: 1, Rating: 5},
			{ID: 4, PokemonID: 99, Rating: 1}, // other pokemon, ignored
		}
		rating, err := service.GetRating(context.Background(), 1)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, rating, 1e-9)
	})
}

func TestGetRating_NotFound(t *testing.T) {
	service := newService(newFakeRepository(), &fakeDirectory{}, &fakeDirectory{}, &fakeReviewStore{})

	_, err := service.GetRating(context.Background(), 9)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestCreatePokemon_InvalidReferences verifies that a bad ownerId or categoryId
is rejected as an invalid reference, not a missing resource, and that neither
a pokemon row nor any junction row is written.
*/
func TestCreatePokemon_InvalidReferences(t *testing.T) {
	tests := []struct {
		name       string
		ownerID    int
		categoryID int
	}{
		{"unknown_owner", 99, 1},
		{"unknown_category", 1, 99},
		{"both_unknown", 99, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			service := newService(repo,
				&fakeDirectory{ids: map[int]bool{1: true}},
				&fakeDirectory{ids: map[int]bool{1: true}},
				&fakeReviewStore{})

			err := service.CreatePokemon(context.Background(), tt.ownerID, tt.categoryID, &pokemon.Pokemon{Name: "Pikachu", BirthDate: birthDate})
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "INVALID_REFERENCE", ae.Code)
			assert.Empty(t, repo.pokemons)
			assert.Empty(t, repo.junctions)
		})
	}
}

func TestCreatePokemon(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo,
		&fakeDirectory{ids: map[int]bool{5: true}},
		&fakeDirectory{ids: map[int]bool{7: true}},
		&fakeReviewStore{})

	require.NoError(t, service.CreatePokemon(context.Background(), 5, 7, &pokemon.Pokemon{Name: "Pikachu", BirthDate: birthDate}))

	require.Len(t, repo.junctions, 1)
	assert.Equal(t, junction{pokemonID: 1, ownerID: 5, categoryID: 7}, repo.junctions[0])
}

func TestCreatePokemon_Duplicate(t *testing.T) {
	repo := newFakeRepository()
	owners := &fakeDirectory{ids: map[int]bool{1: true}}
	categories := &fakeDirectory{ids: map[int]bool{1: true}}
	service := newService(repo, owners, categories, &fakeReviewStore{})

	require.NoError(t, service.CreatePokemon(context.Background(), 1, 1, &pokemon.Pokemon{Name: "Pikachu", BirthDate: birthDate}))

	err := service.CreatePokemon(context.Background(), 1, 1, &pokemon.Pokemon{Name: " pikachu ", BirthDate: birthDate})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	assert.Len(t, repo.pokemons, 1)
}

/*
TestDeletePokemon_Cascade verifies two-phase deletion: all dependent reviews
are removed along with the pokemon, reviews of other pokemon are untouched,
and the junction rows are gone.
*/
func TestDeletePokemon_Cascade(t *testing.T) {
	repo := newFakeRepository()
	reviews := &fakeReviewStore{}
	service := newService(repo, &fakeDirectory{ids: map[int]bool{1: true}}, &fakeDirectory{ids: map[int]bool{1: true}}, reviews)

	require.NoError(t, service.CreatePokemon(context.Background(), 1, 1, &pokemon.Pokemon{Name: "Pikachu", BirthDate: birthDate}))
	reviews.reviews = []*review.Review{
		{ID: 1, PokemonID: 1, Rating: 5},
		{ID: 2, PokemonID: 1, Rating: 3},
		{ID: 3, PokemonID: 2, Rating: 4},
	}

	require.NoError(t, service.DeletePokemon(context.Background(), 1))

	assert.Empty(t, repo.pokemons)
	assert.Empty(t, repo.junctions)
	require.Len(t, reviews.reviews, 1)
	assert.Equal(t, 3, reviews.reviews[0].ID)
}

// A failing review batch must not abort the root deletion; the outcome is the
// root deletion's outcome.
func TestDeletePokemon_ReviewBatchFailure(t *testing.T) {
	repo := newFakeRepository()
	reviews := &fakeReviewStore{failDelete: true}
	service := newService(repo, &fakeDirectory{ids: map[int]bool{1: true}}, &fakeDirectory{ids: map[int]bool{1: true}}, reviews)

	require.NoError(t, service.CreatePokemon(context.Background(), 1, 1, &pokemon.Pokemon{Name: "Pikachu", BirthDate: birthDate}))
	reviews.reviews = []*review.Review{{ID: 1, PokemonID: 1, Rating: 5}}

	require.NoError(t, service.DeletePokemon(context.Background(), 1))
	assert.Empty(t, repo.pokemons)
}

func TestDeletePokemon_NotFound(t *testing.T) {
	service := newService(newFakeRepository(), &fakeDirectory{}, &fakeDirectory{}, &fakeReviewStore{})

	err := service.DeletePokemon(context.Background(), 4)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestUpdatePokemon_IdentifierMismatch(t *testing.T) {
	repo := newFakeRepository()
	service := newService(repo, &fakeDirectory{ids: map[int]bool{1: true}}, &fakeDirectory{ids: map[int]bool{1: true}}, &fakeReviewStore{})
	require.NoError(t, service.CreatePokemon(context.Background(), 1, 1, &pokemon.Pokemon{Name: "Pikachu", BirthDate: birthDate}))

	err := service.UpdatePokemon(context.Background(), 1, &pokemon.Pokemon{ID: 2, Name: "Raichu"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	assert.Equal(t, "Pikachu", repo.pokemons[0].Name)
}
