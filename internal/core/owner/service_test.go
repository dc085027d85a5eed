package owner_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokereview/pokereview/internal/core/owner"
	"github.com/pokereview/pokereview/internal/core/pokemon"
	"github.com/pokereview/pokereview/internal/platform/apperr"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeRepository struct {
	owners  []*owner.Owner
	byOwner map[int][]*pokemon.Pokemon
	nextID  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byOwner: map[int][]*pokemon.Pokemon{}, nextID: 1}
}

func (f *fakeRepository) ListOwners(_ context.Context) ([]*owner.Owner, error) {
	return f.owners, nil
}

func (f *fakeRepository) GetOwner(_ context.Context, id int) (*owner.Owner, error) {
	for _, o := range f.owners {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, apperr.NotFound("Owner")
}

func (f *fakeRepository) OwnerExists(_ context.Context, id int) (bool, error) {
	for _, o := range f.owners {
		if o.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) CreateOwner(_ context.Context, o *owner.Owner) error {
	o.ID = f.nextID
	f.nextID++
	f.owners = append(f.owners, o)
	return nil
}

func (f *fakeRepository) UpdateOwner(_ context.Context, o *owner.Owner) error {
	for i, existing := range f.owners {
		if existing.ID == o.ID {
			f.owners[i] = o
			return nil
		}
	}
	return apperr.NotFound("Owner")
}

func (f *fakeRepository) DeleteOwner(_ context.Context, id int) error {
	for i, o := range f.owners {
		if o.ID == id {
			f.owners = append(f.owners[:i], f.owners[i+1:]...)
			delete(f.byOwner, id)
			return nil
		}
	}
	return apperr.NotFound("Owner")
}

func (f *fakeRepository) ListPokemonByOwner(_ context.Context, ownerID int) ([]*pokemon.Pokemon, error) {
	return f.byOwner[ownerID], nil
}

func (f *fakeRepository) ListOwnersOfPokemon(_ context.Context, pokemonID int) ([]*owner.Owner, error) {
	return nil, nil
}

type fakeCountryDirectory struct {
	ids map[int]bool
}

func (f *fakeCountryDirectory) CountryExists(_ context.Context, id int) (bool, error) {
	return f.ids[id], nil
}

func TestCreateOwner(t *testing.T) {
	repo := newFakeRepository()
	service := owner.NewService(repo, &fakeCountryDirectory{ids: map[int]bool{3: true}}, discardLogger)

	o := &owner.Owner{FirstName: "Ash", LastName: "Ketchum"}
	require.NoError(t, service.CreateOwner(context.Background(), 3, o))
	assert.Equal(t, 3, o.CountryID)
}

func TestCreateOwner_UnknownCountry(t *testing.T) {
	repo := newFakeRepository()
	service := owner.NewService(repo, &fakeCountryDirectory{ids: map[int]bool{}}, discardLogger)

	err := service.CreateOwner(context.Background(), 9, &owner.Owner{FirstName: "Ash", LastName: "Ketchum"})
	require.Error(t, err)
	assert.Equal(t, "INVALID_REFERENCE", apperr.As(err).Code)
	assert.Empty(t, repo.owners)
}

func TestCreateOwner_Duplicate(t *testing.T) {
	repo := newFakeRepository()
	service := owner.NewService(repo, &fakeCountryDirectory{ids: map[int]bool{1: true}}, discardLogger)

	require.NoError(t, service.CreateOwner(context.Background(), 1, &owner.Owner{FirstName: "Ash", LastName: "Ketchum"}))

	err := service.CreateOwner(context.Background(), 1, &owner.Owner{FirstName: " ASH ", LastName: "ketchum"})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	assert.Len(t, repo.owners, 1)
}

func TestUpdateOwner_IdentifierMismatch(t *testing.T) {
	repo := newFakeRepository()
	service := owner.NewService(repo, &fakeCountryDirectory{ids: map[int]bool{1: true}}, discardLogger)
	require.NoError(t, service.CreateOwner(context.Background(), 1, &owner.Owner{FirstName: "Ash", LastName: "Ketchum"}))

	err := service.UpdateOwner(context.Background(), 1, &owner.Owner{ID: 5, FirstName: "Red", LastName: "Ketchum"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	assert.Equal(t, "Ash", repo.owners[0].FirstName)
}

func TestDeleteOwner_NotFound(t *testing.T) {
	service := owner.NewService(newFakeRepository(), &fakeCountryDirectory{}, discardLogger)

	err := service.DeleteOwner(context.Background(), 2)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestListPokemonByOwner(t *testing.T) {
	repo := newFakeRepository()
	service := owner.NewService(repo, &fakeCountryDirectory{ids: map[int]bool{1: true}}, discardLogger)
	require.NoError(t, service.CreateOwner(context.Background(), 1, &owner.Owner{FirstName: "Ash", LastName: "Ketchum"}))
	repo.byOwner[1] = []*pokemon.Pokemon{{ID: 4, Name: "Pikachu"}}

	result, err := service.ListPokemonByOwner(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Pikachu", result[0].Name)

	_, err = service.ListPokemonByOwner(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
