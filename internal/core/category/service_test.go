package category_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokereview/pokereview/internal/core/category"
	"github.com/pokereview/pokereview/internal/core/pokemon"
	"github.com/pokereview/pokereview/internal/platform/apperr"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeRepository is an in-memory category.Repository for service tests.
type fakeRepository struct {
	categories []*category.Category
	byCategory map[int][]*pokemon.Pokemon
	nextID     int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byCategory: map[int][]*pokemon.Pokemon{}, nextID: 1}
}

func (f *fakeRepository) ListCategories(_ context.Context) ([]*category.Category, error) {
	return f.categories, nil
}

func (f *fakeRepository) GetCategory(_ context.Context, id int) (*category.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperr.NotFound("Category")
}

func (f *fakeRepository) CategoryExists(_ context.Context, id int) (bool, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) CreateCategory(_ context.Context, c *category.Category) error {
	c.ID = f.nextID
	f.nextID++
	f.categories = append(f.categories, c)
	return nil
}

func (f *fakeRepository) UpdateCategory(_ context.Context, c *category.Category) error {
	for i, existing := range f.categories {
		if existing.ID == c.ID {
			f.categories[i] = c
			return nil
		}
	}
	return apperr.NotFound("Category")
}

func (f *fakeRepository) DeleteCategory(_ context.Context, id int) error {
	for i, c := range f.categories {
		if c.ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			delete(f.byCategory, id)
			return nil
		}
	}
	return apperr.NotFound("Category")
}

func (f *fakeRepository) ListPokemonByCategory(_ context.Context, categoryID int) ([]*pokemon.Pokemon, error) {
	return f.byCategory[categoryID], nil
}

/*
TestCreateCategory_Duplicate verifies that names differing only in case or
surrounding whitespace collide, and that a rejected create leaves the store
untouched.
*/
func TestCreateCategory_Duplicate(t *testing.T) {
	repo := newFakeRepository()
	service := category.NewService(repo, discardLogger)

	require.NoError(t, service.CreateCategory(context.Background(), &category.Category{Name: "Electric"}))

	tests := []struct {
		name      string
		candidate string
	}{
		{"exact", "Electric"},
		{"case_variant", "electric"},
		{"whitespace_variant", "  Electric  "},
		{"case_and_whitespace", "\tELECTRIC "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.CreateCategory(context.Background(), &category.Category{Name: tt.candidate})
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "CONFLICT", ae.Code)
			assert.Len(t, repo.categories, 1)
		})
	}
}

func TestCreateCategory_Validation(t *testing.T) {
	repo := newFakeRepository()
	service := category.NewService(repo, discardLogger)

	err := service.CreateCategory(context.Background(), &category.Category{Name: "   "})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Empty(t, repo.categories)
}

/*
TestUpdateCategory_IdentifierMismatch checks that a payload id that disagrees
with the request id is rejected as a validation failure, not a lookup failure,
and that nothing is mutated.
*/
func TestUpdateCategory_IdentifierMismatch(t *testing.T) {
	repo := newFakeRepository()
	service := category.NewService(repo, discardLogger)
	require.NoError(t, service.CreateCategory(context.Background(), &category.Category{Name: "Water"}))

	err := service.UpdateCategory(context.Background(), 1, &category.Category{ID: 2, Name: "Fire"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Equal(t, "Water", repo.categories[0].Name)
}

func TestUpdateCategory_NotFound(t *testing.T) {
	repo := newFakeRepository()
	service := category.NewService(repo, discardLogger)

	err := service.UpdateCategory(context.Background(), 42, &category.Category{ID: 42, Name: "Ghost"})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestGetCategory_NotFound(t *testing.T) {
	repo := newFakeRepository()
	service := category.NewService(repo, discardLogger)

	_, err := service.GetCategory(context.Background(), 7)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestDeleteCategory(t *testing.T) {
	repo := newFakeRepository()
	service := category.NewService(repo, discardLogger)
	require.NoError(t, service.CreateCategory(context.Background(), &category.Category{Name: "Grass"}))

	require.NoError(t, service.DeleteCategory(context.Background(), 1))
	assert.Empty(t, repo.categories)

	err := service.DeleteCategory(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestListPokemonByCategory_NotFound(t *testing.T) {
	repo := newFakeRepository()
	service := category.NewService(repo, discardLogger)

	_, err := service.ListPokemonByCategory(context.Background(), 3)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestListPokemonByCategory(t *testing.T) {
	repo := newFakeRepository()
	service := category.NewService(repo, discardLogger)
	require.NoError(t, service.CreateCategory(context.Background(), &category.Category{Name: "Electric"}))
	repo.byCategory[1] = []*pokemon.Pokemon{{ID: 10, Name: "Pikachu"}}

	result, err := service.ListPokemonByCategory(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "Pikachu", result[0].Name)
}
