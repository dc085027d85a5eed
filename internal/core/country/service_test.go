package country_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokereview/pokereview/internal/core/country"
	"github.com/pokereview/pokereview/internal/core/owner"
	"github.com/pokereview/pokereview/internal/platform/apperr"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeRepository struct {
	countries []*country.Country
	owners    []*owner.Owner
	nextID    int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{nextID: 1}
}

func (f *fakeRepository) ListCountries(_ context.Context) ([]*country.Country, error) {
	return f.countries, nil
}

func (f *fakeRepository) GetCountry(_ context.Context, id int) (*country.Country, error) {
	for _, c := range f.countries {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, apperr.NotFound("Country")
}

func (f *fakeRepository) CountryExists(_ context.Context, id int) (bool, error) {
	for _, c := range f.countries {
		if c.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) CreateCountry(_ context.Context, c *country.Country) error {
	c.ID = f.nextID
	f.nextID++
	f.countries = append(f.countries, c)
	return nil
}

func (f *fakeRepository) UpdateCountry(_ context.Context, c *country.Country) error {
	for i, existing := range f.countries {
		if existing.ID == c.ID {
			f.countries[i] = c
			return nil
		}
	}
	return apperr.NotFound("Country")
}

func (f *fakeRepository) DeleteCountry(_ context.Context, id int) error {
	for i, c := range f.countries {
		if c.ID == id {
			f.countries = append(f.countries[:i], f.countries[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Country")
}

func (f *fakeRepository) ListOwnersOfCountry(_ context.Context, countryID int) ([]*owner.Owner, error) {
	var result []*owner.Owner
	for _, o := range f.owners {
		if o.CountryID == countryID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (f *fakeRepository) GetCountryOfOwner(_ context.Context, ownerID int) (*country.Country, error) {
	for _, o := range f.owners {
		if o.ID == ownerID {
			return f.GetCountry(context.Background(), o.CountryID)
		}
	}
	return nil, apperr.NotFound("Country")
}

func TestCreateCountry_Duplicate(t *testing.T) {
	repo := newFakeRepository()
	service := country.NewService(repo, discardLogger)

	require.NoError(t, service.CreateCountry(context.Background(), &country.Country{Name: "Kanto"}))

	err := service.CreateCountry(context.Background(), &country.Country{Name: " kanto "})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	assert.Len(t, repo.countries, 1)
}

/*
TestDeleteCountry_Referenced verifies that deletion is refused while any owner
still points at the country, and succeeds once the last reference is gone.
*/
func TestDeleteCountry_Referenced(t *testing.T) {
	repo := newFakeRepository()
	service := country.NewService(repo, discardLogger)

	require.NoError(t, service.CreateCountry(context.Background(), &country.Country{Name: "Kanto"}))
	repo.owners = []*owner.Owner{{ID: 1, FirstName: "Ash", LastName: "Ketchum", CountryID: 1}}

	err := service.DeleteCountry(context.Background(), 1)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)
	assert.Len(t, repo.countries, 1)

	repo.owners = nil
	require.NoError(t, service.DeleteCountry(context.Background(), 1))
	assert.Empty(t, repo.countries)
}

func TestUpdateCountry_IdentifierMismatch(t *testing.T) {
	repo := newFakeRepository()
	service := country.NewService(repo, discardLogger)
	require.NoError(t, service.CreateCountry(context.Background(), &country.Country{Name: "Kanto"}))

	err := service.UpdateCountry(context.Background(), 1, &country.Country{ID: 2, Name: "Johto"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	assert.Equal(t, "Kanto", repo.countries[0].Name)
}

func TestListOwnersOfCountry_NotFound(t *testing.T) {
	service := country.NewService(newFakeRepository(), discardLogger)

	_, err := service.ListOwnersOfCountry(context.Background(), 8)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestGetCountryOfOwner(t *testing.T) {
	repo := newFakeRepository()
	service := country.NewService(repo, discardLogger)
	require.NoError(t, service.CreateCountry(context.Background(), &country.Country{Name: "Kanto"}))
	repo.owners = []*owner.Owner{{ID: 1, FirstName: "Ash", LastName: "Ketchum", CountryID: 1}}

	c, err := service.GetCountryOfOwner(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Kanto", c.Name)
}
