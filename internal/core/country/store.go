package country

import (
	"context"

	"github.com/pokereview/pokereview/internal/core/owner"
)

type Repository interface {
	ListCountries(context context.Context) ([]*Country, error)
	GetCountry(context context.Context, id int) (*Country, error)
	CountryExists(context context.Context, id int) (bool, error)
	CreateCountry(context context.Context, c *Country) error
	UpdateCountry(context context.Context, c *Country) error
	DeleteCountry(context context.Context, id int) error

	ListOwnersOfCountry(context context.Context, countryID int) ([]*owner.Owner, error)
	GetCountryOfOwner(context context.Context, ownerID int) (*Country, error)
}
