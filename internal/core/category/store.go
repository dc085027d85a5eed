package category

import (
	"context"

	"github.com/pokereview/pokereview/internal/core/pokemon"
)

type Repository interface {
	ListCategories(context context.Context) ([]*Category, error)
	GetCategory(context context.Context, id int) (*Category, error)
	CategoryExists(context context.Context, id int) (bool, error)
	CreateCategory(context context.Context, c *Category) error
	UpdateCategory(context context.Context, c *Category) error
	// DeleteCategory removes the category and its pokemoncategory junction
	// rows in one transaction. Junction rows never outlive an endpoint.
	DeleteCategory(context context.Context, id int) error

	ListPokemonByCategory(context context.Context, categoryID int) ([]*pokemon.Pokemon, error)
}
