package owner

import (
	"context"

	"github.com/pokereview/pokereview/internal/core/pokemon"
)

type Repository interface {
	ListOwners(context context.Context) ([]*Owner, error)
	GetOwner(context context.Context, id int) (*Owner, error)
	OwnerExists(context context.Context, id int) (bool, error)
	CreateOwner(context context.Context, o *Owner) error
	UpdateOwner(context context.Context, o *Owner) error
	// DeleteOwner removes the owner and its pokemonowner junction rows in
	// one transaction. Junction rows never outlive an endpoint.
	DeleteOwner(context context.Context, id int) error

	ListPokemonByOwner(context context.Context, ownerID int) ([]*pokemon.Pokemon, error)
	ListOwnersOfPokemon(context context.Context, pokemonID int) ([]*Owner, error)
}

// CountryDirectory resolves country existence for reference checks.
// Satisfied by the country package's repository.
type CountryDirectory interface {
	CountryExists(context context.Context, id int) (bool, error)
}
