package pokemon

import (
	"context"

	"github.com/pokereview/pokereview/internal/core/review"
)

type Repository interface {
	ListPokemon(context context.Context) ([]*Pokemon, error)
	GetPokemon(context context.Context, id int) (*Pokemon, error)
	PokemonExists(context context.Context, id int) (bool, error)
	// CreatePokemon inserts the pokemon row plus exactly one pokemonowner
	// and one pokemoncategory junction row in a single transaction. Either
	// all three rows land or none do.
	CreatePokemon(context context.Context, ownerID, categoryID int, p *Pokemon) error
	UpdatePokemon(context context.Context, p *Pokemon) error
	// DeletePokemon removes the pokemon and its junction rows in one
	// transaction. Dependent reviews are the service's responsibility.
	DeletePokemon(context context.Context, id int) error
}

// OwnerDirectory resolves owner existence for reference checks.
// Satisfied by the owner package's repository.
type OwnerDirectory interface {
	OwnerExists(context context.Context, id int) (bool, error)
}

// CategoryDirectory resolves category existence for reference checks.
// Satisfied by the category package's repository.
type CategoryDirectory interface {
	CategoryExists(context context.Context, id int) (bool, error)
}

// ReviewStore gives the cascade coordinator and the rating aggregator
// access to dependent reviews. Satisfied by the review package's repository.
type ReviewStore interface {
	ListReviewsOfPokemon(context context.Context, pokemonID int) ([]*review.Review, error)
	DeleteReviews(context context.Context, reviews []*review.Review) error
}
