package review

import "context"

type Repository interface {
	ListReviews(context context.Context) ([]*Review, error)
	GetReview(context context.Context, id int) (*Review, error)
	ReviewExists(context context.Context, id int) (bool, error)
	CreateReview(context context.Context, r *Review) error
	UpdateReview(context context.Context, r *Review) error
	DeleteReview(context context.Context, id int) error
	// DeleteReviews removes a batch of reviews as a unit. Used by the
	// cascade deletion of a pokemon or a reviewer.
	DeleteReviews(context context.Context, reviews []*Review) error

	ListReviewsOfPokemon(context context.Context, pokemonID int) ([]*Review, error)
	ListReviewsByReviewer(context context.Context, reviewerID int) ([]*Review, error)
}

// PokemonDirectory resolves pokemon existence for reference checks.
// Satisfied by the pokemon package's repository.
type PokemonDirectory interface {
	PokemonExists(context context.Context, id int) (bool, error)
}

// ReviewerDirectory resolves reviewer existence for reference checks.
// Satisfied by the reviewer package's repository.
type ReviewerDirectory interface {
	ReviewerExists(context context.Context, id int) (bool, error)
}
