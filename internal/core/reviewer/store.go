package reviewer

import (
	"context"

	"github.com/pokereview/pokereview/internal/core/review"
)

type Repository interface {
	ListReviewers(context context.Context) ([]*Reviewer, error)
	GetReviewer(context context.Context, id int) (*Reviewer, error)
	ReviewerExists(context context.Context, id int) (bool, error)
	CreateReviewer(context context.Context, r *Reviewer) error
	UpdateReviewer(context context.Context, r *Reviewer) error
	DeleteReviewer(context context.Context, id int) error

	// ListReviewersOfPokemon resolves the distinct reviewers who reviewed a
	// pokemon, reaching through the review table.
	ListReviewersOfPokemon(context context.Context, pokemonID int) ([]*Reviewer, error)
}

// ReviewStore gives the cascade coordinator access to dependent reviews.
// Satisfied by the review package's repository.
type ReviewStore interface {
	ListReviewsByReviewer(context context.Context, reviewerID int) ([]*review.Review, error)
	DeleteReviews(context context.Context, reviews []*review.Review) error
}
