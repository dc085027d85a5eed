package review

import (
	"context"
	"log/slog"

	"github.com/pokereview/pokereview/internal/platform/apperr"
	"github.com/pokereview/pokereview/internal/platform/validate"
	"github.com/pokereview/pokereview/pkg/normalize"
)

type Service struct {
	repo      Repository
	pokemons  PokemonDirectory
	reviewers ReviewerDirectory
	logger    *slog.Logger
}

func NewService(repo Repository, pokemons PokemonDirectory, reviewers ReviewerDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		pokemons:  pokemons,
		reviewers: reviewers,
		logger:    logger,
	}
}

func (service *Service) ListReviews(context context.Context) ([]*Review, error) {
	return service.repo.ListReviews(context)
}

func (service *Service) GetReview(context context.Context, id int) (*Review, error) {
	exists, err := service.repo.ReviewExists(context, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Review")
	}

	return service.repo.GetReview(context, id)
}

func (service *Service) ListReviewsOfPokemon(context context.Context, pokemonID int) ([]*Review, error) {
	return service.repo.ListReviewsOfPokemon(context, pokemonID)
}

func (service *Service) ListReviewsByReviewer(context context.Context, reviewerID int) ([]*Review, error) {
	return service.repo.ListReviewsByReviewer(context, reviewerID)
}

// CreateReview checks title uniqueness across all reviews, regardless of
// which pokemon or reviewer the candidate belongs to, then verifies both
// references before the insert.
func (service *Service) CreateReview(context context.Context, pokemonID, reviewerID int, review *Review) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, review.Title).MaxLen(FieldTitle, review.Title, 200)
	validator.Required(FieldText, review.Text)
	validator.Range(FieldRating, review.Rating, MinRating, MaxRating)
	if err := validator.Err(); err != nil {
		return err
	}

	siblings, err := service.repo.ListReviews(context)
	if err != nil {
		return err
	}
	key := normalize.Fold(review.Title)
	for _, sibling := range siblings {
		if normalize.Fold(sibling.Title) == key {
			return apperr.Conflict("Review already exists")
		}
	}

	pokemonExists, err := service.pokemons.PokemonExists(context, pokemonID)
	if err != nil {
		return err
	}
	if !pokemonExists {
		return apperr.InvalidReference("Pokemon")
	}

	reviewerExists, err := service.reviewers.ReviewerExists(context, reviewerID)
	if err != nil {
		return err
	}
	if !reviewerExists {
		return apperr.InvalidReference("Reviewer")
	}

	review.PokemonID = pokemonID
	review.ReviewerID = reviewerID

	if err := service.repo.CreateReview(context, review); err != nil {
		return err
	}

	service.logger.Info("review_created",
		slog.String("title", review.Title),
		slog.Int("pokemon_id", pokemonID),
		slog.Int("reviewer_id", reviewerID),
	)
	return nil
}

func (service *Service) UpdateReview(context context.Context, id int, review *Review) error {
	if review.ID != id {
		return apperr.ValidationError("Identifier mismatch",
			apperr.FieldError{Field: FieldID, Message: "Body id must match request id"})
	}

	validator := &validate.Validator{}
	validator.Required(FieldTitle, review.Title).MaxLen(FieldTitle, review.Title, 200)
	validator.Required(FieldText, review.Text)
	validator.Range(FieldRating, review.Rating, MinRating, MaxRating)
	if err := validator.Err(); err != nil {
		return err
	}

	exists, err := service.repo.ReviewExists(context, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Review")
	}

	// The pokemon/reviewer references are immutable and not re-validated here.
	if err := service.repo.UpdateReview(context, review); err != nil {
		return err
	}

	service.logger.Info("review_updated", slog.Int("review_id", review.ID))
	return nil
}

func (service *Service) DeleteReview(context context.Context, id int) error {
	exists, err := service.repo.ReviewExists(context, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Review")
	}

	if err := service.repo.DeleteReview(context, id); err != nil {
		return err
	}

	service.logger.Warn("review_deleted", slog.Int("review_id", id))
	return nil
}
