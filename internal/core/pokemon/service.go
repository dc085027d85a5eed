package pokemon

import (
	"context"
	"log/slog"

	"github.com/pokereview/pokereview/internal/platform/apperr"
	"github.com/pokereview/pokereview/internal/platform/validate"
	"github.com/pokereview/pokereview/pkg/normalize"
)

type Service struct {
	repo       Repository
	owners     OwnerDirectory
	categories CategoryDirectory
	reviews    ReviewStore
	logger     *slog.Logger
}

func NewService(repo Repository, owners OwnerDirectory, categories CategoryDirectory, reviews ReviewStore, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		owners:     owners,
		categories: categories,
		reviews:    reviews,
		logger:     logger,
	}
}

func (service *Service) ListPokemon(context context.Context) ([]*Pokemon, error) {
	return service.repo.ListPokemon(context)
}

func (service *Service) GetPokemon(context context.Context, id int) (*Pokemon, error) {
	exists, err := service.repo.PokemonExists(context, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Pokemon")
	}

	return service.repo.GetPokemon(context, id)
}

// GetRating returns the mean of all review ratings for a pokemon.
// A pokemon with no reviews has a rating of exactly 0.
func (service *Service) GetRating(context context.Context, id int) (float64, error) {
	exists, err := service.repo.PokemonExists(context, id)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, apperr.NotFound("Pokemon")
	}

	reviews, err := service.reviews.ListReviewsOfPokemon(context, id)
	if err != nil {
		return 0, err
	}
	if len(reviews) == 0 {
		return 0, nil
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews)), nil
}

// CreatePokemon verifies both out-of-band references before anything is
// written; the repository then inserts the pokemon and its two junction rows
// atomically, so a failed reference check leaves no partial state behind.
func (service *Service) CreatePokemon(context context.Context, ownerID, categoryID int, pokemon *Pokemon) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, pokemon.Name).MaxLen(FieldName, pokemon.Name, 100)
	validator.Custom(FieldBirthDate, pokemon.BirthDate.IsZero(), "This field is required")
	if err := validator.Err(); err != nil {
		return err
	}

	siblings, err := service.repo.ListPokemon(context)
	if err != nil {
		return err
	}
	key := normalize.Fold(pokemon.Name)
	for _, sibling := range siblings {
		if normalize.Fold(sibling.Name) == key {
			return apperr.Conflict("Pokemon already exists")
		}
	}

	ownerExists, err := service.owners.OwnerExists(context, ownerID)
	if err != nil {
		return err
	}
	if !ownerExists {
		return apperr.InvalidReference("Owner")
	}

	categoryExists, err := service.categories.CategoryExists(context, categoryID)
	if err != nil {
		return err
	}
	if !categoryExists {
		return apperr.InvalidReference("Category")
	}

	if err := service.repo.CreatePokemon(context, ownerID, categoryID, pokemon); err != nil {
		return err
	}

	service.logger.Info("pokemon_created",
		slog.String("name", pokemon.Name),
		slog.Int("owner_id", ownerID),
		slog.Int("category_id", categoryID),
	)
	return nil
}

func (service *Service) UpdatePokemon(context context.Context, id int, pokemon *Pokemon) error {
	if pokemon.ID != id {
		return apperr.ValidationError("Identifier mismatch",
			apperr.FieldError{Field: FieldID, Message: "Body id must match request id"})
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, pokemon.Name).MaxLen(FieldName, pokemon.Name, 100)
	if err := validator.Err(); err != nil {
		return err
	}

	exists, err := service.repo.PokemonExists(context, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Pokemon")
	}

	if err := service.repo.UpdatePokemon(context, pokemon); err != nil {
		return err
	}

	service.logger.Info("pokemon_updated", slog.Int("pokemon_id", pokemon.ID))
	return nil
}

// DeletePokemon removes dependent reviews first, then the pokemon itself.
// A failing review batch is logged but does not abort the root deletion;
// the overall outcome is the root deletion's outcome. Review rows must never
// outlive the pokemon they reference.
func (service *Service) DeletePokemon(context context.Context, id int) error {
	exists, err := service.repo.PokemonExists(context, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Pokemon")
	}

	reviews, err := service.reviews.ListReviewsOfPokemon(context, id)
	if err != nil {
		return err
	}
	if len(reviews) > 0 {
		if err := service.reviews.DeleteReviews(context, reviews); err != nil {
			// Best-effort on the dependent batch; the schema-level cascade
			// still guarantees no review survives the root delete below.
			service.logger.Error("pokemon_review_cascade_failed",
				slog.Int("pokemon_id", id),
				slog.Int("review_count", len(reviews)),
				slog.Any("error", err),
			)
		}
	}

	if err := service.repo.DeletePokemon(context, id); err != nil {
		return err
	}

	service.logger.Warn("pokemon_deleted",
		slog.Int("pokemon_id", id),
		slog.Int("cascaded_reviews", len(reviews)),
	)
	return nil
}
