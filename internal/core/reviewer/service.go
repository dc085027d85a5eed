package reviewer

import (
	"context"
	"log/slog"

	"github.com/pokereview/pokereview/internal/core/review"
	"github.com/pokereview/pokereview/internal/platform/apperr"
	"github.com/pokereview/pokereview/internal/platform/validate"
	"github.com/pokereview/pokereview/pkg/normalize"
)

type Service struct {
	repo    Repository
	reviews ReviewStore
	logger  *slog.Logger
}

func NewService(repo Repository, reviews ReviewStore, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		reviews: reviews,
		logger:  logger,
	}
}

func (service *Service) ListReviewers(context context.Context) ([]*Reviewer, error) {
	return service.repo.ListReviewers(context)
}

func (service *Service) GetReviewer(context context.Context, id int) (*Reviewer, error) {
	exists, err := service.repo.ReviewerExists(context, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Reviewer")
	}

	return service.repo.GetReviewer(context, id)
}

func (service *Service) ListReviewsByReviewer(context context.Context, reviewerID int) ([]*review.Review, error) {
	exists, err := service.repo.ReviewerExists(context, reviewerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Reviewer")
	}

	return service.reviews.ListReviewsByReviewer(context, reviewerID)
}

func (service *Service) ListReviewersOfPokemon(context context.Context, pokemonID int) ([]*Reviewer, error) {
	return service.repo.ListReviewersOfPokemon(context, pokemonID)
}

func (service *Service) CreateReviewer(context context.Context, reviewer *Reviewer) error {
	validator := &validate.Validator{}
	validator.Required(FieldFirstName, reviewer.FirstName).MaxLen(FieldFirstName, reviewer.FirstName, 100)
	validator.Required(FieldLastName, reviewer.LastName).MaxLen(FieldLastName, reviewer.LastName, 100)
	if err := validator.Err(); err != nil {
		return err
	}

	// Duplicate check on the normalized first/last name pair.
	siblings, err := service.repo.ListReviewers(context)
	if err != nil {
		return err
	}
	key := normalize.Pair(reviewer.FirstName, reviewer.LastName)
	for _, sibling := range siblings {
		if normalize.Pair(sibling.FirstName, sibling.LastName) == key {
			return apperr.Conflict("Reviewer already exists")
		}
	}

	if err := service.repo.CreateReviewer(context, reviewer); err != nil {
		return err
	}

	service.logger.Info("reviewer_created",
		slog.String("first_name", reviewer.FirstName),
		slog.String("last_name", reviewer.LastName),
	)
	return nil
}

func (service *Service) UpdateReviewer(context context.Context, id int, reviewer *Reviewer) error {
	if reviewer.ID != id {
		return apperr.ValidationError("Identifier mismatch",
			apperr.FieldError{Field: FieldID, Message: "Body id must match request id"})
	}

	validator := &validate.Validator{}
	validator.Required(FieldFirstName, reviewer.FirstName).MaxLen(FieldFirstName, reviewer.FirstName, 100)
	validator.Required(FieldLastName, reviewer.LastName).MaxLen(FieldLastName, reviewer.LastName, 100)
	if err := validator.Err(); err != nil {
		return err
	}

	exists, err := service.repo.ReviewerExists(context, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Reviewer")
	}

	if err := service.repo.UpdateReviewer(context, reviewer); err != nil {
		return err
	}

	service.logger.Info("reviewer_updated", slog.Int("reviewer_id", reviewer.ID))
	return nil
}

// DeleteReviewer removes the reviewer's reviews first, then the reviewer.
// Same two-phase pattern and partial-failure policy as pokemon deletion:
// a failing review batch is logged, and the root deletion's outcome decides
// the overall result.
func (service *Service) DeleteReviewer(context context.Context, id int) error {
	exists, err := service.repo.ReviewerExists(context, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Reviewer")
	}

	reviews, err := service.reviews.ListReviewsByReviewer(context, id)
	if err != nil {
		return err
	}
	if len(reviews) > 0 {
		if err := service.reviews.DeleteReviews(context, reviews); err != nil {
			service.logger.Error("reviewer_review_cascade_failed",
				slog.Int("reviewer_id", id),
				slog.Int("review_count", len(reviews)),
				slog.Any("error", err),
			)
		}
	}

	if err := service.repo.DeleteReviewer(context, id); err != nil {
		return err
	}

	service.logger.Warn("reviewer_deleted",
		slog.Int("reviewer_id", id),
		slog.Int("cascaded_reviews", len(reviews)),
	)
	return nil
}
