package category

import (
	"context"
	"log/slog"

	"github.com/pokereview/pokereview/internal/core/pokemon"
	"github.com/pokereview/pokereview/internal/platform/apperr"
	"github.com/pokereview/pokereview/internal/platform/validate"
	"github.com/pokereview/pokereview/pkg/normalize"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	return service.repo.ListCategories(context)
}

func (service *Service) GetCategory(context context.Context, id int) (*Category, error) {
	exists, err := service.repo.CategoryExists(context, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Category")
	}

	return service.repo.GetCategory(context, id)
}

func (service *Service) ListPokemonByCategory(context context.Context, categoryID int) ([]*pokemon.Pokemon, error) {
	exists, err := service.repo.CategoryExists(context, categoryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Category")
	}

	return service.repo.ListPokemonByCategory(context, categoryID)
}

func (service *Service) CreateCategory(context context.Context, category *Category) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, category.Name).MaxLen(FieldName, category.Name, 100)
	if err := validator.Err(); err != nil {
		return err
	}

	// Duplicate check is defined on the trimmed, case-folded name among all
	// existing categories. Linear scan over the sibling set.
	siblings, err := service.repo.ListCategories(context)
	if err != nil {
		return err
	}
	key := normalize.Fold(category.Name)
	for _, sibling := range siblings {
		if normalize.Fold(sibling.Name) == key {
			return apperr.Conflict("Category already exists")
		}
	}

	if err := service.repo.CreateCategory(context, category); err != nil {
		return err
	}

	service.logger.Info("category_created", slog.String("name", category.Name))
	return nil
}

func (service *Service) UpdateCategory(context context.Context, id int, category *Category) error {
	// Identifier mismatch between path and payload is rejected before any
	// storage access, including the existence check.
	if category.ID != id {
		return apperr.ValidationError("Identifier mismatch",
			apperr.FieldError{Field: FieldID, Message: "Body id must match request id"})
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, category.Name).MaxLen(FieldName, category.Name, 100)
	if err := validator.Err(); err != nil {
		return err
	}

	exists, err := service.repo.CategoryExists(context, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Category")
	}

	if err := service.repo.UpdateCategory(context, category); err != nil {
		return err
	}

	service.logger.Info("category_updated", slog.Int("category_id", category.ID))
	return nil
}

func (service *Service) DeleteCategory(context context.Context, id int) error {
	exists, err := service.repo.CategoryExists(context, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Category")
	}

	if err := service.repo.DeleteCategory(context, id); err != nil {
		return err
	}

	service.logger.Warn("category_deleted", slog.Int("category_id", id))
	return nil
}
