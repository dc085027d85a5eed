package country

import (
	"context"
	"log/slog"

	"github.com/pokereview/pokereview/internal/core/owner"
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

func (service *Service) ListCountries(context context.Context) ([]*Country, error) {
	return service.repo.ListCountries(context)
}

func (service *Service) GetCountry(context context.Context, id int) (*Country, error) {
	exists, err := service.repo.CountryExists(context, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Country")
	}

	return service.repo.GetCountry(context, id)
}

func (service *Service) ListOwnersOfCountry(context context.Context, countryID int) ([]*owner.Owner, error) {
	exists, err := service.repo.CountryExists(context, countryID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Country")
	}

	return service.repo.ListOwnersOfCountry(context, countryID)
}

func (service *Service) GetCountryOfOwner(context context.Context, ownerID int) (*Country, error) {
	return service.repo.GetCountryOfOwner(context, ownerID)
}

func (service *Service) CreateCountry(context context.Context, country *Country) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, country.Name).MaxLen(FieldName, country.Name, 100)
	if err := validator.Err(); err != nil {
		return err
	}

	siblings, err := service.repo.ListCountries(context)
	if err != nil {
		return err
	}
	key := normalize.Fold(country.Name)
	for _, sibling := range siblings {
		if normalize.Fold(sibling.Name) == key {
			return apperr.Conflict("Country already exists")
		}
	}

	if err := service.repo.CreateCountry(context, country); err != nil {
		return err
	}

	service.logger.Info("country_created", slog.String("name", country.Name))
	return nil
}

func (service *Service) UpdateCountry(context context.Context, id int, country *Country) error {
	if country.ID != id {
		return apperr.ValidationError("Identifier mismatch",
			apperr.FieldError{Field: FieldID, Message: "Body id must match request id"})
	}

	validator := &validate.Validator{}
	validator.Required(FieldName, country.Name).MaxLen(FieldName, country.Name, 100)
	if err := validator.Err(); err != nil {
		return err
	}

	exists, err := service.repo.CountryExists(context, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Country")
	}

	if err := service.repo.UpdateCountry(context, country); err != nil {
		return err
	}

	service.logger.Info("country_updated", slog.Int("country_id", country.ID))
	return nil
}

// DeleteCountry refuses to remove a country that owners still reference.
// There is no cascade here: a foreign key, unlike a junction row, belongs to
// the referencing side and stays authoritative until that side lets go.
func (service *Service) DeleteCountry(context context.Context, id int) error {
	exists, err := service.repo.CountryExists(context, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Country")
	}

	owners, err := service.repo.ListOwnersOfCountry(context, id)
	if err != nil {
		return err
	}
	if len(owners) > 0 {
		return apperr.Conflict("Country is still referenced by owners")
	}

	if err := service.repo.DeleteCountry(context, id); err != nil {
		return err
	}

	service.logger.Warn("country_deleted", slog.Int("country_id", id))
	return nil
}
