package owner

import (
	"context"
	"log/slog"

	"github.com/pokereview/pokereview/internal/core/pokemon"
	"github.com/pokereview/pokereview/internal/platform/apperr"
	"github.com/pokereview/pokereview/internal/platform/validate"
	"github.com/pokereview/pokereview/pkg/normalize"
)

type Service struct {
	repo      Repository
	countries CountryDirectory
	logger    *slog.Logger
}

func NewService(repo Repository, countries CountryDirectory, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		countries: countries,
		logger:    logger,
	}
}

func (service *Service) ListOwners(context context.Context) ([]*Owner, error) {
	return service.repo.ListOwners(context)
}

func (service *Service) GetOwner(context context.Context, id int) (*Owner, error) {
	exists, err := service.repo.OwnerExists(context, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Owner")
	}

	return service.repo.GetOwner(context, id)
}

func (service *Service) ListPokemonByOwner(context context.Context, ownerID int) ([]*pokemon.Pokemon, error) {
	exists, err := service.repo.OwnerExists(context, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Owner")
	}

	return service.repo.ListPokemonByOwner(context, ownerID)
}

func (service *Service) ListOwnersOfPokemon(context context.Context, pokemonID int) ([]*Owner, error) {
	return service.repo.ListOwnersOfPokemon(context, pokemonID)
}

// CreateOwner validates the country reference supplied out-of-band from the
// payload before any write happens.
func (service *Service) CreateOwner(context context.Context, countryID int, owner *Owner) error {
	validator := &validate.Validator{}
	validator.Required(FieldFirstName, owner.FirstName).MaxLen(FieldFirstName, owner.FirstName, 100)
	validator.Required(FieldLastName, owner.LastName).MaxLen(FieldLastName, owner.LastName, 100)
	if err := validator.Err(); err != nil {
		return err
	}

	// Duplicate check on the normalized first/last name pair.
	siblings, err := service.repo.ListOwners(context)
	if err != nil {
		return err
	}
	key := normalize.Pair(owner.FirstName, owner.LastName)
	for _, sibling := range siblings {
		if normalize.Pair(sibling.FirstName, sibling.LastName) == key {
			return apperr.Conflict("Owner already exists")
		}
	}

	countryExists, err := service.countries.CountryExists(context, countryID)
	if err != nil {
		return err
	}
	if !countryExists {
		return apperr.InvalidReference("Country")
	}

	owner.CountryID = countryID

	if err := service.repo.CreateOwner(context, owner); err != nil {
		return err
	}

	service.logger.Info("owner_created",
		slog.String("first_name", owner.FirstName),
		slog.String("last_name", owner.LastName),
		slog.Int("country_id", countryID),
	)
	return nil
}

func (service *Service) UpdateOwner(context context.Context, id int, owner *Owner) error {
	if owner.ID != id {
		return apperr.ValidationError("Identifier mismatch",
			apperr.FieldError{Field: FieldID, Message: "Body id must match request id"})
	}

	validator := &validate.Validator{}
	validator.Required(FieldFirstName, owner.FirstName).MaxLen(FieldFirstName, owner.FirstName, 100)
	validator.Required(FieldLastName, owner.LastName).MaxLen(FieldLastName, owner.LastName, 100)
	if err := validator.Err(); err != nil {
		return err
	}

	exists, err := service.repo.OwnerExists(context, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Owner")
	}

	if err := service.repo.UpdateOwner(context, owner); err != nil {
		return err
	}

	service.logger.Info("owner_updated", slog.Int("owner_id", owner.ID))
	return nil
}

func (service *Service) DeleteOwner(context context.Context, id int) error {
	exists, err := service.repo.OwnerExists(context, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Owner")
	}

	if err := service.repo.DeleteOwner(context, id); err != nil {
		return err
	}

	service.logger.Warn("owner_deleted", slog.Int("owner_id", id))
	return nil
}
