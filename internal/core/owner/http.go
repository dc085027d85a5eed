package owner

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/pokereview/pokereview/internal/platform/request"
	"github.com/pokereview/pokereview/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listOwners)
	router.Get("/{id}", handler.getOwner)
	router.Get("/{id}/pokemon", handler.listPokemonByOwner)
	router.Get("/pokemon/{pokemonId}", handler.listOwnersOfPokemon)
	router.Post("/", handler.createOwner)
	router.Put("/{id}", handler.updateOwner)
	router.Delete("/{id}", handler.deleteOwner)
}

func (handler *Handler) listOwners(writer http.ResponseWriter, request *http.Request) {
	owners, err := handler.service.ListOwners(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, owners)
}

func (handler *Handler) getOwner(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	owner, err := handler.service.GetOwner(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, owner)
}

func (handler *Handler) listPokemonByOwner(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pokemon, err := handler.service.ListPokemonByOwner(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pokemon)
}

func (handler *Handler) listOwnersOfPokemon(writer http.ResponseWriter, request *http.Request) {
	pokemonID, err := requestutil.IntID(request, "pokemonId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	owners, err := handler.service.ListOwnersOfPokemon(request.Context(), pokemonID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, owners)
}

// createOwner takes countryId as a query parameter alongside the JSON
// payload: POST /owners?countryId=1
func (handler *Handler) createOwner(writer http.ResponseWriter, request *http.Request) {
	countryID, err := requestutil.IntQuery(request, "countryId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Owner
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateOwner(request.Context(), countryID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateOwner(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Owner
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateOwner(request.Context(), ownerID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteOwner(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteOwner(request.Context(), ownerID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
