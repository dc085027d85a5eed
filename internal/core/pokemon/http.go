package pokemon

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
	router.Get("/", handler.listPokemon)
	router.Get("/{id}", handler.getPokemon)
	router.Get("/{id}/rating", handler.getRating)
	router.Post("/", handler.createPokemon)
	router.Put("/{id}", handler.updatePokemon)
	router.Delete("/{id}", handler.deletePokemon)
}

func (handler *Handler) listPokemon(writer http.ResponseWriter, request *http.Request) {
	pokemon, err := handler.service.ListPokemon(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pokemon)
}

func (handler *Handler) getPokemon(writer http.ResponseWriter, request *http.Request) {
	pokemonID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pokemon, err := handler.service.GetPokemon(request.Context(), pokemonID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pokemon)
}

func (handler *Handler) getRating(writer http.ResponseWriter, request *http.Request) {
	pokemonID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	rating, err := handler.service.GetRating(request.Context(), pokemonID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]float64{"rating": rating})
}

// createPokemon takes ownerId and categoryId as query parameters alongside
// the JSON payload: POST /pokemon?ownerId=1&categoryId=2
func (handler *Handler) createPokemon(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.IntQuery(request, "ownerId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	categoryID, err := requestutil.IntQuery(request, "categoryId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Pokemon
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePokemon(request.Context(), ownerID, categoryID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updatePokemon(writer http.ResponseWriter, request *http.Request) {
	pokemonID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Pokemon
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdatePokemon(request.Context(), pokemonID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deletePokemon(writer http.ResponseWriter, request *http.Request) {
	pokemonID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePokemon(request.Context(), pokemonID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
