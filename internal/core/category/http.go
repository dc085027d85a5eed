package category

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
	router.Get("/", handler.listCategories)
	router.Get("/{id}", handler.getCategory)
	router.Get("/{id}/pokemon", handler.listPokemonByCategory)
	router.Post("/", handler.createCategory)
	router.Put("/{id}", handler.updateCategory)
	router.Delete("/{id}", handler.deleteCategory)
}

func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	categoryID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.GetCategory(request.Context(), categoryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}

func (handler *Handler) listPokemonByCategory(writer http.ResponseWriter, request *http.Request) {
	categoryID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	pokemon, err := handler.service.ListPokemonByCategory(request.Context(), categoryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, pokemon)
}

func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	var input Category
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCategory(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	categoryID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Category
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateCategory(request.Context(), categoryID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	categoryID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCategory(request.Context(), categoryID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
