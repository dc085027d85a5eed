package reviewer

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
	router.Get("/", handler.listReviewers)
	router.Get("/{id}", handler.getReviewer)
	router.Get("/{id}/reviews", handler.listReviewsByReviewer)
	router.Get("/pokemon/{pokemonId}", handler.listReviewersOfPokemon)
	router.Post("/", handler.createReviewer)
	router.Put("/{id}", handler.updateReviewer)
	router.Delete("/{id}", handler.deleteReviewer)
}

func (handler *Handler) listReviewers(writer http.ResponseWriter, request *http.Request) {
	reviewers, err := handler.service.ListReviewers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviewers)
}

func (handler *Handler) getReviewer(writer http.ResponseWriter, request *http.Request) {
	reviewerID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviewer, err := handler.service.GetReviewer(request.Context(), reviewerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviewer)
}

func (handler *Handler) listReviewsByReviewer(writer http.ResponseWriter, request *http.Request) {
	reviewerID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviews, err := handler.service.ListReviewsByReviewer(request.Context(), reviewerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviews)
}

func (handler *Handler) listReviewersOfPokemon(writer http.ResponseWriter, request *http.Request) {
	pokemonID, err := requestutil.IntID(request, "pokemonId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviewers, err := handler.service.ListReviewersOfPokemon(request.Context(), pokemonID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviewers)
}

func (handler *Handler) createReviewer(writer http.ResponseWriter, request *http.Request) {
	var input Reviewer
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateReviewer(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateReviewer(writer http.ResponseWriter, request *http.Request) {
	reviewerID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Reviewer
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateReviewer(request.Context(), reviewerID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteReviewer(writer http.ResponseWriter, request *http.Request) {
	reviewerID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteReviewer(request.Context(), reviewerID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
