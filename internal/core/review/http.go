package review

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
	router.Get("/", handler.listReviews)
	router.Get("/{id}", handler.getReview)
	router.Get("/pokemon/{pokemonId}", handler.listReviewsOfPokemon)
	router.Post("/", handler.createReview)
	router.Put("/{id}", handler.updateReview)
	router.Delete("/{id}", handler.deleteReview)
}

func (handler *Handler) listReviews(writer http.ResponseWriter, request *http.Request) {
	reviews, err := handler.service.ListReviews(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviews)
}

func (handler *Handler) getReview(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.service.GetReview(request.Context(), reviewID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, review)
}

func (handler *Handler) listReviewsOfPokemon(writer http.ResponseWriter, request *http.Request) {
	pokemonID, err := requestutil.IntID(request, "pokemonId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviews, err := handler.service.ListReviewsOfPokemon(request.Context(), pokemonID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reviews)
}

// createReview takes pokemonId and reviewerId as query parameters alongside
// the JSON payload: POST /reviews?pokemonId=1&reviewerId=2
func (handler *Handler) createReview(writer http.ResponseWriter, request *http.Request) {
	pokemonID, err := requestutil.IntQuery(request, "pokemonId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	reviewerID, err := requestutil.IntQuery(request, "reviewerId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Review
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateReview(request.Context(), pokemonID, reviewerID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateReview(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Review
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateReview(request.Context(), reviewID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteReview(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteReview(request.Context(), reviewID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
