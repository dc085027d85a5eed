package country

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
	router.Get("/", handler.listCountries)
	router.Get("/{id}", handler.getCountry)
	router.Get("/{id}/owners", handler.listOwnersOfCountry)
	router.Get("/owners/{ownerId}", handler.getCountryOfOwner)
	router.Post("/", handler.createCountry)
	router.Put("/{id}", handler.updateCountry)
	router.Delete("/{id}", handler.deleteCountry)
}

func (handler *Handler) listCountries(writer http.ResponseWriter, request *http.Request) {
	countries, err := handler.service.ListCountries(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, countries)
}

func (handler *Handler) getCountry(writer http.ResponseWriter, request *http.Request) {
	countryID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	country, err := handler.service.GetCountry(request.Context(), countryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, country)
}

func (handler *Handler) listOwnersOfCountry(writer http.ResponseWriter, request *http.Request) {
	countryID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	owners, err := handler.service.ListOwnersOfCountry(request.Context(), countryID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, owners)
}

func (handler *Handler) getCountryOfOwner(writer http.ResponseWriter, request *http.Request) {
	ownerID, err := requestutil.IntID(request, "ownerId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	country, err := handler.service.GetCountryOfOwner(request.Context(), ownerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, country)
}

func (handler *Handler) createCountry(writer http.ResponseWriter, request *http.Request) {
	var input Country
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCountry(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) updateCountry(writer http.ResponseWriter, request *http.Request) {
	countryID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Country
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateCountry(request.Context(), countryID, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, input)
}

func (handler *Handler) deleteCountry(writer http.ResponseWriter, request *http.Request) {
	countryID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCountry(request.Context(), countryID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
