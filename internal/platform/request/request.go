// Copyright (c) 2026 Pokereview. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pokereview/pokereview/internal/platform/apperr"
	"github.com/pokereview/pokereview/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntID retrieves a named URL parameter and parses it as a positive integer
identifier.

Returns:
  - int: The parsed identifier
  - error: apperr.ValidationError if the parameter is not a positive integer
*/
func IntID(request *http.Request, name string) (int, error) {
	raw := chi.URLParam(request, name)

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperr.ValidationError("Invalid identifier", apperr.FieldError{
			Field:   name,
			Message: "Must be a positive integer",
		})
	}

	return id, nil
}

/*
IntQuery retrieves a required query-string parameter and parses it as a
positive integer identifier (e.g. ?ownerId=1&categoryId=2).

Returns:
  - int: The parsed identifier
  - error: apperr.ValidationError if the parameter is missing or malformed
*/
func IntQuery(request *http.Request, name string) (int, error) {
	raw := request.URL.Query().Get(name)

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, apperr.ValidationError("Invalid query parameter", apperr.FieldError{
			Field:   name,
			Message: "Must be a positive integer",
		})
	}

	return id, nil
}
