package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"airline-ops-server/model"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// writeDomainError maps the domain error taxonomy to HTTP statuses:
// validation 400, not found 404, conflict 409, invalid state 422.
// Anything else is an internal error and its cause stays out of the body.
func writeDomainError(w http.ResponseWriter, err error) {
	var validationErr *model.ValidationError
	var notFoundErr *model.NotFoundError
	var conflictErr *model.ConflictError
	var stateErr *model.StateError

	switch {
	case errors.As(err, &validationErr):
		log.Println("Validation error: ", err)
		writeDetail(w, http.StatusBadRequest, validationErr.Detail)
	case errors.As(err, &notFoundErr):
		log.Println("Not found: ", err)
		writeDetail(w, http.StatusNotFound, notFoundErr.Detail)
	case errors.As(err, &conflictErr):
		log.Println("Conflict: ", err)
		writeDetail(w, http.StatusConflict, conflictErr.Detail)
	case errors.As(err, &stateErr):
		log.Println("Invalid state transition: ", err)
		writeDetail(w, http.StatusUnprocessableEntity, stateErr.Detail)
	default:
		log.Println("Error while interacting with the database: ", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}
