package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"taskhub/models"
)

const contentTypeJSON = "application/json; charset=utf-8"

// problemDetails is the body of every non-2xx response.
type problemDetails struct {
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func writeProblem(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, problemDetails{Status: status, Detail: detail})
}

// writeError translates a service or repository error into a status
// code with a problem-details body.
func writeError(w http.ResponseWriter, err error) {
	var notFound *models.NotFoundError
	var conflict *models.ConflictError
	var validation *models.ValidationError
	switch {
	case errors.As(err, &notFound):
		writeProblem(w, http.StatusNotFound, notFound.Message)
	case errors.As(err, &conflict):
		writeProblem(w, http.StatusConflict, conflict.Message)
	case errors.As(err, &validation):
		writeProblem(w, http.StatusBadRequest, validation.Message)
	default:
		log.Printf("Internal error: %v", err)
		writeProblem(w, http.StatusInternalServerError, "internal server error")
	}
}
