package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"student-grades/internal/service"
)

const gradeNotFoundMessage = "Grade not found"

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// writeError maps an error returned by request decoding or by the service to
// a status code and a {"detail": ...} body.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *ValidationError
	var storageErr *service.StorageError

	switch {
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{"detail": validationErr.Fields})
	case errors.Is(err, service.ErrGradeNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": gradeNotFoundMessage})
	case errors.As(err, &storageErr):
		log.Printf("Storage error during %s: %v", storageErr.Op, storageErr.Err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": storageErr.Error()})
	default:
		log.Println("Unexpected error:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": err.Error()})
	}
}
