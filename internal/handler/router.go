package handler

import (
	"io"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func NewRouter(gradeHandler *GradeHandler, healthHandler *HealthHandler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/grades/", gradeHandler.CreateGrade).Methods("POST")
	r.HandleFunc("/grades/", gradeHandler.ListGrades).Methods("GET")
	r.HandleFunc("/grades/{id}", gradeHandler.GetGrade).Methods("GET")
	r.HandleFunc("/grades/{id}", gradeHandler.UpdateGrade).Methods("PUT")
	r.HandleFunc("/grades/{id}", gradeHandler.DeleteGrade).Methods("DELETE")

	r.HandleFunc("/health", healthHandler.Health).Methods("GET")

	return r
}

// Wrap adds panic recovery, CORS and access logging around the router.
func Wrap(r http.Handler, allowedOrigins []string, accessLog io.Writer) http.Handler {
	var h http.Handler = handlers.CombinedLoggingHandler(accessLog, r)
	h = handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(h)
	return handlers.RecoveryHandler(
		handlers.RecoveryLogger(log.Default()),
		handlers.PrintRecoveryStack(true),
	)(h)
}
