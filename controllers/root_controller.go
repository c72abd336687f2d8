package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"posts-api/middlewares"
	"posts-api/models"
)

const healthMessage = "Posts API with Go and MongoDB"

// healthCheckerHandler reports that the server is up. It does not touch the database.
func healthCheckerHandler(w http.ResponseWriter, r *http.Request) {
	middlewares.RespondJSON(w, r, &models.GenericResponse{
		Status:  models.StatusSuccess,
		Message: healthMessage,
	}, http.StatusOK)
}

// SetupRootRoute registers the health check.
func SetupRootRoute(router *mux.Router) {
	router.HandleFunc("/healthchecker", healthCheckerHandler).Methods(http.MethodGet)
}
