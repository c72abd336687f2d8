package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"posts-api/controllers"
	"posts-api/middlewares"
)

// Config carries the dependencies needed for setting up routes.
type Config struct {
	Store  controllers.PostRepository
	Cors   *middlewares.CorsConfig
	Logger zerolog.Logger
}

// SetupRoutes sets up the application routes and middlewares.
func SetupRoutes(config Config) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = middlewares.NotFoundHandler()
	router.MethodNotAllowedHandler = middlewares.MethodNotAllowedHandler()

	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.NotFoundHandler = router.NotFoundHandler
	apiRouter.MethodNotAllowedHandler = router.MethodNotAllowedHandler

	postHandler := &controllers.PostHandler{Store: config.Store}
	controllers.SetupRootRoute(apiRouter)
	postHandler.SetupPostRoutes(apiRouter)

	// Apply global middlewares around the router so 404s and preflights see them too
	var handler http.Handler = router
	handler = middlewares.Recoverer(handler)
	handler = middlewares.CorsMiddleware(config.Cors)(handler)
	handler = middlewares.LoggingMiddleware(config.Logger)(handler)
	handler = middlewares.RequestID(handler)

	return handler
}
