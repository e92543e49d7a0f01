package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/spotbnb/docs"
	"github.com/sbilibin2017/spotbnb/internal/handlers"
	"github.com/sbilibin2017/spotbnb/internal/middlewares"
)

// Deps are the collaborators the HTTP API is built from.
type Deps struct {
	Auth         handlers.Authenticator
	SpotReader   handlers.SpotReader
	SpotWriter   handlers.SpotWriter
	SpotImages   handlers.SpotImageManager
	Reviews      handlers.ReviewManager
	ReviewImages handlers.ReviewImageManager
	Bookings     handlers.BookingManager
	Prices       handlers.PriceQuoter

	Tokener     middlewares.Tokener
	Revocations middlewares.RevocationChecker

	// SwaggerURL is where the UI fetches doc.json from.
	SwaggerURL string
}

// New mounts the API under /api and the docs under /swagger.
func New(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Use(middlewares.IdentityMiddleware(d.Tokener, d.Revocations))

		// Public routes
		r.Post("/users", handlers.NewSignupHandler(d.Auth))
		r.Post("/session", handlers.NewLoginHandler(d.Auth))
		r.Get("/session", handlers.NewCurrentSessionHandler(d.Auth))
		r.Get("/spots", handlers.NewListSpotsHandler(d.SpotReader))
		r.Get("/spots/{id}", handlers.NewGetSpotHandler(d.SpotReader))
		r.Get("/spots/{id}/reviews", handlers.NewSpotReviewsHandler(d.Reviews))
		r.Get("/spots/{id}/price", handlers.NewSpotPriceHandler(d.Prices))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middlewares.RequireAuth)

			r.Delete("/session", handlers.NewLogoutHandler(d.Auth))

			r.Get("/spots/current", handlers.NewCurrentSpotsHandler(d.SpotReader))
			r.Post("/spots", handlers.NewCreateSpotHandler(d.SpotWriter))
			r.Put("/spots/{id}", handlers.NewUpdateSpotHandler(d.SpotWriter))
			r.Delete("/spots/{id}", handlers.NewDeleteSpotHandler(d.SpotWriter))
			r.Post("/spots/{id}/images", handlers.NewAddSpotImageHandler(d.SpotImages))
			r.Delete("/spot-images/{id}", handlers.NewDeleteSpotImageHandler(d.SpotImages))

			r.Post("/spots/{id}/reviews", handlers.NewCreateReviewHandler(d.Reviews))
			r.Get("/reviews/current", handlers.NewCurrentReviewsHandler(d.Reviews))
			r.Put("/reviews/{id}", handlers.NewUpdateReviewHandler(d.Reviews))
			r.Delete("/reviews/{id}", handlers.NewDeleteReviewHandler(d.Reviews))
			r.Post("/reviews/{id}/images", handlers.NewAddReviewImageHandler(d.ReviewImages))
			r.Delete("/review-images/{id}", handlers.NewDeleteReviewImageHandler(d.ReviewImages))

			r.Get("/spots/{id}/bookings", handlers.NewSpotBookingsHandler(d.Bookings))
			r.Post("/spots/{id}/bookings", handlers.NewCreateBookingHandler(d.Bookings))
			r.Get("/bookings/current", handlers.NewCurrentBookingsHandler(d.Bookings))
			r.Get("/bookings/{id}", handlers.NewGetBookingHandler(d.Bookings))
			r.Put("/bookings/{id}", handlers.NewUpdateBookingHandler(d.Bookings))
			r.Delete("/bookings/{id}", handlers.NewDeleteBookingHandler(d.Bookings))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.SwaggerURL)))

	return r
}
