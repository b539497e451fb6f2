package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (app *application) routes() http.Handler {
	mux := chi.NewRouter()

	mux.NotFound(app.notFound)
	mux.MethodNotAllowed(app.methodNotAllowed)

	mux.Use(app.traceID)
	mux.Use(app.logAccess)
	mux.Use(app.recoverPanic)

	mux.Use(app.CORS)

	mux.Get("/api/v1/status", app.handleStatus)
	mux.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	mux.Route("/api/v1/auth", func(mux chi.Router) {
		mux.Post("/sign_up", app.handleSignUp)
		mux.Post("/sign_in", app.handleSignIn)
		mux.Get("/refresh", app.handleRefresh)
	})

	mux.Route("/api/v1/clients", func(mux chi.Router) {
		mux.Use(app.authenticate)

		mux.Get("/all", app.handleAllClients)
		mux.Get("/{clientId}", app.handleGetClient)
		mux.Post("/", app.handleAddClient)
		mux.Put("/{clientId}", app.handleUpdateClient)
		mux.Delete("/{clientId}", app.handleDeleteClient)
	})

	mux.Route("/api/v1/season_tickets", func(mux chi.Router) {
		mux.Use(app.authenticate)

		mux.Get("/all", app.handleAllSeasonTickets)
		mux.Get("/{seasonTicketId}", app.handleGetSeasonTicket)
		mux.Post("/", app.handleAddSeasonTicket)
		mux.Put("/{seasonTicketId}", app.handleUpdateSeasonTicket)
		mux.Delete("/{seasonTicketId}", app.handleDeleteSeasonTicket)
	})

	mux.Route("/api/v1/visits", func(mux chi.Router) {
		mux.Use(app.authenticate)

		mux.Post("/start", app.handleStartVisit)
		mux.Put("/end/{visitId}", app.handleEndVisit)
		mux.Delete("/{visitId}", app.handleDeleteVisit)
	})

	return mux
}
