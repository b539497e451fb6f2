package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/protomem/club-manager/internal/model"
)

func clientIDFromRequest(r *http.Request) (model.ID, error) {
	return uuid.Parse(chi.URLParam(r, "clientId"))
}

func seasonTicketIDFromRequest(r *http.Request) (model.ID, error) {
	return uuid.Parse(chi.URLParam(r, "seasonTicketId"))
}

func visitIDFromRequest(r *http.Request) (model.ID, error) {
	return uuid.Parse(chi.URLParam(r, "visitId"))
}
