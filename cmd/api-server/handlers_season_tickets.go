package main

import (
	"net/http"
	"time"

	"github.com/protomem/club-manager/internal/database"
	"github.com/protomem/club-manager/internal/model"
	"github.com/protomem/club-manager/internal/request"
	"github.com/protomem/club-manager/internal/response"
	"github.com/protomem/club-manager/internal/validator"
)

func (app *application) handleAllSeasonTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := app.seasonTickets.All(r.Context())
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"seasonTickets": tickets}); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleGetSeasonTicket(w http.ResponseWriter, r *http.Request) {
	ticketID, err := seasonTicketIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	ticket, err := app.seasonTickets.Get(r.Context(), ticketID)
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"seasonTicket": ticket}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestAddSeasonTicket struct {
	ClientID  model.ID  `json:"clientId"`
	Type      string    `json:"type"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (app *application) handleAddSeasonTicket(w http.ResponseWriter, r *http.Request) {
	var input requestAddSeasonTicket
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateRequestAddSeasonTicket(&v, input)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	id, err := app.seasonTickets.Add(r.Context(), database.InsertSeasonTicketDTO{
		Client:    input.ClientID,
		Type:      input.Type,
		ExpiresAt: input.ExpiresAt,
	})
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusCreated, response.JSONObject{
		"message": "season ticket added successfully",
		"id":      id,
	})
	if err != nil {
		app.serverError(w, r, err)
	}
}

type requestUpdateSeasonTicket struct {
	ClientID  *model.ID  `json:"clientId"`
	Type      *string    `json:"type"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

func (app *application) handleUpdateSeasonTicket(w http.ResponseWriter, r *http.Request) {
	ticketID, err := seasonTicketIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	var input requestUpdateSeasonTicket
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	if input.Type != nil {
		v.CheckField(validator.NotBlank(*input.Type), "type", "cannot be blank")
	}
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	err = app.seasonTickets.Update(r.Context(), ticketID, database.UpdateSeasonTicketDTO{
		Client:    input.ClientID,
		Type:      input.Type,
		ExpiresAt: input.ExpiresAt,
	})
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, response.JSONObject{"message": "season ticket updated successfully"})
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleDeleteSeasonTicket(w http.ResponseWriter, r *http.Request) {
	ticketID, err := seasonTicketIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	if err := app.seasonTickets.Delete(r.Context(), ticketID); err != nil {
		app.apiError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, response.JSONObject{"message": "season ticket deleted successfully"})
	if err != nil {
		app.serverError(w, r, err)
	}
}
