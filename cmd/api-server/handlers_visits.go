package main

import (
	"net/http"

	"github.com/protomem/club-manager/internal/model"
	"github.com/protomem/club-manager/internal/request"
	"github.com/protomem/club-manager/internal/response"
)

type requestStartVisit struct {
	ClientID model.ID `json:"clientId"`
	Box      int      `json:"box"`
}

func (app *application) handleStartVisit(w http.ResponseWriter, r *http.Request) {
	var input requestStartVisit
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	id, err := app.visits.Start(r.Context(), input.ClientID, input.Box)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusCreated, response.JSONObject{
		"message": "visit registered successfully",
		"id":      id,
	})
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleEndVisit(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	if err := app.visits.End(r.Context(), visitID); err != nil {
		app.apiError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, response.JSONObject{"message": "visit closed successfully"})
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleDeleteVisit(w http.ResponseWriter, r *http.Request) {
	visitID, err := visitIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	if err := app.visits.Delete(r.Context(), visitID); err != nil {
		app.serverError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, response.JSONObject{"message": "visit deleted successfully"})
	if err != nil {
		app.serverError(w, r, err)
	}
}
