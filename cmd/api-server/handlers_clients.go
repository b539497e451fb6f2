package main

import (
	"net/http"

	"github.com/protomem/club-manager/internal/database"
	"github.com/protomem/club-manager/internal/request"
	"github.com/protomem/club-manager/internal/response"
	"github.com/protomem/club-manager/internal/validator"
)

func (app *application) handleAllClients(w http.ResponseWriter, r *http.Request) {
	clients, err := app.clients.All(r.Context())
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"clients": clients}); err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleGetClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := clientIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	client, err := app.clients.Get(r.Context(), clientID)
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	if err := response.JSON(w, http.StatusOK, response.JSONObject{"client": client}); err != nil {
		app.serverError(w, r, err)
	}
}

type requestAddClient struct {
	Name       string  `json:"name"`
	Surname    string  `json:"surname"`
	Patronymic string  `json:"patronymic"`
	Sex        *bool   `json:"sex"`
	Email      *string `json:"email"`
	Phone      string  `json:"phone"`
	PhotoURL   *string `json:"photoUrl"`
}

func (app *application) handleAddClient(w http.ResponseWriter, r *http.Request) {
	var input requestAddClient
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateRequestAddClient(&v, input)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	id, err := app.clients.Add(r.Context(), database.InsertClientDTO{
		Name:       input.Name,
		Surname:    input.Surname,
		Patronymic: input.Patronymic,
		Sex:        *input.Sex,
		Email:      input.Email,
		Phone:      input.Phone,
		PhotoURL:   input.PhotoURL,
	})
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusCreated, response.JSONObject{
		"message": "client added successfully",
		"id":      id,
	})
	if err != nil {
		app.serverError(w, r, err)
	}
}

type requestUpdateClient struct {
	Name       *string `json:"name"`
	Surname    *string `json:"surname"`
	Patronymic *string `json:"patronymic"`
	Sex        *bool   `json:"sex"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	PhotoURL   *string `json:"photoUrl"`
}

func (app *application) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := clientIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	var input requestUpdateClient
	if err := request.DecodeJSONStrict(w, r, &input); err != nil {
		app.badRequest(w, r, err)
		return
	}

	var v validator.Validator
	validateRequestUpdateClient(&v, input)
	if v.HasErrors() {
		app.failedValidation(w, r, v)
		return
	}

	err = app.clients.Update(r.Context(), clientID, database.UpdateClientDTO{
		Name:       input.Name,
		Surname:    input.Surname,
		Patronymic: input.Patronymic,
		Sex:        input.Sex,
		Email:      input.Email,
		Phone:      input.Phone,
		PhotoURL:   input.PhotoURL,
	})
	if err != nil {
		app.apiError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, response.JSONObject{"message": "client updated successfully"})
	if err != nil {
		app.serverError(w, r, err)
	}
}

func (app *application) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := clientIDFromRequest(r)
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	if err := app.clients.Delete(r.Context(), clientID); err != nil {
		app.apiError(w, r, err)
		return
	}

	err = response.JSON(w, http.StatusOK, response.JSONObject{"message": "client deleted successfully"})
	if err != nil {
		app.serverError(w, r, err)
	}
}
