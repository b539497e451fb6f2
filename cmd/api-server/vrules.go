package main

import (
	"github.com/protomem/club-manager/internal/validator"
)

// Validation rules

func validateRequestSignUp(v *validator.Validator, request requestSignUp) {
	v.CheckField(validator.NotBlank(request.Username), "username", "cannot be blank")
	v.CheckField(validator.MaxRunes(request.Username, 256), "username", "too long")
	v.CheckField(validator.NotBlank(request.Password), "password", "cannot be blank")
	v.CheckField(validator.MinRunes(request.Password, 8), "password", "too short")
	if request.Email != nil {
		v.CheckField(validator.IsEmail(*request.Email), "email", "must be a valid email address")
	}
}

func validateRequestAddClient(v *validator.Validator, request requestAddClient) {
	validateClientName(v, request.Name)
	validateClientSurname(v, request.Surname)
	validateClientPatronymic(v, request.Patronymic)
	v.CheckField(request.Sex != nil, "sex", "must be provided")
	if request.Email != nil {
		validateClientEmail(v, *request.Email)
	}
	validateClientPhone(v, request.Phone)
}

func validateRequestUpdateClient(v *validator.Validator, request requestUpdateClient) {
	if request.Name != nil {
		validateClientName(v, *request.Name)
	}
	if request.Surname != nil {
		validateClientSurname(v, *request.Surname)
	}
	if request.Patronymic != nil {
		validateClientPatronymic(v, *request.Patronymic)
	}
	if request.Email != nil {
		validateClientEmail(v, *request.Email)
	}
	if request.Phone != nil {
		validateClientPhone(v, *request.Phone)
	}
}

func validateRequestAddSeasonTicket(v *validator.Validator, request requestAddSeasonTicket) {
	v.CheckField(validator.NotBlank(request.Type), "type", "cannot be blank")
	v.CheckField(!request.ExpiresAt.IsZero(), "expiresAt", "must be provided")
}

func validateClientName(v *validator.Validator, name string) {
	v.CheckField(validator.NotBlank(name), "name", "cannot be blank")
	v.CheckField(validator.MaxRunes(name, 256), "name", "too long")
}

func validateClientSurname(v *validator.Validator, surname string) {
	v.CheckField(validator.NotBlank(surname), "surname", "cannot be blank")
	v.CheckField(validator.MaxRunes(surname, 256), "surname", "too long")
}

func validateClientPatronymic(v *validator.Validator, patronymic string) {
	v.CheckField(validator.NotBlank(patronymic), "patronymic", "cannot be blank")
	v.CheckField(validator.MaxRunes(patronymic, 256), "patronymic", "too long")
}

func validateClientEmail(v *validator.Validator, email string) {
	v.CheckField(validator.IsEmail(email), "email", "must be a valid email address")
}

func validateClientPhone(v *validator.Validator, phone string) {
	v.CheckField(validator.NotBlank(phone), "phone", "cannot be blank")
	v.CheckField(validator.MaxRunes(phone, 32), "phone", "too long")
}
