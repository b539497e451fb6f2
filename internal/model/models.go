package model

import (
	"time"

	"github.com/google/uuid"
)

type ID = uuid.UUID

type User struct {
	ID ID `json:"id" db:"id"`

	Username string  `json:"username" db:"username"`
	Password string  `json:"-" db:"password"`
	Email    *string `json:"email,omitempty" db:"email"`

	RefreshToken *string `json:"-" db:"refresh_token"`
}

type Client struct {
	ID ID `json:"id" db:"id"`

	Name       string `json:"name" db:"name"`
	Surname    string `json:"surname" db:"surname"`
	Patronymic string `json:"patronymic" db:"patronymic"`

	Sex      bool    `json:"sex" db:"sex"`
	Email    *string `json:"email,omitempty" db:"email"`
	Phone    string  `json:"phone" db:"phone"`
	PhotoURL *string `json:"photoUrl,omitempty" db:"photo_url"`
}

type SeasonTicket struct {
	ID ID `json:"id" db:"id"`

	Client    ID        `json:"clientId" db:"client_id"`
	Type      string    `json:"type" db:"type"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
}

type Visit struct {
	ID ID `json:"id" db:"id"`

	Client ID         `json:"clientId" db:"client_id"`
	Start  time.Time  `json:"visitStart" db:"visit_start"`
	End    *time.Time `json:"visitEnd" db:"visit_end"`
	Box    int        `json:"box" db:"box"`
}
