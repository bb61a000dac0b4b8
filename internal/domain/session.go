package domain

import "time"

type Session struct {
	UserID    string    `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type AdminLoginRequest struct {
	Secret string `json:"secret" validate:"required"`
}
