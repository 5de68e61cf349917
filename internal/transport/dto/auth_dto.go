package dto

import "professionals-api/internal/models"

// RegisterRequest defines the structure for creating a new account.
type RegisterRequest struct {
	Name                 string      `json:"name" validate:"required,max=100"`
	Email                string      `json:"email" validate:"required,email,max=255"`
	Password             string      `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirmation string      `json:"password_confirmation" validate:"required,eqfield=Password"`
	Role                 models.Role `json:"role" validate:"required,oneof=student company"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email                string `json:"email" validate:"required,email"`
	Token                string `json:"token" validate:"required"`
	Password             string `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// SocialCallbackRequest carries the query of an OAuth2 redirect.
type SocialCallbackRequest struct {
	Provider string `json:"-"`
	Code     string `form:"code" validate:"required"`
	State    string `form:"state" validate:"required"`
}

// VerifyEmailRequest carries the signed verification link.
type VerifyEmailRequest struct {
	UserID    int64  `json:"-"` // Set from auth context
	ID        int64  `json:"-"` // From path
	Hash      string `json:"-"` // From path
	Path      string `json:"-"`
	Expires   string `form:"expires" validate:"required"`
	Signature string `form:"signature" validate:"required"`
}

// AuthResponse is returned by register, login and social callbacks.
type AuthResponse struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
