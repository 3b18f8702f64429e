package domain

import "errors"

var (
	MessageSuccessRegister         = "user registered successfully"
	MessageSuccessLogin            = "login successful"
	MessageSuccessGetUser          = "user retrieved successfully"
	MessageSuccessUpdateUser       = "user updated successfully"
	MessageSuccessSendVerification = "verification email sent"
	MessageSuccessVerifyEmail      = "email verified successfully"

	MessageFailedRegister         = "failed to register user"
	MessageFailedLogin            = "failed to login"
	MessageFailedGetUser          = "failed to retrieve user"
	MessageFailedUpdateUser       = "failed to update user"
	MessageFailedSendVerification = "failed to send verification email"
	MessageFailedVerifyEmail      = "failed to verify email"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UserResponse struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		Role       string `json:"role"`
		IsVerified bool   `json:"is_verified"`
	}

	UpdateUserRequest struct {
		Name string `json:"name" validate:"omitempty"`
	}

	SendVerificationRequest struct {
		Email string `json:"email" validate:"required,email"`
	}
)
