package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login successful"
	MessageSuccessGetMe           = "profile retrieved successfully"
	MessageSuccessUpdateUser      = "profile updated successfully"
	MessageSuccessSendVerifyEmail = "verification email sent"
	MessageSuccessVerifyEmail     = "email verified successfully"
	MessageSuccessForgotPassword  = "password reset email sent"
	MessageSuccessResetPassword   = "password reset successfully"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedGetMe           = "failed to retrieve profile"
	MessageFailedUpdateUser      = "failed to update profile"
	MessageFailedSendVerifyEmail = "failed to send verification email"
	MessageFailedVerifyEmail     = "failed to verify email"
	MessageFailedForgotPassword  = "failed to process password reset"
	MessageFailedResetPassword   = "failed to reset password"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
)

type (
	RegisterRequest struct {
		Email       string `json:"email" validate:"required,email"`
		Password    string `json:"password" validate:"required,min=8"`
		DisplayName string `json:"display_name" validate:"required"`
	}

	RegisterResponse struct {
		ID          string `json:"id"`
		Email       string `json:"email"`
		DisplayName string `json:"display_name"`
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
		ID          string `json:"id"`
		Email       string `json:"email"`
		DisplayName string `json:"display_name"`
		PhotoURL    string `json:"photo_url,omitempty"`
		IsVerified  bool   `json:"is_verified"`
	}

	UpdateUserRequest struct {
		DisplayName string                `json:"display_name" form:"display_name" validate:"omitempty"`
		Photo       *multipart.FileHeader `json:"photo" form:"photo" validate:"omitempty"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}
)
