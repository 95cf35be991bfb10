package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login success"
	MessageSuccessGetMe    = "success get user detail"
	MessageSuccessSendMail = "verification email sent"
	MessageSuccessVerify   = "email verified successfully"

	MessageFailedRegister  = "failed to register user"
	MessageFailedLogin     = "failed to login"
	MessageFailedGetMe     = "failed to get user detail"
	MessageFailedSendMail  = "failed to send verification email"
	MessageFailedVerify    = "failed to verify email"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrAccountNotVerified = errors.New("account not verified")
)

type (
	UserRegisterRequest struct {
		Name     string `json:"name" validate:"required,max=255"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	UserRegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	UserLoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UserLoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UserResponse struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Email      string `json:"email"`
		IsVerified bool   `json:"is_verified"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}
)
