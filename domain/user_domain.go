package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login success"
	MessageSuccessGetProfile    = "success get user profile"
	MessageSuccessUpdateProfile = "user profile updated successfully"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetProfile    = "failed to get user profile"
	MessageFailedUpdateProfile = "failed to update user profile"

	ErrEmailRequired       = errors.New("user must have an email address")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserInactive        = errors.New("user account is inactive")
	ErrPasswordHashingFail = errors.New("failed to hash password")
)

type (
	RegisterUserRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=5"`
		Name     string `json:"name" validate:"omitempty,max=255"`
	}

	RegisterUserResponse struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UpdateUserRequest struct {
		Name     *string `json:"name" validate:"omitempty,max=255"`
		Password *string `json:"password" validate:"omitempty,min=5"`
	}

	UserProfileResponse struct {
		ID          string    `json:"id"`
		Email       string    `json:"email"`
		Name        string    `json:"name"`
		IsActive    bool      `json:"is_active"`
		IsStaff     bool      `json:"is_staff"`
		IsSuperuser bool      `json:"is_superuser"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
