package domain

import "errors"

// Resource errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrHabitNotFound = errors.New("habit not found")
	ErrTodoNotFound  = errors.New("todo not found")
	ErrAccessDenied  = errors.New("access denied")
)

// Validation errors
var (
	ErrMissingFields    = errors.New("name, email and password are required")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrEmailTaken       = errors.New("email already taken")
	ErrInvalidFrequency = errors.New("freq must be DAILY, WEEKLY or MONTHLY")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
)
