package services

import "errors"

// Sentinel errors controllers translate into HTTP statuses.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrDuplicateUser      = errors.New("user with this email or student ID already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountDeactivated = errors.New("account is deactivated")
	ErrWrongPassword      = errors.New("current password is incorrect")
	ErrSelfAction         = errors.New("cannot perform this action on yourself")
	ErrLastAdmin          = errors.New("cannot demote the last admin")
)
