// Package common defines shared constants and sentinel errors used across
// the record vault. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("record not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Authorization errors.
	ErrorAccessForbidden       = errors.New("access forbidden")
	ErrorInsufficientPrivilege = errors.New("insufficient privilege")

	// Validation errors. Title and hash problems surface as ErrorInvalidInput,
	// payload and tags as ErrorContentValidation, category as
	// ErrorCategoryValidation; callers must be able to tell them apart.
	ErrorInvalidInput       = errors.New("invalid input")
	ErrorContentValidation  = errors.New("content validation failed")
	ErrorCategoryValidation = errors.New("category validation failed")

	// Grant-specific errors.
	ErrorPermissionLevelMismatch = errors.New("permission level mismatch")
	ErrorTemporalBoundary        = errors.New("temporal boundary violation")
)
