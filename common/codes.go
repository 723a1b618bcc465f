package common

import "errors"

// Code is a stable numeric response code for host RPC layers. Values are
// part of the external contract and must not be renumbered.
type Code int

const (
	CodeOK Code = iota
	CodeInternal
	CodeNotFound
	CodeAlreadyExists
	CodeAccessForbidden
	CodeInsufficientPrivilege
	CodeInvalidInput
	CodeContentValidation
	CodeCategoryValidation
	CodePermissionLevelMismatch
	CodeTemporalBoundary
)

var codeNames = map[Code]string{
	CodeOK:                      "OK",
	CodeInternal:                "INTERNAL",
	CodeNotFound:                "NOT_FOUND",
	CodeAlreadyExists:           "ALREADY_EXISTS",
	CodeAccessForbidden:         "ACCESS_FORBIDDEN",
	CodeInsufficientPrivilege:   "INSUFFICIENT_PRIVILEGE",
	CodeInvalidInput:            "INVALID_INPUT",
	CodeContentValidation:       "CONTENT_VALIDATION_FAILED",
	CodeCategoryValidation:      "CATEGORY_VALIDATION_ERROR",
	CodePermissionLevelMismatch: "PERMISSION_LEVEL_MISMATCH",
	CodeTemporalBoundary:        "TEMPORAL_BOUNDARY_VIOLATION",
}

func (c Code) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return "UNKNOWN"
}

// CodeOf maps an error to its response code. Wrapped errors are matched with
// errors.Is; anything outside the closed set maps to CodeInternal.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrorNotFound):
		return CodeNotFound
	case errors.Is(err, ErrorAlreadyExists):
		return CodeAlreadyExists
	case errors.Is(err, ErrorAccessForbidden):
		return CodeAccessForbidden
	case errors.Is(err, ErrorInsufficientPrivilege):
		return CodeInsufficientPrivilege
	case errors.Is(err, ErrorInvalidInput):
		return CodeInvalidInput
	case errors.Is(err, ErrorContentValidation):
		return CodeContentValidation
	case errors.Is(err, ErrorCategoryValidation):
		return CodeCategoryValidation
	case errors.Is(err, ErrorPermissionLevelMismatch):
		return CodePermissionLevelMismatch
	case errors.Is(err, ErrorTemporalBoundary):
		return CodeTemporalBoundary
	default:
		return CodeInternal
	}
}
