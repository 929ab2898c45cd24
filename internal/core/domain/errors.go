package domain

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrSupportRequestNotFound = errors.New("support request not found")
	ErrKnowledgeBaseNotFound  = errors.New("knowledge base not found")
	ErrSparePartNotFound      = errors.New("spare part not found")
	ErrJobNotFound            = errors.New("job not found")
	ErrTechnicianNotFound     = errors.New("technician not found")
)

var (
	ErrUserExists           = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidRefreshToken  = errors.New("invalid or expired refresh token")
	ErrForbidden            = errors.New("action not allowed for this role")
	ErrMissingInput         = errors.New("missing required input")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidPassword      = errors.New("invalid password")
	ErrBusinessNameRequired = errors.New("business name required for business accounts")
	ErrValidation           = errors.New("validation failed")
)

// ValidationError carries a client-facing message for a rejected field value.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Message string
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }
