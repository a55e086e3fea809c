package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel matched by every NotFoundError, so callers can
// test errors.Is(err, domain.ErrNotFound) without knowing the resource kind.
var ErrNotFound = errors.New("resource not found")

// NotFoundError reports that a lookup by id matched no record.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found with id %q", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NewNotFound builds a NotFoundError for the given resource kind and id.
func NewNotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

// Validation failures: structurally valid requests that violate a domain rule.
var (
	ErrNotAStudent          = errors.New("user is not a student")
	ErrSubmissionNotAllowed = errors.New("student not authorized to submit this assignment")
	ErrInvalidRole          = errors.New("invalid role")
	ErrEmailTaken           = errors.New("email already in use")
	ErrUsernameTaken        = errors.New("username already taken")
)

// Authentication failures.
var ErrInvalidCredentials = errors.New("invalid credentials")
