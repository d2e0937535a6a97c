package types

import (
	"fmt"
	"net/http"
)

// StatusError is implemented by errors that know which HTTP status they map to.
type StatusError interface {
	error
	Status() int
}

type NotFoundError struct {
	Resource string
	ID       string
}

func NotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func (e *NotFoundError) Status() int { return http.StatusNotFound }

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Status() int { return http.StatusConflict }

// InvalidError wraps request decoding and validation problems.
type InvalidError struct {
	Message string
	Err     error
}

func Invalid(msg string, err error) *InvalidError {
	return &InvalidError{Message: msg, Err: err}
}

func (e *InvalidError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e *InvalidError) Unwrap() error { return e.Err }

func (e *InvalidError) Status() int { return http.StatusBadRequest }
