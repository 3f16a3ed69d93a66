package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrAuthenticationRequired = errors.New("user not authenticated")
	ErrAlreadyBookmarked      = errors.New("companion is already bookmarked")
	ErrNotFound               = errors.New("not found")
)

// StoreError wraps a data store failure. Its message is the store's message, unchanged.
type StoreError struct {
	Op  string
	Err error
}

func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// LimitExceededError is returned when a caller's plan does not allow another companion.
type LimitExceededError struct {
	Limit int `json:"limit"`
	Used  int `json:"used"`
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("companion limit reached (%d of %d used)", e.Used, e.Limit)
}

// ValidationError carries per-field messages for a rejected request body.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
