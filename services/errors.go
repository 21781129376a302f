package services

import (
	"errors"
	"fmt"
)

// Sentinel errors for the service layer. Handlers dispatch on them with
// errors.Is and translate them to status codes.
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists")
)

type serviceError struct {
	kind error
	msg  string
}

func (e *serviceError) Error() string { return e.msg }

func (e *serviceError) Unwrap() error { return e.kind }

func notFoundf(format string, args ...interface{}) error {
	return &serviceError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...interface{}) error {
	return &serviceError{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}
