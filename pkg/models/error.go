package models

import (
	"context"
	"net/http"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

// StatusRequestCancelled unofficial status code, actually it won't be sent over the wire, we just need a marker
const StatusRequestCancelled = 499

var (
	ErrCycleInProgress = errors.New("enforcement cycle is already in progress")
	ErrNotLeader       = errors.New("this instance is not the elected leader")
	ErrTenantNotFound  = errors.New("tenant not found")
)

type ErrorWithCode interface {
	error
	Code() int
}

type ErrorMessage struct {
	code    int
	err     error
	Message string `json:"message"`
}

func NewErrorMessage(code int, err error) *ErrorMessage {
	return &ErrorMessage{
		code:    code,
		err:     err,
		Message: err.Error(),
	}
}

func (e *ErrorMessage) Code() int {
	return e.code
}

func (e *ErrorMessage) Error() string {
	return e.err.Error()
}

func (e *ErrorMessage) Unwrap() error {
	return e.err
}

func NewBadRequestError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusBadRequest, err)
}

func NewConflictError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusConflict, err)
}

func NewServiceUnavailableError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusServiceUnavailable, err)
}

func NewInternalServerError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusInternalServerError, err)
}

func NewTimeoutError(err error) *ErrorMessage {
	return NewErrorMessage(http.StatusGatewayTimeout, err)
}

func NewCancelledError(err error) *ErrorMessage {
	return NewErrorMessage(StatusRequestCancelled, err)
}

func WrapCancelledErr(err error) error {
	var e ErrorWithCode
	if errors.Is(err, context.Canceled) && !errors.As(err, &e) {
		err = NewCancelledError(err)
	}
	return err
}

// EngineError describes a failure reported by the database engine.
// Number is zero when the failure did not come from the server itself (network, driver).
type EngineError struct {
	Number  uint16
	Message string
}

// ClassifyEngineError extracts server error number and message from the error chain.
func ClassifyEngineError(err error) EngineError {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return EngineError{Number: myErr.Number, Message: myErr.Message}
	}
	return EngineError{Message: err.Error()}
}
