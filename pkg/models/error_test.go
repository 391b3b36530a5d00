package models

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/go-sql-driver/mysql"
	. "github.com/onsi/gomega"
	pkgerrors "github.com/pkg/errors"
)

func TestErrorMessage(t *testing.T) {
	g := NewWithT(t)
	err := errors.New("test error")

	got := NewErrorMessage(123, err)

	g.Expect(got.Code()).To(Equal(123))
	g.Expect(got.Error()).To(Equal("test error"))
	g.Expect(got.Message).To(Equal("test error"))
	g.Expect(got.Unwrap()).To(BeIdenticalTo(err))
}

func TestErrorConstructors(t *testing.T) {
	g := NewWithT(t)
	err := errors.New("test error")

	g.Expect(NewBadRequestError(err).Code()).To(Equal(http.StatusBadRequest))
	g.Expect(NewConflictError(err).Code()).To(Equal(http.StatusConflict))
	g.Expect(NewServiceUnavailableError(err).Code()).To(Equal(http.StatusServiceUnavailable))
	g.Expect(NewInternalServerError(err).Code()).To(Equal(http.StatusInternalServerError))
	g.Expect(NewTimeoutError(err).Code()).To(Equal(http.StatusGatewayTimeout))
}

func TestWrapCancelledErr(t *testing.T) {
	g := NewWithT(t)

	got := WrapCancelledErr(pkgerrors.Wrap(context.Canceled, "cycle"))
	var e ErrorWithCode
	g.Expect(errors.As(got, &e)).To(BeTrue())
	g.Expect(e.Code()).To(Equal(StatusRequestCancelled))

	other := errors.New("other")
	g.Expect(WrapCancelledErr(other)).To(BeIdenticalTo(other))
}

func TestClassifyEngineError(t *testing.T) {
	g := NewWithT(t)

	err := pkgerrors.Wrap(&mysql.MySQLError{Number: 1142, Message: "UPDATE command denied"}, "failed to update privileges")
	g.Expect(ClassifyEngineError(err)).To(Equal(EngineError{Number: 1142, Message: "UPDATE command denied"}))

	err = pkgerrors.New("connection refused")
	g.Expect(ClassifyEngineError(err)).To(Equal(EngineError{Message: "connection refused"}))
}
