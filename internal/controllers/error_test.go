package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/selebrow/dbquota/pkg/models"
)

func TestErrorHandler_HTTPError(t *testing.T) {
	g := NewWithT(t)
	c, rec := getContext(http.MethodGet, "/whatever")

	err := &echo.HTTPError{
		Code:     http.StatusNotImplemented,
		Message:  "test error",
		Internal: nil,
	}
	ErrorHandler(err, c)

	g.Expect(rec).To(HaveHTTPStatus(http.StatusNotImplemented))
	g.Expect(rec.Body.String()).To(MatchJSON(`{"message": "test error"}`))
}

func TestErrorHandler_ErrorWithCode(t *testing.T) {
	g := NewWithT(t)
	c, rec := getContext(http.MethodGet, "/whatever")

	err := models.NewConflictError(models.ErrCycleInProgress)
	ErrorHandler(errors.Wrap(err, "enforce"), c)

	g.Expect(rec).To(HaveHTTPStatus(http.StatusConflict))
	g.Expect(rec.Body.String()).To(MatchJSON(`{"message": "enforce: enforcement cycle is already in progress"}`))
}

func TestErrorHandler_Cancelled(t *testing.T) {
	g := NewWithT(t)
	c, rec := getContext(http.MethodGet, "/whatever")

	ErrorHandler(models.WrapCancelledErr(context.Canceled), c)

	g.Expect(rec).To(HaveHTTPStatus(models.StatusRequestCancelled))
	g.Expect(rec.Body.String()).To(BeEmpty())
}

func TestErrorHandler_Default(t *testing.T) {
	g := NewWithT(t)
	c, rec := getContext(http.MethodGet, "/whatever")

	ErrorHandler(errors.New("test error"), c)

	g.Expect(rec).To(HaveHTTPStatus(http.StatusInternalServerError))
	g.Expect(rec.Body.String()).To(MatchJSON(`{"message": "test error"}`))
}

func TestErrorHandler_Committed(t *testing.T) {
	g := NewWithT(t)
	c, rec := getContext(http.MethodGet, "/whatever")

	rec.WriteHeader(http.StatusNotFound)
	c.Response().Committed = true
	ErrorHandler(errors.New("test error"), c)

	g.Expect(rec).To(HaveHTTPStatus(http.StatusNotFound))
	g.Expect(rec.Body.String()).To(BeEmpty())
}

func getContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, http.NoBody)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}
