package main

import (
	"fmt"
	"net/http"
	"strconv"

	goerrors "github.com/go-errors/errors"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/oliverisaac/notesboard/types"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type errorResponse struct {
	Message string `json:"message"`
}

type requestValidator struct {
	validate *validator.Validate
}

func newRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return types.Invalid("invalid request", err)
	}
	return nil
}

type normalizer interface {
	Normalize()
}

// bindAndValidate decodes the body, normalizes it when the request supports
// it, and only then runs validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return types.Invalid("invalid request body", err)
	}
	if n, ok := req.(normalizer); ok {
		n.Normalize()
	}
	return c.Validate(req)
}

// errorHandler turns every error returned by a handler into a JSON response.
func errorHandler(apiErrors *prometheus.CounterVec) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, message := translateError(err)
		apiErrors.WithLabelValues(strconv.Itoa(status)).Inc()

		entry := logrus.WithFields(logrus.Fields{
			"method":     c.Request().Method,
			"uri":        c.Request().RequestURI,
			"status":     status,
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		})
		if status >= http.StatusInternalServerError {
			entry.Error(goerrors.Wrap(err, 1).ErrorStack())
		} else {
			entry.Debug(err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, errorResponse{Message: message})
		}
		if err != nil {
			entry.Error(errors.Wrap(err, "writing error response"))
		}
	}
}

func translateError(err error) (int, string) {
	var statusErr types.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status(), statusErr.Error()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, fmt.Sprint(httpErr.Message)
	}

	return http.StatusInternalServerError, "internal server error"
}
