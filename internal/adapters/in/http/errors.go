package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"scheduling/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// errorResponse maps the error taxonomy onto a status code and a client-safe message.
func errorResponse(err error) (int, string) {
	var notFound *errs.ObjectNotFoundError
	var conflict *errs.ConflictError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, capitalize(notFound.ParamName) + " not found"
	case errs.IsNotFound(err):
		return http.StatusNotFound, err.Error()
	case errors.As(err, &conflict):
		return http.StatusBadRequest, capitalize(conflict.Reason)
	case errs.IsValidation(err):
		return http.StatusBadRequest, strings.ReplaceAll(err.Error(), "\n", "; ")
	default:
		return http.StatusInternalServerError, "Something went wrong"
	}
}

// NewErrorHandler renders every error as a fail or error envelope.
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, message := classify(err, c)

		if code >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
			)
		}

		status := statusFail
		if code >= http.StatusInternalServerError {
			status = statusError
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, errorEnvelope{Status: status, Message: message})
		}
		if writeErr != nil {
			logger.Error("failed to write error response", zap.Error(writeErr))
		}
	}
}

func classify(err error, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return errorResponse(err)
	}

	// Unrouted paths and unsupported methods share one message.
	if he.Code == http.StatusNotFound || he.Code == http.StatusMethodNotAllowed {
		return http.StatusNotFound, fmt.Sprintf("Can't find %s on this server!", c.Request().URL.RequestURI())
	}

	if msg, ok := he.Message.(string); ok {
		return he.Code, msg
	}
	return he.Code, http.StatusText(he.Code)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
