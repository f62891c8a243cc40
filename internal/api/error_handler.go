package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/townsquare/community/internal/api/handler"
	"github.com/townsquare/community/internal/core/domain"
)

var kindStatus = map[domain.Kind]int{
	domain.KindUnauthenticated:       http.StatusUnauthorized,
	domain.KindForbidden:             http.StatusForbidden,
	domain.KindValidation:            http.StatusBadRequest,
	domain.KindNotFound:              http.StatusNotFound,
	domain.KindInvalidSelfOperation:  http.StatusBadRequest,
	domain.KindAlreadyInDesiredState: http.StatusBadRequest,
	domain.KindConflict:              http.StatusConflict,
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to their HTTP status codes.
//   - Logs internal errors without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>", "kind": "<kind>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, handler.ErrorResponse) {
	var de *domain.Error
	if errors.As(err, &de) {
		if code, ok := kindStatus[de.Kind]; ok {
			return code, handler.ErrorResponse{Error: de.Message, Kind: string(de.Kind)}
		}
	}

	// Echo's own errors (unknown route, body too large, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		return he.Code, handler.ErrorResponse{Error: fmt.Sprintf("%v", he.Message), Kind: string(kindForStatus(he.Code))}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return http.StatusInternalServerError, handler.ErrorResponse{
		Error: "internal server error",
		Kind:  string(domain.KindInternal),
	}
}

func kindForStatus(code int) domain.Kind {
	switch code {
	case http.StatusUnauthorized:
		return domain.KindUnauthenticated
	case http.StatusForbidden:
		return domain.KindForbidden
	case http.StatusNotFound:
		return domain.KindNotFound
	case http.StatusConflict:
		return domain.KindConflict
	default:
		return domain.KindValidation
	}
}
