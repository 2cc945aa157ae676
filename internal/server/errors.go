package server

import (
	"errors"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/as1coder/portfolioBuilder/internal/handlers"
	appmiddleware "github.com/as1coder/portfolioBuilder/internal/middleware"
	"github.com/labstack/echo/v4"
)

// setupErrorHandling installs the HTTP error handler. Errors that did not
// come from echo are logged with a stack trace.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		logger := appmiddleware.FromContext(c.Request().Context())

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(code)
			}
			if code >= http.StatusInternalServerError {
				logger.Error("Internal Server Error", "error", err)
			}
		} else {
			logger.Error("Internal Server Error (Unhandled)", "error", err, "stack_trace", string(debug.Stack()))
		}

		var respErr error
		switch {
		case c.Request().Method == http.MethodHead:
			respErr = c.NoContent(code)
		case wantsJSON(c):
			respErr = c.JSON(code, handlers.ErrorResponse{Code: strings.ReplaceAll(strings.ToLower(http.StatusText(code)), " ", "_"), Message: message})
		default:
			respErr = handlers.RenderError(c, code, message)
		}
		if respErr != nil {
			logger.Error("Failed to send error response", "error", respErr)
		}
	}
}

func wantsJSON(c echo.Context) bool {
	if strings.HasPrefix(c.Request().URL.Path, "/api/") {
		return true
	}
	accept := c.Request().Header.Get(echo.HeaderAccept)
	return strings.Contains(accept, echo.MIMEApplicationJSON) && !strings.Contains(accept, echo.MIMETextHTML)
}
