package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dinewise/pos/internal/auth"
	"github.com/dinewise/pos/internal/service"
)

// envelope is the uniform JSON response body. Every handler responds with it,
// success or failure.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// respond writes a success envelope.
func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, envelope{Success: true, Message: message, Data: data})
}

// respondErr maps a service error onto the HTTP status taxonomy:
// validation and business conflicts 400, unknown ids 404, bad credentials
// 401, anything else 500 with the underlying message surfaced.
func respondErr(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrConflict):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	}

	if status == http.StatusInternalServerError {
		slog.Error("request failed", "path", c.FullPath(), "error", err)
	}
	c.JSON(status, envelope{Success: false, Message: "request failed", Error: err.Error()})
}

// respondBadRequest reports a malformed body or parameter.
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, envelope{Success: false, Message: "request failed", Error: err.Error()})
}
