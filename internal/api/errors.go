package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasteit/tasteit/backend/internal/middleware"
	"github.com/tasteit/tasteit/backend/internal/service"
	"github.com/tasteit/tasteit/backend/internal/store"
)

// statusFor maps a retrieval outcome onto its HTTP status
func statusFor(err error) int {
	var inputErr *service.InputError
	switch {
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	status := statusFor(err)
	msg := err.Error()
	switch status {
	case http.StatusServiceUnavailable:
		msg = "recipe store unavailable"
	case http.StatusInternalServerError:
		msg = "Internal Server Error"
	}
	c.JSON(status, middleware.ErrorResponse{Error: msg})
}

func respondBadRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, middleware.ErrorResponse{Error: bindingMessage(err)})
}
