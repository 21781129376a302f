package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/marinescu97/classroom-api/services"
	"github.com/marinescu97/classroom-api/utils/response"
)

// ServiceError translates service-layer sentinel errors to HTTP responses.
func ServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, services.ErrConflict):
		return response.Conflict(c, err.Error())
	default:
		return response.InternalServerError(c, "")
	}
}

// ParseIDParam parses a numeric path parameter.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// ParseIDQuery parses a numeric query parameter.
func ParseIDQuery(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
