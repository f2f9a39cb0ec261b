package handlers_fiber

import (
	"errors"
	"net/http"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/api"
	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.CodeInvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrUnsupportedFormat):
		status = http.StatusBadRequest
		code = api.CodeUnsupportedFormat
		msg = err.Error()
	case errors.Is(err, entities.ErrEmptyRoster):
		status = http.StatusUnprocessableEntity
		code = api.CodeEmptyRoster
		msg = "team selection matches no users"
	case errors.Is(err, entities.ErrUserNotFound), errors.Is(err, entities.ErrTeamNotFound):
		status = http.StatusNotFound
		code = api.CodeNotFound
		msg = "resource not found"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}
