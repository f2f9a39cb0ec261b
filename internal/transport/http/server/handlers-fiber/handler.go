// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"github.com/Baby-Ty/Dreamspace-sub000/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the report endpoints using service layer interfaces.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  uc,
	}
}

// Register binds routes onto the fiber app.
func (h *Handler) Register(app *fiber.App) {
	app.Post("/reports", h.PostReports)
	app.Get("/reports/roster", h.GetReportsRoster)
	app.Get("/teams", h.GetTeams)
}
