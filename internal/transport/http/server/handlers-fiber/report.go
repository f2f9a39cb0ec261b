package handlers_fiber

import (
	"net/http"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/api"
	"github.com/Baby-Ty/Dreamspace-sub000/internal/mapper"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// PostReports generates a report and returns the serialized artifact with
// the metadata the caller needs to label the download.
func (h *Handler) PostReports(c *fiber.Ctx) error {
	var body api.ReportRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, "invalid body"))
	}

	cfg, err := mapper.FromReportRequest(body)
	if err != nil {
		return writeError(c, err)
	}

	artifact, err := h.uc.GenerateReport(c.Context(), cfg)
	if err != nil {
		h.log.Errorw("failed to generate report", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToReportResponse(uuid.NewString(), artifact))
}
