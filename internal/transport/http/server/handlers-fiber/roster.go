package handlers_fiber

import (
	"net/http"
	"strings"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/entities"
	"github.com/Baby-Ty/Dreamspace-sub000/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetReportsRoster previews which users a team selection would include.
// The teams query parameter is a comma-separated coach id list; empty or
// "all" selects everyone.
func (h *Handler) GetReportsRoster(c *fiber.Ctx) error {
	selection := entities.SelectAll()
	if raw := strings.TrimSpace(c.Query("teams")); raw != "" && !strings.EqualFold(raw, "all") {
		ids := make([]string, 0)
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				ids = append(ids, part)
			}
		}
		if len(ids) > 0 {
			selection = entities.SelectCoaches(ids...)
		}
	}

	users, err := h.uc.RosterPreview(c.Context(), selection)
	if err != nil {
		h.log.Errorw("failed to preview roster", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToRosterResponse(users))
}
