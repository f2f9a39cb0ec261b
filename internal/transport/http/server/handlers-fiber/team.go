package handlers_fiber

import (
	"net/http"

	"github.com/Baby-Ty/Dreamspace-sub000/internal/api"
	"github.com/Baby-Ty/Dreamspace-sub000/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetTeams lists team relationships for the report filter surface.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	teams, err := h.uc.Teams(c.Context())
	if err != nil {
		h.log.Errorw("failed to list teams", "error", err.Error())
		return writeError(c, err)
	}

	out := make([]api.Team, 0, len(teams))
	for _, t := range teams {
		out = append(out, mapper.ToAPITeam(t))
	}
	return c.Status(http.StatusOK).JSON(api.TeamsResponse{Teams: out})
}
