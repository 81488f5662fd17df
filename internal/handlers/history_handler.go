package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/soumacoisa/backend/internal/dto"
	"github.com/soumacoisa/backend/internal/services"
)

type HistoryHandler struct {
	profiles *services.ProfileService
	entries  *services.EntryService
}

func NewHistoryHandler(profiles *services.ProfileService, entries *services.EntryService) *HistoryHandler {
	return &HistoryHandler{profiles: profiles, entries: entries}
}

func (h *HistoryHandler) Recent(c *fiber.Ctx) error {
	user, err := currentUser(c, h.profiles)
	if err != nil {
		return unauthorized(c)
	}

	entries, err := h.entries.Recent(user, services.DefaultRecentLimit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch recent entries",
		})
	}

	return c.JSON(dto.NewEntryResponses(entries))
}

func (h *HistoryHandler) Month(c *fiber.Ctx) error {
	user, err := currentUser(c, h.profiles)
	if err != nil {
		return unauthorized(c)
	}

	month := c.Query("month")
	entries, err := h.entries.Month(user, month)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMonth) {
			return fieldErrors(c, map[string]string{"month": "Invalid format. Use YYYY-MM."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch history",
		})
	}

	return c.JSON(dto.MonthHistoryResponse{
		Month:   month,
		Entries: dto.NewEntryResponses(entries),
		Summary: services.Summarize(entries),
	})
}
