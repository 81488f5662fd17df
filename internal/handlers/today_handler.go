package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/soumacoisa/backend/internal/dto"
	"github.com/soumacoisa/backend/internal/services"
	"github.com/soumacoisa/backend/internal/validation"
)

type TodayHandler struct {
	profiles *services.ProfileService
	entries  *services.EntryService
}

func NewTodayHandler(profiles *services.ProfileService, entries *services.EntryService) *TodayHandler {
	return &TodayHandler{profiles: profiles, entries: entries}
}

// Get returns today's entry in the user's timezone, or JSON null when the day
// has no entry yet.
func (h *TodayHandler) Get(c *fiber.Ctx) error {
	user, err := currentUser(c, h.profiles)
	if err != nil {
		return unauthorized(c)
	}

	entry, err := h.entries.Today(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch today's entry",
		})
	}
	if entry == nil {
		return c.JSON(nil)
	}
	return c.JSON(dto.NewEntryResponse(entry))
}

func (h *TodayHandler) Post(c *fiber.Ctx) error {
	user, err := currentUser(c, h.profiles)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.SetIntentionRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if errs := validation.Struct(&req); errs != nil {
		return fieldErrors(c, errs)
	}

	entry, created, err := h.entries.SetIntention(user, req.Intention)
	if err != nil {
		if errors.Is(err, services.ErrEntryExists) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: "An entry already exists for today",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save today's entry",
		})
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.NewEntryResponse(entry))
}

func (h *TodayHandler) Complete(c *fiber.Ctx) error {
	user, err := currentUser(c, h.profiles)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CompleteRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if errs := validation.Struct(&req); errs != nil {
		return fieldErrors(c, errs)
	}

	entry, err := h.entries.SetCompleted(user, *req.Completed)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "No entry exists for today",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update today's entry",
		})
	}

	return c.JSON(dto.NewEntryResponse(entry))
}

func (h *TodayHandler) Skip(c *fiber.Ctx) error {
	user, err := currentUser(c, h.profiles)
	if err != nil {
		return unauthorized(c)
	}

	entry, _, err := h.entries.Skip(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to skip today",
		})
	}

	return c.JSON(dto.NewEntryResponse(entry))
}
