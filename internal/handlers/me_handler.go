package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soumacoisa/backend/internal/dto"
	"github.com/soumacoisa/backend/internal/services"
	"github.com/soumacoisa/backend/internal/validation"
)

type MeHandler struct {
	profiles *services.ProfileService
}

func NewMeHandler(profiles *services.ProfileService) *MeHandler {
	return &MeHandler{profiles: profiles}
}

func (h *MeHandler) Get(c *fiber.Ctx) error {
	user, err := currentUser(c, h.profiles)
	if err != nil {
		return unauthorized(c)
	}
	return c.JSON(dto.NewUserResponse(user))
}

func (h *MeHandler) Patch(c *fiber.Ctx) error {
	user, err := currentUser(c, h.profiles)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	if errs := validation.Struct(&req); errs != nil {
		return fieldErrors(c, errs)
	}

	updated, err := h.profiles.Update(user.ID, &req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update profile",
		})
	}

	return c.JSON(dto.NewUserResponse(updated))
}
