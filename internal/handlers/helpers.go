package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soumacoisa/backend/internal/dto"
	"github.com/soumacoisa/backend/internal/middleware"
	"github.com/soumacoisa/backend/internal/models"
	"github.com/soumacoisa/backend/internal/services"
)

// currentUser resolves the authenticated user record from the JWT subject.
// A valid token whose user has since disappeared counts as unauthenticated.
func currentUser(c *fiber.Ctx, profiles *services.ProfileService) (*models.User, error) {
	userID, err := middleware.UserID(c)
	if err != nil {
		return nil, err
	}
	return profiles.Get(userID)
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Unauthorized",
	})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid request body",
	})
}

func fieldErrors(c *fiber.Ctx, errs map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Errors: errs})
}
