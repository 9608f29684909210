package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authRepo "edubridge_backend/internals/features/users/auth/repository"
	"edubridge_backend/internals/features/users/auth/service"
	helpers "edubridge_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(c)
}

// Me returns the identity behind the current session.
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}

	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid UUID format")
	}

	user, err := authRepo.FindUserByID(ac.DB, userUUID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helpers.JsonOK(c, "ok", fiber.Map{
		"id":         user.ID,
		"user_name":  user.UserName,
		"email":      user.Email,
		"role":       user.Role,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
	})
}
