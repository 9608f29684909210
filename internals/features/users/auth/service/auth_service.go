package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"edubridge_backend/internals/configs"
	"edubridge_backend/internals/constants"
	authHelper "edubridge_backend/internals/features/users/auth/helper"
	authRepo "edubridge_backend/internals/features/users/auth/repository"
	userModel "edubridge_backend/internals/features/users/user/model"
	helpers "edubridge_backend/internals/helpers"
)

const accessTokenTTL = 24 * time.Hour

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName  string `json:"username"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Password  string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := authHelper.ValidateRegisterInput(input.UserName, input.Email, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !constants.IsValidRole(input.Role) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Unknown role")
	}

	if _, err := authRepo.FindUserByUsername(db, strings.TrimSpace(input.UserName)); err == nil {
		return helpers.JsonError(c, fiber.StatusConflict, "Username already exists")
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserName:  strings.TrimSpace(input.UserName),
		Email:     strings.TrimSpace(input.Email),
		Role:      input.Role,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Password:  passwordHash,
	}

	if err := authRepo.CreateUser(db, &user); err != nil {
		if isUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Username already exists")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.JsonCreated(c, "Registration successful", fiber.Map{
		"id":   user.ID,
		"role": user.Role,
	})
}

// isUniqueViolation covers both engines: typed 23505 on postgres,
// message match on sqlite.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	low := strings.ToLower(err.Error())
	return strings.Contains(low, "duplicate key") || strings.Contains(low, "unique")
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	input.UserName = strings.TrimSpace(input.UserName)

	if err := authHelper.ValidateLoginInput(input.UserName, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Same message for unknown user and wrong password: no existence leak.
	userLight, err := authRepo.FindUserByUsernameLight(db, input.UserName)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}
	if err := authHelper.CheckPasswordHash(userLight.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	userFull, err := authRepo.FindUserByID(db, userLight.ID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to load user")
	}

	return issueToken(c, userFull)
}

/* ==========================
   ISSUE TOKEN + Response
========================== */

func issueToken(c *fiber.Ctx, user *userModel.UserModel) error {
	if configs.JWTSecret == "" {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Missing JWT secret")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	setAuthCookie(c, token, now)

	return helpers.JsonOK(c, "Login successful", fiber.Map{
		"user": fiber.Map{
			"id":   user.ID,
			"role": user.Role,
			"name": user.FullName(),
		},
		"token": token,
	})
}

func setAuthCookie(c *fiber.Ctx, accessToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  now.Add(accessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}

/* ==========================
   LOGOUT
========================== */

// Logout only clears the cookie: the token itself simply expires.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return helpers.JsonOK(c, "Logged out", nil)
}
