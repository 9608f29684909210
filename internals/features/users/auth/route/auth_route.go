package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edubridge_backend/internals/configs"
	authController "edubridge_backend/internals/features/users/auth/controller"
	"edubridge_backend/internals/middlewares"
	authMw "edubridge_backend/internals/middlewares/auth"
)

// AuthRoutes wires the public auth endpoints plus /me and /logout.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	app.Post("/register", ctrl.Register)
	app.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	guard := authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})
	app.Post("/logout", guard, ctrl.Logout)
	app.Get("/me", guard, ctrl.Me)
}
