package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edubridge_backend/internals/configs"
	attendanceRoute "edubridge_backend/internals/features/school/attendance/route"
	documentRoute "edubridge_backend/internals/features/school/documents/route"
	leaveRoute "edubridge_backend/internals/features/school/leaves/route"
	authRoute "edubridge_backend/internals/features/users/auth/route"
	"edubridge_backend/internals/helpers/storage"
	authMw "edubridge_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the whole HTTP surface: public auth endpoints and the
// session-guarded record routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, store *storage.LocalStore) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up PROTECTED group...")
	protected := app.Group("",
		authMw.AuthJWT(authMw.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	attendanceRoute.AttendanceRoutes(protected, db)
	leaveRoute.LeaveRoutes(protected, db, store)
	documentRoute.DocumentRoutes(protected, db, store)
}
