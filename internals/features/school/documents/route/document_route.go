package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	documentCtrl "edubridge_backend/internals/features/school/documents/controller"
	"edubridge_backend/internals/helpers/storage"
)

// DocumentRoutes: both endpoints only need a valid session.
func DocumentRoutes(r fiber.Router, db *gorm.DB, store *storage.LocalStore) {
	ctrl := documentCtrl.NewDocumentController(db, store)

	group := r.Group("/document")
	group.Post("/upload", ctrl.Upload)
	group.Get("/view/:document_id", ctrl.View)
}
