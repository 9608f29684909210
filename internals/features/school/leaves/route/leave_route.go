package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edubridge_backend/internals/constants"
	leaveCtrl "edubridge_backend/internals/features/school/leaves/controller"
	"edubridge_backend/internals/helpers/storage"
	authMw "edubridge_backend/internals/middlewares/auth"
)

// LeaveRoutes: any session may file, only admin/principal may decide.
func LeaveRoutes(r fiber.Router, db *gorm.DB, store *storage.LocalStore) {
	ctrl := leaveCtrl.NewLeaveController(db, store)

	group := r.Group("/leave")
	group.Post("/request", ctrl.Request)

	approverOnly := authMw.OnlyRoles(constants.RoleErrorApprover("leave approval"), constants.ApproverRoles...)
	group.Post("/approve/:leave_id", approverOnly, ctrl.Approve)
	group.Post("/reject/:leave_id", approverOnly, ctrl.Reject)
}
