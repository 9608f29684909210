package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edubridge_backend/internals/constants"
	attendanceCtrl "edubridge_backend/internals/features/school/attendance/controller"
	authMw "edubridge_backend/internals/middlewares/auth"
)

// AttendanceRoutes: marking is teacher-only, viewing needs any session.
func AttendanceRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := attendanceCtrl.NewAttendanceController(db)

	group := r.Group("/attendance")
	group.Post("/mark",
		authMw.OnlyRoles(constants.RoleErrorTeacher("attendance marking"), constants.TeacherOnly...),
		ctrl.Mark,
	)
	group.Get("/view/:student_id", ctrl.ViewByStudent)
}
