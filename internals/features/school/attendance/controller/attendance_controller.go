package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"edubridge_backend/internals/constants"
	"edubridge_backend/internals/features/school/attendance/dto"
	"edubridge_backend/internals/features/school/attendance/model"
	helpers "edubridge_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// Mark inserts one attendance row per call. Duplicate marks for the same
// student and date are allowed; rows are never reconciled.
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if !constants.IsValidAttendanceStatus(req.Status) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Status must be one of: "+strings.Join(constants.AttendanceStatuses, ", "))
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	classDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Date must be YYYY-MM-DD")
	}

	markedBy, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid user id in context")
	}

	row := model.AttendanceModel{
		StudentID: studentID,
		ClassDate: datatypes.Date(classDate),
		Status:    req.Status,
		MarkedBy:  markedBy,
	}
	if err := ctrl.DB.Create(&row).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}

	return helpers.JsonOK(c, "Attendance marked successfully", fiber.Map{
		"attendance_id": row.ID,
	})
}

// ViewByStudent lists every mark for one student in insertion order.
// An unknown student simply yields an empty list.
func (ctrl *AttendanceController) ViewByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("student_id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var rows []model.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_student_id = ?", studentID).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}

	return helpers.JsonList(c, "ok", dto.ToAttendanceItems(rows))
}
