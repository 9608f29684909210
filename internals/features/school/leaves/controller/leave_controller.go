package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"edubridge_backend/internals/constants"
	"edubridge_backend/internals/features/school/leaves/dto"
	"edubridge_backend/internals/features/school/leaves/model"
	helpers "edubridge_backend/internals/helpers"
	"edubridge_backend/internals/helpers/storage"
)

var validate = validator.New()

type LeaveController struct {
	DB    *gorm.DB
	Store *storage.LocalStore
}

func NewLeaveController(db *gorm.DB, store *storage.LocalStore) *LeaveController {
	return &LeaveController{DB: db, Store: store}
}

// Request files a leave for the current user. A "document" file part is
// optional; the row is created with status pending even when saving the
// attachment fails (no atomicity between blob write and row insert).
func (ctrl *LeaveController) Request(c *fiber.Ctx) error {
	var req dto.LeaveRequestBody
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	userID, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid user id in context")
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	leave := model.LeaveModel{
		UserID:    userID,
		StartDate: datatypes.Date(startDate),
		EndDate:   datatypes.Date(endDate),
		Reason:    req.Reason,
		Status:    constants.LeavePending,
	}

	if fh := storage.GetFormFile(c, "document"); fh != nil {
		key, err := ctrl.Store.SaveMultipart(fh)
		if err != nil {
			log.Printf("[ERROR] leave attachment save failed: %v", err)
		} else {
			leave.DocumentPath = &key
		}
	}

	if err := ctrl.DB.Create(&leave).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create leave request")
	}

	return helpers.JsonOK(c, "Leave request submitted successfully", dto.ToLeaveResponse(leave))
}

// Approve sets the status unconditionally, so a repeat call is a no-op
// that still returns 200.
func (ctrl *LeaveController) Approve(c *fiber.Ctx) error {
	return ctrl.setStatus(c, constants.LeaveApproved, "Leave approved successfully")
}

func (ctrl *LeaveController) Reject(c *fiber.Ctx) error {
	return ctrl.setStatus(c, constants.LeaveRejected, "Leave rejected")
}

func (ctrl *LeaveController) setStatus(c *fiber.Ctx, status, message string) error {
	leaveID, err := uuid.Parse(c.Params("leave_id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid leave id")
	}

	var leave model.LeaveModel
	if err := ctrl.DB.First(&leave, "leave_id = ?", leaveID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Leave request not found")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to load leave request")
	}

	if err := ctrl.DB.Model(&leave).Update("leave_status", status).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update leave status")
	}
	leave.Status = status

	return helpers.JsonUpdated(c, message, dto.ToLeaveResponse(leave))
}
