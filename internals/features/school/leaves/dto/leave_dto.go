package dto

import (
	"time"

	"edubridge_backend/internals/features/school/leaves/model"
)

// LeaveRequestBody carries the fields of POST /leave/request. The optional
// "document" file part rides alongside in the multipart form.
type LeaveRequestBody struct {
	StartDate string `json:"start_date" form:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" form:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" form:"reason" validate:"required"`
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	DocumentPath *string `json:"document_path,omitempty"`
}

func ToLeaveResponse(l model.LeaveModel) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID.String(),
		UserID:       l.UserID.String(),
		StartDate:    time.Time(l.StartDate).Format("2006-01-02"),
		EndDate:      time.Time(l.EndDate).Format("2006-01-02"),
		Reason:       l.Reason,
		Status:       l.Status,
		DocumentPath: l.DocumentPath,
	}
}
