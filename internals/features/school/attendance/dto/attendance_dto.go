package dto

import (
	"time"

	"edubridge_backend/internals/features/school/attendance/model"
)

// MarkAttendanceRequest is the body for POST /attendance/mark.
type MarkAttendanceRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid4"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required"`
}

// AttendanceItem is one row of the view response: {date, status}.
type AttendanceItem struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

func ToAttendanceItem(a model.AttendanceModel) AttendanceItem {
	return AttendanceItem{
		Date:   time.Time(a.ClassDate).Format("2006-01-02"),
		Status: a.Status,
	}
}

func ToAttendanceItems(rows []model.AttendanceModel) []AttendanceItem {
	items := make([]AttendanceItem, 0, len(rows))
	for _, a := range rows {
		items = append(items, ToAttendanceItem(a))
	}
	return items
}
