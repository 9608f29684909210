package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AttendanceModel is one mark for one student on one class date. There is
// deliberately no (student,date) unique key: marking twice inserts twice.
type AttendanceModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;column:attendance_id" json:"attendance_id"`
	StudentID uuid.UUID      `gorm:"type:uuid;not null;index;column:attendance_student_id" json:"attendance_student_id"`
	ClassDate datatypes.Date `gorm:"not null;column:attendance_class_date" json:"attendance_class_date"`
	Status    string         `gorm:"type:varchar(20);not null;column:attendance_status" json:"attendance_status"`
	MarkedBy  uuid.UUID      `gorm:"type:uuid;not null;column:attendance_marked_by" json:"attendance_marked_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime;column:attendance_created_at" json:"attendance_created_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (a *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
