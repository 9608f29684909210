package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LeaveModel is a time-off request. Status walks pending -> approved or
// pending -> rejected; the transition endpoints overwrite unconditionally.
type LeaveModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;column:leave_id" json:"leave_id"`
	UserID       uuid.UUID      `gorm:"type:uuid;not null;index;column:leave_user_id" json:"leave_user_id"`
	StartDate    datatypes.Date `gorm:"not null;column:leave_start_date" json:"leave_start_date"`
	EndDate      datatypes.Date `gorm:"not null;column:leave_end_date" json:"leave_end_date"`
	Reason       string         `gorm:"type:text;not null;column:leave_reason" json:"leave_reason"`
	Status       string         `gorm:"type:varchar(20);not null;default:pending;column:leave_status" json:"leave_status"`
	DocumentPath *string        `gorm:"size:200;column:leave_document_path" json:"leave_document_path,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime;column:leave_created_at" json:"leave_created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime;column:leave_updated_at" json:"leave_updated_at"`
}

func (LeaveModel) TableName() string { return "leaves" }

func (l *LeaveModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
