package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DocumentModel records one uploaded blob. FilePath is the storage key in
// the upload dir; FileName keeps the sanitized original name so downloads
// come back under the name the uploader chose.
type DocumentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;column:document_id" json:"document_id"`
	Title        string    `gorm:"size:200;not null;column:document_title" json:"document_title"`
	FilePath     string    `gorm:"size:200;not null;column:document_file_path" json:"document_file_path"`
	FileName     string    `gorm:"size:200;not null;column:document_file_name" json:"document_file_name"`
	UploadedBy   uuid.UUID `gorm:"type:uuid;not null;index;column:document_uploaded_by" json:"document_uploaded_by"`
	DocumentType string    `gorm:"size:50;column:document_type" json:"document_type"`
	UploadDate   time.Time `gorm:"autoCreateTime;column:document_upload_date" json:"document_upload_date"`
}

func (DocumentModel) TableName() string { return "documents" }

func (d *DocumentModel) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
