package dto

import (
	"time"

	"edubridge_backend/internals/features/school/documents/model"
)

type DocumentResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	FileName     string `json:"file_name"`
	DocumentType string `json:"document_type"`
	UploadedBy   string `json:"uploaded_by"`
	UploadDate   string `json:"upload_date"`
}

func ToDocumentResponse(d model.DocumentModel) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID.String(),
		Title:        d.Title,
		FileName:     d.FileName,
		DocumentType: d.DocumentType,
		UploadedBy:   d.UploadedBy.String(),
		UploadDate:   d.UploadDate.Format(time.RFC3339),
	}
}
