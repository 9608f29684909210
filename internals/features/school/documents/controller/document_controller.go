package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edubridge_backend/internals/constants"
	"edubridge_backend/internals/features/school/documents/dto"
	"edubridge_backend/internals/features/school/documents/model"
	helpers "edubridge_backend/internals/helpers"
	"edubridge_backend/internals/helpers/storage"
)

type DocumentController struct {
	DB    *gorm.DB
	Store *storage.LocalStore
}

func NewDocumentController(db *gorm.DB, store *storage.LocalStore) *DocumentController {
	return &DocumentController{DB: db, Store: store}
}

// Upload stores the "file" part under a collision-free key and records the
// row. Title and type come from the form; type falls back to an
// extension-based label when absent.
func (ctrl *DocumentController) Upload(c *fiber.Ctx) error {
	fh := storage.GetFormFile(c, "file")
	if fh == nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "No file provided")
	}

	uploadedBy, err := uuid.Parse(c.Locals("user_id").(string))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid user id in context")
	}

	key, err := ctrl.Store.SaveMultipart(fh)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) {
			return helpers.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to store file")
	}

	docType := strings.TrimSpace(c.FormValue("type"))
	if docType == "" {
		docType = constants.DetectDocumentTypeFromExt(fh.Filename)
	}

	doc := model.DocumentModel{
		Title:        c.FormValue("title"),
		FilePath:     key,
		FileName:     storage.SanitizeFilename(fh.Filename),
		UploadedBy:   uploadedBy,
		DocumentType: docType,
	}
	if err := ctrl.DB.Create(&doc).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to record document")
	}

	return helpers.JsonOK(c, "Document uploaded successfully", dto.ToDocumentResponse(doc))
}

// View streams the stored bytes back as an attachment under the original
// filename. Any logged-in user may download any document.
func (ctrl *DocumentController) View(c *fiber.Ctx) error {
	docID, err := uuid.Parse(c.Params("document_id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid document id")
	}

	var doc model.DocumentModel
	if err := ctrl.DB.First(&doc, "document_id = ?", docID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Document not found")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to load document")
	}

	path, err := ctrl.Store.Path(doc.FilePath)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Stored file is missing")
	}

	return c.Download(path, doc.FileName)
}
