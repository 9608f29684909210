package constants

import (
	"path/filepath"
	"strings"
)

// DetectDocumentTypeFromExt labels an upload by extension. Used as the
// fallback document_type when the form does not supply one.
func DetectDocumentTypeFromExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".mp3", ".wav":
		return "audio"
	case ".doc", ".docx":
		return "docx"
	case ".pdf":
		return "pdf"
	case ".ppt", ".pptx":
		return "ppt"
	case ".png", ".jpg", ".jpeg", ".webp":
		return "image"
	default:
		return "other"
	}
}
