package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Upload guard, applied before any bytes hit disk.
const MaxUploadSize = int64(10 * 1024 * 1024)

var (
	ErrFileTooLarge = errors.New("file exceeds the upload size limit")
	ErrBadKey       = errors.New("invalid storage key")

	// Keep letters, digits, dot, dash, underscore. Everything else becomes "_".
	reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
)

// LocalStore writes uploaded blobs into a single server-local directory.
// Keys are date+uuid prefixed so two uploads of the same filename never
// collide; the sanitized original name stays readable at the end of the key.
type LocalStore struct {
	Dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("upload dir is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{Dir: dir}, nil
}

// SanitizeFilename strips path separators and unsafe characters so an
// uploaded name is usable as (part of) a storage key.
func SanitizeFilename(filename string) string {
	base := filepath.Base(strings.TrimSpace(filename))
	safe := reUnsafe.ReplaceAllString(base, "_")
	safe = strings.Trim(safe, "._")
	if safe == "" {
		safe = "file"
	}
	return safe
}

func GenerateKey(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s-%s-%s", timestamp, uuid.New().String(), SanitizeFilename(originalFilename))
}

// SaveMultipart streams one multipart file part to disk and returns its key.
func (s *LocalStore) SaveMultipart(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	key := GenerateKey(fh.Filename)
	dst, err := os.Create(filepath.Join(s.Dir, key))
	if err != nil {
		return "", fmt.Errorf("create blob: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write blob: %w", err)
	}
	return key, nil
}

// Path resolves a stored key to its on-disk location. Keys containing path
// segments are rejected so a crafted key cannot escape the upload dir.
func (s *LocalStore) Path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.Contains(key, "..") {
		return "", ErrBadKey
	}
	p := filepath.Join(s.Dir, key)
	if _, err := os.Stat(p); err != nil {
		return "", err
	}
	return p, nil
}

// GetFormFile returns the first present file part among fieldNames,
// or nil when the request carries none.
func GetFormFile(c *fiber.Ctx, fieldNames ...string) *multipart.FileHeader {
	for _, name := range fieldNames {
		if fh, err := c.FormFile(name); err == nil && fh != nil {
			return fh
		}
	}
	return nil
}
