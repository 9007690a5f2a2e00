package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SaveUploadedFile stores an uploaded file (course thumbnails, profile
// images) under destDir with a unique name.
func SaveUploadedFile(file *multipart.FileHeader, destDir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", err
	}

	newFilename := uuid.NewString() + filepath.Ext(file.Filename)
	filePath := filepath.Join(destDir, newFilename)

	dst, err := os.Create(filePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return filePath, nil
}

// GetFileURL maps a saved file path onto the static mount, which
// serves ./public at the web root.
func GetFileURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	rel := strings.TrimPrefix(filepath.ToSlash(filePath), "./")
	rel = strings.TrimPrefix(rel, "public/")
	return "/" + rel
}
