package services

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const UploadSizeLimit = 5 * 1024 * 1024

var uploadAllowedTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
}

// SaveUpload stores an uploaded image on local disk and returns the public URL.
// The core never interprets the bytes beyond the declared mime type.
func SaveUpload(file *multipart.FileHeader, saver func(dst string) error) (string, error) {
	if file.Size > UploadSizeLimit {
		return "", fmt.Errorf("file size exceeds the %d bytes limit", UploadSizeLimit)
	}
	if !lo.Contains(uploadAllowedTypes, file.Header.Get("Content-Type")) {
		return "", fmt.Errorf("file type %s is not allowed", file.Header.Get("Content-Type"))
	}

	destDir := viper.GetString("content.upload_dir")
	if len(destDir) == 0 {
		destDir = "./uploads"
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s-%s", uuid.NewString(), strings.ReplaceAll(file.Filename, " ", "_"))
	if err := saver(filepath.Join(destDir, name)); err != nil {
		return "", err
	}

	base := viper.GetString("content.public_base")
	if len(base) == 0 {
		base = "/uploads"
	}
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(base, "/"), name), nil
}
