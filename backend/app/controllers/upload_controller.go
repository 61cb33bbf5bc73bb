package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedImageExts = map[string]bool{
	".jpeg": true, ".jpg": true, ".png": true, ".gif": true, ".webp": true,
}

type UploadController struct {
	Dir      string
	MaxBytes int64
}

func NewUploadController(dir string, maxSizeMB int64) *UploadController {
	return &UploadController{Dir: dir, MaxBytes: maxSizeMB << 20}
}

// Upload stores a single multipart image and returns the public URL the item
// forms put into image_url.
func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, c.MaxBytes)
	file, header, err := r.FormFile("image")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("File too large. Maximum size is %dMB.", c.MaxBytes>>20))
			return
		}
		writeError(w, http.StatusBadRequest, "Image file is required")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		writeError(w, http.StatusBadRequest, "Only image files (JPEG, JPG, PNG, GIF, WEBP) are allowed")
		return
	}

	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	base := strings.TrimSuffix(filepath.Base(header.Filename), ext)
	name := fmt.Sprintf("%s-%s%s", base, uuid.NewString(), ext)
	dst, err := os.Create(filepath.Join(c.Dir, name))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer dst.Close()
	if _, err := io.Copy(dst, file); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"image_url": "/uploads/" + name,
	})
}
