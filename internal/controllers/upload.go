package controllers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"postboard/internal/validation"
)

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// MediaStore keeps uploaded images under Root. Stored names are relative to
// Root and served from /media.
type MediaStore struct {
	Root string
}

// SaveImage stores the multipart "image" file, if any, and returns its
// relative path. ok is false when the request carries no file.
func (m MediaStore) SaveImage(c *fiber.Ctx) (path string, ok bool, err error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return "", false, nil
	}
	fh, err := c.FormFile("image")
	if err != nil {
		return "", false, nil
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !imageExts[ext] {
		return "", false, validation.Errors{"image": {fmt.Sprintf("Unsupported image type %q.", ext)}}
	}

	dir := filepath.Join(m.Root, "posts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, err
	}
	name := uuid.NewString() + ext
	if err := c.SaveFile(fh, filepath.Join(dir, name)); err != nil {
		return "", false, err
	}
	return "posts/" + name, true, nil
}

// Remove deletes a file stored by SaveImage. An empty path is a no-op.
func (m MediaStore) Remove(path string) {
	if path == "" {
		return
	}
	_ = os.Remove(filepath.Join(m.Root, filepath.FromSlash(path)))
}
