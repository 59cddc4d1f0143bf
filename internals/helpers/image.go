// file: internals/helpers/image.go
package helper

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const maxImageWidth = 1280

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// SaveImageAsWebP menyimpan gambar upload (jpeg/png/webp) sebagai webp di
// folder uploads/<folder>/ dan mengembalikan path relatifnya.
// Gambar lebih lebar dari 1280px di-resize dulu supaya ukuran file wajar.
func SaveImageAsWebP(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("file bukan gambar yang valid: %w", err)
	}

	if img.Bounds().Dx() > maxImageWidth {
		img = imaging.Resize(img, maxImageWidth, 0, imaging.Lanczos)
	}

	dir := filepath.Join(uploadRoot(), folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("gagal menyiapkan folder upload: %w", err)
	}

	filename := GenerateUniqueFilename(fileHeader.Filename) + ".webp"
	fullPath := filepath.Join(dir, filename)

	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("gagal membuat file: %w", err)
	}
	defer out.Close()

	if err := webp.Encode(out, img, &webp.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}

	return filepath.ToSlash(filepath.Join(folder, filename)), nil
}

// DeleteUploadedImage menghapus file hasil SaveImageAsWebP. Path kosong diabaikan.
func DeleteUploadedImage(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(uploadRoot(), filepath.FromSlash(relPath)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// GenerateUniqueFilename membuat nama file aman: <tanggal>-<uuid>-<nama-asli> tanpa ekstensi.
func GenerateUniqueFilename(originalFilename string) string {
	base := originalFilename
	if ext := filepath.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}
	safe := unsafeFilenameChars.ReplaceAllString(base, "_")
	return fmt.Sprintf("%s-%s-%s", time.Now().Format("20060102"), uuid.New().String(), safe)
}

func uploadRoot() string {
	if v := os.Getenv("UPLOAD_DIR"); v != "" {
		return v
	}
	return "uploads"
}
