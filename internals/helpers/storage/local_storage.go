package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"kostku_backend/internals/configs"
)

// TempDirName adalah subfolder penampung upload yang belum dikomit.
// File pindah ke folder kategori hanya setelah seluruh validasi lolos.
const TempDirName = "tmp"

// LocalStorage menyimpan file upload di disk lokal dan melayani
// URL publik /uploads/<category>/<filename> (prefix BASE_URL).
type LocalStorage struct {
	Root    string // mis. ./uploads
	BaseURL string // mis. https://api.kostku.id
}

func NewFromEnv() *LocalStorage {
	return &LocalStorage{
		Root:    configs.UploadDir,
		BaseURL: strings.TrimRight(configs.BaseURL, "/"),
	}
}

// SaveTempImage membaca file multipart, menormalkan gambarnya
// (downscale + re-encode WebP), lalu menulis ke folder tmp.
// Mengembalikan key sementara ("tmp/<filename>.webp").
func (s *LocalStorage) SaveTempImage(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file upload: %w", err)
	}
	defer src.Close()

	all, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("gagal membaca file upload: %w", err)
	}

	normalized, err := normalizeImage(all, fh.Filename)
	if err != nil {
		return "", fmt.Errorf("file bukan gambar yang valid: %w", err)
	}

	key := path.Join(TempDirName, generateUniqueFilename(fh.Filename))
	if err := s.writeFile(key, normalized); err != nil {
		return "", err
	}
	return key, nil
}

// MoveToPermanent memindahkan file tmp ke folder kategori permanen.
// Mengembalikan key permanen ("<category>/<filename>").
func (s *LocalStorage) MoveToPermanent(tempKey, category string) (string, error) {
	if !strings.HasPrefix(tempKey, TempDirName+"/") {
		return "", fmt.Errorf("key %q bukan file sementara", tempKey)
	}
	newKey := path.Join(safePart(category), path.Base(tempKey))
	dst := filepath.Join(s.Root, filepath.FromSlash(newKey))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	if err := os.Rename(filepath.Join(s.Root, filepath.FromSlash(tempKey)), dst); err != nil {
		return "", fmt.Errorf("gagal memindahkan file: %w", err)
	}
	return newKey, nil
}

// Delete menghapus file berdasarkan key (tmp maupun permanen).
// Aman dipanggil dua kali: file yang sudah hilang bukan error.
func (s *LocalStorage) Delete(key string) error {
	if strings.TrimSpace(key) == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.Root, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PublicURL membangun URL absolut dari key permanen.
func (s *LocalStorage) PublicURL(key string) string {
	if strings.TrimSpace(key) == "" {
		return ""
	}
	return s.BaseURL + "/uploads/" + key
}

// ExtractKeyFromPublicURL kebalikan dari PublicURL; dipakai saat
// kompensasi delete menerima URL, bukan key.
func ExtractKeyFromPublicURL(publicURL string) (string, error) {
	u, err := url.Parse(publicURL)
	if err != nil {
		return "", err
	}
	const prefix = "/uploads/"
	if !strings.HasPrefix(u.Path, prefix) {
		return "", fmt.Errorf("URL %q bukan file upload", publicURL)
	}
	key := strings.TrimPrefix(u.Path, prefix)
	if key == "" {
		return "", fmt.Errorf("URL %q tidak berisi key", publicURL)
	}
	return key, nil
}

func (s *LocalStorage) writeFile(key string, data []byte) error {
	dst := filepath.Join(s.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}

/* ===============================
   Filename helpers
=================================*/

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = unsafeChars.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-._")
	if base == "" {
		base = "file"
	}
	if len(base) > 40 {
		base = base[:40]
	}
	return strings.ToLower(base)
}

// generateUniqueFilename: <slug>-<unix>-<uuid8>.webp
func generateUniqueFilename(original string) string {
	return fmt.Sprintf("%s-%d-%s.webp",
		sanitizeFilename(original),
		time.Now().Unix(),
		strings.Split(uuid.NewString(), "-")[0],
	)
}

func safePart(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = unsafeChars.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		s = "misc"
	}
	return s
}
