package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	kostModel "kostku_backend/internals/features/kost/model"
)

var slugNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug: "Kost Putri Melati 2" -> "kost-putri-melati-2"
func GenerateSlug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugNonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// EnsureUniqueSlug menambahkan suffix -2, -3, ... bila slug sudah dipakai.
func EnsureUniqueSlug(db *gorm.DB, base string) (string, error) {
	slug := base
	for i := 2; ; i++ {
		var count int64
		if err := db.Model(&kostModel.KostModel{}).
			Where("kost_slug = ?", slug).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// ParseStringArrayForm: field form berisi string JSON array,
// contoh `["wifi","kamar mandi dalam"]`. Kosong = slice kosong.
func ParseStringArrayForm(raw, fieldName string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest,
			fmt.Sprintf("Field %s harus berupa JSON array string", fieldName))
	}
	return out, nil
}
