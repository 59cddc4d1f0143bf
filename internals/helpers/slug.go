package helper

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gorm.io/gorm"
)

const DefaultSlugMaxLen = 160

// SlugOptions menentukan cara cek keunikan slug di DB.
type SlugOptions struct {
	Table      string // nama tabel, contoh: "products"
	SlugColumn string // kolom slug, contoh: "product_slug"

	// Kolom soft-delete (NULL berarti belum terhapus). Kosongkan jika tidak pakai.
	SoftDeleteColumn string

	// Panjang maksimal slug (termasuk suffix -2, -3, dst). 0 = DefaultSlugMaxLen.
	MaxLen int

	// Base fallback jika input kosong setelah dinormalisasi.
	DefaultBase string
}

// GenerateSlug menormalkan string menjadi slug:
// lower-case, non-alnum jadi "-", collapse "-" beruntun, trim di kedua ujung.
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	return regexp.MustCompile(`-+`).ReplaceAllString(out, "-")
}

func cutToLen(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return strings.Trim(s, "-")
	}
	return strings.Trim(s[:n], "-")
}

func slugTaken(db *gorm.DB, opts SlugOptions, candidate string) (bool, error) {
	if opts.Table == "" || opts.SlugColumn == "" {
		return false, errors.New("slug options: table/slug column required")
	}

	q := db.Table(opts.Table).
		Where(fmt.Sprintf("lower(%s) = lower(?)", opts.SlugColumn), candidate)
	if opts.SoftDeleteColumn != "" {
		q = q.Where(fmt.Sprintf("%s IS NULL", opts.SoftDeleteColumn))
	}

	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// GenerateUniqueSlug membuat slug unik berbasis "base" (atau DefaultBase bila
// kosong), case-insensitive, hanya menghitung baris yang belum soft-delete.
// Jika bentrok, coba base-2, base-3, ... sampai ketemu.
func GenerateUniqueSlug(db *gorm.DB, opts SlugOptions, base string) (string, error) {
	maxLen := opts.MaxLen
	if maxLen <= 0 {
		maxLen = DefaultSlugMaxLen
	}

	base = GenerateSlug(strings.TrimSpace(base))
	if base == "" {
		base = GenerateSlug(opts.DefaultBase)
	}
	if base == "" {
		base = "x"
	}
	if len(base) > maxLen {
		base = cutToLen(base, maxLen)
	}

	taken, err := slugTaken(db, opts, base)
	if err != nil {
		return "", err
	}
	if !taken {
		return base, nil
	}

	for i := 2; i < 10000; i++ {
		suf := fmt.Sprintf("-%d", i)
		candidate := base
		if len(candidate)+len(suf) > maxLen {
			candidate = cutToLen(candidate, maxLen-len(suf))
			if candidate == "" {
				candidate = "x"
			}
		}
		candidate += suf

		taken, err = slugTaken(db, opts, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", errors.New("failed to generate unique slug after many attempts")
}
