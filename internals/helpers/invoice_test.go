package helper

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvoiceNumber(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	inv := GenerateInvoiceNumber(now)
	require.True(t, strings.HasPrefix(inv, "INV/20260830/"), "prefix salah: %s", inv)

	pattern := regexp.MustCompile(`^INV/\d{8}/[A-HJ-NP-Z2-9]{6}$`)
	assert.Regexp(t, pattern, inv)
}

func TestGenerateInvoiceNumberSuffixVaries(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[GenerateInvoiceNumber(now)] = true
	}
	// 50 invoice pada detik yang sama hampir pasti unik semua
	assert.Greater(t, len(seen), 45)
}
