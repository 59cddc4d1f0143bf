package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokorakit_backend/internals/configs"
)

func TestParseTransferTime(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Time
		ok   bool
	}{
		{
			name: "rfc3339",
			raw:  "2026-08-30T14:05:00+07:00",
			want: time.Date(2026, 8, 30, 14, 5, 0, 0, time.FixedZone("", 7*3600)),
			ok:   true,
		},
		{
			name: "tanggal dan jam tanpa zona",
			raw:  "2026-08-30 14:05:00",
			want: time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "format input datetime-local",
			raw:  "2026-08-30T14:05",
			want: time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "format tidak dikenal",
			raw:  "30/08/2026",
			ok:   false,
		},
		{
			name: "kosong",
			raw:  "",
			ok:   false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseTransferTime(tc.raw)
			if !tc.ok {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %v got %v", tc.want, got)
		})
	}
}

func TestValidSignature(t *testing.T) {
	prev := configs.MidtransServerKey
	configs.MidtransServerKey = "SB-Mid-server-rahasia"
	defer func() { configs.MidtransServerKey = prev }()

	notif := midtransNotification{
		OrderID:     "INV/20260830/AB3DE7",
		StatusCode:  "200",
		GrossAmount: "1500000.00",
	}
	sum := sha512.Sum512([]byte(notif.OrderID + notif.StatusCode + notif.GrossAmount + configs.MidtransServerKey))
	notif.SignatureKey = hex.EncodeToString(sum[:])

	assert.True(t, validSignature(notif))

	notif.GrossAmount = "1.00"
	assert.False(t, validSignature(notif), "perubahan nominal harus membatalkan signature")
}

func TestValidSignatureServerKeyKosong(t *testing.T) {
	prev := configs.MidtransServerKey
	configs.MidtransServerKey = ""
	defer func() { configs.MidtransServerKey = prev }()

	// digest dihitung dari field notifikasi saja, tanpa server key
	notif := midtransNotification{
		OrderID:     "INV/20260830/AB3DE7",
		StatusCode:  "200",
		GrossAmount: "1500000.00",
	}
	sum := sha512.Sum512([]byte(notif.OrderID + notif.StatusCode + notif.GrossAmount))
	notif.SignatureKey = hex.EncodeToString(sum[:])

	assert.False(t, validSignature(notif), "signature tanpa server key harus selalu ditolak")
}
