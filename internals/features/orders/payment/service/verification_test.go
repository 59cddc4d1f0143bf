package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderModel "tokorakit_backend/internals/features/orders/order/model"
)

func TestEnsureNotVerified(t *testing.T) {
	approved := true
	rejected := false

	cases := []struct {
		name       string
		isVerified *bool
		wantErr    error
	}{
		{name: "belum pernah diverifikasi", isVerified: nil, wantErr: nil},
		{name: "sudah diterima", isVerified: &approved, wantErr: ErrAlreadyVerified},
		{name: "sudah ditolak", isVerified: &rejected, wantErr: ErrAlreadyVerified},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := EnsureNotVerified(tc.isVerified)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// Verifikasi kedua harus gagal tanpa mengubah keputusan pertama,
// apapun isi keputusan keduanya.
func TestEnsureNotVerifiedSekaliSaja(t *testing.T) {
	var recorded *bool

	require.NoError(t, EnsureNotVerified(recorded))
	first := true
	recorded = &first

	for _, second := range []bool{true, false} {
		err := EnsureNotVerified(recorded)
		require.ErrorIs(t, err, ErrAlreadyVerified, "keputusan kedua %v harus ditolak", second)
		assert.True(t, *recorded, "keputusan pertama tidak boleh berubah")
	}
}

func TestVerificationOutcome(t *testing.T) {
	paymentStatus, orderStatus := VerificationOutcome(true)
	assert.Equal(t, orderModel.PaymentSudahBayar, paymentStatus)
	assert.Equal(t, orderModel.StatusDiproses, orderStatus)

	paymentStatus, orderStatus = VerificationOutcome(false)
	assert.Equal(t, orderModel.PaymentGagal, paymentStatus)
	assert.Equal(t, orderModel.StatusDibatalkan, orderStatus)
}
