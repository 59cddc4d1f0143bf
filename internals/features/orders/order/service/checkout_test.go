package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name     string
		lines    []CheckoutLine
		buildFee int64
		want     int64
	}{
		{
			name: "pesanan produk biasa",
			lines: []CheckoutLine{
				{Price: 1500000, Quantity: 2},
				{Price: 250000, Quantity: 1},
			},
			want: 3250000,
		},
		{
			name: "rakitan dengan biaya rakit toko",
			lines: []CheckoutLine{
				{Price: 4200000, Quantity: 1},
				{Price: 1800000, Quantity: 2},
			},
			buildFee: 150000,
			want:     7950000,
		},
		{
			name:     "rakit sendiri tanpa biaya rakit",
			lines:    []CheckoutLine{{Price: 900000, Quantity: 1}},
			buildFee: 0,
			want:     900000,
		},
		{
			name: "tanpa baris hanya biaya rakit",
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeTotal(tt.lines, tt.buildFee))
		})
	}
}
