package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"huruf besar jadi kecil", "Ryzen 7 7800X3D", "ryzen-7-7800x3d"},
		{"simbol jadi strip", "RTX 4070 Ti SUPER 12GB!", "rtx-4070-ti-super-12gb"},
		{"strip beruntun dirapikan", "SSD  --  NVMe", "ssd-nvme"},
		{"spasi pinggir dibuang", "  Casing ATX  ", "casing-atx"},
		{"kosong tetap kosong", "   ", ""},
		{"angka dipertahankan", "DDR5 6000MHz 32GB", "ddr5-6000mhz-32gb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateSlug(tt.in))
		})
	}
}
