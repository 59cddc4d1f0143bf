package service

// DefaultBuildFee: biaya jasa rakit kalau toko yang merakit.
const DefaultBuildFee int64 = 150000

// CheckoutLine: satu baris harga beku hasil konversi keranjang.
type CheckoutLine struct {
	Price    int64
	Quantity int
}

// ComputeTotal menjumlahkan harga x kuantitas seluruh baris ditambah
// biaya rakit (nol untuk pesanan biasa atau rakit sendiri).
func ComputeTotal(lines []CheckoutLine, buildFee int64) int64 {
	var total int64
	for _, l := range lines {
		total += l.Price * int64(l.Quantity)
	}
	return total + buildFee
}
