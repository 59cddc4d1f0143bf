package helper

import (
	"crypto/rand"
	"fmt"
	"time"
)

const invoiceSuffixAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateInvoiceNumber membuat nomor invoice format INV/20250830/AB12CD.
// Suffix acak 6 karakter; keunikan final tetap dijaga unique index di DB.
func GenerateInvoiceNumber(now time.Time) string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	for i := range buf {
		buf[i] = invoiceSuffixAlphabet[int(buf[i])%len(invoiceSuffixAlphabet)]
	}
	return fmt.Sprintf("INV/%s/%s", now.Format("20060102"), string(buf))
}
