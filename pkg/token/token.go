// Package token generates short pickup verification codes printed on
// order receipts. Codes are random but not guaranteed unique; receipts are
// matched by order id, never by code.
package token

import (
	"math/rand"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultLength is the code length handed to students.
const DefaultLength = 6

// Generate returns a code of n characters drawn uniformly from A-Z0-9.
func Generate(n int) string {
	if n <= 0 {
		n = DefaultLength
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}
