package ref

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// alphabet leaves out 0/O and 1/I so a reference survives being read
// over the phone.
const alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const codeLen = 6

const Prefix = "RSV-"

var refPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9-]{3,31}$`)

// NewReservationRef mints a short human-readable reference like
// RSV-8F3KQ2. Collisions are caught by the unique constraint on the
// reservations table, not here.
func NewReservationRef() (string, error) {
	var b strings.Builder
	b.WriteString(Prefix)
	for i := 0; i < codeLen; i++ {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(alphabet))))
		if err != nil {
			return "", fmt.Errorf("generate reference: %w", err)
		}
		b.WriteByte(alphabet[idx.Int64()])
	}
	return b.String(), nil
}

// Valid reports whether an externally supplied reference is acceptable
// as a reservation id: uppercase alphanumerics and dashes, 4 to 32
// characters, starting with a letter or digit.
func Valid(ref string) bool {
	return refPattern.MatchString(ref)
}
