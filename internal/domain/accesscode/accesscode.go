// Package accesscode issues the human-readable admission reference
// handed to an applicant once their payment is confirmed.
package accesscode

import "math/rand"

const Prefix = "G10-"

// Alphabet excludes I, O, 0 and 1 so codes read unambiguously when
// written down.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLen = 6

// New returns a fresh code of the form G10-XXXXXX. Codes are
// statistically near-unique (32^6 combinations) but no registry of
// issued codes exists; uniqueness is not a guarantee.
func New() string {
	b := make([]byte, 0, len(Prefix)+codeLen)
	b = append(b, Prefix...)
	for i := 0; i < codeLen; i++ {
		b = append(b, Alphabet[rand.Intn(len(Alphabet))])
	}
	return string(b)
}
