package crypto

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// FingerprintBytes is the truncated digest length of a fingerprint.
const FingerprintBytes = 8

// Fingerprint returns a short hex fingerprint of b.
//
// It hashes with BLAKE2b-256 and truncates to 8 bytes (16 hex chars), enough
// to match an emailed signature image against server logs by eye.
func Fingerprint(b []byte) string {
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:FingerprintBytes])
}

// Grouped formats a fingerprint in blocks of four, e.g. "1a2b-3c4d-...".
func Grouped(fp string) string {
	out := make([]byte, 0, len(fp)+len(fp)/4)
	for i := 0; i < len(fp); i++ {
		if i > 0 && i%4 == 0 {
			out = append(out, '-')
		}
		out = append(out, fp[i])
	}
	return string(out)
}
