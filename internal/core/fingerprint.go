package core

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint identifies a cleaned line sequence, so the same pasted text
// seen twice in a row can be recognized.
func Fingerprint(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	sum := sha256.Sum256([]byte(strings.Join(lines, "\n")))
	return hex.EncodeToString(sum[:])
}
