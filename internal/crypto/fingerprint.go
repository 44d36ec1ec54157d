package crypto

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// FingerprintQuestion returns a stable hex digest of question, used to group
// repeated questions in the question log. Case and runs of whitespace do not
// affect the result.
func FingerprintQuestion(question string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(question)), " ")
	sum := blake2b.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
