// Package contenthash detects duplicate questions by whitespace-insensitive digests.
package contenthash

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/zeebo/xxh3"
)

// Normalize removes every whitespace rune so formatting never affects the digest.
func Normalize(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

// Hash returns the 128-bit XXH3 digest of the normalized text as 32 hex characters.
func Hash(text string) string {
	sum := xxh3.HashString128(Normalize(text))
	return fmt.Sprintf("%016x%016x", sum.Hi, sum.Lo)
}
