package shuffle

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DeriveSeed maps a seed and a list of labels to a stable non-negative seed.
func DeriveSeed(seed int64, labels ...string) int64 {
	parts := append([]string{strconv.FormatInt(seed, 10)}, labels...)
	h := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return int64(binary.LittleEndian.Uint64(h[:8]) & math.MaxInt64)
}

// NewSeed returns a fresh random non-negative seed for runs that were not given one.
func NewSeed() (int64, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:]) & math.MaxInt64), nil
}
