package assemble

import (
	"fmt"

	"examgen/internal/shuffle"
)

// MaxVersions bounds the number of lettered versions.
const MaxVersions = 26

// Version is one lettered exam variant and the seed its selection runs with.
type Version struct {
	Label string
	Seed  int64
}

// Versions returns the versions for count. A single version is unlettered and keeps seed.
func Versions(seed int64, count int) ([]Version, error) {
	if count < 1 || count > MaxVersions {
		return nil, fmt.Errorf("versions must be between 1 and %d", MaxVersions)
	}
	if count == 1 {
		return []Version{{Seed: seed}}, nil
	}
	out := make([]Version, count)
	for i := range out {
		label := string(rune('A' + i))
		out[i] = Version{Label: label, Seed: shuffle.DeriveSeed(seed, label)}
	}
	return out, nil
}
