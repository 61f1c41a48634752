package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// colorDecision captures whether the summary is styled.
type colorDecision struct {
	useColor bool
	warning  string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// resolveColorMode determines whether to color the summary.
func resolveColorMode(mode string, noColor bool, stdout io.Writer) (colorDecision, error) {
	if noColor {
		return colorDecision{useColor: false}, nil
	}
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}
	switch normalized {
	case "auto":
		return colorDecision{useColor: isTerminal(stdout)}, nil
	case "always":
		if isTerminal(stdout) {
			return colorDecision{useColor: true}, nil
		}
		return colorDecision{
			useColor: true,
			warning:  "Color requested but stdout is not a TTY; escape codes will be written.",
		}, nil
	case "never":
		return colorDecision{useColor: false}, nil
	default:
		return colorDecision{}, fmt.Errorf("invalid color mode %q (expected auto|always|never)", mode)
	}
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
