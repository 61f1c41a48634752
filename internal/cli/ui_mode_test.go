package cli

import (
	"io"
	"testing"
)

// TestResolveColorMode verifies color decision logic.
func TestResolveColorMode(t *testing.T) {
	cases := []struct {
		name      string
		mode      string
		noColor   bool
		isTTY     bool
		wantColor bool
		wantWarn  bool
		wantErr   bool
	}{
		{name: "auto tty", mode: "auto", isTTY: true, wantColor: true},
		{name: "auto non-tty", mode: "auto", isTTY: false, wantColor: false},
		{name: "empty is auto", mode: "", isTTY: true, wantColor: true},
		{name: "never", mode: "never", isTTY: true, wantColor: false},
		{name: "no-color wins", mode: "always", noColor: true, isTTY: true, wantColor: false},
		{name: "always tty", mode: "always", isTTY: true, wantColor: true},
		{name: "always non-tty warning", mode: "always", isTTY: false, wantColor: true, wantWarn: true},
		{name: "invalid mode", mode: "nope", isTTY: true, wantErr: true},
	}

	original := isTerminal
	t.Cleanup(func() { isTerminal = original })

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isTerminal = func(_ io.Writer) bool { return tc.isTTY }
			decision, err := resolveColorMode(tc.mode, tc.noColor, nil)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if decision.useColor != tc.wantColor {
				t.Fatalf("expected useColor=%v, got %v", tc.wantColor, decision.useColor)
			}
			if tc.wantWarn != (decision.warning != "") {
				t.Fatalf("unexpected warning %q", decision.warning)
			}
		})
	}
}

// TestDefaultIsTerminalNil verifies nil writers are never terminals.
func TestDefaultIsTerminalNil(t *testing.T) {
	if defaultIsTerminal(nil) {
		t.Fatalf("expected nil writer to be non-terminal")
	}
}
