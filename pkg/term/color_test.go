package term

import "testing"

func TestColorSequences(t *testing.T) {
	tests := []struct {
		name     string
		color    Color
		expected string
	}{
		{"reset", Reset, "\x1b[0m"},
		{"black", Black, "\x1b[30m"},
		{"yellow", Yellow, "\x1b[33m"},
		{"white", White, "\x1b[37m"},
		{"bold red", BoldRed, "\x1b[1;31m"},
		{"bold white", BoldWhite, "\x1b[1;37m"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.color.Sequence(); got != tc.expected {
				t.Errorf("Sequence() = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestColorSequencesDistinct(t *testing.T) {
	seen := map[string]Color{}
	for c := Reset; c <= BoldWhite; c++ {
		seq := c.Sequence()
		if seq == "" {
			t.Fatalf("color %d has empty sequence", c)
		}
		if prev, ok := seen[seq]; ok {
			t.Fatalf("colors %d and %d share sequence %q", prev, c, seq)
		}
		seen[seq] = c
	}
}

func TestColorUnknownFallsBackToReset(t *testing.T) {
	if got := Color(200).Sequence(); got != Reset.Sequence() {
		t.Errorf("unknown color sequence = %q, want reset", got)
	}
}
