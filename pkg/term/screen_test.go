package term

import (
	"bytes"
	"testing"
)

func TestScreenBuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf)

	s.MoveTo(3, 7)
	s.Put('#')
	if buf.Len() != 0 {
		t.Fatalf("wrote %d bytes before Flush", buf.Len())
	}

	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := buf.String(); got != "\x1b[3;7H#" {
		t.Errorf("output = %q, want %q", got, "\x1b[3;7H#")
	}
}

func TestScreenCommands(t *testing.T) {
	tests := []struct {
		name     string
		run      func(*Screen)
		expected string
	}{
		{"enter alt screen", (*Screen).EnterAltScreen, "\x1b[?1049h"},
		{"exit alt screen", (*Screen).ExitAltScreen, "\x1b[?1049l"},
		{"hide cursor", (*Screen).HideCursor, "\x1b[?25l"},
		{"show cursor", (*Screen).ShowCursor, "\x1b[?25h"},
		{"erase screen", (*Screen).EraseScreen, "\x1b[2J"},
		{"home", (*Screen).Home, "\x1b[H"},
		{"reset style", (*Screen).ResetStyle, "\x1b[0m"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			s := NewScreen(&buf)
			tc.run(s)
			s.Flush()
			if got := buf.String(); got != tc.expected {
				t.Errorf("output = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestScreenSetColor(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf)

	s.SetColor(Green)
	s.Put('*')
	s.SetColor(Reset)
	s.Flush()

	if got := buf.String(); got != "\x1b[32m*\x1b[0m" {
		t.Errorf("output = %q", got)
	}
}

func TestScreenFlushEmptyWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf)

	if err := s.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty flush wrote %d bytes", buf.Len())
	}
}
