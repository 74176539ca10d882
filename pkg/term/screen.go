package term

import (
	"bufio"
	"fmt"
	"io"
)

// Control sequences shared by the screen sink.
const (
	cursorHome       = "\x1b[H"
	cursorVisible    = "\x1b[?25h"
	cursorInvisible  = "\x1b[?25l"
	eraseScreen      = "\x1b[2J"
	enableAltBuffer  = "\x1b[?1049h"
	disableAltBuffer = "\x1b[?1049l"
)

// Screen is the character sink: it buffers cursor, style, and glyph
// commands and emits them as ANSI escape sequences on Flush. It never
// tracks cell contents; diffing is the compositor's job.
type Screen struct {
	w *bufio.Writer
}

// NewScreen wraps out, normally the process stdout, in a buffered sink.
func NewScreen(out io.Writer) *Screen {
	return &Screen{w: bufio.NewWriterSize(out, 32*1024)}
}

// EnterAltScreen switches to the alternate screen buffer.
func (s *Screen) EnterAltScreen() {
	s.w.WriteString(enableAltBuffer)
}

// ExitAltScreen returns to the main screen buffer.
func (s *Screen) ExitAltScreen() {
	s.w.WriteString(disableAltBuffer)
}

// HideCursor makes the cursor invisible.
func (s *Screen) HideCursor() {
	s.w.WriteString(cursorInvisible)
}

// ShowCursor makes the cursor visible.
func (s *Screen) ShowCursor() {
	s.w.WriteString(cursorVisible)
}

// EraseScreen clears the visible screen.
func (s *Screen) EraseScreen() {
	s.w.WriteString(eraseScreen)
}

// Home moves the cursor to row 1, column 1.
func (s *Screen) Home() {
	s.w.WriteString(cursorHome)
}

// MoveTo positions the cursor at the 1-based row and column.
func (s *Screen) MoveTo(row, col int) {
	fmt.Fprintf(s.w, "\x1b[%d;%dH", row, col)
}

// SetColor selects a palette color for subsequent glyphs.
func (s *Screen) SetColor(c Color) {
	s.w.WriteString(c.Sequence())
}

// ResetStyle restores the terminal's default style.
func (s *Screen) ResetStyle() {
	s.w.WriteString(Reset.Sequence())
}

// Put writes a single glyph at the current cursor position.
func (s *Screen) Put(glyph byte) {
	s.w.WriteByte(glyph)
}

// Flush pushes all buffered output to the terminal.
func (s *Screen) Flush() error {
	return s.w.Flush()
}
