// Package term is the terminal collaborator for qube: a buffered
// escape-sequence sink, a window-size probe, and a SIGWINCH watcher.
package term

// Color identifies one entry of the closed palette the renderer draws
// with. The zero value is Reset (the terminal's default style).
type Color uint8

const (
	Reset Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BoldBlack
	BoldRed
	BoldGreen
	BoldYellow
	BoldBlue
	BoldMagenta
	BoldCyan
	BoldWhite
)

// sequences holds the SGR escape for each Color, indexed by its value.
var sequences = [...]string{
	Reset:       "\x1b[0m",
	Black:       "\x1b[30m",
	Red:         "\x1b[31m",
	Green:       "\x1b[32m",
	Yellow:      "\x1b[33m",
	Blue:        "\x1b[34m",
	Magenta:     "\x1b[35m",
	Cyan:        "\x1b[36m",
	White:       "\x1b[37m",
	BoldBlack:   "\x1b[1;30m",
	BoldRed:     "\x1b[1;31m",
	BoldGreen:   "\x1b[1;32m",
	BoldYellow:  "\x1b[1;33m",
	BoldBlue:    "\x1b[1;34m",
	BoldMagenta: "\x1b[1;35m",
	BoldCyan:    "\x1b[1;36m",
	BoldWhite:   "\x1b[1;37m",
}

// Sequence returns the SGR escape selecting c. Unknown values fall back
// to the reset sequence.
func (c Color) Sequence() string {
	if int(c) >= len(sequences) {
		return sequences[Reset]
	}
	return sequences[c]
}
