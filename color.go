package logger

import "github.com/fatih/color"

// Color selects the foreground color of a log line. The zero value is the
// terminal's default gray.
type Color uint8

const (
	Gray Color = iota
	Black
	White
	Red
	Green
	Blue
	Cyan
	Magenta
	Yellow
	DarkGray
	DarkRed
	DarkGreen
	DarkBlue
	DarkCyan
	DarkMagenta
	DarkYellow
)

// attrs maps each named color to its ANSI attribute. Bright colors carry
// the intensity variant, dark ones use the plain foreground codes.
// These respect NO_COLOR and non-TTY environments automatically.
var attrs = map[Color]*color.Color{
	Gray:        color.New(color.FgWhite),
	Black:       color.New(color.FgBlack),
	White:       color.New(color.FgHiWhite),
	Red:         color.New(color.FgHiRed),
	Green:       color.New(color.FgHiGreen),
	Blue:        color.New(color.FgHiBlue),
	Cyan:        color.New(color.FgHiCyan),
	Magenta:     color.New(color.FgHiMagenta),
	Yellow:      color.New(color.FgHiYellow),
	DarkGray:    color.New(color.FgHiBlack),
	DarkRed:     color.New(color.FgRed),
	DarkGreen:   color.New(color.FgGreen),
	DarkBlue:    color.New(color.FgBlue),
	DarkCyan:    color.New(color.FgCyan),
	DarkMagenta: color.New(color.FgMagenta),
	DarkYellow:  color.New(color.FgYellow),
}

// Dim renders de-emphasized text, used for the counting widget's ticker line.
var Dim = color.New(color.Faint).SprintFunc()

// ansi returns the attribute for c. Unknown values fall back to the
// default gray so a bad color never breaks a write.
func (c Color) ansi() *color.Color {
	if a, ok := attrs[c]; ok {
		return a
	}
	return attrs[Gray]
}

func (c Color) String() string {
	switch c {
	case Gray:
		return "gray"
	case Black:
		return "black"
	case White:
		return "white"
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Cyan:
		return "cyan"
	case Magenta:
		return "magenta"
	case Yellow:
		return "yellow"
	case DarkGray:
		return "dark gray"
	case DarkRed:
		return "dark red"
	case DarkGreen:
		return "dark green"
	case DarkBlue:
		return "dark blue"
	case DarkCyan:
		return "dark cyan"
	case DarkMagenta:
		return "dark magenta"
	case DarkYellow:
		return "dark yellow"
	}
	return "gray"
}
