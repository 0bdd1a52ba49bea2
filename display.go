package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

var ansiColors = map[Color]string{
	ColorWhite:  "\x1b[37m",
	ColorGreen:  "\x1b[32m",
	ColorYellow: "\x1b[33m",
	ColorRed:    "\x1b[31m",
}

const (
	ansiReset = "\x1b[0m"
	ansiClear = "\x1b[H\x1b[2J"
)

// terminalDisplay mirrors one in-game screen onto a writer.
type terminalDisplay struct {
	w     io.Writer
	color bool
	clear bool
}

func newTerminalDisplay(w io.Writer, redraw bool) *terminalDisplay {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = term.IsTerminal(int(f.Fd()))
	}
	return &terminalDisplay{w: w, color: tty, clear: tty && redraw}
}

func (d *terminalDisplay) Draw(s SurfaceState) {
	if s.ContentType != ContentTextAndImage {
		return
	}
	if d.clear {
		_, _ = io.WriteString(d.w, ansiClear)
	}
	if d.color {
		_, _ = fmt.Fprintf(d.w, "%s%s%s\n", ansiColors[s.Color], s.Text, ansiReset)
		return
	}
	_, _ = fmt.Fprintf(d.w, "[%s]\n%s\n", s.Color, s.Text)
}
