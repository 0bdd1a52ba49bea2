package main

import (
	"fmt"
	"io"
)

// outWriter feeds the echo buffer and, when set, Program.Out.
func outWriter(p *Program) io.Writer {
	if p.Out != nil {
		return io.MultiWriter(&p.echo, p.Out)
	}
	return &p.echo
}

func outPrintln(p *Program, a ...any) {
	_, _ = fmt.Fprintln(outWriter(p), a...)
}

func outPrintf(p *Program, format string, a ...any) {
	_, _ = fmt.Fprintf(outWriter(p), format, a...)
}
