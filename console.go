package main

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

const maxHistory = 10

// Console runs report commands typed by a person, or piped in when
// headless.
type Console struct {
	session  *Session
	in       *bufio.Reader
	out      io.Writer
	headless bool
	running  bool

	history      [maxHistory]string
	historyCount int
}

func NewConsole(session *Session, in io.Reader, out io.Writer, headless bool) *Console {
	return &Console{
		session:  session,
		in:       bufio.NewReader(in),
		out:      out,
		headless: headless,
	}
}

func (c *Console) Run() {
	c.running = true
	c.println("Cargo console. Type HELP for commands.")
	for c.running {
		line, ok := c.readLine("> ")
		if !ok {
			break
		}
		processCommand(c, line)
	}
}

// readLine returns false once input is exhausted.
func (c *Console) readLine(prompt string) (string, bool) {
	c.print(prompt)
	if c.headless {
		return c.readBuffered()
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.readBuffered()
	}
	defer func() { _ = term.Restore(fd, oldState) }()
	return c.readRaw()
}

func (c *Console) readBuffered() (string, bool) {
	line, err := c.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		if err != io.EOF {
			c.printf("Input closed: %v\n", err)
		}
		return "", false
	}
	return line, true
}

// readRaw edits a line in raw mode; up and down walk the history.
func (c *Console) readRaw() (string, bool) {
	var line []rune
	histIdx := c.historyCount
	replace := func(r []rune) {
		for range line {
			c.print("\b \b")
		}
		line = r
		c.print(string(line))
	}

	for {
		buf := make([]byte, 4)
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			c.print("\r\n")
			return string(line), len(line) > 0
		}

		switch b := buf[0]; {
		case b == '\r' || b == '\n':
			c.print("\r\n")
			c.remember(string(line))
			return string(line), true

		case b == '\x04': // Ctrl-D
			c.print("\r\n")
			return "", false

		case b == '\x7f' || b == '\x08':
			if len(line) > 0 {
				line = line[:len(line)-1]
				c.print("\b \b")
			}

		case b == '\x1b':
			seq := buf[1:n]
			if len(seq) < 2 {
				rest := make([]byte, 2)
				m, _ := os.Stdin.Read(rest)
				seq = rest[:m]
			}
			if len(seq) < 2 || seq[0] != '[' {
				continue
			}
			switch seq[1] {
			case 'A':
				if histIdx > 0 {
					histIdx--
					replace([]rune(c.history[histIdx%maxHistory]))
				}
			case 'B':
				if histIdx < c.historyCount {
					histIdx++
					if histIdx < c.historyCount {
						replace([]rune(c.history[histIdx%maxHistory]))
					} else {
						replace(nil)
					}
				}
			}

		case b >= ' ':
			r, _ := utf8.DecodeRune(buf[:n])
			if r != utf8.RuneError {
				line = append(line, r)
				c.print(string(r))
			}
		}
	}
}

func (c *Console) remember(line string) {
	if line == "" {
		return
	}
	if c.historyCount > 0 && c.history[(c.historyCount-1)%maxHistory] == line {
		return
	}
	c.history[c.historyCount%maxHistory] = line
	c.historyCount++
}
