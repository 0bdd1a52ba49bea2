package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type commandHandler func(c *Console, arg string)

type commandEntry struct {
	verb    string
	help    string
	handler commandHandler
}

var commands []commandEntry

func init() {
	commands = []commandEntry{
		{"RUN", "run the cargo report once", cmdRun},
		{"STATUS", "count cargo blocks on the construct", cmdStatus},
		{"ECHO", "show the detail output of the last run", cmdEcho},
		{"TOP", "TOP <n>: list n items", cmdTop},
		{"SCREEN", "SCREEN <i>: use cockpit screen i", cmdScreen},
		{"TARGET", "TARGET <name>: display on the named block", cmdTarget},
		{"RELOAD", "re-read the grid file", cmdReload},
		{"CONFIG", "show the current configuration", cmdConfig},
		{"HELP", "list commands", cmdHelp},
		{"QUIT", "leave the console", cmdQuit},
	}
}

var verbAliases = map[string]string{
	"R":    "RUN",
	"":     "RUN",
	"DIAG": "STATUS",
	"?":    "HELP",
	"Q":    "QUIT",
	"EXIT": "QUIT",
}

func splitCommand(cmd string) (verb, arg string) {
	trimmed := strings.TrimSpace(cmd)
	if i := strings.Index(trimmed, " "); i >= 0 {
		return strings.ToUpper(trimmed[:i]), strings.TrimSpace(trimmed[i+1:])
	}
	return strings.ToUpper(trimmed), ""
}

func processCommand(c *Console, cmd string) {
	verb, arg := splitCommand(cmd)
	if alias, ok := verbAliases[verb]; ok {
		verb = alias
	}
	for _, e := range commands {
		if e.verb == verb {
			e.handler(c, arg)
			return
		}
	}
	c.printf("Unknown command %q. Type HELP.\n", verb)
}

func cmdRun(c *Console, _ string) {
	r, err := c.session.Tick()
	if err != nil {
		if errors.Is(err, ErrTargetNotFound) {
			c.print(c.session.Program.EchoText())
			return
		}
		c.printf("Run failed: %v\n", err)
		return
	}
	c.printf("Load %s (%.2f%%), %d item types\n", r.Load, r.Percent, r.DistinctItems)
}

func cmdStatus(c *Console, _ string) {
	counts := c.session.Program.DoDiagnostics(false).Counts()
	c.printf("Cargo Containers: %d\n", counts.CargoContainers)
	c.printf("Connectors: %d\n", counts.Connectors)
	c.printf("Tools: %d\n", counts.Tools)
}

func cmdEcho(c *Console, _ string) {
	text := c.session.Program.EchoText()
	if text == "" {
		c.println("Nothing echoed yet. Type RUN.")
		return
	}
	c.print(text)
}

func cmdTop(c *Console, arg string) {
	n, ok := c.intArg(arg)
	if !ok {
		return
	}
	if n < 0 {
		c.println("TOP needs a number >= 0.")
		return
	}
	c.session.Program.Config.TopPositions = n
	c.printf("Listing top %d items.\n", n)
}

func cmdScreen(c *Console, arg string) {
	n, ok := c.intArg(arg)
	if !ok {
		return
	}
	if n < 0 {
		c.println("SCREEN needs an index >= 0.")
		return
	}
	c.session.Program.Config.CockpitScreen = n
	c.printf("Using screen %d.\n", n)
}

func cmdTarget(c *Console, arg string) {
	if arg == "" {
		c.println("TARGET needs a block name.")
		return
	}
	c.session.Program.Config.CockpitName = arg
	c.printf("Display target set to %q.\n", arg)
}

func cmdReload(c *Console, _ string) {
	if err := c.session.ReloadGrid(); err != nil {
		c.printf("Reload failed: %v\n", err)
		return
	}
	c.printf("Reloaded %s.\n", c.session.GridPath)
}

func cmdConfig(c *Console, _ string) {
	cfg := c.session.Program.Config
	c.printf("CockpitName     = %s\n", cfg.CockpitName)
	c.printf("CockpitScreen   = %d\n", cfg.CockpitScreen)
	c.printf("BarLength       = %d\n", cfg.BarLength)
	c.printf("TopPositions    = %d\n", cfg.TopPositions)
	c.printf("Debug           = %t\n", cfg.Debug)
	c.printf("UpdateFrequency = %d\n", cfg.UpdateFrequency)
}

func cmdHelp(c *Console, _ string) {
	for _, e := range commands {
		c.printf("  %-7s %s\n", e.verb, e.help)
	}
}

func cmdQuit(c *Console, _ string) {
	c.running = false
}

func (c *Console) intArg(arg string) (int, bool) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		c.printf("Expected a number, got %q.\n", arg)
		return 0, false
	}
	return n, true
}

func (c *Console) print(a ...any) {
	_, _ = fmt.Fprint(c.out, a...)
}

func (c *Console) println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}
