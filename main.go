package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	configPath := flag.String("config", "data/cargo.ini", "Path to the INI configuration")
	gridPath := flag.String("grid", "data/grid.yaml", "Path to the simulated grid (YAML)")
	once := flag.Bool("once", false, "Run a single tick and exit")
	console := flag.Bool("console", false, "Run ticks by hand from an interactive console")
	headless := flag.Bool("headless", false, "Read console commands from stdin without raw terminal input")
	reload := flag.Bool("reload", false, "Re-read the grid file before every tick")
	initFiles := flag.Bool("init", false, "Write a default config and sample grid, then exit")
	mcpHTTP := flag.Bool("mcp-http", false, "Run MCP Streamable HTTP server")
	mcpAddr := flag.String("mcp-addr", "127.0.0.1:8765", "MCP listen address")
	mcpPath := flag.String("mcp-path", "/mcp", "MCP endpoint path")
	mcpToken := flag.String("mcp-token", "", "Bearer token for MCP requests (optional)")
	mcpJSON := flag.Bool("mcp-json-response", false, "Force JSON responses instead of SSE")
	mcpStateless := flag.Bool("mcp-stateless", false, "Run MCP server in stateless mode (no sessions/SSE)")
	var origins stringSlice
	flag.Var(&origins, "mcp-origin", "Allowed Origin for MCP requests (repeatable)")

	flag.Usage = func() {
		fmt.Printf("Usage: cargoscreen [options]\n\n")
		fmt.Printf("Shows cargo capacity and the largest item stacks of a ship on a cockpit screen.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *initFiles {
		if err := writeTemplates(*configPath, *gridPath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Wrote %s and %s\n", *configPath, *gridPath)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	session, err := NewSession(cfg, *gridPath, logger)
	if err != nil {
		log.Fatal(err)
	}
	session.Reload = *reload

	switch {
	case *mcpHTTP:
		if len(origins) == 0 {
			origins = append(origins, "http://localhost", "http://127.0.0.1")
		}
		err := RunMCPHTTP(NewMCPServer(session), MCPHTTPOptions{
			Addr:         *mcpAddr,
			Path:         *mcpPath,
			Origins:      origins,
			Token:        *mcpToken,
			JSONResponse: *mcpJSON,
			Stateless:    *mcpStateless,
		})
		if err != nil {
			log.Fatal(err)
		}

	case *console:
		session.Display = newTerminalDisplay(os.Stdout, false)
		NewConsole(session, os.Stdin, os.Stdout, *headless).Run()

	case *once:
		session.Display = newTerminalDisplay(os.Stdout, false)
		if _, err := session.Tick(); err != nil {
			os.Exit(1)
		}

	default:
		session.Display = newTerminalDisplay(os.Stdout, true)
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		logger.Info("cargo report running", "grid", *gridPath, "target", cfg.CockpitName, "every", cfg.UpdateFrequency.Interval())
		err := runScheduled(ctx, cfg.UpdateFrequency, func() {
			// Validation failures are logged by the program; the next
			// tick tries again.
			_, _ = session.Tick()
		})
		if err != nil {
			log.Fatal(err)
		}
	}
}
