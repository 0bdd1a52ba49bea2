package main

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Session ties a Program to the grid fixture it reads and the terminal
// it draws on.
type Session struct {
	Program  *Program
	Grid     *Grid
	GridPath string
	// Reload re-reads GridPath before every tick.
	Reload  bool
	Display *terminalDisplay
}

func NewSession(cfg Config, gridPath string, logger *slog.Logger) (*Session, error) {
	grid, err := loadGrid(gridPath)
	if err != nil {
		return nil, err
	}
	return &Session{
		Program:  NewProgram(cfg, grid, grid.Me(), logger),
		Grid:     grid,
		GridPath: gridPath,
	}, nil
}

func (s *Session) ReloadGrid() error {
	grid, err := loadGrid(s.GridPath)
	if err != nil {
		return err
	}
	s.Grid = grid
	s.Program.Grid = grid
	s.Program.Me = grid.Me()
	return nil
}

// Tick runs the program once and redraws the display if it was written.
func (s *Session) Tick() (Report, error) {
	if s.Reload {
		if err := s.ReloadGrid(); err != nil {
			s.Program.Log.Warn("grid reload failed, keeping previous grid", "path", s.GridPath, "err", err)
		}
	}
	r, err := s.Program.Main()
	if err != nil {
		return r, err
	}
	if s.Display != nil {
		if st, ok := s.Grid.SurfaceState(s.Program.Config.CockpitName, s.Program.Config.CockpitScreen); ok {
			s.Display.Draw(st)
		}
	}
	return r, nil
}

// runScheduled calls tick immediately and then every freq until ctx is
// done. Ticks run on the calling goroutine so they never overlap.
func runScheduled(ctx context.Context, freq UpdateFrequency, tick func()) error {
	t := time.NewTicker(freq.Interval())
	defer t.Stop()
	tick()
	for {
		select {
		case <-ctx.Done():
			return stopReason(ctx)
		case <-t.C:
			if ctx.Err() != nil {
				return stopReason(ctx)
			}
			tick()
		}
	}
}

// stopReason treats plain cancellation as a clean shutdown.
func stopReason(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	return ctx.Err()
}
