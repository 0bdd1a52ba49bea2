package main

import (
	"bytes"
	"io"
	"log/slog"

	"github.com/rs/xid"
)

// Program is the cargo report as it would run on a programmable block.
type Program struct {
	Config Config
	Grid   GridTerminalSystem
	Me     TerminalBlock

	// Out receives echo lines; the last run's echo is kept in Echo().
	Out io.Writer
	Log *slog.Logger

	echo bytes.Buffer
	tick *slog.Logger
}

type BlockCounts struct {
	CargoContainers int
	Connectors      int
	Tools           int
}

// Report is what one run computed and wrote.
type Report struct {
	TickID        string
	Capacity      Capacity
	Percent       float64
	Load          LoadState
	Counts        BlockCounts
	DistinctItems int
	TopItems      []StackedItem
	Text          string
}

func NewProgram(cfg Config, grid GridTerminalSystem, me TerminalBlock, logger *slog.Logger) *Program {
	if logger == nil {
		logger = slog.Default()
	}
	return &Program{
		Config: cfg,
		Grid:   grid,
		Me:     me,
		Log:    logger,
	}
}

// Main runs one tick. On ErrTargetNotFound nothing is written to any
// display and the previous content stays.
func (p *Program) Main() (Report, error) {
	p.echo.Reset()
	id := xid.New().String()
	p.tick = p.Log.With("tick", id)

	surface, err := p.ValidateConfig()
	if err != nil {
		p.tick.Error("configuration validation failed", "err", err)
		return Report{TickID: id}, err
	}

	containers := p.DoDiagnostics(true)
	capacity := calculateCapacity(containers)

	r := Report{
		TickID:   id,
		Capacity: capacity,
		Percent:  capacity.Percent(),
		Counts:   containers.Counts(),
	}
	r.Load = loadStateFor(r.Percent)

	merged := p.aggregateItems(containers)
	r.DistinctItems = len(merged)
	r.TopItems = topItems(merged, p.Config.TopPositions)

	capacityInfo := p.buildCapacityInfo(capacity)
	topInfo := buildTopItemsInfo(r.TopItems)
	p.Echo(topInfo)

	r.Text = capacityInfo + "\n\n" + topInfo
	displayInCockpit(surface, r.Text, r.Load)
	p.tick.Debug("display updated", "percent", r.Percent, "load", r.Load.String())
	return r, nil
}

// EchoText returns everything echoed during the last run.
func (p *Program) EchoText() string {
	return p.echo.String()
}

func (p *Program) Echo(a ...any) {
	outPrintln(p, a...)
}

func (p *Program) DebugEcho(msg string, args ...any) {
	if !p.Config.Debug {
		return
	}
	p.logger().Debug(msg, args...)
}

func (p *Program) logger() *slog.Logger {
	if p.tick != nil {
		return p.tick
	}
	return p.Log
}
