package main

import "time"

const (
	DefaultCockpitName     = "Cockpit"
	DefaultCockpitScreen   = 0
	DefaultBarLength       = 50
	DefaultTopPositions    = 3
	DefaultUpdateFrequency = Update100

	// GameTicksPerSecond is the simulation rate the update tiers count in.
	GameTicksPerSecond = 60

	MediumLoadPercent = 30
	HighLoadPercent   = 80

	BarFull  = "|"
	BarEmpty = "'"
	BarStart = "{"
	BarEnd   = "}"

	PrimaryInventory = 0
)

// UpdateFrequency is how many game ticks pass between two runs.
type UpdateFrequency int

const (
	Update1   UpdateFrequency = 1
	Update10  UpdateFrequency = 10
	Update100 UpdateFrequency = 100
)

func (f UpdateFrequency) Valid() bool {
	return f == Update1 || f == Update10 || f == Update100
}

func (f UpdateFrequency) Interval() time.Duration {
	return time.Duration(f) * time.Second / GameTicksPerSecond
}

type BlockCategory int

const (
	CategoryOther BlockCategory = iota
	CategoryCargoContainer
	CategoryConnector
	CategoryDrill
	CategoryWelder
	CategoryGrinder
	CategoryCockpit
	CategoryTextPanel
	CategoryProgrammableBlock
)

var categoryNames = map[BlockCategory]string{
	CategoryOther:             "Other",
	CategoryCargoContainer:    "CargoContainer",
	CategoryConnector:         "Connector",
	CategoryDrill:             "Drill",
	CategoryWelder:            "Welder",
	CategoryGrinder:           "Grinder",
	CategoryCockpit:           "Cockpit",
	CategoryTextPanel:         "TextPanel",
	CategoryProgrammableBlock: "ProgrammableBlock",
}

func (c BlockCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Other"
}

func parseCategory(name string) (BlockCategory, bool) {
	for c, n := range categoryNames {
		if n == name {
			return c, true
		}
	}
	return CategoryOther, false
}

type ContentType int

const (
	ContentNone ContentType = iota
	ContentTextAndImage
	ContentScript
)

type Color string

const (
	ColorWhite  Color = "White"
	ColorGreen  Color = "Green"
	ColorYellow Color = "Yellow"
	ColorRed    Color = "Red"
)

type LoadState int

const (
	LoadLow LoadState = iota
	LoadMedium
	LoadHigh
)

func (s LoadState) String() string {
	switch s {
	case LoadMedium:
		return "medium"
	case LoadHigh:
		return "high"
	default:
		return "low"
	}
}

func (s LoadState) Color() Color {
	switch s {
	case LoadMedium:
		return ColorYellow
	case LoadHigh:
		return ColorRed
	default:
		return ColorGreen
	}
}
