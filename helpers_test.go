package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func cargo(name string, maxVol, curVol float64, items ...itemSpec) blockSpec {
	return blockSpec{
		Name: name,
		Type: CategoryCargoContainer.String(),
		Inventory: &inventorySpec{
			MaxVolume:     maxVol,
			CurrentVolume: curVol,
			Items:         items,
		},
	}
}

func ore(subtype string, amount float64) itemSpec {
	return itemSpec{Type: "MyObjectBuilder_Ore", Subtype: subtype, Amount: amount}
}

// newTestGrid builds a grid with a programmable block and a two-screen
// cockpit in front of the given blocks.
func newTestGrid(t *testing.T, blocks ...blockSpec) *Grid {
	t.Helper()
	f := gridFile{
		Construct: "Test",
		Blocks: append([]blockSpec{
			{Name: "Programmable Block", Type: CategoryProgrammableBlock.String()},
			{Name: "Cockpit", Type: CategoryCockpit.String(), Surfaces: 2},
		}, blocks...),
	}
	g, err := buildGrid(f)
	require.NoError(t, err)
	return g
}

func newTestProgram(t *testing.T, cfg Config, g *Grid) (*Program, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewProgram(cfg, g, g.Me(), logger), &logs
}
