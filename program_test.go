package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_EndToEndExample(t *testing.T) {
	g, err := loadGrid("testdata/example.yaml")
	require.NoError(t, err)
	p, _ := newTestProgram(t, DefaultConfig(), g)

	r, err := p.Main()
	require.NoError(t, err)

	assert.Equal(t, Capacity{Current: 50, Max: 150}, r.Capacity)
	assert.InDelta(t, 33.33, r.Percent, 0.01)
	assert.Equal(t, LoadMedium, r.Load)
	assert.Equal(t, 2, r.DistinctItems)
	assert.NotEmpty(t, r.TickID)

	want := "Cargo: 50m³ / 150m³\n" +
		"{" + strings.Repeat("|", 16) + strings.Repeat("'", 34) + "}\n" +
		"100 m³ free\n" +
		"\n" +
		"Top 2 items in cargo:\n" +
		"Iron – 1,750\n" +
		"Stone – 200"
	assert.Equal(t, want, r.Text)

	st, ok := g.SurfaceState("Cockpit", 0)
	require.True(t, ok)
	assert.Equal(t, want, st.Text)
	assert.Equal(t, ColorYellow, st.Color)
	assert.Equal(t, ContentTextAndImage, st.ContentType)
}

func TestMain_SampleShip(t *testing.T) {
	g, err := loadGrid("testdata/grid.yaml")
	require.NoError(t, err)
	p, _ := newTestProgram(t, DefaultConfig(), g)

	r, err := p.Main()
	require.NoError(t, err)

	assert.Equal(t, LoadMedium, r.Load)
	assert.Equal(t, BlockCounts{CargoContainers: 2, Connectors: 1, Tools: 3}, r.Counts)
	assert.Equal(t, 5, r.DistinctItems)
	assert.Equal(t, []StackedItem{
		stacked("MyObjectBuilder_Ore", "Iron", 47760),
		stacked("MyObjectBuilder_Ore", "Nickel", 9120),
		stacked("MyObjectBuilder_Ore", "Ice", 2400),
	}, r.TopItems)
	assert.NotContains(t, r.Text, "Gold")

	echo := p.EchoText()
	assert.Contains(t, echo, "Configuration validated\n")
	assert.Contains(t, echo, "Tools: 3\n")
	assert.Contains(t, echo, "Cargo Containers: 2\n")
	assert.Contains(t, echo, "Top 3 items in cargo:\nIron – 47,760")
}

func TestMain_MissingTargetAbortsWithoutWriting(t *testing.T) {
	g := newTestGrid(t, cargo("Box", 10, 5, ore("Iron", 3)))
	cfg := DefaultConfig()
	p, logs := newTestProgram(t, cfg, g)

	_, err := p.Main()
	require.NoError(t, err)
	before, _ := g.SurfaceState("Cockpit", 0)
	require.Equal(t, 1, before.Writes)

	p.Config.CockpitName = "Bridge"
	_, err = p.Main()
	require.ErrorIs(t, err, ErrTargetNotFound)
	assert.Contains(t, p.EchoText(), "Bridge not found on the ship")
	assert.NotContains(t, p.EchoText(), "Configuration validated")
	assert.Contains(t, logs.String(), "configuration validation failed")

	after, _ := g.SurfaceState("Cockpit", 0)
	assert.Equal(t, before, after)
}

func TestMain_InvalidScreenIndex(t *testing.T) {
	g := newTestGrid(t)
	cfg := DefaultConfig()
	cfg.CockpitScreen = 2
	p, _ := newTestProgram(t, cfg, g)

	_, err := p.Main()
	require.ErrorIs(t, err, ErrTargetNotFound)
	assert.Contains(t, p.EchoText(), "Cockpit screen with index 2 not found")

	for i := 0; i < 2; i++ {
		st, _ := g.SurfaceState("Cockpit", i)
		assert.Zero(t, st.Writes)
	}
}

func TestMain_BlockWithoutScreen(t *testing.T) {
	g := newTestGrid(t, cargo("Box", 10, 5))
	cfg := DefaultConfig()
	cfg.CockpitName = "Box"
	p, _ := newTestProgram(t, cfg, g)

	_, err := p.Main()
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestMain_TextPanelTarget(t *testing.T) {
	g := newTestGrid(t,
		blockSpec{Name: "LCD", Type: CategoryTextPanel.String()},
		cargo("Box", 10, 9, ore("Iron", 3)),
	)
	cfg := DefaultConfig()
	cfg.CockpitName = "LCD"
	cfg.CockpitScreen = 3
	p, _ := newTestProgram(t, cfg, g)

	r, err := p.Main()
	require.NoError(t, err)
	assert.Equal(t, LoadHigh, r.Load)

	st, ok := g.SurfaceState("LCD", 0)
	require.True(t, ok)
	assert.Equal(t, ColorRed, st.Color)
	assert.True(t, strings.HasSuffix(st.Text, "Top 1 item in cargo:\nIron – 3"))
}

func TestMain_EmptyShip(t *testing.T) {
	g := newTestGrid(t)
	p, _ := newTestProgram(t, DefaultConfig(), g)

	r, err := p.Main()
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Percent)
	assert.Equal(t, LoadLow, r.Load)
	assert.Equal(t, "Cargo: 0m³ / 0m³\n{"+strings.Repeat("'", 50)+"}\n0 m³ free\n\nTop 0 items in cargo:", r.Text)
}

func TestMain_DebugLogging(t *testing.T) {
	g, err := loadGrid("testdata/example.yaml")
	require.NoError(t, err)
	cfg := DefaultConfig()

	p, logs := newTestProgram(t, cfg, g)
	_, err = p.Main()
	require.NoError(t, err)
	assert.NotContains(t, logs.String(), "merged items")

	cfg.Debug = true
	p, logs = newTestProgram(t, cfg, g)
	r, err := p.Main()
	require.NoError(t, err)
	out := logs.String()
	assert.Contains(t, out, "merged items")
	assert.Contains(t, out, "filledBars=16")
	assert.Contains(t, out, "tick="+r.TickID)
}

func TestMain_EchoAlsoGoesToOut(t *testing.T) {
	g := newTestGrid(t)
	p, _ := newTestProgram(t, DefaultConfig(), g)
	var out strings.Builder
	p.Out = &out

	_, err := p.Main()
	require.NoError(t, err)
	assert.Equal(t, p.EchoText(), out.String())
}
