package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateCapacity_SumsAllCategories(t *testing.T) {
	g, err := loadGrid("testdata/grid.yaml")
	require.NoError(t, err)

	c := discoverContainers(g, g.Me())
	assert.Equal(t, BlockCounts{CargoContainers: 2, Connectors: 1, Tools: 3}, c.Counts())

	total := calculateCapacity(c)
	assert.InDelta(t, 443.027, total.Max, 1e-9)
	assert.InDelta(t, 177.7, total.Current, 1e-9)
	assert.InDelta(t, 265.327, total.Free(), 1e-9)
}

func TestCalculateCapacity_OrderIndependent(t *testing.T) {
	var blocks []blockSpec
	var wantMax, wantCur float64
	for i := 0; i < 20; i++ {
		maxVol := float64(i*7 + 3)
		curVol := float64(i * 2)
		wantMax += maxVol
		wantCur += curVol
		blocks = append(blocks, cargo("Cargo", maxVol, curVol))
	}
	g := newTestGrid(t, blocks...)
	c := discoverContainers(g, g.Me())

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5; i++ {
		rng.Shuffle(len(c.Cargo), func(a, b int) { c.Cargo[a], c.Cargo[b] = c.Cargo[b], c.Cargo[a] })
		total := calculateCapacity(c)
		assert.Equal(t, wantMax, total.Max)
		assert.Equal(t, wantCur, total.Current)
	}
}

func TestCapacityPercent(t *testing.T) {
	assert.InDelta(t, 33.333, Capacity{Current: 50, Max: 150}.Percent(), 0.001)
	assert.Equal(t, 0.0, Capacity{}.Percent())
	assert.Equal(t, 0.0, Capacity{Current: 5}.Percent())
	assert.Equal(t, 100.0, Capacity{Current: 8, Max: 8}.Percent())
}

func TestDiscoverContainers_ToolOrder(t *testing.T) {
	g := newTestGrid(t,
		blockSpec{Name: "Grinder 1", Type: CategoryGrinder.String()},
		blockSpec{Name: "Welder 1", Type: CategoryWelder.String()},
		blockSpec{Name: "Drill 1", Type: CategoryDrill.String()},
		blockSpec{Name: "Drill 2", Type: CategoryDrill.String()},
		blockSpec{Name: "Connector", Type: CategoryConnector.String()},
		blockSpec{Name: "Other Drill", Type: CategoryDrill.String(), Construct: "Elsewhere"},
	)
	c := discoverContainers(g, g.Me())

	var names []string
	for _, b := range c.Tools {
		names = append(names, b.Name())
	}
	assert.Equal(t, []string{"Drill 1", "Drill 2", "Welder 1", "Grinder 1"}, names)
	assert.Len(t, c.Connectors, 1)
	assert.Len(t, c.All(), 5)

	// Blocks without an inventory add nothing.
	assert.Equal(t, Capacity{}, calculateCapacity(c))
}
