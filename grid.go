package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// gridFile is the YAML layout of a simulated ship.
type gridFile struct {
	Construct         string      `yaml:"construct"`
	ProgrammableBlock string      `yaml:"programmable_block"`
	Blocks            []blockSpec `yaml:"blocks"`
}

type blockSpec struct {
	Name      string         `yaml:"name"`
	Type      string         `yaml:"type"`
	Construct string         `yaml:"construct,omitempty"`
	Surfaces  int            `yaml:"surfaces,omitempty"`
	Inventory *inventorySpec `yaml:"inventory,omitempty"`
}

type inventorySpec struct {
	MaxVolume     float64    `yaml:"max_volume"`
	CurrentVolume float64    `yaml:"current_volume"`
	Items         []itemSpec `yaml:"items,omitempty"`
}

type itemSpec struct {
	Type    string  `yaml:"type"`
	Subtype string  `yaml:"subtype"`
	Amount  float64 `yaml:"amount"`
}

// Grid is an in-memory ship that stands in for the game's terminal system.
type Grid struct {
	blocks []TerminalBlock
	me     TerminalBlock
}

type SurfaceState struct {
	Text        string
	Color       Color
	ContentType ContentType
	Writes      int
}

type gridBlock struct {
	name      string
	category  BlockCategory
	construct string
	inventory *gridInventory
}

type gridInventory struct {
	current float64
	max     float64
	items   []InventoryItem
}

type panelSurface struct {
	state SurfaceState
}

type panelBlock struct {
	*gridBlock
	*panelSurface
}

type cockpitBlock struct {
	*gridBlock
	surfaces []*panelSurface
}

type gridMember interface {
	base() *gridBlock
}

func loadGrid(path string) (*Grid, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := parseGrid(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func parseGrid(raw []byte) (*Grid, error) {
	var f gridFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return buildGrid(f)
}

func buildGrid(f gridFile) (*Grid, error) {
	g := &Grid{}
	for i, spec := range f.Blocks {
		name := strings.TrimSpace(spec.Name)
		if name == "" {
			return nil, fmt.Errorf("block %d: missing name", i)
		}
		category, ok := parseCategory(spec.Type)
		if !ok {
			return nil, fmt.Errorf("block %q: unknown type %q", name, spec.Type)
		}
		construct := spec.Construct
		if construct == "" {
			construct = f.Construct
		}
		b := &gridBlock{
			name:      name,
			category:  category,
			construct: construct,
		}
		if spec.Inventory != nil {
			inv := &gridInventory{
				current: spec.Inventory.CurrentVolume,
				max:     spec.Inventory.MaxVolume,
			}
			for _, it := range spec.Inventory.Items {
				inv.items = append(inv.items, InventoryItem{
					Type:   ItemType{TypeID: it.Type, SubtypeID: it.Subtype},
					Amount: it.Amount,
				})
			}
			b.inventory = inv
		}

		var block TerminalBlock = b
		switch category {
		case CategoryTextPanel:
			block = &panelBlock{gridBlock: b, panelSurface: newPanelSurface()}
		case CategoryCockpit:
			n := spec.Surfaces
			if n <= 0 {
				n = 1
			}
			c := &cockpitBlock{gridBlock: b}
			for j := 0; j < n; j++ {
				c.surfaces = append(c.surfaces, newPanelSurface())
			}
			block = c
		}
		g.blocks = append(g.blocks, block)

		if g.me == nil && category == CategoryProgrammableBlock {
			if f.ProgrammableBlock == "" || f.ProgrammableBlock == name {
				g.me = block
			}
		}
	}
	if g.me == nil {
		return nil, fmt.Errorf("no programmable block %q on grid", f.ProgrammableBlock)
	}
	return g, nil
}

func newPanelSurface() *panelSurface {
	return &panelSurface{state: SurfaceState{Color: ColorWhite}}
}

// Me is the block the program runs on.
func (g *Grid) Me() TerminalBlock {
	return g.me
}

func (g *Grid) BlockWithName(name string) TerminalBlock {
	for _, b := range g.blocks {
		if b.Name() == name {
			return b
		}
	}
	return nil
}

func (g *Grid) BlocksOfCategory(category BlockCategory, filter func(TerminalBlock) bool) []TerminalBlock {
	var out []TerminalBlock
	for _, b := range g.blocks {
		if b.Category() != category {
			continue
		}
		if filter != nil && !filter(b) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// SurfaceState reports what a display currently shows. index is ignored
// for single-surface blocks.
func (g *Grid) SurfaceState(name string, index int) (SurfaceState, bool) {
	switch b := g.BlockWithName(name).(type) {
	case *panelBlock:
		return b.state, true
	case *cockpitBlock:
		if index < 0 || index >= len(b.surfaces) {
			return SurfaceState{}, false
		}
		return b.surfaces[index].state, true
	}
	return SurfaceState{}, false
}

func (b *gridBlock) base() *gridBlock { return b }

func (b *gridBlock) Name() string { return b.name }

func (b *gridBlock) Category() BlockCategory { return b.category }

func (b *gridBlock) IsSameConstructAs(other TerminalBlock) bool {
	m, ok := other.(gridMember)
	if !ok {
		return false
	}
	return b.construct == m.base().construct
}

func (b *gridBlock) Inventory(index int) Inventory {
	if index != PrimaryInventory || b.inventory == nil {
		return nil
	}
	return b.inventory
}

func (inv *gridInventory) CurrentVolume() float64 { return inv.current }

func (inv *gridInventory) MaxVolume() float64 { return inv.max }

func (inv *gridInventory) Items() []InventoryItem {
	out := make([]InventoryItem, len(inv.items))
	copy(out, inv.items)
	return out
}

func (s *panelSurface) SetContentType(t ContentType) { s.state.ContentType = t }

func (s *panelSurface) WriteText(text string) {
	s.state.Text = text
	s.state.Writes++
}

func (s *panelSurface) SetFontColor(c Color) { s.state.Color = c }

func (c *cockpitBlock) SurfaceCount() int { return len(c.surfaces) }

func (c *cockpitBlock) Surface(index int) TextSurface {
	if index < 0 || index >= len(c.surfaces) {
		return nil
	}
	return c.surfaces[index]
}
