package main

// The interfaces below are what the report needs from the game engine.
// grid.go provides the simulated implementation.

type ItemType struct {
	TypeID    string
	SubtypeID string
}

func (t ItemType) String() string {
	return t.TypeID + "/" + t.SubtypeID
}

type InventoryItem struct {
	Type   ItemType
	Amount float64
}

type Inventory interface {
	CurrentVolume() float64
	MaxVolume() float64
	Items() []InventoryItem
}

type TerminalBlock interface {
	Name() string
	Category() BlockCategory
	IsSameConstructAs(other TerminalBlock) bool
	// Inventory returns nil when the block has no inventory at index.
	Inventory(index int) Inventory
}

type TextSurface interface {
	SetContentType(ContentType)
	WriteText(text string)
	SetFontColor(Color)
}

// TextSurfaceProvider is a block with several screens, like a cockpit.
type TextSurfaceProvider interface {
	SurfaceCount() int
	// Surface returns nil when index is out of range.
	Surface(index int) TextSurface
}

type GridTerminalSystem interface {
	// BlockWithName returns nil when no block has the name.
	BlockWithName(name string) TerminalBlock
	BlocksOfCategory(category BlockCategory, filter func(TerminalBlock) bool) []TerminalBlock
}
