package main

// Containers are the blocks whose primary inventory counts as cargo.
type Containers struct {
	Cargo      []TerminalBlock
	Connectors []TerminalBlock
	Tools      []TerminalBlock
}

var toolCategories = []BlockCategory{CategoryDrill, CategoryWelder, CategoryGrinder}

func discoverContainers(grid GridTerminalSystem, me TerminalBlock) Containers {
	sameConstruct := func(b TerminalBlock) bool {
		return me != nil && b.IsSameConstructAs(me)
	}
	c := Containers{
		Cargo:      grid.BlocksOfCategory(CategoryCargoContainer, sameConstruct),
		Connectors: grid.BlocksOfCategory(CategoryConnector, sameConstruct),
	}
	for _, cat := range toolCategories {
		c.Tools = append(c.Tools, grid.BlocksOfCategory(cat, sameConstruct)...)
	}
	return c
}

// All returns cargo containers, then connectors, then tools.
func (c Containers) All() []TerminalBlock {
	out := make([]TerminalBlock, 0, len(c.Cargo)+len(c.Connectors)+len(c.Tools))
	out = append(out, c.Cargo...)
	out = append(out, c.Connectors...)
	return append(out, c.Tools...)
}

func (c Containers) Counts() BlockCounts {
	return BlockCounts{
		CargoContainers: len(c.Cargo),
		Connectors:      len(c.Connectors),
		Tools:           len(c.Tools),
	}
}

// DoDiagnostics finds the cargo-carrying blocks and optionally echoes the
// counts.
func (p *Program) DoDiagnostics(echo bool) Containers {
	c := discoverContainers(p.Grid, p.Me)
	if echo {
		outPrintf(p, "Tools: %d\n", len(c.Tools))
		outPrintf(p, "Cargo Containers: %d\n", len(c.Cargo))
		p.Echo()
	}
	return c
}
