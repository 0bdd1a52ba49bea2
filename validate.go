package main

import (
	"errors"
	"fmt"
)

var ErrTargetNotFound = errors.New("display target not found")

// ValidateConfig resolves the configured display. A text panel is its own
// surface; a cockpit must have a screen at CockpitScreen.
func (p *Program) ValidateConfig() (TextSurface, error) {
	name := p.Config.CockpitName
	block := p.Grid.BlockWithName(name)
	if block == nil {
		outPrintf(p, "%s not found on the ship. Change the 'CockpitName' setting in the configuration\n", name)
		return nil, fmt.Errorf("%w: no block named %q", ErrTargetNotFound, name)
	}

	surface, err := surfaceOf(block, p.Config.CockpitScreen)
	if err != nil {
		outPrintf(p, "Cockpit screen with index %d not found. Change the 'CockpitScreen' setting in the configuration\n", p.Config.CockpitScreen)
		return nil, err
	}

	p.Echo("Configuration validated")
	return surface, nil
}

func surfaceOf(block TerminalBlock, index int) (TextSurface, error) {
	if s, ok := block.(TextSurface); ok {
		return s, nil
	}
	provider, ok := block.(TextSurfaceProvider)
	if !ok {
		return nil, fmt.Errorf("%w: %q has no display", ErrTargetNotFound, block.Name())
	}
	s := provider.Surface(index)
	if s == nil {
		return nil, fmt.Errorf("%w: %q has %d screens, index %d", ErrTargetNotFound, block.Name(), provider.SurfaceCount(), index)
	}
	return s, nil
}
