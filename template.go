package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// writeTemplates creates a default config and a sample grid. Existing
// files are left alone.
func writeTemplates(configPath, gridPath string) error {
	for _, p := range []string{configPath, gridPath} {
		if _, err := os.Stat(p); err == nil {
			return fmt.Errorf("%s already exists", p)
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
	}
	if err := saveConfig(DefaultConfig(), configPath); err != nil {
		return err
	}
	raw, err := yaml.Marshal(sampleGrid())
	if err != nil {
		return err
	}
	return os.WriteFile(gridPath, raw, 0o644)
}

func saveConfig(cfg Config, path string) error {
	f := ini.Empty()
	sec, err := f.NewSection(configSection)
	if err != nil {
		return err
	}
	sec.Key("CockpitName").SetValue(cfg.CockpitName)
	sec.Key("CockpitName").Comment = "name of the cockpit or text panel that shows the report"
	sec.Key("CockpitScreen").SetValue(strconv.Itoa(cfg.CockpitScreen))
	sec.Key("CockpitScreen").Comment = "cockpit screen index, from 0"
	sec.Key("BarLength").SetValue(strconv.Itoa(cfg.BarLength))
	sec.Key("TopPositions").SetValue(strconv.Itoa(cfg.TopPositions))
	sec.Key("Debug").SetValue(strconv.FormatBool(cfg.Debug))
	sec.Key("UpdateFrequency").SetValue(strconv.Itoa(int(cfg.UpdateFrequency)))
	sec.Key("UpdateFrequency").Comment = "game ticks between runs: 1, 10 or 100"
	return f.SaveTo(path)
}

func sampleGrid() gridFile {
	return gridFile{
		Construct:         "Prospector",
		ProgrammableBlock: "Programmable Block",
		Blocks: []blockSpec{
			{Name: "Programmable Block", Type: CategoryProgrammableBlock.String()},
			{Name: DefaultCockpitName, Type: CategoryCockpit.String(), Surfaces: 4},
			{Name: "LCD Cargo", Type: CategoryTextPanel.String()},
			{
				Name: "Large Cargo Container",
				Type: CategoryCargoContainer.String(),
				Inventory: &inventorySpec{
					MaxVolume:     421.875,
					CurrentVolume: 164.2,
					Items: []itemSpec{
						{Type: "MyObjectBuilder_Ore", Subtype: "Iron", Amount: 38250.6},
						{Type: "MyObjectBuilder_Ore", Subtype: "Nickel", Amount: 9120},
						{Type: "MyObjectBuilder_Component", Subtype: "SteelPlate", Amount: 420},
					},
				},
			},
			{
				Name: "Connector",
				Type: CategoryConnector.String(),
				Inventory: &inventorySpec{
					MaxVolume:     1.152,
					CurrentVolume: 0.4,
					Items: []itemSpec{
						{Type: "MyObjectBuilder_Ore", Subtype: "Stone", Amount: 1480.25},
					},
				},
			},
			{
				Name: "Drill",
				Type: CategoryDrill.String(),
				Inventory: &inventorySpec{
					MaxVolume:     3.375,
					CurrentVolume: 3.1,
					Items: []itemSpec{
						{Type: "MyObjectBuilder_Ore", Subtype: "Iron", Amount: 8300},
					},
				},
			},
			{
				Name:      "Docked Miner Cargo",
				Type:      CategoryCargoContainer.String(),
				Construct: "Drone",
				Inventory: &inventorySpec{MaxVolume: 15.625, CurrentVolume: 15.625},
			},
		},
	}
}
