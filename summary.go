package main

type ItemSummary struct {
	Type     string `json:"type" jsonschema:"Full item type, e.g. MyObjectBuilder_Ore/Iron"`
	Subtype  string `json:"subtype" jsonschema:"Item subtype used for grouping"`
	Quantity int64  `json:"quantity" jsonschema:"Quantity summed across all containers"`
}

type CargoSummary struct {
	Tick            string        `json:"tick" jsonschema:"Identifier of the run"`
	CurrentVolume   float64       `json:"current_volume" jsonschema:"Used cargo volume in cubic metres"`
	MaxVolume       float64       `json:"max_volume" jsonschema:"Total cargo volume in cubic metres"`
	FreeVolume      float64       `json:"free_volume" jsonschema:"Remaining cargo volume in cubic metres"`
	Percent         float64       `json:"percent" jsonschema:"Fill percentage"`
	Load            string        `json:"load" jsonschema:"low, medium or high"`
	Color           string        `json:"color" jsonschema:"Font colour written to the display"`
	CargoContainers int           `json:"cargo_containers" jsonschema:"Cargo containers on the construct"`
	Connectors      int           `json:"connectors" jsonschema:"Connectors on the construct"`
	Tools           int           `json:"tools" jsonschema:"Drills, welders and grinders on the construct"`
	DistinctItems   int           `json:"distinct_items" jsonschema:"Number of item subtypes in cargo"`
	TopItems        []ItemSummary `json:"top_items" jsonschema:"Largest item stacks, biggest first"`
}

func SummarizeReport(r Report) CargoSummary {
	summary := CargoSummary{
		Tick:            r.TickID,
		CurrentVolume:   r.Capacity.Current,
		MaxVolume:       r.Capacity.Max,
		FreeVolume:      r.Capacity.Free(),
		Percent:         r.Percent,
		Load:            r.Load.String(),
		Color:           string(r.Load.Color()),
		CargoContainers: r.Counts.CargoContainers,
		Connectors:      r.Counts.Connectors,
		Tools:           r.Counts.Tools,
		DistinctItems:   r.DistinctItems,
		TopItems:        []ItemSummary{},
	}
	for _, it := range r.TopItems {
		summary.TopItems = append(summary.TopItems, ItemSummary{
			Type:     it.Type.String(),
			Subtype:  it.Type.SubtypeID,
			Quantity: it.Quantity,
		})
	}
	return summary
}
