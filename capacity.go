package main

// Capacity is in cubic metres.
type Capacity struct {
	Current float64
	Max     float64
}

func calculateCapacity(c Containers) Capacity {
	var total Capacity
	for _, b := range c.All() {
		inv := b.Inventory(PrimaryInventory)
		if inv == nil {
			continue
		}
		total.Max += inv.MaxVolume()
		total.Current += inv.CurrentVolume()
	}
	return total
}

// Percent is Current/Max*100. An empty ship (Max 0) reads as 0%.
func (c Capacity) Percent() float64 {
	if c.Max == 0 {
		return 0
	}
	return c.Current / c.Max * 100
}

func (c Capacity) Free() float64 {
	return c.Max - c.Current
}
