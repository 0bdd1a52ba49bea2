package main

import (
	"math"
	"sort"
)

// StackedItem is one item type with a quantity summed across stacks.
type StackedItem struct {
	Type     ItemType
	Quantity int64
}

func itemsInBlocks(blocks []TerminalBlock) []InventoryItem {
	var items []InventoryItem
	for _, b := range blocks {
		inv := b.Inventory(PrimaryInventory)
		if inv == nil {
			continue
		}
		items = append(items, inv.Items()...)
	}
	return items
}

// toStacked truncates fractional amounts (ore, ice) per stack.
func toStacked(items []InventoryItem) []StackedItem {
	out := make([]StackedItem, 0, len(items))
	for _, it := range items {
		out = append(out, StackedItem{Type: it.Type, Quantity: wholeAmount(it.Amount)})
	}
	return out
}

// wholeAmount truncates an amount, mapping NaN and negatives to 0 and
// saturating at MaxInt64.
func wholeAmount(a float64) int64 {
	switch {
	case math.IsNaN(a) || a <= 0:
		return 0
	case a >= math.MaxInt64:
		return math.MaxInt64
	}
	return int64(a)
}

// mergeItemsOfSameType sums quantities per SubtypeID. The first type seen
// for a subtype is kept and the result is in first-seen order.
func mergeItemsOfSameType(items []StackedItem) []StackedItem {
	index := make(map[string]int, len(items))
	var merged []StackedItem
	for _, it := range items {
		if i, ok := index[it.Type.SubtypeID]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		index[it.Type.SubtypeID] = len(merged)
		merged = append(merged, it)
	}
	return merged
}

// topItems sorts by quantity, largest first, and keeps at most n. Equal
// quantities stay in first-seen order.
func topItems(items []StackedItem, n int) []StackedItem {
	sorted := make([]StackedItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Quantity > sorted[j].Quantity
	})
	if n < 0 {
		n = 0
	}
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// aggregateItems returns every distinct item on the ship, merged but not
// ranked.
func (p *Program) aggregateItems(c Containers) []StackedItem {
	blocks := c.All()
	items := itemsInBlocks(blocks)
	p.DebugEcho("collected inventory items", "blocks", len(blocks), "stacks", len(items))

	stacked := toStacked(items)
	p.DebugEcho("simplified items", "count", len(stacked))

	merged := mergeItemsOfSameType(stacked)
	p.DebugEcho("merged items", "count", len(merged))
	return merged
}
