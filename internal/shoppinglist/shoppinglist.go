// Package shoppinglist builds the downloadable shopping list from a user's
// cart contents.
package shoppinglist

import (
	"fmt"
	"sort"
	"strings"
)

// Header is the first line of every rendered shopping list.
const Header = "Список продуктов:"

// FileName is the attachment name of the downloaded list.
const FileName = "list_of_products.txt"

// Item is one ingredient line. Before aggregation an Item carries the amount
// of a single recipe-ingredient association; after aggregation it carries
// the total across the cart.
type Item struct {
	Name            string
	MeasurementUnit string
	Amount          int64
}

type key struct {
	name string
	unit string
}

// Aggregate groups items by (name, measurement unit), sums their amounts and
// orders the result alphabetically by name. Identically named ingredients
// sharing a unit merge even when they came from distinct ingredient rows.
func Aggregate(items []Item) []Item {
	totals := make(map[key]int64, len(items))
	for _, item := range items {
		totals[key{name: item.Name, unit: item.MeasurementUnit}] += item.Amount
	}

	merged := make([]Item, 0, len(totals))
	for k, total := range totals {
		merged = append(merged, Item{
			Name:            k.name,
			MeasurementUnit: k.unit,
			Amount:          total,
		})
	}
	sort.Slice(merged, func(i, j int) bool {
		if merged[i].Name != merged[j].Name {
			return merged[i].Name < merged[j].Name
		}
		return merged[i].MeasurementUnit < merged[j].MeasurementUnit
	})
	return merged
}

// Render produces the plain-text shopping list, one line per aggregated
// item, preceded by the constant header.
func Render(items []Item) string {
	lines := make([]string, 0, len(items)+1)
	lines = append(lines, Header)
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s - %d %s", item.Name, item.Amount, item.MeasurementUnit))
	}
	return strings.Join(lines, "\n")
}
