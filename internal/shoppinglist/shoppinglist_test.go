package shoppinglist

import (
	"strings"
	"testing"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name  string
		items []Item
		want  []Item
	}{
		{
			name:  "empty cart",
			items: nil,
			want:  []Item{},
		},
		{
			name: "sums same ingredient across recipes",
			items: []Item{
				{Name: "Salt", MeasurementUnit: "g", Amount: 10},
				{Name: "Salt", MeasurementUnit: "g", Amount: 5},
			},
			want: []Item{
				{Name: "Salt", MeasurementUnit: "g", Amount: 15},
			},
		},
		{
			name: "same name different unit stays separate",
			items: []Item{
				{Name: "Milk", MeasurementUnit: "ml", Amount: 200},
				{Name: "Milk", MeasurementUnit: "g", Amount: 50},
			},
			want: []Item{
				{Name: "Milk", MeasurementUnit: "g", Amount: 50},
				{Name: "Milk", MeasurementUnit: "ml", Amount: 200},
			},
		},
		{
			name: "sorted by name",
			items: []Item{
				{Name: "Sugar", MeasurementUnit: "g", Amount: 30},
				{Name: "Flour", MeasurementUnit: "g", Amount: 500},
				{Name: "Butter", MeasurementUnit: "g", Amount: 100},
			},
			want: []Item{
				{Name: "Butter", MeasurementUnit: "g", Amount: 100},
				{Name: "Flour", MeasurementUnit: "g", Amount: 500},
				{Name: "Sugar", MeasurementUnit: "g", Amount: 30},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.items)
			if len(got) != len(tt.want) {
				t.Fatalf("Aggregate() returned %d items, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Aggregate()[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRender(t *testing.T) {
	items := []Item{
		{Name: "Salt", MeasurementUnit: "g", Amount: 15},
		{Name: "Sugar", MeasurementUnit: "g", Amount: 30},
	}

	got := Render(items)

	if !strings.HasPrefix(got, Header) {
		t.Errorf("Render() does not start with header, got %q", got)
	}
	if !strings.Contains(got, "Salt - 15 g") {
		t.Errorf("Render() missing aggregated line, got %q", got)
	}
	if !strings.Contains(got, "Sugar - 30 g") {
		t.Errorf("Render() missing aggregated line, got %q", got)
	}
}

func TestRenderEmpty(t *testing.T) {
	got := Render(nil)
	if got != Header {
		t.Errorf("Render(nil) = %q, want just the header", got)
	}
}
