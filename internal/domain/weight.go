package domain

import (
	"math"
	"sort"
)

// AppendWeight records a weight measurement for the given day, overwriting
// any existing entry for that day. Non-positive and non-finite values are
// rejected with no state change.
func (p *ProfileState) AppendWeight(day string, kg float64) error {
	if kg <= 0 || math.IsNaN(kg) || math.IsInf(kg, 0) {
		return ErrInvalidWeight
	}
	if p.WeightHistory == nil {
		p.WeightHistory = make(map[string]WeightEntry)
	}
	p.WeightHistory[day] = WeightEntry{Day: day, Kg: kg}
	return nil
}

// CurrentWeight returns the most recently dated entry, or the start weight
// when nothing has been logged yet.
func (p *ProfileState) CurrentWeight() float64 {
	latestDay := ""
	var kg float64
	for day, e := range p.WeightHistory {
		if day > latestDay {
			latestDay, kg = day, e.Kg
		}
	}
	if latestDay == "" {
		return p.StartWeight
	}
	return kg
}

// OrderedEntries returns the weight history sorted ascending by day.
func (p *ProfileState) OrderedEntries() []WeightEntry {
	out := make([]WeightEntry, 0, len(p.WeightHistory))
	for _, e := range p.WeightHistory {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// RecentEntries returns the last n entries in ascending day order. An empty
// history yields a single synthetic "start" point at the current weight so
// chart consumers always have at least one point to draw.
func (p *ProfileState) RecentEntries(n int) []WeightEntry {
	entries := p.OrderedEntries()
	if len(entries) == 0 {
		return []WeightEntry{{Day: "start", Kg: p.CurrentWeight()}}
	}
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries
}
