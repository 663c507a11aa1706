// Package pricing holds the fixed package price table for event bookings.
package pricing

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownDuration is returned when a duration has no package price.
var ErrUnknownDuration = errors.New("no package for requested duration")

// Package is one bookable package: a duration and its fixed price.
type Package struct {
	DurationHours int   `json:"durationHours"`
	PriceCents    int64 `json:"priceCents"`
}

// Table maps package durations to prices. It is read-only after New.
type Table struct {
	prices map[int]int64
}

// New builds a Table from the given packages. Durations must be positive
// and unique, and prices must not decrease as duration grows.
func New(packages []Package) (*Table, error) {
	if len(packages) == 0 {
		return nil, errors.New("pricing table must not be empty")
	}

	sorted := make([]Package, len(packages))
	copy(sorted, packages)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].DurationHours < sorted[j].DurationHours
	})

	prices := make(map[int]int64, len(sorted))
	var prevDuration int
	var prevPrice int64
	for _, p := range sorted {
		if p.DurationHours <= 0 {
			return nil, fmt.Errorf("invalid duration %d: must be positive", p.DurationHours)
		}
		if p.PriceCents < 0 {
			return nil, fmt.Errorf("invalid price %d for %dh package", p.PriceCents, p.DurationHours)
		}
		if _, ok := prices[p.DurationHours]; ok {
			return nil, fmt.Errorf("duplicate duration %d", p.DurationHours)
		}
		if prevDuration > 0 && p.PriceCents < prevPrice {
			return nil, fmt.Errorf("price for %dh package is lower than for %dh", p.DurationHours, prevDuration)
		}
		prices[p.DurationHours] = p.PriceCents
		prevDuration = p.DurationHours
		prevPrice = p.PriceCents
	}

	return &Table{prices: prices}, nil
}

// Default returns the standard Party Favor Photo package table.
func Default() *Table {
	t, err := New([]Package{
		{DurationHours: 2, PriceCents: 49800},
		{DurationHours: 3, PriceCents: 74700},
		{DurationHours: 4, PriceCents: 99600},
		{DurationHours: 5, PriceCents: 124500},
	})
	if err != nil {
		panic(fmt.Sprintf("default pricing table: %v", err))
	}
	return t
}

// PriceFor returns the exact price for the given duration. Unlisted
// durations are an error, never interpolated.
func (t *Table) PriceFor(durationHours int) (int64, error) {
	price, ok := t.prices[durationHours]
	if !ok {
		return 0, fmt.Errorf("%w: %d hours", ErrUnknownDuration, durationHours)
	}
	return price, nil
}

// Has reports whether the table lists the given duration.
func (t *Table) Has(durationHours int) bool {
	_, ok := t.prices[durationHours]
	return ok
}

// Packages returns all entries ordered by duration.
func (t *Table) Packages() []Package {
	out := make([]Package, 0, len(t.prices))
	for d, p := range t.prices {
		out = append(out, Package{DurationHours: d, PriceCents: p})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].DurationHours < out[j].DurationHours
	})
	return out
}
