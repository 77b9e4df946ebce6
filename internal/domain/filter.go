package domain

import (
	"github.com/shopspring/decimal"
)

// Filter is a conjunction of optional predicates over entries. Zero-valued
// fields impose no constraint; all bounds are inclusive.
type Filter struct {
	DateFrom   string
	DateTo     string
	Category   string
	Department string
	AmountMin  *decimal.Decimal
	AmountMax  *decimal.Decimal
}

// Matches reports whether the entry satisfies every set predicate.
func (f Filter) Matches(e Entry) bool {
	if f.DateFrom != "" && e.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && e.Date > f.DateTo {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Department != "" && e.Department != f.Department {
		return false
	}
	if f.AmountMin != nil && e.Amount.LessThan(*f.AmountMin) {
		return false
	}
	if f.AmountMax != nil && e.Amount.GreaterThan(*f.AmountMax) {
		return false
	}
	return true
}

// FilterEntries returns the entries matching the filter, in input order.
// The input is never mutated; the result is always a new slice, so an empty
// filter yields a full copy.
func FilterEntries(entries []Entry, f Filter) []Entry {
	result := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Matches(e) {
			result = append(result, e)
		}
	}
	return result
}
