package domain

import "strings"

// AreaUnit is a closed enumeration of supported area units. Square meters is
// the storage unit; square feet is always derived at read time.
type AreaUnit string

const (
	AreaUnitSqm  AreaUnit = "sqm"
	AreaUnitSqft AreaUnit = "sqft"
)

// NormalizeAreaUnit lowercases a raw unit value without validating it.
// Unknown units deliberately survive normalization so the conversion layer
// can pass them through unchanged.
func NormalizeAreaUnit(raw string) AreaUnit {
	return AreaUnit(strings.ToLower(raw))
}

func (u AreaUnit) String() string {
	return string(u)
}
