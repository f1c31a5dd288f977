package services

import (
	"github.com/oryxgate/realty_cms/internal/core/domain"
	"github.com/oryxgate/realty_cms/internal/utils"
	"github.com/shopspring/decimal"
)

// SqmToSqft is the fixed conversion factor: 1 square meter = 10.764 square
// feet. It is not configurable; round-trip stability depends on the exact
// constant.
var SqmToSqft = decimal.RequireFromString("10.764")

// AreaUnitConversionService converts area values between square meters (the
// storage unit) and square feet. It is pure and stateless. Unrecognized
// units are not an error: values pass through unchanged, mirroring the
// fail-open contract of currency conversion.
type AreaUnitConversionService struct{}

// NewAreaUnitConversionService creates a new AreaUnitConversionService.
func NewAreaUnitConversionService() *AreaUnitConversionService {
	return &AreaUnitConversionService{}
}

// ConvertFromBase converts an area stored in sqm into the target unit.
// sqft: round(areaSqm * 10.764, 2); sqm or anything unrecognized: unchanged.
func (s *AreaUnitConversionService) ConvertFromBase(areaSqm decimal.Decimal, targetUnit string) decimal.Decimal {
	if domain.NormalizeAreaUnit(targetUnit) == domain.AreaUnitSqft {
		return areaSqm.Mul(SqmToSqft).Round(2)
	}
	return areaSqm
}

// ConvertToBase converts an area in the source unit back into sqm.
// sqft: round(area / 10.764, 2); anything else: unchanged.
func (s *AreaUnitConversionService) ConvertToBase(area decimal.Decimal, sourceUnit string) decimal.Decimal {
	if domain.NormalizeAreaUnit(sourceUnit) == domain.AreaUnitSqft {
		return area.Div(SqmToSqft).Round(2)
	}
	return area
}

// IsValidUnit reports whether the unit is one of sqm/sqft, case-insensitive.
func (s *AreaUnitConversionService) IsValidUnit(unit string) bool {
	switch domain.NormalizeAreaUnit(unit) {
	case domain.AreaUnitSqm, domain.AreaUnitSqft:
		return true
	default:
		return false
	}
}

// FormatArea renders a stored sqm value converted to the requested unit with
// thousands separators and the unit label, e.g. "1,076.40 sqft". Unknown
// units render as sqm.
func (s *AreaUnitConversionService) FormatArea(areaSqm decimal.Decimal, unit string) string {
	converted := s.ConvertFromBase(areaSqm, unit)
	label := domain.AreaUnitSqm
	if domain.NormalizeAreaUnit(unit) == domain.AreaUnitSqft {
		label = domain.AreaUnitSqft
	}
	return utils.FormatAmount(converted) + " " + label.String()
}

// SupportedUnits returns the closed unit set with display labels.
func (s *AreaUnitConversionService) SupportedUnits() map[domain.AreaUnit]string {
	return map[domain.AreaUnit]string{
		domain.AreaUnitSqm:  "Square Meters (sqm)",
		domain.AreaUnitSqft: "Square Feet (sqft)",
	}
}
