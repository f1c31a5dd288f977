package services_test

import (
	"testing"

	"github.com/oryxgate/realty_cms/internal/core/domain"
	"github.com/oryxgate/realty_cms/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAreaUnitConversion_SqmToSqft(t *testing.T) {
	svc := services.NewAreaUnitConversionService()

	result := svc.ConvertFromBase(decimal.NewFromInt(100), "sqft")

	assert.True(t, result.Equal(decimal.RequireFromString("1076.40")), "got %s", result)
}

func TestAreaUnitConversion_SqmTargetIsIdentity(t *testing.T) {
	svc := services.NewAreaUnitConversionService()
	area := decimal.RequireFromString("123.45")

	assert.True(t, svc.ConvertFromBase(area, "sqm").Equal(area))
}

func TestAreaUnitConversion_UnknownUnitPassesThrough(t *testing.T) {
	svc := services.NewAreaUnitConversionService()
	area := decimal.NewFromInt(100)

	assert.True(t, svc.ConvertFromBase(area, "acre").Equal(area))
	assert.True(t, svc.ConvertToBase(area, "acre").Equal(area))
}

func TestAreaUnitConversion_SqftToSqm(t *testing.T) {
	svc := services.NewAreaUnitConversionService()

	result := svc.ConvertToBase(decimal.RequireFromString("1076.40"), "sqft")

	assert.True(t, result.Equal(decimal.NewFromInt(100)), "got %s", result)
}

func TestAreaUnitConversion_CaseInsensitiveUnits(t *testing.T) {
	svc := services.NewAreaUnitConversionService()

	result := svc.ConvertFromBase(decimal.NewFromInt(100), "SQFT")

	assert.True(t, result.Equal(decimal.RequireFromString("1076.40")))
}

func TestAreaUnitConversion_IsValidUnit(t *testing.T) {
	svc := services.NewAreaUnitConversionService()

	assert.True(t, svc.IsValidUnit("sqm"))
	assert.True(t, svc.IsValidUnit("sqft"))
	assert.True(t, svc.IsValidUnit("SqFt"))
	assert.False(t, svc.IsValidUnit("acre"))
	assert.False(t, svc.IsValidUnit(""))
}

func TestAreaUnitConversion_FormatArea(t *testing.T) {
	svc := services.NewAreaUnitConversionService()

	assert.Equal(t, "1,076.40 sqft", svc.FormatArea(decimal.NewFromInt(100), "sqft"))
	assert.Equal(t, "100.00 sqm", svc.FormatArea(decimal.NewFromInt(100), "sqm"))
	// Unknown units render as the storage unit.
	assert.Equal(t, "100.00 sqm", svc.FormatArea(decimal.NewFromInt(100), "acre"))
}

func TestAreaUnitConversion_SupportedUnits(t *testing.T) {
	svc := services.NewAreaUnitConversionService()

	units := svc.SupportedUnits()

	assert.Len(t, units, 2)
	assert.Contains(t, units, domain.AreaUnitSqm)
	assert.Contains(t, units, domain.AreaUnitSqft)
}
