package services

import (
	"fmt"

	"github.com/fitledger/fitledger/internal/models"
)

var allowedMeasurementUnits = map[models.MeasurementType][]string{
	models.MeasurementWeight:  {"kg", "lbs"},
	models.MeasurementHeight:  {"cm", "inches"},
	models.MeasurementBodyFat: {"%"},
}

// AllowedUnitsFor returns the accepted units for a measurement type.
func AllowedUnitsFor(measurementType models.MeasurementType) []string {
	units := allowedMeasurementUnits[measurementType]
	out := make([]string, len(units))
	copy(out, units)
	return out
}

// MeasurementCatalog lists every measurement type with its allowed units.
func MeasurementCatalog() map[models.MeasurementType][]string {
	catalog := make(map[models.MeasurementType][]string, len(allowedMeasurementUnits))
	for _, measurementType := range models.AllMeasurementTypes() {
		catalog[measurementType] = AllowedUnitsFor(measurementType)
	}
	return catalog
}

// ValidateMeasurementUnit checks that the unit belongs to the allowed set of
// the measurement type.
func ValidateMeasurementUnit(measurementType models.MeasurementType, unit string) error {
	for _, allowed := range allowedMeasurementUnits[measurementType] {
		if unit == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: unit %q is not allowed for measurement type %q", models.ErrValidation, unit, measurementType)
}
