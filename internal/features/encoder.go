package features

import (
	"energy_predictor/internal/models"
)

// dayColumns maps each day to its one-hot column. Friday has no column and
// encodes as all day columns set to 0.
var dayColumns = map[models.Weekday]string{
	models.Monday:    ColDayOfWeekMonday,
	models.Tuesday:   ColDayOfWeekTuesday,
	models.Wednesday: ColDayOfWeekWednesday,
	models.Thursday:  ColDayOfWeekThursday,
	models.Saturday:  ColDayOfWeekSaturday,
	models.Sunday:    ColDayOfWeekSunday,
}

// Encode converts r into the model's feature vector. It never fails: values
// outside the closed categorical sets simply leave their indicator columns at 0.
func Encode(r models.InputRecord) Vector {
	named := map[string]float64{
		ColTemperature:     r.Temperature,
		ColHumidity:        r.Humidity,
		ColSquareFootage:   float64(r.SquareFootage),
		ColOccupancy:       float64(r.Occupancy),
		ColRenewableEnergy: r.RenewableEnergy,
		ColHVACUsageOn:     indicator(r.HVACUsage == models.SwitchOn),
		ColLightingUsageOn: indicator(r.LightingUsage == models.SwitchOn),
		ColHolidayYes:      indicator(r.IsHoliday),
	}
	if col, ok := dayColumns[r.DayOfWeek]; ok {
		named[col] = 1
	}
	return Reindex(named)
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
