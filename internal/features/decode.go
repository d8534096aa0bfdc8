package features

import (
	"errors"
	"fmt"

	"energy_predictor/internal/models"
)

var (
	ErrNotIndicator = errors.New("indicator column is neither 0 nor 1")
	ErrAmbiguousDay = errors.New("more than one day column is set")
)

// Selection is the categorical part of an InputRecord.
type Selection struct {
	HVACUsage     models.Switch  `json:"hvac_usage"`
	LightingUsage models.Switch  `json:"lighting_usage"`
	DayOfWeek     models.Weekday `json:"day_of_week"`
	IsHoliday     bool           `json:"is_holiday"`
}

// SelectionOf returns the categorical choices made in r.
func SelectionOf(r models.InputRecord) Selection {
	return Selection{
		HVACUsage:     r.HVACUsage,
		LightingUsage: r.LightingUsage,
		DayOfWeek:     r.DayOfWeek,
		IsHoliday:     r.IsHoliday,
	}
}

// Decode recovers the categorical selections from the indicator columns of v.
// A vector with no day column set decodes to Friday.
func Decode(v Vector) (Selection, error) {
	var sel Selection

	hvac, err := bit(v, ColHVACUsageOn)
	if err != nil {
		return Selection{}, err
	}
	sel.HVACUsage = switchOf(hvac)

	light, err := bit(v, ColLightingUsageOn)
	if err != nil {
		return Selection{}, err
	}
	sel.LightingUsage = switchOf(light)

	holiday, err := bit(v, ColHolidayYes)
	if err != nil {
		return Selection{}, err
	}
	sel.IsHoliday = holiday

	sel.DayOfWeek = models.Friday
	found := false
	for _, day := range models.Weekdays {
		col, ok := dayColumns[day]
		if !ok {
			continue
		}
		set, err := bit(v, col)
		if err != nil {
			return Selection{}, err
		}
		if !set {
			continue
		}
		if found {
			return Selection{}, ErrAmbiguousDay
		}
		sel.DayOfWeek = day
		found = true
	}
	return sel, nil
}

func bit(v Vector, col string) (bool, error) {
	x := v[columnIndex[col]]
	switch x {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %s=%g", ErrNotIndicator, col, x)
	}
}

func switchOf(on bool) models.Switch {
	if on {
		return models.SwitchOn
	}
	return models.SwitchOff
}
