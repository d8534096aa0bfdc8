package models

import (
	"fmt"
	"math"
	"strings"
)

// Switch is an On/Off appliance state.
type Switch string

const (
	SwitchOn  Switch = "On"
	SwitchOff Switch = "Off"
)

// Valid reports whether s is one of the known switch states.
func (s Switch) Valid() bool {
	return s == SwitchOn || s == SwitchOff
}

// Weekday is a day name as shown in the form.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// Weekdays lists the selectable days in display order.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d Weekday) Valid() bool {
	for _, w := range Weekdays {
		if d == w {
			return true
		}
	}
	return false
}

// Range describes the bounds of a numeric form input.
type Range struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

// Contains reports whether v lies within [Min, Max]. NaN is never contained.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

var (
	TemperatureRange     = Range{Min: 15.0, Max: 35.0, Step: 0.1, Default: 25.0}
	HumidityRange        = Range{Min: 30.0, Max: 60.0, Step: 0.1, Default: 45.0}
	SquareFootageRange   = Range{Min: 1000, Max: 2000, Step: 10, Default: 1500}
	OccupancyRange       = Range{Min: 0, Max: 10, Step: 1, Default: 5}
	RenewableEnergyRange = Range{Min: 0.0, Max: 30.0, Step: 0.1, Default: 15.0}
)

// InputRecord is one household observation submitted for prediction.
type InputRecord struct {
	Temperature     float64 `json:"temperature" form:"temperature" example:"25"`
	Humidity        float64 `json:"humidity" form:"humidity" example:"45"`
	SquareFootage   int     `json:"square_footage" form:"square_footage" example:"1500"`
	Occupancy       int     `json:"occupancy" form:"occupancy" example:"5"`
	RenewableEnergy float64 `json:"renewable_energy" form:"renewable_energy" example:"15"`
	HVACUsage       Switch  `json:"hvac_usage" form:"hvac_usage" example:"On"`
	LightingUsage   Switch  `json:"lighting_usage" form:"lighting_usage" example:"On"`
	DayOfWeek       Weekday `json:"day_of_week" form:"day_of_week" example:"Monday"`
	IsHoliday       bool    `json:"is_holiday" form:"is_holiday"`
}

// DefaultInputRecord returns the initial values of the input form.
func DefaultInputRecord() InputRecord {
	return InputRecord{
		Temperature:     TemperatureRange.Default,
		Humidity:        HumidityRange.Default,
		SquareFootage:   int(SquareFootageRange.Default),
		Occupancy:       int(OccupancyRange.Default),
		RenewableEnergy: RenewableEnergyRange.Default,
		HVACUsage:       SwitchOn,
		LightingUsage:   SwitchOn,
		DayOfWeek:       Monday,
		IsHoliday:       false,
	}
}

// ValidationError lists every field of an InputRecord that is out of bounds.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Problems, "; ")
}

// Validate checks numeric fields against the form ranges and categorical
// fields against their closed sets.
func (r InputRecord) Validate() error {
	var problems []string
	checkRange := func(name string, v float64, rng Range) {
		if math.IsNaN(v) || !rng.Contains(v) {
			problems = append(problems, fmt.Sprintf("%s must be within [%g, %g], got %g", name, rng.Min, rng.Max, v))
		}
	}

	checkRange("temperature", r.Temperature, TemperatureRange)
	checkRange("humidity", r.Humidity, HumidityRange)
	checkRange("square_footage", float64(r.SquareFootage), SquareFootageRange)
	checkRange("occupancy", float64(r.Occupancy), OccupancyRange)
	checkRange("renewable_energy", r.RenewableEnergy, RenewableEnergyRange)

	if !r.HVACUsage.Valid() {
		problems = append(problems, fmt.Sprintf("hvac_usage must be On or Off, got %q", r.HVACUsage))
	}
	if !r.LightingUsage.Valid() {
		problems = append(problems, fmt.Sprintf("lighting_usage must be On or Off, got %q", r.LightingUsage))
	}
	if !r.DayOfWeek.Valid() {
		problems = append(problems, fmt.Sprintf("day_of_week must be a day name, got %q", r.DayOfWeek))
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
