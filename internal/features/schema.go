// Package features turns form inputs into the fixed-order numeric vector the
// energy model was trained on.
package features

import (
	"bytes"
	"encoding/json"
)

// Column names of the model input, in training order.
const (
	ColTemperature        = "Temperature"
	ColHumidity           = "Humidity"
	ColSquareFootage      = "SquareFootage"
	ColOccupancy          = "Occupancy"
	ColRenewableEnergy    = "RenewableEnergy"
	ColHVACUsageOn        = "HVACUsage_On"
	ColLightingUsageOn    = "LightingUsage_On"
	ColDayOfWeekMonday    = "DayOfWeek_Monday"
	ColDayOfWeekSaturday  = "DayOfWeek_Saturday"
	ColDayOfWeekSunday    = "DayOfWeek_Sunday"
	ColDayOfWeekThursday  = "DayOfWeek_Thursday"
	ColDayOfWeekTuesday   = "DayOfWeek_Tuesday"
	ColDayOfWeekWednesday = "DayOfWeek_Wednesday"
	ColHolidayYes         = "Holiday_Yes"
)

// The order is an external contract of the trained model. Do not sort.
var columns = [...]string{
	ColTemperature,
	ColHumidity,
	ColSquareFootage,
	ColOccupancy,
	ColRenewableEnergy,
	ColHVACUsageOn,
	ColLightingUsageOn,
	ColDayOfWeekMonday,
	ColDayOfWeekSaturday,
	ColDayOfWeekSunday,
	ColDayOfWeekThursday,
	ColDayOfWeekTuesday,
	ColDayOfWeekWednesday,
	ColHolidayYes,
}

// Width is the number of columns in the schema.
const Width = len(columns)

var columnIndex = func() map[string]int {
	idx := make(map[string]int, Width)
	for i, c := range columns {
		idx[c] = i
	}
	return idx
}()

// Columns returns a copy of the schema column names in order.
func Columns() []string {
	out := make([]string, Width)
	copy(out, columns[:])
	return out
}

// IndexOf returns the position of col in the schema.
func IndexOf(col string) (int, bool) {
	i, ok := columnIndex[col]
	return i, ok
}

// Vector holds one value per schema column, in schema order.
type Vector [Width]float64

// Get returns the value of the named column.
func (v Vector) Get(col string) (float64, bool) {
	i, ok := columnIndex[col]
	if !ok {
		return 0, false
	}
	return v[i], true
}

// Values returns the values as a slice in schema order.
func (v Vector) Values() []float64 {
	out := make([]float64, Width)
	copy(out, v[:])
	return out
}

// Map returns the vector as a column -> value mapping.
func (v Vector) Map() map[string]float64 {
	out := make(map[string]float64, Width)
	for i, c := range columns {
		out[c] = v[i]
	}
	return out
}

// MarshalJSON writes the vector as an object whose keys keep schema order.
func (v Vector) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(v[i])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keyed by column name. Missing columns are 0
// and unknown keys are ignored, as in Reindex.
func (v *Vector) UnmarshalJSON(b []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	*v = Reindex(m)
	return nil
}

// Reindex projects a named mapping onto the schema. Columns missing from m
// are 0 and keys outside the schema are dropped.
func Reindex(m map[string]float64) Vector {
	var v Vector
	for i, c := range columns {
		v[i] = m[c]
	}
	return v
}
