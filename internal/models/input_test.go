package models

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDefaultInputRecord_IsValid(t *testing.T) {
	if err := DefaultInputRecord().Validate(); err != nil {
		t.Fatalf("default record should be valid: %v", err)
	}
}

func TestInputRecord_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(r *InputRecord)
		wantErr string
	}{
		{"bounds inclusive low", func(r *InputRecord) {
			r.Temperature, r.Humidity, r.SquareFootage, r.Occupancy, r.RenewableEnergy = 15, 30, 1000, 0, 0
		}, ""},
		{"bounds inclusive high", func(r *InputRecord) {
			r.Temperature, r.Humidity, r.SquareFootage, r.Occupancy, r.RenewableEnergy = 35, 60, 2000, 10, 30
		}, ""},
		{"temperature too low", func(r *InputRecord) { r.Temperature = 14.9 }, "temperature"},
		{"humidity too high", func(r *InputRecord) { r.Humidity = 60.1 }, "humidity"},
		{"square footage", func(r *InputRecord) { r.SquareFootage = 999 }, "square_footage"},
		{"occupancy negative", func(r *InputRecord) { r.Occupancy = -1 }, "occupancy"},
		{"renewable NaN", func(r *InputRecord) { r.RenewableEnergy = math.NaN() }, "renewable_energy"},
		{"hvac unknown", func(r *InputRecord) { r.HVACUsage = "on" }, "hvac_usage"},
		{"lighting empty", func(r *InputRecord) { r.LightingUsage = "" }, "lighting_usage"},
		{"day unknown", func(r *InputRecord) { r.DayOfWeek = "Funday" }, "day_of_week"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := DefaultInputRecord()
			tc.mutate(&r)
			err := r.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error %q does not mention %q", err.Error(), tc.wantErr)
			}
		})
	}
}

func TestInputRecord_ValidateCollectsAllProblems(t *testing.T) {
	r := DefaultInputRecord()
	r.Temperature = 100
	r.DayOfWeek = "x"
	var ve *ValidationError
	if !errors.As(r.Validate(), &ve) {
		t.Fatal("expected validation error")
	}
	if len(ve.Problems) != 2 {
		t.Fatalf("expected 2 problems, got %d: %v", len(ve.Problems), ve.Problems)
	}
}

func TestWeekday_Valid(t *testing.T) {
	for _, d := range Weekdays {
		if !d.Valid() {
			t.Errorf("%s should be valid", d)
		}
	}
	if Weekday("monday").Valid() {
		t.Error("day names are case sensitive")
	}
}

func TestFormatKWh(t *testing.T) {
	cases := map[float64]string{
		107.5:    "107.50 kWh",
		0:        "0.00 kWh",
		12.346:   "12.35 kWh",
		-3.14159: "-3.14 kWh",
	}
	for in, want := range cases {
		if got := FormatKWh(in); got != want {
			t.Errorf("FormatKWh(%v) = %q, want %q", in, got, want)
		}
	}
}
