package predictor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"energy_predictor/internal/features"

	"gonum.org/v1/gonum/floats"
	"gopkg.in/yaml.v3"
)

// LinearModel is a linear regression exported from training as named
// coefficients plus an intercept.
type LinearModel struct {
	Version      string             `json:"version" yaml:"version"`
	Intercept    float64            `json:"intercept" yaml:"intercept"`
	Coefficients map[string]float64 `json:"coefficients" yaml:"coefficients"`

	weights []float64 // Coefficients in schema order
}

// LoadLinear reads a JSON or YAML artifact from path. A missing file wraps
// ErrModelNotFound.
func LoadLinear(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrModelNotFound, path)
		}
		return nil, fmt.Errorf("read model %q: %w", path, err)
	}

	var m LinearModel
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &m)
	default:
		err = json.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("decode model %q: %w", path, err)
	}

	if err := m.compile(); err != nil {
		return nil, fmt.Errorf("model %q: %w", path, err)
	}
	return &m, nil
}

// NewLinearModel builds a model in memory, mainly for tests and tooling.
func NewLinearModel(version string, intercept float64, coefficients map[string]float64) (*LinearModel, error) {
	m := &LinearModel{Version: version, Intercept: intercept, Coefficients: coefficients}
	if err := m.compile(); err != nil {
		return nil, err
	}
	return m, nil
}

// compile aligns the coefficients with the schema. Coefficients for columns
// the schema does not know mean the artifact was trained on another layout.
func (m *LinearModel) compile() error {
	if len(m.Coefficients) == 0 {
		return errors.New("model has no coefficients")
	}

	var unknown []string
	for col := range m.Coefficients {
		if _, ok := features.IndexOf(col); !ok {
			unknown = append(unknown, col)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("coefficients for unknown columns: %s", strings.Join(unknown, ", "))
	}

	m.weights = make([]float64, features.Width)
	for i, col := range features.Columns() {
		m.weights[i] = m.Coefficients[col]
	}
	return nil
}

// Predict returns intercept + w·v.
func (m *LinearModel) Predict(ctx context.Context, v features.Vector) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(m.weights) != features.Width {
		return 0, fmt.Errorf("model expects %d features, schema has %d", len(m.weights), features.Width)
	}
	for i, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, fmt.Errorf("feature %s is not finite", features.Columns()[i])
		}
	}
	return m.Intercept + floats.Dot(m.weights, v[:]), nil
}
