// Package classifier loads the pretrained engine-condition model from a
// JSON artifact exported at training time. The loaded model is read-only
// and safe for concurrent use.
package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// artifact mirrors the exported training pipeline: a standard scaler
// followed by a logistic regression over the scaled features.
type artifact struct {
	Means        []float64 `json:"means"`
	Stds         []float64 `json:"stds"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Classes      []int     `json:"classes"`
}

// Logistic is a standardized logistic-regression binary classifier.
type Logistic struct {
	art artifact
}

// Load reads and validates a model artifact from disk.
func Load(path string) (*Logistic, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a model artifact from its JSON export.
func Parse(raw []byte) (*Logistic, error) {
	var art artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	n := len(art.Coefficients)
	if n == 0 || len(art.Means) != n || len(art.Stds) != n {
		return nil, fmt.Errorf("inconsistent model artifact: %d coefficients, %d means, %d stds",
			n, len(art.Means), len(art.Stds))
	}
	for i, s := range art.Stds {
		if s <= 0 {
			return nil, fmt.Errorf("non-positive std for feature %d", i)
		}
	}
	if len(art.Classes) == 0 {
		art.Classes = []int{0, 1}
	}
	return &Logistic{art: art}, nil
}

// Predict returns the discrete class for one feature vector.
func (m *Logistic) Predict(features []float64) (int, error) {
	p, err := m.PredictProba(features)
	if err != nil {
		return 0, err
	}
	if p[1] >= 0.5 {
		return m.art.Classes[1], nil
	}
	return m.art.Classes[0], nil
}

// PredictProba returns the probability distribution [p(class0), p(class1)].
func (m *Logistic) PredictProba(features []float64) ([]float64, error) {
	if len(features) != len(m.art.Coefficients) {
		return nil, fmt.Errorf("model expects %d features, got %d", len(m.art.Coefficients), len(features))
	}
	z := m.art.Intercept
	for i, f := range features {
		scaled := (f - m.art.Means[i]) / m.art.Stds[i]
		z += m.art.Coefficients[i] * scaled
	}
	p1 := 1.0 / (1.0 + math.Exp(-z))
	return []float64{1.0 - p1, p1}, nil
}
