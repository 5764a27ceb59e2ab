package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testArtifact = []byte(`{
	"means": [1200, 40, 25, 18, 75, 80],
	"stds": [450, 15, 10, 8, 8, 9],
	"coefficients": [-0.4, 0.3, -0.25, 0.5, 0.7, 0.45],
	"intercept": 0.1,
	"classes": [0, 1]
}`)

func TestParseAndPredict(t *testing.T) {
	model, err := Parse(testArtifact)
	require.NoError(t, err)

	features := []float64{1500, 45, 30, 20, 70, 85}
	proba, err := model.PredictProba(features)
	require.NoError(t, err)
	require.Len(t, proba, 2)
	assert.InDelta(t, 1.0, proba[0]+proba[1], 1e-9)
	assert.GreaterOrEqual(t, proba[0], 0.0)
	assert.GreaterOrEqual(t, proba[1], 0.0)

	class, err := model.Predict(features)
	require.NoError(t, err)
	assert.Contains(t, []int{0, 1}, class)

	// Class agrees with the 0.5 threshold on p(class1).
	if proba[1] >= 0.5 {
		assert.Equal(t, 1, class)
	} else {
		assert.Equal(t, 0, class)
	}
}

func TestPredictDimensionMismatch(t *testing.T) {
	model, err := Parse(testArtifact)
	require.NoError(t, err)

	_, err = model.PredictProba([]float64{1, 2, 3})
	require.Error(t, err)
	_, err = model.Predict([]float64{1, 2, 3, 4, 5, 6, 7})
	require.Error(t, err)
}

func TestParseRejectsInconsistentArtifact(t *testing.T) {
	cases := map[string]string{
		"not json":     `{`,
		"no coeffs":    `{"means":[1],"stds":[1],"coefficients":[]}`,
		"length skew":  `{"means":[1,2],"stds":[1],"coefficients":[0.5]}`,
		"zero std":     `{"means":[1],"stds":[0],"coefficients":[0.5]}`,
		"negative std": `{"means":[1],"stds":[-1],"coefficients":[0.5]}`,
	}
	for name, raw := range cases {
		_, err := Parse([]byte(raw))
		assert.Error(t, err, name)
	}
}

func TestParseDefaultsClasses(t *testing.T) {
	model, err := Parse([]byte(`{"means":[0],"stds":[1],"coefficients":[10],"intercept":0}`))
	require.NoError(t, err)

	class, err := model.Predict([]float64{5})
	require.NoError(t, err)
	assert.Equal(t, 1, class)

	class, err = model.Predict([]float64{-5})
	require.NoError(t, err)
	assert.Equal(t, 0, class)
}
