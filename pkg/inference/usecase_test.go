package inference_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkuznetsov13/enginehealth/pkg/inference"
)

type stubClassifier struct {
	class int
	proba []float64
	err   error
}

func (s *stubClassifier) Predict(features []float64) (int, error) {
	return s.class, s.err
}

func (s *stubClassifier) PredictProba(features []float64) ([]float64, error) {
	return s.proba, s.err
}

func TestPredictArity(t *testing.T) {
	svc := inference.NewService(&stubClassifier{class: 0, proba: []float64{0.8, 0.2}})

	cases := map[string][]float64{
		"nil":   nil,
		"empty": {},
		"five":  {1, 2, 3, 4, 5},
		"seven": {1, 2, 3, 4, 5, 6, 7},
	}
	for name, features := range cases {
		_, err := svc.Predict(context.Background(), features)
		assert.ErrorIs(t, err, inference.ErrInvalidFeatureVector, name)
	}
}

func TestPredictNonFinite(t *testing.T) {
	svc := inference.NewService(&stubClassifier{class: 0, proba: []float64{0.8, 0.2}})

	_, err := svc.Predict(context.Background(), []float64{1500, 45, math.NaN(), 20, 70, 85})
	assert.ErrorIs(t, err, inference.ErrInvalidFeatureVector)

	_, err = svc.Predict(context.Background(), []float64{1500, 45, 30, math.Inf(1), 70, 85})
	assert.ErrorIs(t, err, inference.ErrInvalidFeatureVector)
}

func TestPredictRiskMapping(t *testing.T) {
	atRisk := inference.NewService(&stubClassifier{class: 1, proba: []float64{0.3, 0.7}})
	healthy := inference.NewService(&stubClassifier{class: 0, proba: []float64{0.9, 0.1}})
	features := []float64{1500, 45, 30, 20, 70, 85}

	res, err := atRisk.Predict(context.Background(), features)
	require.NoError(t, err)
	assert.Equal(t, 1, res.PredictedClass)
	assert.Equal(t, inference.RiskAtRisk, res.RiskStatus)
	assert.Equal(t, []float64{0.3, 0.7}, res.Proba)

	res, err = healthy.Predict(context.Background(), features)
	require.NoError(t, err)
	assert.Equal(t, 0, res.PredictedClass)
	assert.Equal(t, inference.RiskHealthy, res.RiskStatus)
}

func TestPredictModelFailureIsWrapped(t *testing.T) {
	cause := errors.New("shape mismatch")
	svc := inference.NewService(&stubClassifier{err: cause})

	_, err := svc.Predict(context.Background(), []float64{1500, 45, 30, 20, 70, 85})
	require.Error(t, err)
	assert.NotErrorIs(t, err, inference.ErrInvalidFeatureVector)

	var modelErr *inference.ModelError
	require.ErrorAs(t, err, &modelErr)
	assert.ErrorIs(t, err, cause)
}
