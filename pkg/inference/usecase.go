package inference

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// NumFeatures is the arity of the model's input vector. Order is
// significant and matches the training feature order: engine rpm,
// lub oil pressure, fuel pressure, coolant pressure, lub oil temp,
// coolant temp.
const NumFeatures = 6

// Risk labels derived from the predicted class.
const (
	RiskAtRisk  = "At risk – check maintenance"
	RiskHealthy = "Working properly"
)

// ErrInvalidFeatureVector marks a client mistake (wrong arity or
// non-finite values), as opposed to a model fault.
var ErrInvalidFeatureVector = errors.New("expected 6 finite numeric features")

// ModelError wraps any failure inside the classifier; it is server-class
// and always carries the underlying cause.
type ModelError struct {
	Cause error
}

func (e *ModelError) Error() string { return fmt.Sprintf("model inference failed: %v", e.Cause) }
func (e *ModelError) Unwrap() error { return e.Cause }

// Classifier is the opaque pretrained binary model.
type Classifier interface {
	Predict(features []float64) (int, error)
	PredictProba(features []float64) ([]float64, error)
}

// Result is the shaped outcome of one inference call.
type Result struct {
	PredictedClass int       `json:"predicted_class"`
	RiskStatus     string    `json:"risk_status"`
	Proba          []float64 `json:"prediction_proba"`
}

// UseCase runs validated inference over sensor readings.
type UseCase interface {
	Predict(ctx context.Context, features []float64) (Result, error)
}

type service struct {
	model Classifier
}

func NewService(model Classifier) UseCase {
	return &service{model: model}
}

func (s *service) Predict(ctx context.Context, features []float64) (Result, error) {
	if err := validate(features); err != nil {
		return Result{}, err
	}
	class, err := s.model.Predict(features)
	if err != nil {
		return Result{}, &ModelError{Cause: err}
	}
	proba, err := s.model.PredictProba(features)
	if err != nil {
		return Result{}, &ModelError{Cause: err}
	}
	return Result{
		PredictedClass: class,
		RiskStatus:     riskStatus(class),
		Proba:          proba,
	}, nil
}

func validate(features []float64) error {
	if len(features) != NumFeatures {
		return ErrInvalidFeatureVector
	}
	for _, f := range features {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return ErrInvalidFeatureVector
		}
	}
	return nil
}

// riskStatus is a pure function of the class, never re-derived from the
// probability distribution.
func riskStatus(class int) string {
	if class == 1 {
		return RiskAtRisk
	}
	return RiskHealthy
}
