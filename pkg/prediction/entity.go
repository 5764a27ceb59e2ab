package prediction

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Prediction is a persisted inference result attributed to its owner.
// Records are immutable once written.
type Prediction struct {
	ID              uuid.UUID `json:"id"`
	EngineRPM       float64   `json:"engine_rpm"`
	LubOilPressure  float64   `json:"lub_oil_pressure"`
	FuelPressure    float64   `json:"fuel_pressure"`
	CoolantPressure float64   `json:"coolant_pressure"`
	LubOilTemp      float64   `json:"lub_oil_temp"`
	CoolantTemp     float64   `json:"coolant_temp"`
	Result          string    `json:"result,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
	Owner           uuid.UUID `json:"owner"`
}

// Input carries the caller-supplied fields of a record. Timestamp and
// owner are never taken from the caller.
type Input struct {
	EngineRPM       float64
	LubOilPressure  float64
	FuelPressure    float64
	CoolantPressure float64
	LubOilTemp      float64
	CoolantTemp     float64
	Result          string
}

// Repository is the persistence port for prediction records.
type Repository interface {
	Create(ctx context.Context, p Prediction) error
	ListByOwner(ctx context.Context, owner uuid.UUID, limit, offset int) ([]Prediction, error)
}
