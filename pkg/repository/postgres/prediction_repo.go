package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dkuznetsov13/enginehealth/pkg/prediction"
)

// PredictionRepository persists inference results per owner.
type PredictionRepository struct {
	pool *pgxpool.Pool
}

func NewPredictionRepository(pool *pgxpool.Pool) (*PredictionRepository, error) {
	r := &PredictionRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PredictionRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS predictions (
	id UUID PRIMARY KEY,
	engine_rpm DOUBLE PRECISION NOT NULL,
	lub_oil_pressure DOUBLE PRECISION NOT NULL,
	fuel_pressure DOUBLE PRECISION NOT NULL,
	coolant_pressure DOUBLE PRECISION NOT NULL,
	lub_oil_temp DOUBLE PRECISION NOT NULL,
	coolant_temp DOUBLE PRECISION NOT NULL,
	result TEXT NOT NULL DEFAULT '',
	ts TIMESTAMPTZ NOT NULL,
	owner UUID NOT NULL REFERENCES users(id)
);
CREATE INDEX IF NOT EXISTS predictions_owner_ts_idx ON predictions (owner, ts DESC);
`)
	return err
}

func (r *PredictionRepository) Create(ctx context.Context, p prediction.Prediction) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO predictions (id, engine_rpm, lub_oil_pressure, fuel_pressure, coolant_pressure, lub_oil_temp, coolant_temp, result, ts, owner)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
`, p.ID, p.EngineRPM, p.LubOilPressure, p.FuelPressure, p.CoolantPressure, p.LubOilTemp, p.CoolantTemp, p.Result, p.Timestamp, p.Owner)
	return err
}

func (r *PredictionRepository) ListByOwner(ctx context.Context, owner uuid.UUID, limit, offset int) ([]prediction.Prediction, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, engine_rpm, lub_oil_pressure, fuel_pressure, coolant_pressure, lub_oil_temp, coolant_temp, result, ts, owner
FROM predictions WHERE owner = $1
ORDER BY ts DESC
LIMIT $2 OFFSET $3
`, owner, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []prediction.Prediction
	for rows.Next() {
		var p prediction.Prediction
		var ts time.Time
		if err := rows.Scan(&p.ID, &p.EngineRPM, &p.LubOilPressure, &p.FuelPressure, &p.CoolantPressure,
			&p.LubOilTemp, &p.CoolantTemp, &p.Result, &ts, &p.Owner); err != nil {
			return nil, err
		}
		p.Timestamp = ts.UTC()
		out = append(out, p)
	}
	return out, rows.Err()
}
