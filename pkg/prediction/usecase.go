package prediction

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UseCase covers saving and listing a caller's prediction records.
type UseCase interface {
	Save(ctx context.Context, owner uuid.UUID, in Input) (Prediction, error)
	List(ctx context.Context, owner uuid.UUID, limit, offset int) ([]Prediction, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) UseCase {
	return &service{repo: repo, now: time.Now}
}

// Save persists one record. The identity, timestamp and owner are
// assigned server-side; whatever the caller supplied for them is
// discarded so stored timestamps stay trustworthy under client clock
// skew or tampering.
func (s *service) Save(ctx context.Context, owner uuid.UUID, in Input) (Prediction, error) {
	p := Prediction{
		ID:              uuid.New(),
		EngineRPM:       in.EngineRPM,
		LubOilPressure:  in.LubOilPressure,
		FuelPressure:    in.FuelPressure,
		CoolantPressure: in.CoolantPressure,
		LubOilTemp:      in.LubOilTemp,
		CoolantTemp:     in.CoolantTemp,
		Result:          in.Result,
		Timestamp:       s.now().UTC(),
		Owner:           owner,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Prediction{}, err
	}
	return p, nil
}

func (s *service) List(ctx context.Context, owner uuid.UUID, limit, offset int) ([]Prediction, error) {
	return s.repo.ListByOwner(ctx, owner, limit, offset)
}
