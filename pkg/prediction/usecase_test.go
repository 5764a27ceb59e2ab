package prediction_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkuznetsov13/enginehealth/pkg/prediction"
)

type memRepo struct {
	mu      sync.Mutex
	records []prediction.Prediction
	failing bool
}

func (r *memRepo) Create(ctx context.Context, p prediction.Prediction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing {
		return errors.New("store unavailable")
	}
	r.records = append(r.records, p)
	return nil
}

func (r *memRepo) ListByOwner(ctx context.Context, owner uuid.UUID, limit, offset int) ([]prediction.Prediction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []prediction.Prediction
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].Owner == owner {
			out = append(out, r.records[i])
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var input = prediction.Input{
	EngineRPM:       1500,
	LubOilPressure:  45,
	FuelPressure:    30,
	CoolantPressure: 20,
	LubOilTemp:      70,
	CoolantTemp:     85,
	Result:          "Working properly",
}

func TestSaveAssignsServerFields(t *testing.T) {
	repo := &memRepo{}
	svc := prediction.NewService(repo)
	owner := uuid.New()

	stored, err := svc.Save(context.Background(), owner, input)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, stored.ID)
	assert.Equal(t, owner, stored.Owner)
	assert.False(t, stored.Timestamp.IsZero())
	assert.Equal(t, input.EngineRPM, stored.EngineRPM)
	assert.Equal(t, input.Result, stored.Result)

	require.Len(t, repo.records, 1)
	assert.Equal(t, stored, repo.records[0])
}

func TestSaveTwiceProducesDistinctRecords(t *testing.T) {
	repo := &memRepo{}
	svc := prediction.NewService(repo)
	owner := uuid.New()

	first, err := svc.Save(context.Background(), owner, input)
	require.NoError(t, err)
	second, err := svc.Save(context.Background(), owner, input)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, second.Timestamp.After(first.Timestamp),
		"second timestamp %v not after first %v", second.Timestamp, first.Timestamp)
	assert.Equal(t, owner, first.Owner)
	assert.Equal(t, owner, second.Owner)
}

func TestSavePropagatesStoreFailure(t *testing.T) {
	repo := &memRepo{failing: true}
	svc := prediction.NewService(repo)

	_, err := svc.Save(context.Background(), uuid.New(), input)
	require.Error(t, err)
}

func TestListReturnsOnlyOwnersRecords(t *testing.T) {
	repo := &memRepo{}
	svc := prediction.NewService(repo)
	alice, bob := uuid.New(), uuid.New()

	_, err := svc.Save(context.Background(), alice, input)
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), bob, input)
	require.NoError(t, err)
	_, err = svc.Save(context.Background(), alice, input)
	require.NoError(t, err)

	records, err := svc.List(context.Background(), alice, 50, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, alice, r.Owner)
	}
	// Newest first.
	assert.True(t, records[0].Timestamp.After(records[1].Timestamp))
}
