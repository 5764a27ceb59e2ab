package presenter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExternalizeUUID(t *testing.T) {
	id := uuid.New()
	assert.Equal(t, id.String(), Externalize(id))
}

func TestExternalizeNestedStruct(t *testing.T) {
	type inner struct {
		Owner uuid.UUID `json:"owner"`
	}
	type outer struct {
		ID       uuid.UUID `json:"id"`
		Name     string    `json:"name"`
		When     time.Time `json:"when"`
		Children []inner   `json:"children"`
		Note     string    `json:"note,omitempty"`
		hidden   int //nolint:unused
	}

	id, owner := uuid.New(), uuid.New()
	now := time.Now()
	got := Externalize(outer{ID: id, Name: "alice", When: now, Children: []inner{{Owner: owner}}})

	m, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, id.String(), m["id"])
	assert.Equal(t, "alice", m["name"])
	assert.Equal(t, now, m["when"])
	assert.NotContains(t, m, "note", "omitempty zero field is dropped")
	assert.NotContains(t, m, "hidden")

	children, ok := m["children"].([]any)
	require.True(t, ok)
	child, ok := children[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, owner.String(), child["owner"])
}

func TestExternalizeMapsAndSlices(t *testing.T) {
	id := uuid.New()
	got := Externalize(map[string]any{
		"ids":  []uuid.UUID{id},
		"deep": map[string]any{"owner": id},
		"n":    42,
	})

	m, ok := got.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{id.String()}, m["ids"])
	assert.Equal(t, map[string]any{"owner": id.String()}, m["deep"])
	assert.Equal(t, 42, m["n"])
}

func TestExternalizeNilAndPointers(t *testing.T) {
	assert.Nil(t, Externalize(nil))

	id := uuid.New()
	assert.Equal(t, id.String(), Externalize(&id))

	var p *uuid.UUID
	assert.Nil(t, Externalize(p))
}
