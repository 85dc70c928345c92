package toggles

import (
	"testing"

	"github.com/nerlpattackers/ymir-discord-bot-clean/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStore_Defaults(t *testing.T) {
	s := New(domain.EventDisplayOrder...)

	for _, id := range domain.EventDisplayOrder {
		assert.True(t, s.Get(id), "event %s should default to enabled", id)
	}
}

func TestStore_GetUnsetDefaultsToEnabled(t *testing.T) {
	s := New()

	assert.True(t, s.Get(domain.EventLoki))
}

func TestStore_SetOverwrites(t *testing.T) {
	s := New(domain.EventDisplayOrder...)

	s.Set(domain.EventLoki, false)
	assert.False(t, s.Get(domain.EventLoki))
	assert.True(t, s.Get(domain.EventYmirCup))
	assert.True(t, s.Get(domain.EventGrowthHot))

	// idempotent
	s.Set(domain.EventLoki, false)
	assert.False(t, s.Get(domain.EventLoki))

	s.Set(domain.EventLoki, true)
	assert.True(t, s.Get(domain.EventLoki))
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	s := New(domain.EventDisplayOrder...)
	s.Set(domain.EventYmirCup, false)

	snap := s.Snapshot()
	assert.True(t, snap[domain.EventLoki])
	assert.False(t, snap[domain.EventYmirCup])
	assert.True(t, snap[domain.EventGrowthHot])

	// Mutating the snapshot must not leak back into the store.
	for id := range snap {
		snap[id] = false
	}
	assert.True(t, s.Get(domain.EventLoki))
}
