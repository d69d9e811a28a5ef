package system_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OnKodr-dev/inventory-app/internal/infrastructure/system"
)

func TestUUIDGenerator(t *testing.T) {
	g := system.UUIDGenerator{}
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := g.NewID()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.False(t, seen[id], "IDs repetidos")
		seen[id] = true
	}
}

func TestClock_UTC(t *testing.T) {
	now := system.Clock{}.Now()
	assert.Equal(t, time.UTC, now.Location())
	assert.WithinDuration(t, time.Now(), now, time.Second)
}
