package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LFalch/ordabottur/internal/game"
	"github.com/LFalch/ordabottur/internal/words"
)

func TestSlotLifecycle(t *testing.T) {
	var s Slot
	assert.False(t, s.Running())
	assert.ErrorIs(t, s.With(func(*game.State) error { return nil }), ErrNoGame)

	g := game.New(words.RandomTable(), game.MessageRef{})
	require.NoError(t, s.Start(g))
	assert.ErrorIs(t, s.Start(game.New(words.RandomTable(), game.MessageRef{})), ErrGameRunning)

	var seen *game.State
	require.NoError(t, s.With(func(cur *game.State) error { seen = cur; return nil }))
	assert.Same(t, g, seen)

	assert.True(t, s.Stop())
	assert.False(t, s.Stop())
	assert.False(t, s.Running())
}

func TestSlotSerializesAccess(t *testing.T) {
	var s Slot
	require.NoError(t, s.Start(game.New(words.RandomTable(), game.MessageRef{})))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.With(func(g *game.State) error {
				g.TakenWords = append(g.TakenWords, "x")
				return nil
			})
		}()
	}
	wg.Wait()

	require.NoError(t, s.With(func(g *game.State) error {
		assert.Len(t, g.TakenWords, 50)
		return nil
	}))
}
