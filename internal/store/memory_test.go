package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/game"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	g := game.NewGame(game.ModeRandom, nil)
	require.NoError(t, st.Save(ctx, g))
	assert.Equal(t, 1, st.Len())

	got, err := st.Get(ctx, g.ID)
	require.NoError(t, err)
	assert.Same(t, g, got)

	_, err = st.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.Delete(ctx, g.ID))
	require.NoError(t, st.Delete(ctx, g.ID))
	assert.Zero(t, st.Len())
	_, err = st.Get(ctx, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Sweep(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	now := time.Now().UTC()

	old := game.NewGame(game.ModeRandom, nil)
	old.CreatedAt = now.Add(-48 * time.Hour)
	fresh := game.NewGame(game.ModeRandom, nil)
	require.NoError(t, st.Save(ctx, old))
	require.NoError(t, st.Save(ctx, fresh))

	assert.Equal(t, 1, st.Sweep(ctx, now.Add(-24*time.Hour)))
	_, err := st.Get(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}

func TestRunJanitor(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	st := NewMemoryStore()
	g := game.NewGame(game.ModeRandom, nil)
	g.CreatedAt = time.Now().Add(-time.Hour)
	require.NoError(t, st.Save(ctx, g))

	done := make(chan struct{})
	go func() {
		RunJanitor(ctx, st, time.Minute, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return st.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
