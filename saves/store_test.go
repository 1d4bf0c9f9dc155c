package saves

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"imperium/bots"
	"imperium/game"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "saves.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// testSnapshot captures a fresh bots game before any move is made.
func testSnapshot(t *testing.T) *game.Snapshot {
	t.Helper()
	g := game.New(game.WithSeed(17))
	rng := rand.New(rand.NewSource(18))
	for _, name := range []string{"hal", "sal", "cal"} {
		p, err := g.AddPlayer(name)
		require.NoError(t, err)
		s, err := bots.New(bots.Aggressive, p, g, rng, nil)
		require.NoError(t, err)
		p.SetStrategy(s)
	}
	snap, err := g.Snapshot()
	require.NoError(t, err)
	return snap
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	snap := testSnapshot(t)

	require.NoError(t, s.Save(ctx, "opening", snap))

	loaded, err := s.Load(ctx, "opening")
	require.NoError(t, err)
	assert.Equal(t, snap, loaded)

	// The loaded snapshot restores into a playable session.
	restored, err := game.Restore(loaded, bots.Factory(rand.New(rand.NewSource(18)), nil))
	require.NoError(t, err)
	assert.Equal(t, snap.Turn, restored.Turn())
}

func TestSaveNameTakenIgnoresCase(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	snap := testSnapshot(t)

	require.NoError(t, s.Save(ctx, "Endgame", snap))
	assert.ErrorIs(t, s.Save(ctx, "endgame", snap), ErrNameTaken)
	assert.ErrorIs(t, s.Save(ctx, "ENDGAME", snap), ErrNameTaken)
	assert.Error(t, s.Save(ctx, "", snap))
}

func TestLoadMissingSave(t *testing.T) {
	s := testStore(t)

	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListAndDelete(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	snap := testSnapshot(t)

	require.NoError(t, s.Save(ctx, "first", snap))
	require.NoError(t, s.Save(ctx, "second", snap))

	entries, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, snap.Turn, e.Turn)
		assert.False(t, e.CreatedAt.IsZero())
	}

	require.NoError(t, s.Delete(ctx, "FIRST"))
	entries, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "second", entries[0].Name)

	assert.ErrorIs(t, s.Delete(ctx, "first"), ErrNotFound)

	// The freed name is usable again.
	assert.NoError(t, s.Save(ctx, "first", snap))
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("", zerolog.Nop())
	assert.Error(t, err)
}
