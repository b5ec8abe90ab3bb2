package manager_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tido/internal/manager"
	"tido/internal/store"
	"tido/internal/task"
	"tido/internal/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_LoadsStoredSnapshot(t *testing.T) {
	ctx := context.Background()
	spy := testutil.NewSpyStore()
	spy.Seed(task.Task{ID: "a", Title: "one"}, task.Task{ID: "b", Title: "two", Completed: true})

	m := manager.New(ctx, spy, discardLogger())

	tasks := m.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "one", tasks[0].Title)
	assert.True(t, tasks[1].Completed)
	assert.Equal(t, 1, spy.LoadCalls)
}

func TestNew_LoadErrorDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	spy := testutil.NewSpyStore()
	spy.LoadErr = errors.New("disk on fire")

	m := manager.New(ctx, spy, discardLogger())

	assert.Zero(t, m.Len())
}

func TestNew_NothingStoredStartsEmpty(t *testing.T) {
	ctx := context.Background()
	m := manager.New(ctx, testutil.NewSpyStore(), discardLogger())
	assert.Zero(t, m.Len())
}

func TestAdd_AppendsInOrderWithUniqueIDs(t *testing.T) {
	ctx := context.Background()
	spy := testutil.NewSpyStore()
	m := manager.New(ctx, spy, discardLogger())

	titles := []string{"one", "two", "three", "four"}
	for _, title := range titles {
		_, err := m.Add(ctx, title)
		require.NoError(t, err)
	}

	tasks := m.Tasks()
	require.Len(t, tasks, len(titles))
	seen := make(map[string]bool)
	for i, tk := range tasks {
		assert.Equal(t, titles[i], tk.Title)
		assert.False(t, tk.Completed)
		assert.False(t, seen[tk.ID], "duplicate ID %s", tk.ID)
		seen[tk.ID] = true
	}
	assert.Equal(t, len(titles), spy.SaveCalls, "one save per add")
}

func TestTasks_IsPureRead(t *testing.T) {
	ctx := context.Background()
	spy := testutil.NewSpyStore()
	m := manager.New(ctx, spy, discardLogger())
	_, err := m.Add(ctx, "one")
	require.NoError(t, err)
	saves := spy.SaveCalls

	tasks := m.Tasks()
	tasks[0].Title = "mutated copy"
	_ = m.Tasks()

	assert.Equal(t, saves, spy.SaveCalls, "Tasks must not persist")
	assert.Equal(t, "one", m.Tasks()[0].Title, "Tasks must return a copy")
}

func TestToggle_FlipsExactlyOneFlag(t *testing.T) {
	ctx := context.Background()
	spy := testutil.NewSpyStore()
	m := manager.New(ctx, spy, discardLogger())
	for _, title := range []string{"one", "two", "three"} {
		_, err := m.Add(ctx, title)
		require.NoError(t, err)
	}

	got, ok, err := m.Toggle(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, got.Completed)
	assert.False(t, m.Tasks()[0].Completed)
	assert.False(t, m.Tasks()[2].Completed)

	// Toggling twice restores the original flag.
	_, ok, err = m.Toggle(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, m.Tasks()[1].Completed)
}

func TestToggle_OutOfRangeIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	spy := testutil.NewSpyStore()
	m := manager.New(ctx, spy, discardLogger())
	_, err := m.Add(ctx, "one")
	require.NoError(t, err)
	before := m.Tasks()
	saves := spy.SaveCalls

	for _, index := range []int{-1, 1, 99} {
		_, ok, err := m.Toggle(ctx, index)
		require.NoError(t, err)
		assert.False(t, ok, "index %d should be out of range", index)
	}

	assert.Equal(t, before, m.Tasks(), "collection unchanged")
	assert.Equal(t, saves, spy.SaveCalls, "no persistence call")
}

func TestDelete_ShrinksAndReindexes(t *testing.T) {
	ctx := context.Background()
	spy := testutil.NewSpyStore()
	m := manager.New(ctx, spy, discardLogger())
	for _, title := range []string{"one", "two", "three"} {
		_, err := m.Add(ctx, title)
		require.NoError(t, err)
	}

	got, ok, err := m.Delete(ctx, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "two", got.Title)

	tasks := m.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "one", tasks[0].Title)
	assert.Equal(t, "three", tasks[1].Title, "subsequent task shifts down")
}

func TestDelete_OutOfRangeIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	spy := testutil.NewSpyStore()
	m := manager.New(ctx, spy, discardLogger())
	_, err := m.Add(ctx, "one")
	require.NoError(t, err)
	saves := spy.SaveCalls

	_, ok, err := m.Delete(ctx, 5)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, saves, spy.SaveCalls)
}

func TestMutations_SurfaceSaveFailures(t *testing.T) {
	ctx := context.Background()
	spy := testutil.NewSpyStore()
	m := manager.New(ctx, spy, discardLogger())
	_, err := m.Add(ctx, "one")
	require.NoError(t, err)

	saveErr := errors.New("disk full")
	spy.SaveErr = saveErr

	_, err = m.Add(ctx, "two")
	assert.ErrorIs(t, err, saveErr)
	assert.Equal(t, 2, m.Len(), "in-memory append stands despite save failure")

	_, ok, err := m.Toggle(ctx, 0)
	assert.True(t, ok)
	assert.ErrorIs(t, err, saveErr)
	assert.True(t, m.Tasks()[0].Completed, "in-memory flip stands despite save failure")

	_, ok, err = m.Delete(ctx, 0)
	assert.True(t, ok)
	assert.ErrorIs(t, err, saveErr)
	assert.Equal(t, 1, m.Len())
}

// End-to-end over the ephemeral backend: add, toggle, delete.
func TestManager_WithMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := manager.New(ctx, store.NewMemoryStore(), discardLogger())

	_, err := m.Add(ctx, "buy milk")
	require.NoError(t, err)
	tasks := m.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "buy milk - ❌", tasks[0].Render())

	_, ok, err := m.Toggle(ctx, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "buy milk - ✅", m.Tasks()[0].Render())

	_, ok, err = m.Delete(ctx, 0)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, m.Tasks())
}
