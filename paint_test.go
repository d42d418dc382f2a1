package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController() (*Controller, *History) {
	h := NewHistory(0)
	return NewController(h, NewCompositor(lightPalette)), h
}

// drag paints a stroke through cells with the primary button held.
func drag(t *testing.T, c *Controller, cells ...[2]int) bool {
	t.Helper()
	require.NoError(t, c.PointerDown(cells[0][0], cells[0][1]))
	for _, cell := range cells[1:] {
		require.NoError(t, c.PointerEnter(cell[0], cell[1], true))
	}
	return c.PointerUp()
}

func TestControllerStroke(t *testing.T) {
	t.Parallel()

	t.Run("one gesture is one history entry", func(t *testing.T) {
		t.Parallel()
		c, h := newTestController()
		require.NoError(t, c.SelectColor(3))

		assert.True(t, drag(t, c, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}))
		assert.Equal(t, 2, h.Len())
		assert.Equal(t, 3, c.Grid().Painted())
		level, err := h.Current().Get(2, 0)
		require.NoError(t, err)
		assert.Equal(t, Level(3), level)
	})

	t.Run("edits are visible before commit", func(t *testing.T) {
		t.Parallel()
		c, h := newTestController()
		require.NoError(t, c.PointerDown(4, 4))
		assert.True(t, c.Drawing())
		assert.Equal(t, 1, c.Grid().Painted())
		assert.True(t, h.Current().IsEmpty())
	})

	t.Run("enter without button does not paint", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestController()
		require.NoError(t, c.PointerDown(0, 0))
		require.NoError(t, c.PointerEnter(1, 0, false))
		assert.Equal(t, 1, c.Grid().Painted())
	})

	t.Run("enter outside a stroke does not paint", func(t *testing.T) {
		t.Parallel()
		c, h := newTestController()
		require.NoError(t, c.PointerEnter(1, 0, true))
		assert.True(t, c.IsEmpty())
		assert.False(t, c.PointerUp())
		assert.Equal(t, 1, h.Len())
	})

	t.Run("duplicate pointer down is ignored", func(t *testing.T) {
		t.Parallel()
		c, h := newTestController()
		require.NoError(t, c.PointerDown(0, 0))
		require.NoError(t, c.PointerDown(9, 6))
		assert.Equal(t, 1, c.Grid().Painted())
		assert.True(t, c.PointerUp())
		assert.Equal(t, 2, h.Len())
	})

	t.Run("repainting the same color is not a change", func(t *testing.T) {
		t.Parallel()
		c, h := newTestController()
		drag(t, c, [2]int{0, 0})
		require.Equal(t, 2, h.Len())

		assert.False(t, drag(t, c, [2]int{0, 0}, [2]int{0, 0}))
		assert.Equal(t, 2, h.Len())
	})

	t.Run("stroke that reverts its own edits commits nothing", func(t *testing.T) {
		t.Parallel()
		c, h := newTestController()
		require.NoError(t, c.SelectColor(2))
		require.NoError(t, c.PointerDown(5, 5))
		require.NoError(t, c.SelectColor(0))
		require.NoError(t, c.PointerEnter(5, 5, true))

		assert.False(t, c.PointerUp())
		assert.Equal(t, 1, h.Len())
		assert.True(t, c.IsEmpty())
	})

	t.Run("out of bounds is rejected without starting a stroke", func(t *testing.T) {
		t.Parallel()
		c, _ := newTestController()
		assert.ErrorIs(t, c.PointerDown(Cols, 0), ErrOutOfBounds)
		assert.False(t, c.Drawing())

		require.NoError(t, c.PointerDown(0, 0))
		assert.ErrorIs(t, c.PointerEnter(0, Rows, true), ErrOutOfBounds)
	})
}

func TestControllerSelectColor(t *testing.T) {
	t.Parallel()

	c, _ := newTestController()
	assert.Equal(t, Level(1), c.SelectedColor())
	assert.ErrorIs(t, c.SelectColor(NumLevels), ErrInvalidLevel)
	assert.Equal(t, Level(1), c.SelectedColor())
	require.NoError(t, c.SelectColor(4))
	assert.Equal(t, Level(4), c.SelectedColor())
}

func TestControllerUndoRedo(t *testing.T) {
	t.Parallel()

	c, _ := newTestController()
	first := [][2]int{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	second := [][2]int{{0, 3}, {1, 3}, {2, 3}, {3, 3}, {4, 3}}
	require.True(t, drag(t, c, first...))
	afterFirst := c.Grid()
	require.True(t, drag(t, c, second...))
	afterBoth := c.Grid()
	assert.Equal(t, 10, afterBoth.Painted())

	c.Undo()
	c.Undo()
	assert.True(t, c.IsEmpty())
	assert.False(t, c.CanUndo())

	c.Redo()
	assert.Empty(t, cellDiff(afterFirst, c.Grid()))
	c.Redo()
	assert.Empty(t, cellDiff(afterBoth, c.Grid()))
	assert.False(t, c.CanRedo())

	t.Run("painting after undo drops redo", func(t *testing.T) {
		c.Undo()
		require.True(t, c.CanRedo())
		require.True(t, drag(t, c, [2]int{30, 6}))
		assert.False(t, c.CanRedo())
	})
}

func TestControllerUndoFlushesStroke(t *testing.T) {
	t.Parallel()

	c, h := newTestController()
	require.NoError(t, c.PointerDown(0, 0))
	c.Undo()

	assert.False(t, c.Drawing())
	assert.Equal(t, 2, h.Len())
	assert.True(t, c.IsEmpty())
	assert.True(t, c.CanRedo())
}

func TestControllerClear(t *testing.T) {
	t.Parallel()

	t.Run("clears and records", func(t *testing.T) {
		t.Parallel()
		c, h := newTestController()
		drag(t, c, [2]int{1, 1}, [2]int{2, 2})
		c.Clear()
		assert.True(t, c.IsEmpty())
		assert.Equal(t, 3, h.Len())

		c.Undo()
		assert.Equal(t, 2, c.Grid().Painted())
	})

	t.Run("records even when already empty", func(t *testing.T) {
		t.Parallel()
		c, h := newTestController()
		c.Clear()
		assert.Equal(t, 2, h.Len())
		assert.True(t, c.CanUndo())
	})
}

func TestControllerLoad(t *testing.T) {
	t.Parallel()

	c, h := newTestController()
	g := gridWith(t, [3]int{7, 2, 4}, [3]int{8, 2, 3})
	assert.True(t, c.Load(g))
	assert.False(t, c.Load(g))
	assert.Equal(t, 2, h.Len())
	assert.Empty(t, cellDiff(g, c.Grid()))
}
