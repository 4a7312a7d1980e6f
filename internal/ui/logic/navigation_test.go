package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkInvariant asserts the viewport invariant for a list of the
// given length.
func checkInvariant(t *testing.T, n *Navigator, listLen int) {
	t.Helper()
	if listLen == 0 {
		assert.Equal(t, 0, n.Cursor)
		return
	}
	assert.GreaterOrEqual(t, n.Cursor, 0)
	assert.Less(t, n.Cursor, listLen)
	assert.GreaterOrEqual(t, n.Offset, 0)
	assert.LessOrEqual(t, n.Offset, n.Cursor)
	assert.Less(t, n.Cursor, n.Offset+n.Height, "cursor must stay inside the visible window")
}

func TestScrollDownThroughList(t *testing.T) {
	// 50 units, viewport of 10: twelve single-row moves down leave the
	// cursor at 12 with the window scrolled by 3.
	n := NewNavigator()
	n.SetHeight(10, 50)

	for i := 0; i < 12; i++ {
		n.Move(1, 50)
		checkInvariant(t, n, 50)
	}
	assert.Equal(t, 12, n.Cursor)
	assert.Equal(t, 3, n.Offset)
}

func TestScrollUpRevealsCursor(t *testing.T) {
	n := NewNavigator()
	n.SetHeight(10, 50)
	n.Cursor = 30
	n.Clamp(50)
	require.Equal(t, 21, n.Offset)

	// Jump well above the window; offset follows the cursor exactly.
	n.Cursor = 5
	n.Clamp(50)
	assert.Equal(t, 5, n.Offset)
	checkInvariant(t, n, 50)
}

func TestMoveStopsAtBounds(t *testing.T) {
	n := NewNavigator()
	n.SetHeight(10, 5)

	n.Move(-3, 5)
	assert.Equal(t, 0, n.Cursor)

	n.Move(100, 5)
	assert.Equal(t, 4, n.Cursor)
	checkInvariant(t, n, 5)
}

func TestPageDelta(t *testing.T) {
	n := NewNavigator()
	n.SetHeight(10, 50)
	assert.Equal(t, 9, n.PageDelta())

	n.SetHeight(1, 50)
	assert.Equal(t, 1, n.PageDelta(), "page movement always advances at least one row")
}

func TestPageMovement(t *testing.T) {
	n := NewNavigator()
	n.SetHeight(10, 50)

	n.Move(n.PageDelta(), 50)
	assert.Equal(t, 9, n.Cursor)
	checkInvariant(t, n, 50)

	n.Move(n.PageDelta(), 50)
	assert.Equal(t, 18, n.Cursor)
	checkInvariant(t, n, 50)

	n.Move(-n.PageDelta(), 50)
	n.Move(-n.PageDelta(), 50)
	n.Move(-n.PageDelta(), 50)
	assert.Equal(t, 0, n.Cursor)
	checkInvariant(t, n, 50)
}

func TestListShrinkReclampsCursor(t *testing.T) {
	n := NewNavigator()
	n.SetHeight(10, 50)
	n.Cursor = 40
	n.Clamp(50)

	// Refresh replaced the list with a shorter one.
	n.Clamp(7)
	assert.Equal(t, 6, n.Cursor)
	checkInvariant(t, n, 7)
}

func TestEmptyListZeroesCursor(t *testing.T) {
	n := NewNavigator()
	n.SetHeight(10, 50)
	n.Cursor = 25
	n.Clamp(50)

	n.Clamp(0)
	assert.Equal(t, 0, n.Cursor)
}

func TestResizeKeepsCursorVisible(t *testing.T) {
	n := NewNavigator()
	n.SetHeight(20, 50)
	n.Cursor = 15
	n.Clamp(50)
	require.Equal(t, 0, n.Offset)

	// Terminal shrank; the window must scroll down to the cursor.
	n.SetHeight(5, 50)
	assert.Equal(t, 11, n.Offset)
	checkInvariant(t, n, 50)
}

func TestHeightNeverBelowOne(t *testing.T) {
	n := NewNavigator()
	n.SetHeight(0, 10)
	assert.Equal(t, 1, n.Height)
	n.SetHeight(-5, 10)
	assert.Equal(t, 1, n.Height)
}

func TestReset(t *testing.T) {
	n := NewNavigator()
	n.SetHeight(10, 50)
	n.Cursor = 42
	n.Clamp(50)

	n.Reset()
	assert.Equal(t, 0, n.Cursor)
	assert.Equal(t, 0, n.Offset)
}

func TestInvariantUnderEventSequences(t *testing.T) {
	// Deterministic pseudo-random walk over movements, list
	// replacements, and resizes; the invariant must hold after every
	// single event.
	n := NewNavigator()
	listLen := 30
	n.SetHeight(8, listLen)

	seed := uint64(0x5eed)
	next := func(mod int) int {
		seed = seed*6364136223846793005 + 1442695040888963407
		return int(seed>>33) % mod
	}

	for i := 0; i < 500; i++ {
		switch next(4) {
		case 0:
			n.Move(1, listLen)
		case 1:
			n.Move(-1, listLen)
		case 2:
			listLen = next(40) // may become 0
			n.Clamp(listLen)
		case 3:
			n.SetHeight(1+next(15), listLen)
		}
		checkInvariant(t, n, listLen)
		if t.Failed() {
			t.Fatalf("invariant broken at step %d (len=%d h=%d cursor=%d offset=%d)",
				i, listLen, n.Height, n.Cursor, n.Offset)
		}
	}
}
