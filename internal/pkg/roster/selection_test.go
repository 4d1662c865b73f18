package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSelectionPinsCaptain(t *testing.T) {
	s := NewSelection(7)

	assert.Equal(t, uint(7), s.CaptainID())
	assert.Equal(t, []uint{7}, s.PlayerIDs())
	assert.Equal(t, 1, s.Count())
	assert.False(t, s.Complete())
	assert.Equal(t, 4, s.Remaining())
}

func TestSelectionAdd(t *testing.T) {
	s := NewSelection(1)

	assert.True(t, s.Add(2))
	assert.True(t, s.Add(3))
	assert.False(t, s.Add(2), "duplicate add must be a no-op")
	assert.Equal(t, []uint{1, 2, 3}, s.PlayerIDs())
}

func TestSelectionAddStopsAtRosterSize(t *testing.T) {
	s := NewSelection(1)
	for _, id := range []uint{2, 3, 4, 5} {
		assert.True(t, s.Add(id))
	}

	assert.True(t, s.Complete())
	assert.False(t, s.Add(6), "sixth pick must be a no-op")
	assert.Equal(t, Size, s.Count())
	assert.False(t, s.Contains(6))
}

func TestSelectionRemove(t *testing.T) {
	s := NewSelection(1)
	s.Add(2)
	s.Add(3)

	assert.True(t, s.Remove(2))
	assert.Equal(t, []uint{1, 3}, s.PlayerIDs())
	assert.False(t, s.Remove(99), "removing an unpicked player must be a no-op")
}

func TestSelectionRemoveCaptainIsNoOp(t *testing.T) {
	s := NewSelection(1)
	s.Add(2)

	assert.False(t, s.Remove(1))
	assert.True(t, s.Contains(1))
	assert.Equal(t, 2, s.Count())
}

func TestSelectionToggle(t *testing.T) {
	s := NewSelection(1)

	assert.True(t, s.Toggle(2))
	assert.True(t, s.Contains(2))
	assert.True(t, s.Toggle(2))
	assert.False(t, s.Contains(2))
	assert.False(t, s.Toggle(1), "toggling the captain must be a no-op")
	assert.True(t, s.Contains(1))
}

func TestSelectionCompleteRequiresFullRoster(t *testing.T) {
	s := NewSelection(1)
	for _, id := range []uint{2, 3, 4} {
		s.Add(id)
	}
	assert.False(t, s.Complete())

	s.Add(5)
	assert.True(t, s.Complete())
	assert.Equal(t, 0, s.Remaining())
}

func TestSelectionPlayerIDsReturnsCopy(t *testing.T) {
	s := NewSelection(1)
	s.Add(2)

	ids := s.PlayerIDs()
	ids[0] = 99

	assert.Equal(t, []uint{1, 2}, s.PlayerIDs())
}
