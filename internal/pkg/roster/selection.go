package roster

// Size is the number of players a team fields for an event.
const Size = 5

// Selection tracks the players a captain has picked for an event
// registration. The captain occupies the first slot and cannot be
// deselected; the selection never grows beyond Size entries.
type Selection struct {
	captainID uint
	playerIDs []uint
}

// NewSelection creates a selection with the captain pre-picked.
func NewSelection(captainID uint) *Selection {
	return &Selection{
		captainID: captainID,
		playerIDs: []uint{captainID},
	}
}

// CaptainID returns the pinned captain.
func (s *Selection) CaptainID() uint {
	return s.captainID
}

// PlayerIDs returns the picked players in pick order, captain first.
func (s *Selection) PlayerIDs() []uint {
	out := make([]uint, len(s.playerIDs))
	copy(out, s.playerIDs)
	return out
}

// Count returns the number of picked players.
func (s *Selection) Count() int {
	return len(s.playerIDs)
}

// Contains reports whether the given player is picked.
func (s *Selection) Contains(playerID uint) bool {
	for _, id := range s.playerIDs {
		if id == playerID {
			return true
		}
	}
	return false
}

// Add picks a player. Adding a duplicate or adding past the roster
// size leaves the selection unchanged. It reports whether the
// selection was modified.
func (s *Selection) Add(playerID uint) bool {
	if s.Contains(playerID) {
		return false
	}
	if len(s.playerIDs) >= Size {
		return false
	}
	s.playerIDs = append(s.playerIDs, playerID)
	return true
}

// Remove unpicks a player. The captain cannot be removed. It reports
// whether the selection was modified.
func (s *Selection) Remove(playerID uint) bool {
	if playerID == s.captainID {
		return false
	}
	for i, id := range s.playerIDs {
		if id == playerID {
			s.playerIDs = append(s.playerIDs[:i], s.playerIDs[i+1:]...)
			return true
		}
	}
	return false
}

// Toggle picks an unpicked player or unpicks a picked one, honoring
// the same rules as Add and Remove.
func (s *Selection) Toggle(playerID uint) bool {
	if s.Contains(playerID) {
		return s.Remove(playerID)
	}
	return s.Add(playerID)
}

// Complete reports whether the selection holds a full roster.
func (s *Selection) Complete() bool {
	return len(s.playerIDs) == Size
}

// Remaining returns how many picks are still open.
func (s *Selection) Remaining() int {
	return Size - len(s.playerIDs)
}
