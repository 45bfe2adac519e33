package navigation

import (
	"fmt"

	"github.com/gonewx/flownav/pkg/utils"
)

// State is the committed selection plus the trough position currently on
// screen. The selection changes synchronously; only the trough moves over
// time, and only the Coordinator moves it.
type State struct {
	count         int
	selected      int
	troughCenterX float64
}

// NewState creates a state for count items with initial selected.
func NewState(count, initial int) (*State, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: menu has no entries", ErrConfiguration)
	}
	s := &State{count: count}
	if err := s.Validate(initial); err != nil {
		return nil, err
	}
	s.selected = initial
	return s, nil
}

// Validate reports ErrInvalidSelection if i is not a valid index.
func (s *State) Validate(i int) error {
	if i < 0 || i >= s.count {
		return fmt.Errorf("%w: index %d outside [0, %d]", ErrInvalidSelection, i, s.count-1)
	}
	return nil
}

// Selected returns the committed index.
func (s *State) Selected() int {
	return s.selected
}

// Count returns the number of items.
func (s *State) Count() int {
	return s.count
}

// TroughCenterX returns the trough position currently on screen.
func (s *State) TroughCenterX() float64 {
	return s.troughCenterX
}

// commit stores a validated index and reports whether it changed.
func (s *State) commit(i int) bool {
	if i == s.selected {
		return false
	}
	s.selected = i
	return true
}

// setTrough stores x clamped into the surface.
func (s *State) setTrough(x, width float64) {
	if width < 0 {
		width = 0
	}
	s.troughCenterX = utils.Clamp(x, 0, width)
}
