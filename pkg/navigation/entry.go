// Package navigation implements the flowing bottom navigation bar: the
// selection state, the animation coordinator that moves the wave trough and
// the action glyph, and the NavBar facade hosts talk to.
//
// The package never draws. Hosts pull a Frame every paint cycle and render
// it with whatever surface they own (see pkg/systems for ebiten and
// pkg/termhost for tcell).
package navigation

import (
	"errors"
	"fmt"

	"github.com/gonewx/flownav/pkg/config"
)

var (
	// ErrInvalidSelection is returned when an index is out of range or an
	// entry is not part of the menu. State is left untouched.
	ErrInvalidSelection = errors.New("no such menu item")

	// ErrConfiguration is returned by New when the bar cannot be built.
	ErrConfiguration = errors.New("invalid navigation bar configuration")
)

// MenuEntry is one navigation destination. Glyph is an opaque reference the
// host resolves to an icon (the demo hosts draw it as text).
type MenuEntry struct {
	ID    string
	Glyph string
	Label string
}

// EntriesFromConfig converts YAML menu items into entries.
func EntriesFromConfig(items []config.MenuItem) []MenuEntry {
	entries := make([]MenuEntry, len(items))
	for i, item := range items {
		entries[i] = MenuEntry{ID: item.ID, Glyph: item.Glyph, Label: item.Label}
	}
	return entries
}

// validateEntries rejects empty menus and duplicate IDs, since SelectEntry
// resolves entries by equality and duplicates would be ambiguous.
func validateEntries(entries []MenuEntry) error {
	if len(entries) == 0 {
		return fmt.Errorf("%w: menu has no entries", ErrConfiguration)
	}
	seen := make(map[string]int, len(entries))
	for i, e := range entries {
		if prev, ok := seen[e.ID]; ok {
			return fmt.Errorf("%w: entries %d and %d share id %q", ErrConfiguration, prev, i, e.ID)
		}
		seen[e.ID] = i
	}
	return nil
}
