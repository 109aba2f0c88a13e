// Package formats renders character cards into external representations.
// Formats register themselves at init time and are looked up by name, so
// the export path stays open to new renderings without touching the store.
package formats

import (
	"fmt"
	"sort"

	"github.com/atlaschan0010/obsidian-plugin-nweos/types"
)

// CardFormat defines one way to render a character card for export.
// Rendering must never mutate the card.
type CardFormat struct {
	// Name is the format identifier (lowercase alphanumeric, dashes,
	// underscores).
	Name string

	// Extension is the file extension including the dot.
	Extension string

	// Render converts a card into the formatted byte representation.
	Render func(c *types.Character) ([]byte, error)
}

var registry = make(map[string]*CardFormat)

// Register adds a card format to the registry.
func Register(format *CardFormat) error {
	if !isValidFormatName(format.Name) {
		return fmt.Errorf("invalid format name %q: must be lowercase alphanumeric with dashes and underscores only", format.Name)
	}
	if _, exists := registry[format.Name]; exists {
		return fmt.Errorf("format %q already registered", format.Name)
	}
	registry[format.Name] = format
	return nil
}

// Get returns a card format by name.
func Get(name string) (*CardFormat, error) {
	format, exists := registry[name]
	if !exists {
		return nil, fmt.Errorf("unknown format %q", name)
	}
	return format, nil
}

// List returns all registered format names, sorted.
func List() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isValidFormatName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' && r != '_' {
			return false
		}
	}
	return true
}

func mustRegister(format *CardFormat) {
	if err := Register(format); err != nil {
		panic(err)
	}
}
