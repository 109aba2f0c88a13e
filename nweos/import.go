package nweos

import (
	"encoding/json"
	"fmt"

	"github.com/atlaschan0010/obsidian-plugin-nweos/nweos/ids"
	"github.com/atlaschan0010/obsidian-plugin-nweos/types"
)

// Import accepts an external JSON blob as a character card. The blob must
// pass the structural gate and carry a recognized schema tag. The imported
// card is re-identified: a fresh identifier and fresh creation/update
// timestamps replace the incoming ones, and only those three fields are
// touched. Importing the same blob twice therefore yields two distinct
// cards.
func Import(raw []byte) (*types.Character, error) {
	if !ValidateShape(raw) {
		return nil, fmt.Errorf("import rejected: %w", ErrInvalidShape)
	}

	var c types.Character
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("import rejected: %w", err)
	}

	if !RecognizedSchema(c.Standard.Schema) {
		return nil, fmt.Errorf("import rejected: %w: %q", ErrUnknownSchema, c.Standard.Schema)
	}

	now := Timestamp()
	c.Metadata.CharacterID = ids.New()
	c.Metadata.CreatedAt = now
	c.Metadata.LastUpdated = now
	return &c, nil
}

// Export renders a card for external use. It is the same canonical pretty
// JSON the store persists and never mutates the card.
func Export(c *types.Character) ([]byte, error) {
	return Marshal(c)
}
