package nweos

import (
	"strings"

	"github.com/atlaschan0010/obsidian-plugin-nweos/types"
)

// FileExt is the extension of persisted card files.
const FileExt = ".json"

// Characters that are illegal in filenames on at least one supported
// platform; each is replaced with an underscore.
var illegalFilenameChars = strings.NewReplacer(
	`\`, "_",
	"/", "_",
	":", "_",
	"*", "_",
	"?", "_",
	`"`, "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// FileName derives the physical filename for a card:
// "<name>_<work>.json", or "<name>.json" when the card has no work name.
// The name falls back to the identifier when empty. This derivation is a
// browsing convenience, never an identity key: it may collide and it
// changes when the card is renamed.
func FileName(c *types.Character) string {
	name := c.Metadata.CharacterName
	if name == "" {
		name = c.Metadata.CharacterID
	}

	base := sanitizeName(name)
	if base == "" {
		base = sanitizeName(c.Metadata.CharacterID)
	}

	if work := sanitizeName(c.Metadata.WorkName); work != "" {
		base = base + "_" + work
	}
	return base + FileExt
}

func sanitizeName(s string) string {
	return strings.TrimSpace(illegalFilenameChars.Replace(s))
}
