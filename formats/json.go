package formats

import (
	"github.com/atlaschan0010/obsidian-plugin-nweos/nweos"
)

// JSON renders the canonical persisted form: the same pretty-printed JSON
// the store writes to disk.
var JSON = &CardFormat{
	Name:      "json",
	Extension: nweos.FileExt,
	Render:    nweos.Export,
}

func init() {
	mustRegister(JSON)
}
