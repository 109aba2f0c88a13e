package nweos

import (
	"encoding/json"
	"fmt"

	"github.com/atlaschan0010/obsidian-plugin-nweos/types"
)

// Marshal renders a card as the canonical persisted form: 2-space indented
// JSON with keys in declaration order, so saved files diff cleanly.
func Marshal(c *types.Character) ([]byte, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal character: %w", err)
	}
	return data, nil
}

// Unmarshal parses a persisted card. It insists on the structural gate so a
// syntactically valid but wrong-shaped blob is rejected rather than decoded
// into a hollow card.
func Unmarshal(data []byte) (*types.Character, error) {
	if !ValidateShape(data) {
		return nil, fmt.Errorf("not a character card: %w", ErrInvalidShape)
	}
	var c types.Character
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse character: %w", err)
	}
	return &c, nil
}

// branchNames are the top-level branches every card must carry.
var branchNames = []string{
	"standard",
	"metadata",
	"core_position",
	"identity",
	"appearance",
	"abilities",
	"psychology",
	"behavior_pattern",
	"background_history",
	"preferences_lifestyle",
	"motivation_arc",
	"plot_binding",
	"relationship_network",
	"track_extension",
}

// ValidateShape is the structural gate, distinct from the red line content
// checker: it verifies the top-level branches exist and that the schema tag
// and identity fields are strings. It reports false instead of failing.
func ValidateShape(raw []byte) bool {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return false
	}

	for _, name := range branchNames {
		branch, ok := top[name]
		if !ok || isJSONNull(branch) {
			return false
		}
	}

	var standard map[string]json.RawMessage
	if err := json.Unmarshal(top["standard"], &standard); err != nil {
		return false
	}
	if !isJSONString(standard["schema"]) || !isJSONString(standard["version"]) {
		return false
	}

	var metadata map[string]json.RawMessage
	if err := json.Unmarshal(top["metadata"], &metadata); err != nil {
		return false
	}
	return isJSONString(metadata["character_id"]) && isJSONString(metadata["character_name"])
}

func isJSONNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

func isJSONString(raw json.RawMessage) bool {
	if raw == nil {
		return false
	}
	var s string
	return json.Unmarshal(raw, &s) == nil
}
