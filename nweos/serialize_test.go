package nweos

import (
	"encoding/json"
	"testing"
)

func validRaw(t *testing.T) []byte {
	t.Helper()
	data, err := Marshal(New(Seed{Name: "Lin Yao"}))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	return data
}

// mutateRaw re-encodes the valid card with one top-level change applied.
func mutateRaw(t *testing.T, mutate func(map[string]json.RawMessage)) []byte {
	t.Helper()
	var top map[string]json.RawMessage
	if err := json.Unmarshal(validRaw(t), &top); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	mutate(top)
	data, err := json.Marshal(top)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return data
}

func TestValidateShape(t *testing.T) {
	tests := []struct {
		name string
		raw  func(t *testing.T) []byte
		want bool
	}{
		{
			name: "valid card",
			raw:  validRaw,
			want: true,
		},
		{
			name: "malformed JSON",
			raw:  func(t *testing.T) []byte { return []byte("{not json") },
			want: false,
		},
		{
			name: "JSON array",
			raw:  func(t *testing.T) []byte { return []byte("[]") },
			want: false,
		},
		{
			name: "missing psychology branch",
			raw: func(t *testing.T) []byte {
				return mutateRaw(t, func(top map[string]json.RawMessage) {
					delete(top, "psychology")
				})
			},
			want: false,
		},
		{
			name: "null branch",
			raw: func(t *testing.T) []byte {
				return mutateRaw(t, func(top map[string]json.RawMessage) {
					top["track_extension"] = json.RawMessage("null")
				})
			},
			want: false,
		},
		{
			name: "schema tag is a number",
			raw: func(t *testing.T) []byte {
				return mutateRaw(t, func(top map[string]json.RawMessage) {
					top["standard"] = json.RawMessage(`{"version":"1.0.0","schema":7,"format":"character-card"}`)
				})
			},
			want: false,
		},
		{
			name: "character_id missing",
			raw: func(t *testing.T) []byte {
				return mutateRaw(t, func(top map[string]json.RawMessage) {
					top["metadata"] = json.RawMessage(`{"character_name":"Lin Yao"}`)
				})
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateShape(tt.raw(t)); got != tt.want {
				t.Errorf("ValidateShape() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnmarshalRejectsWrongShape(t *testing.T) {
	if _, err := Unmarshal([]byte(`{"title":"not a card"}`)); err == nil {
		t.Error("Unmarshal() accepted a non-card blob")
	}
}
