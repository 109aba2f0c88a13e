package formats_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/atlaschan0010/obsidian-plugin-nweos/formats"
	"github.com/atlaschan0010/obsidian-plugin-nweos/nweos"
	"github.com/atlaschan0010/obsidian-plugin-nweos/testutil"
	"github.com/atlaschan0010/obsidian-plugin-nweos/types"
)

func TestRegistry(t *testing.T) {
	t.Run("built-in formats are registered", func(t *testing.T) {
		for _, name := range []string{"json", "markdown"} {
			format, err := formats.Get(name)
			if err != nil {
				t.Errorf("Get(%q) error: %v", name, err)
				continue
			}
			if format.Name != name {
				t.Errorf("Get(%q).Name = %q", name, format.Name)
			}
		}
	})

	t.Run("list is sorted and complete", func(t *testing.T) {
		names := formats.List()
		if len(names) < 2 {
			t.Fatalf("List() = %v, want at least json and markdown", names)
		}
		for i := 1; i < len(names); i++ {
			if names[i-1] >= names[i] {
				t.Errorf("List() not sorted: %v", names)
			}
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		if _, err := formats.Get("toml"); err == nil {
			t.Error("Get(\"toml\") succeeded for an unregistered format")
		}
	})

	t.Run("duplicate registration", func(t *testing.T) {
		err := formats.Register(&formats.CardFormat{
			Name:      "json",
			Extension: ".json",
			Render:    func(c *types.Character) ([]byte, error) { return nil, nil },
		})
		if err == nil {
			t.Error("Register() accepted a duplicate name")
		}
	})

	t.Run("invalid names", func(t *testing.T) {
		for _, name := range []string{"", "Markdown", "plain text", "md!"} {
			err := formats.Register(&formats.CardFormat{Name: name})
			if err == nil {
				t.Errorf("Register(%q) accepted an invalid name", name)
			}
		}
	})
}

func TestJSONRender(t *testing.T) {
	c := testutil.SampleCharacter()

	out, err := formats.JSON.Render(c)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var round types.Character
	if err := json.Unmarshal(out, &round); err != nil {
		t.Fatalf("rendered JSON does not parse: %v", err)
	}
	if round.Metadata.CharacterID != c.Metadata.CharacterID {
		t.Errorf("identifier = %q, want %q", round.Metadata.CharacterID, c.Metadata.CharacterID)
	}
	if !nweos.ValidateShape(out) {
		t.Error("rendered JSON fails the structural gate")
	}
}

func TestMarkdownRender(t *testing.T) {
	c := testutil.SampleCharacter()

	out, err := formats.Markdown.Render(c)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	text := string(out)

	wantFragments := []string{
		"# Lin Yao",
		"**Work**: Ashes of the Vermilion Court",
		"## Identity",
		"- **Full name**: Lin Yao",
		"## Psychology",
		"meek, forgettable, eager to please",
		"## Motivation arc",
		"clear her father's name",
		"## Core relationships",
		"- **Shen Wuyan**",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(text, fragment) {
			t.Errorf("rendered markdown missing %q", fragment)
		}
	}
}

func TestMarkdownRenderEmptyCard(t *testing.T) {
	c := nweos.New(nweos.Seed{})

	out, err := formats.Markdown.Render(c)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	text := string(out)

	if !strings.Contains(text, "# unset") {
		t.Error("empty card should render an unset title")
	}
	if strings.Contains(text, "## Core relationships") {
		t.Error("relationship section rendered with no relationships")
	}
	if strings.Contains(text, "## Notes") {
		t.Error("notes section rendered with no notes")
	}
}
