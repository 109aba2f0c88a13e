package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/atlaschan0010/obsidian-plugin-nweos/redline"
	"github.com/atlaschan0010/obsidian-plugin-nweos/types"
)

// cardRow is the tabular projection of a card for list output.
type cardRow struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Work     string `json:"work" yaml:"work"`
	Track    string `json:"track,omitempty" yaml:"track,omitempty"`
	Complete bool   `json:"complete" yaml:"complete"`
	Updated  string `json:"updated" yaml:"updated"`
}

func rowFor(c *types.Character) cardRow {
	return cardRow{
		ID:       c.Metadata.CharacterID,
		Name:     c.Metadata.CharacterName,
		Work:     c.Metadata.WorkName,
		Track:    c.Metadata.NovelTrack,
		Complete: redline.Check(c).IsValid,
		Updated:  c.Metadata.LastUpdated,
	}
}

// printCards renders a card list in the requested output format.
func printCards(format string, cards []types.Character) error {
	rows := make([]cardRow, 0, len(cards))
	for i := range cards {
		rows = append(rows, rowFor(&cards[i]))
	}

	switch format {
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tWORK\tCOMPLETE\tUPDATED")
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%s\n",
				row.ID, row.Name, row.Work, row.Complete, row.Updated)
		}
		return w.Flush()
	case "json":
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(rows)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

// printCard renders one full card in the requested output format.
func printCard(format string, c *types.Character) error {
	switch format {
	case "table":
		// The full tree does not fit a table; fall through to JSON.
		format = "json"
	case "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	if format == "yaml" {
		// Round-trip through JSON so the YAML keys match the persisted
		// file format instead of Go field names.
		var tree map[string]any
		if err := json.Unmarshal(data, &tree); err != nil {
			return err
		}
		out, err := yaml.Marshal(tree)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	}

	fmt.Println(string(data))
	return nil
}
