package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atlaschan0010/obsidian-plugin-nweos/redline"
	"github.com/atlaschan0010/obsidian-plugin-nweos/types"
)

var checkRisk bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the red line check over every card in the folder",
	Long: `Check reports missing required fields and advisory warnings per card.
Findings never block saving; they exist to catch cards that would drift
out of character during later writing. With --risk the advisory drift
score is printed as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		cards, err := store.LoadAll()
		if err != nil {
			return err
		}
		if len(cards) == 0 {
			fmt.Println("no character cards found")
			return nil
		}

		flagged := runSweep(cards)
		if flagged == 0 {
			fmt.Println("all character cards are complete")
		} else {
			fmt.Printf("\n%d of %d cards have red line findings\n", flagged, len(cards))
		}
		return nil
	},
}

// runSweep prints findings per card and returns how many cards had any.
func runSweep(cards []types.Character) int {
	flagged := 0
	for i := range cards {
		c := &cards[i]
		messages := redline.Summarize(c)

		var riskLine string
		if checkRisk {
			risk := redline.AssessDriftRisk(c)
			if risk.AtRisk {
				riskLine = fmt.Sprintf("drift risk %d (at risk)", risk.Score)
			} else {
				riskLine = fmt.Sprintf("drift risk %d", risk.Score)
			}
		}

		if len(messages) == 0 && riskLine == "" {
			continue
		}
		if len(messages) > 0 {
			flagged++
		}

		name := c.Metadata.CharacterName
		if name == "" {
			name = c.Metadata.CharacterID
		}
		fmt.Printf("[%s]\n", name)
		for _, msg := range messages {
			fmt.Printf("  %s\n", msg)
		}
		if riskLine != "" {
			fmt.Printf("  %s\n", riskLine)
		}
	}
	return flagged
}

func init() {
	checkCmd.Flags().BoolVar(&checkRisk, "risk", false, "Also print the advisory drift risk score")
	rootCmd.AddCommand(checkCmd)
}
