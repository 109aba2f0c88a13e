package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atlaschan0010/obsidian-plugin-nweos/nweos"
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new character card",
	Long: `Create a card with every branch populated with empty fields, seeded
with the configured default author, work and track. The card is saved
immediately; fill it in with your editor of choice and re-save.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		seed := nweos.SeedFromConfig(store.Config())
		if len(args) > 0 {
			seed.Name = args[0]
		}

		c := nweos.New(seed)
		if err := store.Save(c); err != nil {
			return fmt.Errorf("failed to save new card: %w", err)
		}

		fmt.Printf("created %s (%s)\n", nweos.FileName(c), c.Metadata.CharacterID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
}
