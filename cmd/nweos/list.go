package main

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every character card in the folder",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		cards, err := store.LoadAll()
		if err != nil {
			return err
		}
		return printCards(outputFormat(), cards)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
