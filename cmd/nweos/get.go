package main

import (
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print one character card by identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		c, err := store.GetByID(args[0])
		if err != nil {
			return err
		}
		return printCard(outputFormat(), c)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
