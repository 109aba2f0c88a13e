package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atlaschan0010/obsidian-plugin-nweos/formats"
	"github.com/atlaschan0010/obsidian-plugin-nweos/nweos"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import an external character card JSON file",
	Long: `Import accepts any JSON file carrying a recognized schema tag. The
imported card gets a fresh identifier and fresh timestamps; everything
else is kept as-is. The source file is not modified.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		c, err := nweos.Import(raw)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		if err := store.Save(c); err != nil {
			return err
		}

		fmt.Printf("imported %q as %s\n", c.Metadata.CharacterName, c.Metadata.CharacterID)
		return nil
	},
}

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a character card to stdout",
	Long: fmt.Sprintf(`Export renders a card in one of the registered formats (%s)
without modifying the stored file.`, strings.Join(formats.List(), ", ")),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := formats.Get(exportFormat)
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		c, err := store.GetByID(args[0])
		if err != nil {
			return err
		}

		data, err := format.Render(c)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "Export format: "+strings.Join(formats.List(), "|"))
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}
