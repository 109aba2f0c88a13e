package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atlaschan0010/obsidian-plugin-nweos/nweos"
)

var deleteForce bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a character card by identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		id := args[0]
		c, err := store.GetByID(id)
		if err != nil {
			if errors.Is(err, nweos.ErrNotFound) {
				fmt.Printf("no card with id %s\n", id)
				return nil
			}
			return err
		}

		if !deleteForce && !confirm(fmt.Sprintf("delete %q (%s)?", c.Metadata.CharacterName, id)) {
			fmt.Println("aborted")
			return nil
		}

		if err := store.DeleteByID(id); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", id)
		return nil
	},
}

func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func init() {
	deleteCmd.Flags().BoolVar(&deleteForce, "force", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
