package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/atlaschan0010/obsidian-plugin-nweos/internal/watch"
	"github.com/atlaschan0010/obsidian-plugin-nweos/nweos"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the folder and re-run the red line check on changes",
	Long: `Watch observes the card folder for external edits (sync clients,
other editors) and re-runs the red line sweep after changes settle.
Stop with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		sweep := func() {
			cards, err := store.LoadAll()
			if err != nil {
				fmt.Printf("reload failed: %v\n", err)
				return
			}
			fmt.Printf("-- %d cards --\n", len(cards))
			if runSweep(cards) == 0 {
				fmt.Println("all character cards are complete")
			}
		}

		watcher, err := watch.New(store.Dir(), nweos.FileExt, watchDebounce, sweep)
		if err != nil {
			return err
		}
		defer func() { _ = watcher.Close() }()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Printf("watching %s (Ctrl-C to stop)\n", store.Dir())
		sweep()

		if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "Quiet period before re-running the check")
	rootCmd.AddCommand(watchCmd)
}
