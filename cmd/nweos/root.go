package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/atlaschan0010/obsidian-plugin-nweos/nweos"
	"github.com/atlaschan0010/obsidian-plugin-nweos/types"
)

var rootCmd = &cobra.Command{
	Use:   "nweos",
	Short: "nweos - character card management for serial fiction",
	Long: `nweos manages character profile cards as JSON files in a folder.

Each card carries a stable identifier independent of its filename, so
renaming a character never loses track of the card. The red line checker
reports incomplete cards without ever blocking a save.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (NWEOS_*)
3. Configuration file (./nweos.yaml or ~/.nweos/nweos.yaml)
4. Defaults

Examples:
  # Create a card and list the collection
  nweos create "Lin Yao" --work "Ashes of the Vermilion Court"
  nweos list

  # Red line sweep over every card in the folder
  nweos check

  # Export one card as markdown
  nweos export m3kf02x-a81bz0q --format markdown`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initLogging(viper.GetString("log-level"))
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringP("folder", "F", types.DefaultFolderPath, "Folder character cards are stored in")
	flags.String("author", "", "Default author seeded into new cards")
	flags.String("work", "", "Default work name seeded into new cards")
	flags.String("track", "", "Default novel track seeded into new cards")
	flags.StringP("format", "f", "table", "Output format: table|json|yaml")
	flags.String("log-level", "warn", "Log level: debug|info|warn|error")

	_ = viper.BindPFlags(flags)

	viper.SetConfigName("nweos")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.nweos")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("NWEOS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Missing config file is fine; flags and env still apply.
	_ = viper.ReadInConfig()
}

// configFromViper assembles the explicit store configuration from the
// merged flag/env/file settings.
func configFromViper() types.Config {
	return types.Config{
		FolderPath:    viper.GetString("folder"),
		DefaultAuthor: viper.GetString("author"),
		DefaultWork:   viper.GetString("work"),
		DefaultTrack:  viper.GetString("track"),
	}
}

func openStore() (*nweos.Store, error) {
	return nweos.NewStore(configFromViper())
}

func outputFormat() string {
	return viper.GetString("format")
}
