package cmd

import (
	"fmt"

	"github.com/abhisek/blossom/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "blossom",
	Short: "A terminal greeting that blooms",
	Long:  "Blossom asks one question, dodges the wrong answer and grows a cherry tree for the right one.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	bindFlags(rootCmd)
	rootCmd.AddCommand(versionCmd)
}

func bindFlags(c *cobra.Command) {
	c.PersistentFlags().String("config", "", "Path to a YAML config file (overrides BLOSSOM_CONFIG env var)")
	c.Flags().String("since", "", "Date the counter runs from, YYYY-MM-DD")
	c.Flags().Uint64("seed", 0, "Seed for the dodge and petal randomness (0 picks one)")
	c.Flags().Bool("mute", false, "Do not play the song")
	c.Flags().String("log", "", "Write debug logs to this file (overrides BLOSSOM_LOG env var)")
}

// resolveConfig loads the config from --config (highest priority), then
// BLOSSOM_CONFIG or the default XDG path, then falls back to the built-in
// defaults. Flags set on the command line override the loaded values.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("since") {
		cfg.Since, _ = cmd.Flags().GetString("since")
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if cmd.Flags().Changed("mute") {
		cfg.Audio.Mute, _ = cmd.Flags().GetBool("mute")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
