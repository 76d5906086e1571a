package main

import (
	"github.com/lukaszgryglicki/trackball4d/internal/trackball4d"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay [config]",
	Short: "Replay a scripted drag session",
	Long: `Loads a JSON or YAML config (default scenes/config.yaml), feeds its script of
pointer samples through the configured objects and writes the GIF, raw frames
and metrics it asks for.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := "scenes/config.yaml"
		if len(args) > 0 {
			cfg = args[0]
		}
		return trackball4d.Run(cfg, newLogger(cmd))
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
