package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lukaszgryglicki/trackball4d/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trackball4d",
	Short: "trackball4d rotates 4D polytopes with a 3D pointer",
	Long: `trackball4d lifts 3D pointer drags onto the unit 3-sphere and turns them into
incremental 4D rotations of a tesseract or a hyperoctahedron.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", os.Getenv("DEBUG") != "", "Enable debug logging (also set by DEBUG env)")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelInfo)
}
