package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"lecturecast/internal/workspace"
	"lecturecast/pkg/config"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear generated artifacts",
	Long:  `Remove all generated lecture artifacts from the output directory.`,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	if err := workspace.Clear(cfg.Output.Dir); err != nil {
		return err
	}

	fmt.Printf("Cleared output directory %s\n", cfg.Output.Dir)
	return nil
}
