package cmd

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"lecturecast/internal/app"
	"lecturecast/pkg/config"
)

var (
	oncePrompt string
	onceTheme  string
)

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Generate a single lecture",
	Long:  `Generate one lecture video from a prompt without starting the server.`,
	RunE:  runOnce,
}

func init() {
	onceCmd.Flags().StringVarP(&oncePrompt, "prompt", "p", "", "Topic prompt for lecture generation")
	onceCmd.Flags().StringVarP(&onceTheme, "theme", "t", "", "Slide deck theme")
	rootCmd.AddCommand(onceCmd)
}

func runOnce(cmd *cobra.Command, args []string) error {
	if oncePrompt == "" {
		return errors.New("please provide --prompt")
	}

	ctx := cmd.Context()
	cfg := config.Load()

	service, err := app.BuildService(ctx, cfg)
	if err != nil {
		return err
	}

	pipeline := app.NewPipeline(service)

	slog.Info("Generating lecture...", "prompt", oncePrompt)
	result, err := pipeline.Generate(ctx, app.GenerateRequest{Prompt: oncePrompt, Theme: onceTheme})
	if err != nil {
		return err
	}

	slog.Info("Lecture generated",
		"video", result.VideoLocalPath,
		"slides", result.SlidesPath,
		"source", result.Source,
	)

	return nil
}
