package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"lecturecast/internal/app"
	"lecturecast/internal/server"
	"lecturecast/pkg/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long:  `Start the HTTP server exposing lecture generation and artifact download.`,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	service, err := app.BuildService(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	pipeline := app.NewPipeline(service)
	srv := server.New(pipeline, cfg.Output.Dir)

	slog.Info("Starting server", "port", cfg.Server.Port)
	return srv.Router().Run(":" + cfg.Server.Port)
}
