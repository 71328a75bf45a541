package cli

import (
	"os"

	"backoffice/internal/config"
	"backoffice/internal/infra/db"
	"backoffice/internal/logger"
	"backoffice/internal/server"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			log.Error().Err(err).Msg("failed to load config")
			os.Exit(1)
		}

		logger.Init(cfg.GoEnv)

		gormDB, err := db.Connect()
		if err != nil {
			log.Error().Err(err).Msg("failed to connect to database")
			os.Exit(1)
		}

		srv := server.New(cfg, gormDB)

		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.Start(); err != nil {
			log.Error().Err(err).Msg("server stopped")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
