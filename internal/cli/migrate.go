package cli

import (
	"os"

	"backoffice/internal/config"
	"backoffice/internal/infra/db"
	"backoffice/internal/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
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

		if err := db.Migrate(gormDB); err != nil {
			log.Error().Err(err).Msg("migration failed")
			os.Exit(1)
		}

		log.Info().Msg("migrations applied")
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
