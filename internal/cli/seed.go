package cli

import (
	"os"

	"backoffice/internal/auth"
	"backoffice/internal/config"
	"backoffice/internal/domain/model"
	"backoffice/internal/infra/db"
	"backoffice/internal/logger"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the initial super admin, default store and tax class",
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

		if err := seed(gormDB); err != nil {
			log.Error().Err(err).Msg("seed failed")
			os.Exit(1)
		}

		log.Info().Msg("seed completed")
	},
}

// 何度流しても既存行は触らない
func seed(gormDB *gorm.DB) error {
	var count int64

	if err := gormDB.Model(&model.User{}).Where("role = ?", model.RoleSuperAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		hasher := auth.NewBcryptHasher()
		password := os.Getenv("SEED_ADMIN_PASSWORD")
		if password == "" {
			password = "password"
		}
		hash, err := hasher.Hash(password)
		if err != nil {
			return err
		}

		admin := model.User{
			Name:         "Super Admin",
			Email:        getenvDefault("SEED_ADMIN_EMAIL", "admin@example.com"),
			PasswordHash: hash,
			Role:         model.RoleSuperAdmin,
			IsActive:     true,
		}
		if err := gormDB.Create(&admin).Error; err != nil {
			return err
		}
		log.Info().Str("email", admin.Email).Msg("created super admin")
	}

	if err := gormDB.Model(&model.Store{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		store := model.Store{
			Name:      "Main Store",
			Code:      "MAIN",
			IsActive:  true,
			IsDefault: true,
		}
		if err := gormDB.Create(&store).Error; err != nil {
			return err
		}
		log.Info().Str("code", store.Code).Msg("created default store")
	}

	if err := gormDB.Model(&model.TaxClass{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		tax := model.TaxClass{
			Name:      "Standard",
			Rate:      decimal.Zero,
			IsDefault: true,
		}
		if err := gormDB.Create(&tax).Error; err != nil {
			return err
		}
		log.Info().Str("name", tax.Name).Msg("created default tax class")
	}

	return nil
}

func getenvDefault(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
