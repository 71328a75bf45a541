package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "backoffice",
	Short: "E-commerce back-office API",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .envは無くても動く（本番は環境変数で渡す）
		_ = godotenv.Load()
	},
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}
