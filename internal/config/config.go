package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	DatabaseURL string // DSN（指定があればPOSTGRES_*より優先）

	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     string // DBポート（5432）

	JWTSecret string // セッション署名シークレット

	GoEnv        string // dev/prod
	FEURL        string // フロントURL（CORSで使う）
	StaticDir    string // SPAシェルの配信ディレクトリ
	CookieSecure bool   // セッションクッキーのSecure属性
}

// Loadは環境変数から設定を組み立てる
func Load() (Config, error) {
	cfg := Config{
		Port: getenv("PORT", "8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		PostgresUser:     getenv("POSTGRES_USER", "postgres"),
		PostgresPassword: getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:       getenv("POSTGRES_DB", "backoffice"),
		PostgresHost:     getenv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getenv("POSTGRES_PORT", "5432"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		GoEnv:     getenv("GO_ENV", "dev"),
		FEURL:     getenv("FE_URL", "http://localhost:5173"),
		StaticDir: getenv("STATIC_DIR", "public"),
	}

	// COOKIE_SECUREで上書きできる。未指定ならprodのみSecure。
	switch os.Getenv("COOKIE_SECURE") {
	case "true":
		cfg.CookieSecure = true
	case "false":
		cfg.CookieSecure = false
	default:
		cfg.CookieSecure = cfg.GoEnv == "prod"
	}

	//必須チェック
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
