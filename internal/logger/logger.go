package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Initはグローバルのzerologを設定する。
// dev環境だけ人が読みやすいConsoleWriterにする。
func Init(env string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	if env == "dev" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
		return
	}

	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
