package logutil

import (
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func NewLogger() zerolog.Logger {
	zerolog.CallerMarshalFunc = func(file string, line int) string {
		filename := filepath.Base(file)
		return filename + ":" + strconv.Itoa(line)
	}

	logger := log.With().Caller().Logger()

	return logger
}

// "debug", "info" など
// パースできなければ info にしておく
func SetLevel(level string) zerolog.Level {
	lv, err := zerolog.ParseLevel(level)
	if err != nil || lv == zerolog.NoLevel {
		lv = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lv)
	return lv
}
