package app

import (
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/sobadon/carlot/infrastructures/sqlite"
	"github.com/sobadon/carlot/internal/errutil"
)

const envPrefix = "CARLOT_"

const (
	StoreSqlite  = "sqlite"
	StoreBackend = "backend"

	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	Store        string `env:"STORE" envDefault:"sqlite"`
	SqliteDriver string `env:"SQLITE_DRIVER" envDefault:"sqlite3"`
	SqlitePath   string `env:"SQLITE_PATH" envDefault:"carlot.sqlite3"`
	BackendURL   string `env:"BACKEND_URL"`
	BackendKey   string `env:"BACKEND_KEY"`

	Cache           string        `env:"CACHE" envDefault:"memory"`
	RedisURL        string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	SettingsTTL     time.Duration `env:"SETTINGS_TTL" envDefault:"24h"`
	SettingsRefresh time.Duration `env:"SETTINGS_REFRESH" envDefault:"1h"`

	ReceiptFont string `env:"RECEIPT_FONT"`
	DealerName  string `env:"DEALER_NAME" envDefault:"Carlot Motors"`
	SeedFile    string `env:"SEED_FILE" envDefault:"settings.yaml"`
}

// .env があれば先に読み込んでから環境変数を読む
// 返されるエラー
// - errutil.ErrConfig
func LoadConfig(log zerolog.Logger, dotenv string) (Config, error) {
	if dotenv != "" {
		err := godotenv.Load(dotenv)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, errors.Wrap(errutil.ErrConfig, err.Error())
		}
		if err == nil {
			log.Info().Msgf("loaded %s", dotenv)
		}
	}
	return parseConfig(log, nil)
}

// environ が nil ならプロセスの環境変数を使う
func parseConfig(log zerolog.Logger, environ map[string]string) (Config, error) {
	var config Config
	err := env.Parse(&config, env.Options{
		Prefix:      envPrefix,
		Environment: environ,
		OnSet: func(tag string, value interface{}, isDefault bool) {
			if strings.HasSuffix(tag, "_KEY") && value != "" {
				value = "****"
			}
			log.Info().Msgf("Set %s to %v (default? %v)", tag, value, isDefault)
		},
	})
	if err != nil {
		return Config{}, errors.Wrap(errutil.ErrConfig, err.Error())
	}
	if err := config.validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) validate() error {
	switch c.Store {
	case StoreSqlite:
		if c.SqliteDriver != sqlite.DriverCgo && c.SqliteDriver != sqlite.DriverPure {
			return errors.Wrapf(errutil.ErrConfig, "unknown %sSQLITE_DRIVER: %q", envPrefix, c.SqliteDriver)
		}
		if c.SqlitePath == "" {
			return errors.Wrapf(errutil.ErrConfig, "%sSQLITE_PATH is empty", envPrefix)
		}
	case StoreBackend:
		if c.BackendURL == "" || c.BackendKey == "" {
			return errors.Wrapf(errutil.ErrConfig, "%sBACKEND_URL and %sBACKEND_KEY are required", envPrefix, envPrefix)
		}
	default:
		return errors.Wrapf(errutil.ErrConfig, "unknown %sSTORE: %q", envPrefix, c.Store)
	}

	switch c.Cache {
	case CacheMemory, CacheRedis:
	default:
		return errors.Wrapf(errutil.ErrConfig, "unknown %sCACHE: %q", envPrefix, c.Cache)
	}

	if c.SettingsTTL <= 0 {
		return errors.Wrapf(errutil.ErrConfig, "%sSETTINGS_TTL must be positive: %s", envPrefix, c.SettingsTTL)
	}
	if c.SettingsRefresh <= 0 {
		return errors.Wrapf(errutil.ErrConfig, "%sSETTINGS_REFRESH must be positive: %s", envPrefix, c.SettingsRefresh)
	}
	return nil
}
