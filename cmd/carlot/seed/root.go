package seed

import (
	"context"
	"time"

	"github.com/sobadon/carlot/cmd/carlot/app"
	"github.com/sobadon/carlot/infrastructures/seedfile"
	"github.com/sobadon/carlot/internal/logutil"
	"github.com/sobadon/carlot/usecase"
	"github.com/spf13/cobra"
)

var (
	log = logutil.NewLogger()
)

func Command() *cobra.Command {
	var dotenv string
	rootCmd := &cobra.Command{
		Use:   "seed [file]",
		Short: "import dropdown options from a YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return run(cmd.Context(), dotenv, path)
		},
	}
	rootCmd.Flags().StringVar(&dotenv, "env-file", ".env", "dotenv file loaded before reading the environment")
	return rootCmd
}

// path が空なら CARLOT_SEED_FILE
func run(ctx context.Context, dotenv string, path string) error {
	config, err := app.LoadConfig(log, dotenv)
	if err != nil {
		return err
	}
	logutil.SetLevel(config.LogLevel)
	if path == "" {
		path = config.SeedFile
	}

	ctx = log.WithContext(ctx)

	settings, err := seedfile.Load(path)
	if err != nil {
		return err
	}

	stores, err := app.OpenStores(ctx, config)
	if err != nil {
		return err
	}
	defer stores.Close()

	ucSettings := usecase.NewSettings(stores.Settings, stores.Cache, config.SettingsTTL)
	n, err := ucSettings.Import(ctx, settings)
	if err != nil {
		log.Error().Msgf("imported %d settings before failure", n)
		return err
	}
	// 共有キャッシュを使っていれば他のプロセスもすぐ新しい値を見る
	return ucSettings.Refresh(ctx, time.Now())
}
