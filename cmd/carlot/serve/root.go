package serve

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	zlog "github.com/rs/zerolog/log"
	"github.com/sobadon/carlot/cmd/carlot/app"
	"github.com/sobadon/carlot/handler"
	"github.com/sobadon/carlot/infrastructures/receiptpdf"
	"github.com/sobadon/carlot/internal/errutil"
	"github.com/sobadon/carlot/internal/logutil"
	"github.com/sobadon/carlot/internal/timeutil"
	"github.com/sobadon/carlot/usecase"
	"github.com/spf13/cobra"
)

var (
	log = logutil.NewLogger()
)

func Command() *cobra.Command {
	var dotenv string
	rootCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the dealership API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(dotenv)
		},
	}
	rootCmd.Flags().StringVar(&dotenv, "env-file", ".env", "dotenv file loaded before reading the environment")
	return rootCmd
}

func run(dotenv string) error {
	log.Info().Msg("start")

	config, err := app.LoadConfig(log, dotenv)
	if err != nil {
		return err
	}
	logutil.SetLevel(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	stores, err := app.OpenStores(ctx, config)
	if err != nil {
		return err
	}
	defer stores.Close()

	ucInventory := usecase.NewInventory(stores.Vehicles, stores.Owners, stores.Payments, stores.Fees)
	ucPayment := usecase.NewPayment(
		stores.Vehicles,
		stores.Owners,
		stores.Payments,
		stores.Fees,
		stores.Receipts,
		receiptpdf.New(config.ReceiptFont),
		config.DealerName,
	)
	ucSettings := usecase.NewSettings(stores.Settings, stores.Cache, config.SettingsTTL)

	scheduler := gocron.NewScheduler(timeutil.LocationTaipei())
	jobRefresh := func(ctx context.Context, job gocron.Job) {
		ctx = logutil.NewLogger().With().
			Int("job_count", job.RunCount()).
			Str("job", "settings_refresh").
			Logger().WithContext(ctx)
		zlog.Ctx(ctx).Info().Msg("job start")
		err := ucSettings.Refresh(ctx, time.Now().In(timeutil.LocationTaipei()))
		if err != nil {
			zlog.Ctx(ctx).Error().Msgf("%+v", err)
		}
	}
	_, err = scheduler.Every(config.SettingsRefresh).DoWithJobDetails(jobRefresh, ctx)
	if err != nil {
		return errors.Wrap(errutil.ErrScheduler, err.Error())
	}
	scheduler.StartAsync()
	defer scheduler.Stop()

	h := handler.New(ucInventory, ucPayment, ucSettings, log, handler.WithHealthCheck(stores.Ping))
	srv := &http.Server{
		Addr:              config.ListenAddr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("listen %s", config.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- errors.Wrap(errutil.ErrInternal, err.Error())
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Msg("Interrupt")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(errutil.ErrInternal, err.Error())
	}
	return nil
}
