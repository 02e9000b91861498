package app

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/carlot/domain/repository"
	"github.com/sobadon/carlot/infrastructures/backend"
	"github.com/sobadon/carlot/infrastructures/memcache"
	"github.com/sobadon/carlot/infrastructures/redis"
	"github.com/sobadon/carlot/infrastructures/sqlite"
	"github.com/sobadon/carlot/internal/errutil"
	"github.com/sobadon/carlot/internal/fileutil"
)

// 設定に応じて選んだ永続化先とキャッシュ
type Stores struct {
	Vehicles repository.VehiclePersistence
	Owners   repository.OwnerPersistence
	Payments repository.PaymentPersistence
	Fees     repository.FeePersistence
	Receipts repository.ReceiptPersistence
	Settings repository.SettingPersistence
	Cache    repository.SettingCache

	pings   []func(ctx context.Context) error
	closers []func() error
}

// 返されるエラー
// - errutil.ErrDatabaseOpen
// - errutil.ErrDatabaseQuery
// - errutil.ErrCache
func OpenStores(ctx context.Context, config Config) (*Stores, error) {
	s := &Stores{}

	switch config.Store {
	case StoreBackend:
		c := backend.NewClient(config.BackendURL, config.BackendKey)
		s.Vehicles = backend.NewVehicle(c)
		s.Owners = backend.NewOwner(c)
		s.Payments = backend.NewPayment(c)
		s.Fees = backend.NewFee(c)
		s.Receipts = backend.NewReceipt(c)
		s.Settings = backend.NewSetting(c)
		s.pings = append(s.pings, c.Ping)
	default:
		if err := fileutil.MkdirAllIfNotExist(filepath.Dir(config.SqlitePath)); err != nil {
			return nil, errors.Wrap(errutil.ErrDatabaseOpen, err.Error())
		}
		db, err := sqlite.NewDB(config.SqliteDriver, config.SqlitePath)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db.Close)
		if err := sqlite.Setup(db); err != nil {
			s.Close()
			return nil, err
		}
		log.Ctx(ctx).Info().Msgf("sqlite setup done (driver = %s, path = %s)", config.SqliteDriver, config.SqlitePath)

		s.Vehicles = sqlite.NewVehicle(db)
		s.Owners = sqlite.NewOwner(db)
		s.Payments = sqlite.NewPayment(db)
		s.Fees = sqlite.NewFee(db)
		s.Receipts = sqlite.NewReceipt(db)
		s.Settings = sqlite.NewSetting(db)
		s.pings = append(s.pings, db.PingContext)
	}

	switch config.Cache {
	case CacheRedis:
		rdb, err := redis.NewClient(ctx, config.RedisURL)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.closers = append(s.closers, rdb.Close)
		s.pings = append(s.pings, func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
		s.Cache = redis.New(rdb, config.SettingsTTL)
	default:
		s.Cache = memcache.New()
	}

	return s, nil
}

func (s *Stores) Ping(ctx context.Context) error {
	for _, ping := range s.pings {
		if err := ping(ctx); err != nil {
			return err
		}
	}
	return nil
}

// 開いた順と逆に閉じる
func (s *Stores) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}
