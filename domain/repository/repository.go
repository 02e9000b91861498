//go:generate mockgen -source=$GOFILE -destination ../../testdata/mock/domain/$GOPACKAGE/$GOFILE
package repository

import (
	"context"
	"io"
	"time"

	"github.com/sobadon/carlot/domain/model/owner"
	"github.com/sobadon/carlot/domain/model/payment"
	"github.com/sobadon/carlot/domain/model/setting"
	"github.com/sobadon/carlot/domain/model/vehicle"
)

// 返されるエラー（Load, Delete）
// - errutil.ErrDatabaseNotFound
type VehiclePersistence interface {
	// ID が既にあれば更新、なければ追加
	Save(ctx context.Context, v vehicle.Vehicle) error
	Load(ctx context.Context, id string) (*vehicle.Vehicle, error)
	// 仕入日の新しい順
	List(ctx context.Context) ([]vehicle.Vehicle, error)
	Delete(ctx context.Context, id string) error
}

// 返されるエラー（Load, Delete）
// - errutil.ErrDatabaseNotFound
type OwnerPersistence interface {
	Save(ctx context.Context, o owner.Owner) error
	Load(ctx context.Context, id string) (*owner.Owner, error)
	// 名前順
	List(ctx context.Context) ([]owner.Owner, error)
	Delete(ctx context.Context, id string) error
}

type PaymentPersistence interface {
	Save(ctx context.Context, p payment.Payment) error
	// 支払日の古い順
	ListByVehicle(ctx context.Context, vehicleID string) ([]payment.Payment, error)
	// 返されるエラー
	// - errutil.ErrDatabaseNotFound
	Load(ctx context.Context, id string) (*payment.Payment, error)
	// 返されるエラー
	// - errutil.ErrDatabaseNotFound
	Delete(ctx context.Context, id string) error
}

type FeePersistence interface {
	Save(ctx context.Context, f payment.Fee) error
	ListByVehicle(ctx context.Context, vehicleID string) ([]payment.Fee, error)
	// 返されるエラー
	// - errutil.ErrDatabaseNotFound
	Delete(ctx context.Context, id string) error
}

type ReceiptPersistence interface {
	Save(ctx context.Context, r payment.Receipt) error
	// 返されるエラー
	// - errutil.ErrDatabaseNotFound
	LoadByPayment(ctx context.Context, paymentID string) (*payment.Receipt, error)
	// issuedOn（ISO）の日に発行済みの最大の通し番号
	// 1 枚もなければ 0
	LastSeqIssuedOn(ctx context.Context, issuedOn string) (int, error)
}

type SettingPersistence interface {
	// SortOrder, Value 順
	ListByCategory(ctx context.Context, category setting.Category) ([]setting.Setting, error)
	Save(ctx context.Context, s setting.Setting) error
	// 返されるエラー
	// - errutil.ErrDatabaseNotFound
	Delete(ctx context.Context, category setting.Category, id string) error
}

// 選択肢のキャッシュ
// 期限切れの判定は呼び出し側（usecase）で CachedAt を見て行う
type SettingCache interface {
	// 見つからなければ ok = false
	Get(ctx context.Context, key string) (entry setting.CacheEntry, ok bool, err error)
	Put(ctx context.Context, key string, values []setting.Setting, now time.Time) error
	Invalidate(ctx context.Context, key string) error
}

// 領収書を w に書き出す
type ReceiptPrinter interface {
	Print(ctx context.Context, w io.Writer, doc payment.ReceiptDocument) error
}
