package sqlite

import (
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/sobadon/carlot/internal/errutil"
	_ "modernc.org/sqlite"
)

const (
	// github.com/mattn/go-sqlite3（cgo）
	DriverCgo = "sqlite3"
	// modernc.org/sqlite（pure Go）
	DriverPure = "sqlite"
)

func NewDB(driver string, dbPath string) (*sqlx.DB, error) {
	if driver != DriverCgo && driver != DriverPure {
		return nil, errors.Wrapf(errutil.ErrDatabaseOpen, "unknown sqlite driver: %s", driver)
	}
	db, err := sqlx.Open(driver, dbPath)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseOpen, err.Error())
	}
	// 書き込みの競合（database is locked）を避ける
	db.SetMaxOpenConns(1)
	return db, nil
}

var tables = []string{"vehicles", "owners", "payments", "fees", "receipts", "settings"}

// テーブル作成
// 日付はすべて ISO 文字列（TEXT）で持つ
func Setup(db *sqlx.DB) error {
	_, err := db.Exec(`
	create table if not exists vehicles (
		id text primary key,
		plate_number text not null,
		brand text not null,
		model text not null default '',
		color text not null default '',
		manufacture_ym text,
		license_ym text,
		mileage integer not null default 0,
		purchase_price integer not null default 0,
		asking_price integer not null default 0,
		sale_price integer not null default 0,
		purchased_on text,
		sold_on text,
		status text not null,
		owner_id text,
		note text not null default '',
		created_at timestamp not null default (datetime('now', 'localtime')),
		updated_at timestamp not null default (datetime('now', 'localtime'))
	);
	create table if not exists owners (
		id text primary key,
		name text not null,
		id_number text not null default '',
		phone text not null default '',
		address text not null default '',
		address_prefix text not null default '',
		birthday text,
		note text not null default '',
		created_at timestamp not null default (datetime('now', 'localtime')),
		updated_at timestamp not null default (datetime('now', 'localtime'))
	);
	create table if not exists payments (
		id text primary key,
		vehicle_id text not null,
		kind text not null,
		method text not null default '',
		amount integer not null,
		paid_on text not null,
		note text not null default '',
		created_at timestamp not null default (datetime('now', 'localtime')),
		updated_at timestamp not null default (datetime('now', 'localtime'))
	);
	create index if not exists payments_vehicle_id on payments (vehicle_id);
	create table if not exists fees (
		id text primary key,
		vehicle_id text not null,
		fee_type text not null,
		amount integer not null,
		incurred_on text,
		note text not null default '',
		created_at timestamp not null default (datetime('now', 'localtime')),
		updated_at timestamp not null default (datetime('now', 'localtime'))
	);
	create index if not exists fees_vehicle_id on fees (vehicle_id);
	create table if not exists receipts (
		id text primary key,
		payment_id text not null unique,
		number text not null unique,
		issued_on text not null,
		created_at timestamp not null default (datetime('now', 'localtime')),
		updated_at timestamp not null default (datetime('now', 'localtime'))
	);
	create table if not exists settings (
		id text primary key,
		category text not null,
		value text not null,
		sort_order integer not null default 0,
		created_at timestamp not null default (datetime('now', 'localtime')),
		updated_at timestamp not null default (datetime('now', 'localtime')),
		unique (category, value)
	);`)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	for _, table := range tables {
		_, err = db.Exec(`CREATE TRIGGER if not exists trigger_` + table + `_updated_at AFTER UPDATE ON ` + table + `
		BEGIN
			UPDATE ` + table + ` SET updated_at = DATETIME('now', 'localtime') WHERE rowid == NEW.rowid;
		END;
		`)
		if err != nil {
			return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
		}
	}

	return nil
}

// 空文字は NULL として保存する
func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// 更新・削除した行がなければ ErrDatabaseNotFound
func checkAffected(res sql.Result, what string, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	if n == 0 {
		return errors.Wrapf(errutil.ErrDatabaseNotFound, "not found %s (id = %s)", what, id)
	}
	return nil
}

// mattn と modernc のどちらも同じ文言を返す
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
