package sqlite

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sobadon/carlot/domain/model/payment"
	"github.com/sobadon/carlot/domain/repository"
	"github.com/sobadon/carlot/internal/errutil"
)

type paymentSqlite struct {
	ID        string `db:"id"`
	VehicleID string `db:"vehicle_id"`
	Kind      string `db:"kind"`
	Method    string `db:"method"`
	Amount    int64  `db:"amount"`
	PaidOn    string `db:"paid_on"`
	Note      string `db:"note"`
}

func paymentSqliteToModelPayment(p paymentSqlite) payment.Payment {
	return payment.Payment{
		ID:        p.ID,
		VehicleID: p.VehicleID,
		Kind:      payment.Kind(p.Kind),
		Method:    p.Method,
		Amount:    p.Amount,
		PaidOn:    p.PaidOn,
		Note:      p.Note,
	}
}

type paymentClient struct {
	DB *sqlx.DB
}

func NewPayment(db *sqlx.DB) repository.PaymentPersistence {
	return &paymentClient{
		DB: db,
	}
}

func (c *paymentClient) Save(ctx context.Context, p payment.Payment) error {
	_, err := c.DB.NamedExecContext(ctx,
		`insert into payments (id, vehicle_id, kind, method, amount, paid_on, note)
		values
		(:id, :vehicle_id, :kind, :method, :amount, :paid_on, :note)
		on conflict (id) do update set
			kind = excluded.kind,
			method = excluded.method,
			amount = excluded.amount,
			paid_on = excluded.paid_on,
			note = excluded.note`,
		paymentSqlite{
			ID:        p.ID,
			VehicleID: p.VehicleID,
			Kind:      p.Kind.String(),
			Method:    p.Method,
			Amount:    p.Amount,
			PaidOn:    p.PaidOn,
			Note:      p.Note,
		})
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return nil
}

func (c *paymentClient) ListByVehicle(ctx context.Context, vehicleID string) ([]payment.Payment, error) {
	var paymentsSqlite []paymentSqlite
	err := c.DB.SelectContext(ctx, &paymentsSqlite, `select id, vehicle_id, kind, method, amount, paid_on, note from payments where vehicle_id = ? order by paid_on, created_at`, vehicleID)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	var payments []payment.Payment
	for _, p := range paymentsSqlite {
		payments = append(payments, paymentSqliteToModelPayment(p))
	}
	return payments, nil
}

// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (c *paymentClient) Load(ctx context.Context, id string) (*payment.Payment, error) {
	var p paymentSqlite
	err := c.DB.GetContext(ctx, &p, `select id, vehicle_id, kind, method, amount, paid_on, note from payments where id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(errutil.ErrDatabaseNotFound, "not found payment (id = %s)", id)
	}
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	pay := paymentSqliteToModelPayment(p)
	return &pay, nil
}

// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (c *paymentClient) Delete(ctx context.Context, id string) error {
	tx, err := c.DB.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `delete from payments where id = ?`, id)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	if err := checkAffected(res, "payment", id); err != nil {
		return err
	}

	// 領収書も一緒に消す
	_, err = tx.ExecContext(ctx, `delete from receipts where payment_id = ?`, id)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return nil
}
