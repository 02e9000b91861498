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

type feeSqlite struct {
	ID         string         `db:"id"`
	VehicleID  string         `db:"vehicle_id"`
	FeeType    string         `db:"fee_type"`
	Amount     int64          `db:"amount"`
	IncurredOn sql.NullString `db:"incurred_on"`
	Note       string         `db:"note"`
}

type feeClient struct {
	DB *sqlx.DB
}

func NewFee(db *sqlx.DB) repository.FeePersistence {
	return &feeClient{
		DB: db,
	}
}

func (c *feeClient) Save(ctx context.Context, f payment.Fee) error {
	_, err := c.DB.NamedExecContext(ctx,
		`insert into fees (id, vehicle_id, fee_type, amount, incurred_on, note)
		values
		(:id, :vehicle_id, :fee_type, :amount, :incurred_on, :note)
		on conflict (id) do update set
			fee_type = excluded.fee_type,
			amount = excluded.amount,
			incurred_on = excluded.incurred_on,
			note = excluded.note`,
		feeSqlite{
			ID:         f.ID,
			VehicleID:  f.VehicleID,
			FeeType:    f.FeeType,
			Amount:     f.Amount,
			IncurredOn: toNullString(f.IncurredOn),
			Note:       f.Note,
		})
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return nil
}

func (c *feeClient) ListByVehicle(ctx context.Context, vehicleID string) ([]payment.Fee, error) {
	var feesSqlite []feeSqlite
	err := c.DB.SelectContext(ctx, &feesSqlite, `select id, vehicle_id, fee_type, amount, incurred_on, note from fees where vehicle_id = ? order by incurred_on, created_at`, vehicleID)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	var fees []payment.Fee
	for _, f := range feesSqlite {
		fees = append(fees, payment.Fee{
			ID:         f.ID,
			VehicleID:  f.VehicleID,
			FeeType:    f.FeeType,
			Amount:     f.Amount,
			IncurredOn: f.IncurredOn.String,
			Note:       f.Note,
		})
	}
	return fees, nil
}

// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (c *feeClient) Delete(ctx context.Context, id string) error {
	res, err := c.DB.ExecContext(ctx, `delete from fees where id = ?`, id)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return checkAffected(res, "fee", id)
}
