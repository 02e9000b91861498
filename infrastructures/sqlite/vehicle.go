package sqlite

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sobadon/carlot/domain/model/vehicle"
	"github.com/sobadon/carlot/domain/repository"
	"github.com/sobadon/carlot/internal/errutil"
)

type vehicleSqlite struct {
	ID            string         `db:"id"`
	PlateNumber   string         `db:"plate_number"`
	Brand         string         `db:"brand"`
	Model         string         `db:"model"`
	Color         string         `db:"color"`
	ManufactureYM sql.NullString `db:"manufacture_ym"`
	LicenseYM     sql.NullString `db:"license_ym"`
	Mileage       int64          `db:"mileage"`
	PurchasePrice int64          `db:"purchase_price"`
	AskingPrice   int64          `db:"asking_price"`
	SalePrice     int64          `db:"sale_price"`
	PurchasedOn   sql.NullString `db:"purchased_on"`
	SoldOn        sql.NullString `db:"sold_on"`
	Status        string         `db:"status"`
	OwnerID       sql.NullString `db:"owner_id"`
	Note          string         `db:"note"`
}

const vehicleColumns = `id, plate_number, brand, model, color, manufacture_ym, license_ym, mileage, purchase_price, asking_price, sale_price, purchased_on, sold_on, status, owner_id, note`

func vehicleSqliteToModelVehicle(v vehicleSqlite) vehicle.Vehicle {
	return vehicle.Vehicle{
		ID:            v.ID,
		PlateNumber:   v.PlateNumber,
		Brand:         v.Brand,
		Model:         v.Model,
		Color:         v.Color,
		ManufactureYM: v.ManufactureYM.String, // NULL なら空文字
		LicenseYM:     v.LicenseYM.String,
		Mileage:       v.Mileage,
		PurchasePrice: v.PurchasePrice,
		AskingPrice:   v.AskingPrice,
		SalePrice:     v.SalePrice,
		PurchasedOn:   v.PurchasedOn.String,
		SoldOn:        v.SoldOn.String,
		Status:        vehicle.Status(v.Status),
		OwnerID:       v.OwnerID.String,
		Note:          v.Note,
	}
}

func modelVehicleToVehicleSqlite(v vehicle.Vehicle) vehicleSqlite {
	return vehicleSqlite{
		ID:            v.ID,
		PlateNumber:   v.PlateNumber,
		Brand:         v.Brand,
		Model:         v.Model,
		Color:         v.Color,
		ManufactureYM: toNullString(v.ManufactureYM),
		LicenseYM:     toNullString(v.LicenseYM),
		Mileage:       v.Mileage,
		PurchasePrice: v.PurchasePrice,
		AskingPrice:   v.AskingPrice,
		SalePrice:     v.SalePrice,
		PurchasedOn:   toNullString(v.PurchasedOn),
		SoldOn:        toNullString(v.SoldOn),
		Status:        v.Status.String(),
		OwnerID:       toNullString(v.OwnerID),
		Note:          v.Note,
	}
}

type vehicleClient struct {
	DB *sqlx.DB
}

func NewVehicle(db *sqlx.DB) repository.VehiclePersistence {
	return &vehicleClient{
		DB: db,
	}
}

func (c *vehicleClient) Save(ctx context.Context, v vehicle.Vehicle) error {
	_, err := c.DB.NamedExecContext(ctx,
		`insert into vehicles (`+vehicleColumns+`)
		values
		(:id, :plate_number, :brand, :model, :color, :manufacture_ym, :license_ym, :mileage, :purchase_price, :asking_price, :sale_price, :purchased_on, :sold_on, :status, :owner_id, :note)
		on conflict (id) do update set
			plate_number = excluded.plate_number,
			brand = excluded.brand,
			model = excluded.model,
			color = excluded.color,
			manufacture_ym = excluded.manufacture_ym,
			license_ym = excluded.license_ym,
			mileage = excluded.mileage,
			purchase_price = excluded.purchase_price,
			asking_price = excluded.asking_price,
			sale_price = excluded.sale_price,
			purchased_on = excluded.purchased_on,
			sold_on = excluded.sold_on,
			status = excluded.status,
			owner_id = excluded.owner_id,
			note = excluded.note`,
		modelVehicleToVehicleSqlite(v))
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return nil
}

// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (c *vehicleClient) Load(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	var vehiclesSqlite []vehicleSqlite
	err := c.DB.SelectContext(ctx, &vehiclesSqlite, `select `+vehicleColumns+` from vehicles where id = ?`, id)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	if len(vehiclesSqlite) == 0 {
		return nil, errors.Wrapf(errutil.ErrDatabaseNotFound, "not found vehicle (id = %s)", id)
	}

	v := vehicleSqliteToModelVehicle(vehiclesSqlite[0])
	return &v, nil
}

func (c *vehicleClient) List(ctx context.Context) ([]vehicle.Vehicle, error) {
	var vehiclesSqlite []vehicleSqlite
	err := c.DB.SelectContext(ctx, &vehiclesSqlite, `select `+vehicleColumns+` from vehicles order by purchased_on desc, plate_number`)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	var vehicles []vehicle.Vehicle
	for _, v := range vehiclesSqlite {
		vehicles = append(vehicles, vehicleSqliteToModelVehicle(v))
	}
	return vehicles, nil
}

// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (c *vehicleClient) Delete(ctx context.Context, id string) error {
	res, err := c.DB.ExecContext(ctx, `delete from vehicles where id = ?`, id)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return checkAffected(res, "vehicle", id)
}
