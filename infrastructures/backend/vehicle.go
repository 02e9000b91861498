package backend

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sobadon/carlot/domain/model/vehicle"
	"github.com/sobadon/carlot/domain/repository"
	"github.com/sobadon/carlot/internal/errutil"
)

type vehicleRow struct {
	ID            string  `json:"id"`
	PlateNumber   string  `json:"plate_number"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Color         string  `json:"color"`
	ManufactureYM *string `json:"manufacture_ym"`
	LicenseYM     *string `json:"license_ym"`
	Mileage       int64   `json:"mileage"`
	PurchasePrice int64   `json:"purchase_price"`
	AskingPrice   int64   `json:"asking_price"`
	SalePrice     int64   `json:"sale_price"`
	PurchasedOn   *string `json:"purchased_on"`
	SoldOn        *string `json:"sold_on"`
	Status        string  `json:"status"`
	OwnerID       *string `json:"owner_id"`
	Note          string  `json:"note"`
}

func (r vehicleRow) toModel() vehicle.Vehicle {
	return vehicle.Vehicle{
		ID:            r.ID,
		PlateNumber:   r.PlateNumber,
		Brand:         r.Brand,
		Model:         r.Model,
		Color:         r.Color,
		ManufactureYM: deref(r.ManufactureYM),
		LicenseYM:     deref(r.LicenseYM),
		Mileage:       r.Mileage,
		PurchasePrice: r.PurchasePrice,
		AskingPrice:   r.AskingPrice,
		SalePrice:     r.SalePrice,
		PurchasedOn:   deref(r.PurchasedOn),
		SoldOn:        deref(r.SoldOn),
		Status:        vehicle.Status(r.Status),
		OwnerID:       deref(r.OwnerID),
		Note:          r.Note,
	}
}

func newVehicleRow(v vehicle.Vehicle) vehicleRow {
	return vehicleRow{
		ID:            v.ID,
		PlateNumber:   v.PlateNumber,
		Brand:         v.Brand,
		Model:         v.Model,
		Color:         v.Color,
		ManufactureYM: nullable(v.ManufactureYM),
		LicenseYM:     nullable(v.LicenseYM),
		Mileage:       v.Mileage,
		PurchasePrice: v.PurchasePrice,
		AskingPrice:   v.AskingPrice,
		SalePrice:     v.SalePrice,
		PurchasedOn:   nullable(v.PurchasedOn),
		SoldOn:        nullable(v.SoldOn),
		Status:        v.Status.String(),
		OwnerID:       nullable(v.OwnerID),
		Note:          v.Note,
	}
}

type vehicleClient struct {
	c *Client
}

func NewVehicle(c *Client) repository.VehiclePersistence {
	return &vehicleClient{c: c}
}

func (vc *vehicleClient) Save(ctx context.Context, v vehicle.Vehicle) error {
	return vc.c.upsert(ctx, "vehicles", "", newVehicleRow(v))
}

// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (vc *vehicleClient) Load(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	var rows []vehicleRow
	if err := vc.c.selectRows(ctx, "vehicles", map[string]string{"id": eq(id)}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(errutil.ErrDatabaseNotFound, "not found vehicle (id = %s)", id)
	}

	v := rows[0].toModel()
	return &v, nil
}

func (vc *vehicleClient) List(ctx context.Context) ([]vehicle.Vehicle, error) {
	var rows []vehicleRow
	if err := vc.c.selectRows(ctx, "vehicles", map[string]string{"order": "purchased_on.desc.nullslast,plate_number.asc"}, &rows); err != nil {
		return nil, err
	}

	var vehicles []vehicle.Vehicle
	for _, r := range rows {
		vehicles = append(vehicles, r.toModel())
	}
	return vehicles, nil
}

// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (vc *vehicleClient) Delete(ctx context.Context, id string) error {
	n, err := vc.c.delete(ctx, "vehicles", map[string]string{"id": eq(id)})
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrapf(errutil.ErrDatabaseNotFound, "not found vehicle (id = %s)", id)
	}
	return nil
}
