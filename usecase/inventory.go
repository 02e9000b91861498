package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/carlot/domain/model/keyword"
	"github.com/sobadon/carlot/domain/model/owner"
	"github.com/sobadon/carlot/domain/model/vehicle"
	"github.com/sobadon/carlot/domain/repository"
	"github.com/sobadon/carlot/internal/errutil"
)

type ucInventory struct {
	vehiclePersistence repository.VehiclePersistence
	ownerPersistence   repository.OwnerPersistence
	paymentPersistence repository.PaymentPersistence
	feePersistence     repository.FeePersistence

	newID func() string
}

func NewInventory(
	vehiclePersistence repository.VehiclePersistence,
	ownerPersistence repository.OwnerPersistence,
	paymentPersistence repository.PaymentPersistence,
	feePersistence repository.FeePersistence,
) *ucInventory {
	return &ucInventory{
		vehiclePersistence: vehiclePersistence,
		ownerPersistence:   ownerPersistence,
		paymentPersistence: paymentPersistence,
		feePersistence:     feePersistence,
		newID:              uuid.NewString,
	}
}

// ID が空なら新規
// 状態が空なら在庫扱い
func (u *ucInventory) SaveVehicle(ctx context.Context, v vehicle.Vehicle) (vehicle.Vehicle, error) {
	if v.ID == "" {
		v.ID = u.newID()
	}
	if v.Status == "" {
		v.Status = vehicle.StatusInStock
	}
	if err := v.Validate(); err != nil {
		return vehicle.Vehicle{}, err
	}
	if err := u.ensureOwner(ctx, v.OwnerID); err != nil {
		return vehicle.Vehicle{}, err
	}

	if err := u.vehiclePersistence.Save(ctx, v); err != nil {
		return vehicle.Vehicle{}, err
	}
	log.Ctx(ctx).Info().Msgf("saved vehicle (id = %s, plate = %s)", v.ID, v.PlateNumber)
	return v, nil
}

func (u *ucInventory) LoadVehicle(ctx context.Context, id string) (*vehicle.Vehicle, error) {
	return u.vehiclePersistence.Load(ctx, id)
}

// query が空ならすべて
func (u *ucInventory) SearchVehicles(ctx context.Context, query string) ([]vehicle.Vehicle, error) {
	vehicles, err := u.vehiclePersistence.List(ctx)
	if err != nil {
		return nil, err
	}
	return keyword.Filter(query, vehicles), nil
}

// 支払い・費用が残っている車両は消せない
func (u *ucInventory) DeleteVehicle(ctx context.Context, id string) error {
	payments, err := u.paymentPersistence.ListByVehicle(ctx, id)
	if err != nil {
		return err
	}
	if len(payments) > 0 {
		return errors.Wrapf(errutil.ErrValidation, "vehicle has %d payments (id = %s)", len(payments), id)
	}
	fees, err := u.feePersistence.ListByVehicle(ctx, id)
	if err != nil {
		return err
	}
	if len(fees) > 0 {
		return errors.Wrapf(errutil.ErrValidation, "vehicle has %d fees (id = %s)", len(fees), id)
	}

	if err := u.vehiclePersistence.Delete(ctx, id); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Msgf("deleted vehicle (id = %s)", id)
	return nil
}

// 売約
// 既に売れている車両はエラー
func (u *ucInventory) SellVehicle(ctx context.Context, id string, ownerID string, price int64, soldOn string) (vehicle.Vehicle, error) {
	v, err := u.vehiclePersistence.Load(ctx, id)
	if err != nil {
		return vehicle.Vehicle{}, err
	}
	if v.Status == vehicle.StatusSold {
		return vehicle.Vehicle{}, errors.Wrapf(errutil.ErrValidation, "vehicle is already sold (id = %s)", id)
	}

	sold := v.Sell(ownerID, price, soldOn)
	if err := sold.Validate(); err != nil {
		return vehicle.Vehicle{}, err
	}
	if err := u.ensureOwner(ctx, ownerID); err != nil {
		return vehicle.Vehicle{}, err
	}

	if err := u.vehiclePersistence.Save(ctx, sold); err != nil {
		return vehicle.Vehicle{}, err
	}
	log.Ctx(ctx).Info().Msgf("sold vehicle (id = %s, owner = %s, price = %d)", id, ownerID, price)
	return sold, nil
}

// 住所から地域（AddressPrefix）を埋めて保存
func (u *ucInventory) SaveOwner(ctx context.Context, o owner.Owner) (owner.Owner, error) {
	if o.ID == "" {
		o.ID = u.newID()
	}
	o = o.WithAddressPrefix()
	if err := o.Validate(); err != nil {
		return owner.Owner{}, err
	}

	if err := u.ownerPersistence.Save(ctx, o); err != nil {
		return owner.Owner{}, err
	}
	log.Ctx(ctx).Info().Msgf("saved owner (id = %s)", o.ID)
	return o, nil
}

func (u *ucInventory) LoadOwner(ctx context.Context, id string) (*owner.Owner, error) {
	return u.ownerPersistence.Load(ctx, id)
}

func (u *ucInventory) SearchOwners(ctx context.Context, query string) ([]owner.Owner, error) {
	owners, err := u.ownerPersistence.List(ctx)
	if err != nil {
		return nil, err
	}
	return keyword.Filter(query, owners), nil
}

// 車両に紐付いている車主は消せない
func (u *ucInventory) DeleteOwner(ctx context.Context, id string) error {
	vehicles, err := u.vehiclePersistence.List(ctx)
	if err != nil {
		return err
	}
	for _, v := range vehicles {
		if v.OwnerID == id {
			return errors.Wrapf(errutil.ErrValidation, "owner is referenced by vehicle %s (id = %s)", v.PlateNumber, id)
		}
	}

	if err := u.ownerPersistence.Delete(ctx, id); err != nil {
		return err
	}
	log.Ctx(ctx).Info().Msgf("deleted owner (id = %s)", id)
	return nil
}

// 存在しない車主を指していたら ErrValidation
func (u *ucInventory) ensureOwner(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return nil
	}
	_, err := u.ownerPersistence.Load(ctx, ownerID)
	if errors.Is(err, errutil.ErrDatabaseNotFound) {
		return errors.Wrapf(errutil.ErrValidation, "owner not found (id = %s)", ownerID)
	}
	return err
}
