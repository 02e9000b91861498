package sqlite

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sobadon/carlot/domain/model/owner"
	"github.com/sobadon/carlot/domain/repository"
	"github.com/sobadon/carlot/internal/errutil"
)

type ownerSqlite struct {
	ID            string         `db:"id"`
	Name          string         `db:"name"`
	IDNumber      string         `db:"id_number"`
	Phone         string         `db:"phone"`
	Address       string         `db:"address"`
	AddressPrefix string         `db:"address_prefix"`
	Birthday      sql.NullString `db:"birthday"`
	Note          string         `db:"note"`
}

const ownerColumns = `id, name, id_number, phone, address, address_prefix, birthday, note`

func ownerSqliteToModelOwner(o ownerSqlite) owner.Owner {
	return owner.Owner{
		ID:            o.ID,
		Name:          o.Name,
		IDNumber:      o.IDNumber,
		Phone:         o.Phone,
		Address:       o.Address,
		AddressPrefix: o.AddressPrefix,
		Birthday:      o.Birthday.String,
		Note:          o.Note,
	}
}

type ownerClient struct {
	DB *sqlx.DB
}

func NewOwner(db *sqlx.DB) repository.OwnerPersistence {
	return &ownerClient{
		DB: db,
	}
}

func (c *ownerClient) Save(ctx context.Context, o owner.Owner) error {
	_, err := c.DB.NamedExecContext(ctx,
		`insert into owners (`+ownerColumns+`)
		values
		(:id, :name, :id_number, :phone, :address, :address_prefix, :birthday, :note)
		on conflict (id) do update set
			name = excluded.name,
			id_number = excluded.id_number,
			phone = excluded.phone,
			address = excluded.address,
			address_prefix = excluded.address_prefix,
			birthday = excluded.birthday,
			note = excluded.note`,
		ownerSqlite{
			ID:            o.ID,
			Name:          o.Name,
			IDNumber:      o.IDNumber,
			Phone:         o.Phone,
			Address:       o.Address,
			AddressPrefix: o.AddressPrefix,
			Birthday:      toNullString(o.Birthday),
			Note:          o.Note,
		})
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return nil
}

// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (c *ownerClient) Load(ctx context.Context, id string) (*owner.Owner, error) {
	var ownersSqlite []ownerSqlite
	err := c.DB.SelectContext(ctx, &ownersSqlite, `select `+ownerColumns+` from owners where id = ?`, id)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	if len(ownersSqlite) == 0 {
		return nil, errors.Wrapf(errutil.ErrDatabaseNotFound, "not found owner (id = %s)", id)
	}

	o := ownerSqliteToModelOwner(ownersSqlite[0])
	return &o, nil
}

func (c *ownerClient) List(ctx context.Context) ([]owner.Owner, error) {
	var ownersSqlite []ownerSqlite
	err := c.DB.SelectContext(ctx, &ownersSqlite, `select `+ownerColumns+` from owners order by name, id`)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	var owners []owner.Owner
	for _, o := range ownersSqlite {
		owners = append(owners, ownerSqliteToModelOwner(o))
	}
	return owners, nil
}

// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (c *ownerClient) Delete(ctx context.Context, id string) error {
	res, err := c.DB.ExecContext(ctx, `delete from owners where id = ?`, id)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return checkAffected(res, "owner", id)
}
