package backend

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sobadon/carlot/domain/model/owner"
	"github.com/sobadon/carlot/domain/repository"
	"github.com/sobadon/carlot/internal/errutil"
)

type ownerRow struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	IDNumber      string  `json:"id_number"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	AddressPrefix string  `json:"address_prefix"`
	Birthday      *string `json:"birthday"`
	Note          string  `json:"note"`
}

func (r ownerRow) toModel() owner.Owner {
	return owner.Owner{
		ID:            r.ID,
		Name:          r.Name,
		IDNumber:      r.IDNumber,
		Phone:         r.Phone,
		Address:       r.Address,
		AddressPrefix: r.AddressPrefix,
		Birthday:      deref(r.Birthday),
		Note:          r.Note,
	}
}

type ownerClient struct {
	c *Client
}

func NewOwner(c *Client) repository.OwnerPersistence {
	return &ownerClient{c: c}
}

func (oc *ownerClient) Save(ctx context.Context, o owner.Owner) error {
	return oc.c.upsert(ctx, "owners", "", ownerRow{
		ID:            o.ID,
		Name:          o.Name,
		IDNumber:      o.IDNumber,
		Phone:         o.Phone,
		Address:       o.Address,
		AddressPrefix: o.AddressPrefix,
		Birthday:      nullable(o.Birthday),
		Note:          o.Note,
	})
}

// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (oc *ownerClient) Load(ctx context.Context, id string) (*owner.Owner, error) {
	var rows []ownerRow
	if err := oc.c.selectRows(ctx, "owners", map[string]string{"id": eq(id)}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(errutil.ErrDatabaseNotFound, "not found owner (id = %s)", id)
	}

	o := rows[0].toModel()
	return &o, nil
}

func (oc *ownerClient) List(ctx context.Context) ([]owner.Owner, error) {
	var rows []ownerRow
	if err := oc.c.selectRows(ctx, "owners", map[string]string{"order": "name.asc,id.asc"}, &rows); err != nil {
		return nil, err
	}

	var owners []owner.Owner
	for _, r := range rows {
		owners = append(owners, r.toModel())
	}
	return owners, nil
}

// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (oc *ownerClient) Delete(ctx context.Context, id string) error {
	n, err := oc.c.delete(ctx, "owners", map[string]string{"id": eq(id)})
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrapf(errutil.ErrDatabaseNotFound, "not found owner (id = %s)", id)
	}
	return nil
}
