package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/sobadon/carlot/domain/model/setting"
	"github.com/sobadon/carlot/domain/repository"
	"github.com/sobadon/carlot/internal/errutil"
)

type settingSqlite struct {
	ID        string `db:"id"`
	Category  string `db:"category"`
	Value     string `db:"value"`
	SortOrder int    `db:"sort_order"`
}

type settingClient struct {
	DB *sqlx.DB
}

func NewSetting(db *sqlx.DB) repository.SettingPersistence {
	return &settingClient{
		DB: db,
	}
}

func (c *settingClient) ListByCategory(ctx context.Context, category setting.Category) ([]setting.Setting, error) {
	var settingsSqlite []settingSqlite
	err := c.DB.SelectContext(ctx, &settingsSqlite, `select id, category, value, sort_order from settings where category = ? order by sort_order, value`, category.String())
	if err != nil {
		return nil, errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}

	settings := make([]setting.Setting, 0, len(settingsSqlite))
	for _, s := range settingsSqlite {
		settings = append(settings, setting.Setting{
			ID:        s.ID,
			Category:  setting.Category(s.Category),
			Value:     s.Value,
			SortOrder: s.SortOrder,
		})
	}
	return settings, nil
}

// 同じ ID があれば値と並び順の変更
// 同じカテゴリの別の行と値が重なれば errutil.ErrValidation
func (c *settingClient) Save(ctx context.Context, s setting.Setting) error {
	_, err := c.DB.NamedExecContext(ctx,
		`insert into settings (id, category, value, sort_order) values (:id, :category, :value, :sort_order)
		on conflict (id) do update set value = excluded.value, sort_order = excluded.sort_order`,
		settingSqlite{
			ID:        s.ID,
			Category:  s.Category.String(),
			Value:     s.Value,
			SortOrder: s.SortOrder,
		})
	if isUniqueViolation(err) {
		return errors.Wrapf(errutil.ErrValidation, "setting %s/%s already exists: %s", s.Category, s.Value, err.Error())
	}
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return nil
}

// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (c *settingClient) Delete(ctx context.Context, category setting.Category, id string) error {
	res, err := c.DB.ExecContext(ctx, `delete from settings where category = ? and id = ?`, category.String(), id)
	if err != nil {
		return errors.Wrap(errutil.ErrDatabaseQuery, err.Error())
	}
	return checkAffected(res, "setting", id)
}
