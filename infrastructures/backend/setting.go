package backend

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sobadon/carlot/domain/model/setting"
	"github.com/sobadon/carlot/domain/repository"
	"github.com/sobadon/carlot/internal/errutil"
)

type settingRow struct {
	ID        string `json:"id"`
	Category  string `json:"category"`
	Value     string `json:"value"`
	SortOrder int    `json:"sort_order"`
}

type settingClient struct {
	c *Client
}

func NewSetting(c *Client) repository.SettingPersistence {
	return &settingClient{c: c}
}

func (sc *settingClient) ListByCategory(ctx context.Context, category setting.Category) ([]setting.Setting, error) {
	var rows []settingRow
	params := map[string]string{"category": eq(category.String()), "order": "sort_order.asc,value.asc"}
	if err := sc.c.selectRows(ctx, "settings", params, &rows); err != nil {
		return nil, err
	}

	settings := make([]setting.Setting, 0, len(rows))
	for _, r := range rows {
		settings = append(settings, setting.Setting{
			ID:        r.ID,
			Category:  setting.Category(r.Category),
			Value:     r.Value,
			SortOrder: r.SortOrder,
		})
	}
	return settings, nil
}

// 主キーで upsert する
// 同じカテゴリの別の行と値が重なれば errutil.ErrValidation
func (sc *settingClient) Save(ctx context.Context, s setting.Setting) error {
	err := sc.c.upsert(ctx, "settings", "id", settingRow{
		ID:        s.ID,
		Category:  s.Category.String(),
		Value:     s.Value,
		SortOrder: s.SortOrder,
	})
	if errors.Is(err, errutil.ErrBackendConflict) {
		return errors.Wrapf(errutil.ErrValidation, "setting %s/%s already exists: %s", s.Category, s.Value, err.Error())
	}
	return err
}

// 返されるエラー
// - errutil.ErrDatabaseNotFound
func (sc *settingClient) Delete(ctx context.Context, category setting.Category, id string) error {
	n, err := sc.c.delete(ctx, "settings", map[string]string{"category": eq(category.String()), "id": eq(id)})
	if err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrapf(errutil.ErrDatabaseNotFound, "not found setting (id = %s)", id)
	}
	return nil
}
