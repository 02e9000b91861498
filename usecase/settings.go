package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/carlot/domain/model/setting"
	"github.com/sobadon/carlot/domain/repository"
)

type ucSettings struct {
	settingPersistence repository.SettingPersistence
	settingCache       repository.SettingCache

	// これより古いキャッシュは無いものとして取り直す
	ttl   time.Duration
	newID func() string
}

func NewSettings(
	settingPersistence repository.SettingPersistence,
	settingCache repository.SettingCache,
	ttl time.Duration,
) *ucSettings {
	return &ucSettings{
		settingPersistence: settingPersistence,
		settingCache:       settingCache,
		ttl:                ttl,
		newID:              uuid.NewString,
	}
}

// キャッシュが新しければそれを、なければ保存先から取ってキャッシュに入れる
// キャッシュの障害は警告だけ出して保存先を見る
func (u *ucSettings) Lookup(ctx context.Context, category setting.Category, now time.Time) ([]setting.Setting, error) {
	if err := category.Validate(); err != nil {
		return nil, err
	}

	key := category.CacheKey()
	entry, ok, err := u.settingCache.Get(ctx, key)
	if err != nil {
		log.Ctx(ctx).Warn().Msgf("failed to get settings from cache (key = %s): %+v", key, err)
	}
	if err == nil && ok && entry.Fresh(now, u.ttl) {
		return entry.Values, nil
	}

	return u.fetch(ctx, category, now)
}

func (u *ucSettings) fetch(ctx context.Context, category setting.Category, now time.Time) ([]setting.Setting, error) {
	values, err := u.settingPersistence.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}

	key := category.CacheKey()
	if err := u.settingCache.Put(ctx, key, values, now); err != nil {
		log.Ctx(ctx).Warn().Msgf("failed to put settings to cache (key = %s): %+v", key, err)
	}
	return values, nil
}

// ID がなく同じ category, value が既にあればその行の並び順を更新する
// 返す ID は常に保存先にある行のもの
// 同じカテゴリの別の行と値が重なれば errutil.ErrValidation
func (u *ucSettings) Save(ctx context.Context, s setting.Setting) (setting.Setting, error) {
	if err := s.Validate(); err != nil {
		return setting.Setting{}, err
	}
	if s.ID == "" {
		id, err := u.existingID(ctx, s.Category, s.Value)
		if err != nil {
			return setting.Setting{}, err
		}
		s.ID = id
	}
	if s.ID == "" {
		s.ID = u.newID()
	}

	if err := u.settingPersistence.Save(ctx, s); err != nil {
		return setting.Setting{}, err
	}
	u.invalidate(ctx, s.Category)
	return s, nil
}

// キャッシュは使わず保存先を見る
func (u *ucSettings) existingID(ctx context.Context, category setting.Category, value string) (string, error) {
	stored, err := u.settingPersistence.ListByCategory(ctx, category)
	if err != nil {
		return "", err
	}
	for _, s := range stored {
		if s.Value == value {
			return s.ID, nil
		}
	}
	return "", nil
}

func (u *ucSettings) Delete(ctx context.Context, category setting.Category, id string) error {
	if err := category.Validate(); err != nil {
		return err
	}

	if err := u.settingPersistence.Delete(ctx, category, id); err != nil {
		return err
	}
	u.invalidate(ctx, category)
	return nil
}

// 全カテゴリを取り直してキャッシュを入れ替える
// 定期実行される
func (u *ucSettings) Refresh(ctx context.Context, now time.Time) error {
	for _, category := range setting.Categories() {
		values, err := u.fetch(ctx, category, now)
		if err != nil {
			return err
		}
		log.Ctx(ctx).Debug().Msgf("refreshed settings (category = %s, count = %d)", category, len(values))
	}
	log.Ctx(ctx).Info().Msg("successfully refresh settings")
	return nil
}

// 初期値の取り込み
// 既にある値は並び順だけ更新される
func (u *ucSettings) Import(ctx context.Context, settings []setting.Setting) (int, error) {
	touched := map[setting.Category]bool{}
	for i, s := range settings {
		if _, err := u.Save(ctx, s); err != nil {
			return i, err
		}
		touched[s.Category] = true
	}

	log.Ctx(ctx).Info().Msgf("imported %d settings (%d categories)", len(settings), len(touched))
	return len(settings), nil
}

// 保存は終わっているので失敗しても警告だけ
func (u *ucSettings) invalidate(ctx context.Context, category setting.Category) {
	key := category.CacheKey()
	if err := u.settingCache.Invalidate(ctx, key); err != nil {
		log.Ctx(ctx).Warn().Msgf("failed to invalidate settings cache (key = %s): %+v", key, err)
	}
}
