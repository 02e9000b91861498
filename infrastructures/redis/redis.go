// go-redis を使った選択肢キャッシュ
// 複数プロセスで動かすときに使う
package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sobadon/carlot/domain/model/setting"
	"github.com/sobadon/carlot/domain/repository"
	"github.com/sobadon/carlot/internal/errutil"
)

const keyPrefix = "carlot:"

// url は "redis://host:6379/0"
func NewClient(ctx context.Context, url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrCache, err.Error())
	}

	rdb := goredis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, errors.Wrap(errutil.ErrCache, err.Error())
	}
	return rdb, nil
}

type client struct {
	rdb *goredis.Client
	// 鮮度の判定は CachedAt で呼び出し側がやる
	// Redis 側の期限はゴミ掃除のためだけ
	expiration time.Duration
}

// ttl は選択肢の有効期限
// キーは ttl の 2 倍で Redis から消える
func New(rdb *goredis.Client, ttl time.Duration) repository.SettingCache {
	return &client{
		rdb:        rdb,
		expiration: 2 * ttl,
	}
}

func (c *client) Get(ctx context.Context, key string) (setting.CacheEntry, bool, error) {
	b, err := c.rdb.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return setting.CacheEntry{}, false, nil
	}
	if err != nil {
		return setting.CacheEntry{}, false, errors.Wrap(errutil.ErrCache, err.Error())
	}

	var entry setting.CacheEntry
	if err := json.Unmarshal(b, &entry); err != nil {
		return setting.CacheEntry{}, false, errors.Wrap(errutil.ErrJSONDecode, err.Error())
	}
	return entry, true, nil
}

func (c *client) Put(ctx context.Context, key string, values []setting.Setting, now time.Time) error {
	b, err := json.Marshal(setting.CacheEntry{CachedAt: now, Values: values})
	if err != nil {
		return errors.Wrap(errutil.ErrJSONEncode, err.Error())
	}

	if err := c.rdb.Set(ctx, keyPrefix+key, b, c.expiration).Err(); err != nil {
		return errors.Wrap(errutil.ErrCache, err.Error())
	}
	return nil
}

func (c *client) Invalidate(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errors.Wrap(errutil.ErrCache, err.Error())
	}
	return nil
}
