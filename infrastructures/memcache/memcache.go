// プロセス内に選択肢を持つキャッシュ
// 1 プロセスで動かすときはこれで十分
package memcache

import (
	"context"
	"sync"
	"time"

	"github.com/sobadon/carlot/domain/model/setting"
	"github.com/sobadon/carlot/domain/repository"
)

type client struct {
	mu      sync.RWMutex
	entries map[string]setting.CacheEntry
}

func New() repository.SettingCache {
	return &client{
		entries: make(map[string]setting.CacheEntry),
	}
}

func (c *client) Get(_ context.Context, key string) (setting.CacheEntry, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[key]
	if !ok {
		return setting.CacheEntry{}, false, nil
	}
	// 返したスライスを書き換えられてもキャッシュは変わらない
	values := make([]setting.Setting, len(entry.Values))
	copy(values, entry.Values)
	return setting.CacheEntry{CachedAt: entry.CachedAt, Values: values}, true, nil
}

func (c *client) Put(_ context.Context, key string, values []setting.Setting, now time.Time) error {
	// 呼び出し側のスライスを後から書き換えられても影響しないようにコピー
	copied := make([]setting.Setting, len(values))
	copy(copied, values)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = setting.CacheEntry{CachedAt: now, Values: copied}
	return nil
}

func (c *client) Invalidate(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}
