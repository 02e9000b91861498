package setting

import (
	"time"

	"github.com/sobadon/carlot/domain/model/check"
)

// 選択肢の種類
type Category string

const (
	CategoryBrand         = Category("brand")
	CategoryColor         = Category("color")
	CategoryFeeType       = Category("fee_type")
	CategoryPaymentMethod = Category("payment_method")
)

func (c Category) String() string {
	return string(c)
}

func Categories() []Category {
	return []Category{CategoryBrand, CategoryColor, CategoryFeeType, CategoryPaymentMethod}
}

func (c Category) Validate() error {
	return check.OneOf("category", c, Categories()...)
}

// キャッシュのキー
func (c Category) CacheKey() string {
	return "settings:" + string(c)
}

// 廠牌・顏色などの選択肢 1 件
type Setting struct {
	// UUID
	ID        string   `json:"id" yaml:"id"`
	Category  Category `json:"category" yaml:"category"`
	Value     string   `json:"value" yaml:"value"`
	SortOrder int      `json:"sortOrder" yaml:"sortOrder"`
}

func (s Setting) Validate() error {
	return check.First(
		s.Category.Validate(),
		check.Required("value", s.Value),
	)
}

// キャッシュに入っている 1 カテゴリ分
type CacheEntry struct {
	CachedAt time.Time `json:"cachedAt"`
	Values   []Setting `json:"values"`
}

// ttl を過ぎていれば false
func (e CacheEntry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.CachedAt) < ttl
}
