// 一覧画面の検索欄
// 大文字小文字を無視した部分一致だけで、順位付けや単語分割はしない
package keyword

import (
	"strconv"
	"strings"

	"github.com/sobadon/carlot/domain/model/rocdate"
)

type Record interface {
	// 車牌・廠牌・車主名など
	TextFields() []string
	// 価格・走行距離など
	NumericFields() []int64
	// "YYYY-MM"
	YearMonthFields() []string
}

func Match(query string, r Record) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	if strings.Contains(textBlob(r), q) {
		return true
	}
	if strings.Contains(numericBlob(r), q) {
		return true
	}
	return strings.Contains(yearMonthBlob(r), q)
}

// 順序を保ったまま一致するものだけ残す
func Filter[T Record](query string, records []T) []T {
	matched := make([]T, 0, len(records))
	for _, r := range records {
		if Match(query, r) {
			matched = append(matched, r)
		}
	}
	return matched
}

func textBlob(r Record) string {
	return strings.ToLower(strings.Join(r.TextFields(), " "))
}

func numericBlob(r Record) string {
	nums := r.NumericFields()
	strs := make([]string, 0, len(nums))
	for _, n := range nums {
		strs = append(strs, strconv.FormatInt(n, 10))
	}
	return strings.Join(strs, " ")
}

// 西暦 "2019-05" と民國 "108/05" の両方で引けるようにする
func yearMonthBlob(r Record) string {
	var strs []string
	for _, ym := range r.YearMonthFields() {
		if ym == "" {
			continue
		}
		strs = append(strs, ym)
		if roc := rocdate.YearMonthToROC(ym); roc != "" {
			strs = append(strs, roc)
		}
	}
	return strings.ToLower(strings.Join(strs, " "))
}
