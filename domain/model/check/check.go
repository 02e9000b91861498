// モデルの Validate() から使う入力チェック
// 失敗はすべて errutil.ErrValidation を wrap して返す
package check

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sobadon/carlot/domain/model/rocdate"
	"github.com/sobadon/carlot/internal/errutil"
)

var yearMonthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

func Required(field string, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.Wrapf(errutil.ErrValidation, "%s is required", field)
	}
	return nil
}

func NonNegative(field string, value int64) error {
	if value < 0 {
		return errors.Wrapf(errutil.ErrValidation, "%s must not be negative: %d", field, value)
	}
	return nil
}

// 空は許す
func ISODate(field string, value string) error {
	if value == "" {
		return nil
	}
	if !rocdate.ValidISO(value) {
		return errors.Wrapf(errutil.ErrValidation, "%s is not a valid date: %q", field, value)
	}
	return nil
}

// "YYYY-MM"
// 空は許す
func YearMonth(field string, value string) error {
	if value == "" {
		return nil
	}
	if !yearMonthPattern.MatchString(value) {
		return errors.Wrapf(errutil.ErrValidation, "%s is not YYYY-MM: %q", field, value)
	}
	month, _ := strconv.Atoi(value[5:7])
	if month < 1 || month > 12 || !rocdate.ValidISO(value+"-01") {
		return errors.Wrapf(errutil.ErrValidation, "%s is out of range: %q", field, value)
	}
	return nil
}

func OneOf[T comparable](field string, value T, allowed ...T) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errors.Wrapf(errutil.ErrValidation, "%s has unknown value: %v", field, value)
}

// 最初に見つかったエラーを返す
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
