package date

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sobadon/carlot/domain/model/rocdate"
	"github.com/sobadon/carlot/internal/errutil"
	"github.com/sobadon/carlot/internal/timeutil"
)

const layoutISO = "2006-01-02"

// 年月日（台湾時間）
type Date time.Time

func New(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, timeutil.LocationTaipei()))
}

func NewFromToday(today time.Time) Date {
	today = today.In(timeutil.LocationTaipei())
	return New(today.Year(), today.Month(), today.Day())
}

// "YYYY-MM-DD" -> Date
func ParseISO(iso string) (Date, error) {
	t, err := time.ParseInLocation(layoutISO, iso, timeutil.LocationTaipei())
	if err != nil {
		return Date{}, errors.Wrap(errutil.ErrValidation, err.Error())
	}
	return Date(t), nil
}

func (d Date) ISO() string {
	return time.Time(d).Format(layoutISO)
}

// 民國表記 "YYY/MM/DD"
func (d Date) ROC() string {
	return rocdate.ISOToDisplay(d.ISO())
}
