// 民國紀年（ROC 暦）と西暦 ISO 日付の相互変換
//
// 保存する値は常に西暦の "YYYY-MM-DD"、画面に出すのは "YYY/MM/DD"
// 民國年 = 西暦年 - 1911
package rocdate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sobadon/carlot/internal/errutil"
	"golang.org/x/text/width"
)

const (
	// 民國元年
	EraOffset = 1911

	minADYear = 1912
	maxADYear = 9999
)

var isoPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// 入力欄からパースした直後の民國年月日
// 変換が終わればすぐ捨てる
type Parts struct {
	// 3 桁ゼロ埋め "072"
	YYY string
	// 2 桁ゼロ埋め "05"
	MM string
	// 2 桁ゼロ埋め "01"
	DD string
}

// 3 つとも埋まっているか
func (p Parts) Complete() bool {
	return p.YYY != "" && p.MM != "" && p.DD != ""
}

func (p Parts) ISO() (string, error) {
	return ToISO(p.YYY, p.MM, p.DD)
}

var markerReplacer = strings.NewReplacer(
	"民國", "",
	"民国", "",
	"中華民國", "",
	"年", "/",
	"月", "/",
	"日", "",
	"號", "",
	"-", "/",
	".", "/",
	",", "",
	"、", "/",
)

// 利用者が打った民國日付をゆるくパースする
// 受け付ける形: "YYY/MM/DD", "YY/M/D", "YYYMMDD", "YYMMDD", "民國72年5月1日"
// 解釈できなければ空の Parts を返す（エラーにはしない）
func ParseInput(raw string) Parts {
	s := width.Fold.String(raw)
	s = strings.Join(strings.Fields(s), "")
	s = markerReplacer.Replace(s)
	s = strings.Trim(s, "/")
	for strings.Contains(s, "//") {
		s = strings.ReplaceAll(s, "//", "/")
	}

	if isAllDigits(s) {
		switch len(s) {
		case 7:
			return Parts{YYY: s[0:3], MM: s[3:5], DD: s[5:7]}
		case 6:
			return Parts{YYY: padLeft(s[0:2], 3), MM: s[2:4], DD: s[4:6]}
		}
	}

	segments := strings.Split(s, "/")
	if len(segments) < 3 {
		return Parts{}
	}

	yyy := padLeft(segments[0], 3)
	mm := padLeft(strconv.Itoa(leadingInt(segments[1])), 2)
	dd := padLeft(strconv.Itoa(leadingInt(segments[2])), 2)
	return Parts{YYY: yyy, MM: mm, DD: dd}
}

// 民國年月日 -> 西暦 ISO
// 範囲外・非数値であれば errutil.ErrRocDateParse
func ToISO(yyy, mm, dd string) (string, error) {
	year, err := strconv.Atoi(yyy)
	if err != nil {
		return "", errors.Wrapf(errutil.ErrRocDateParse, "year is not integer: %q", yyy)
	}
	month, err := strconv.Atoi(mm)
	if err != nil {
		return "", errors.Wrapf(errutil.ErrRocDateParse, "month is not integer: %q", mm)
	}
	day, err := strconv.Atoi(dd)
	if err != nil {
		return "", errors.Wrapf(errutil.ErrRocDateParse, "day is not integer: %q", dd)
	}

	ad := year + EraOffset
	if ad < minADYear || ad > maxADYear {
		return "", errors.Wrapf(errutil.ErrRocDateParse, "year out of range: %d", ad)
	}
	if month < 1 || month > 12 {
		return "", errors.Wrapf(errutil.ErrRocDateParse, "month out of range: %d", month)
	}
	if day < 1 || day > DaysInMonth(ad, month) {
		return "", errors.Wrapf(errutil.ErrRocDateParse, "day out of range: %d-%02d-%02d", ad, month, day)
	}

	return fmt.Sprintf("%04d-%02d-%02d", ad, month, day), nil
}

// 翌月の 0 日 = 当月末日
func DaysInMonth(year int, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// 西暦 ISO -> "YYY/MM/DD"
// 形式が違う・1912 年より前なら空文字
func ISOToDisplay(iso string) string {
	ad, mm, dd, ok := splitISO(iso)
	if !ok || ad < minADYear {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", padLeft(strconv.Itoa(ad-EraOffset), 3), mm, dd)
}

// 入力欄の下に出す確認用の文言
func ISOToHelper(iso string) string {
	ad, mm, dd, ok := splitISO(iso)
	if !ok {
		return ""
	}
	return fmt.Sprintf("西元 %d 年 %d 月 %d 日", ad, leadingInt(mm), leadingInt(dd))
}

// "YYY/MM/DD" -> Parts
// ISOToDisplay の逆
func SplitDisplay(display string) Parts {
	segments := strings.Split(display, "/")
	if len(segments) != 3 {
		return Parts{}
	}
	return Parts{YYY: segments[0], MM: segments[1], DD: segments[2]}
}

// 保存前のバリデーション用
// 実在する 1912-01-01 から 9999-12-31 の日付であるか
func ValidISO(iso string) bool {
	display := ISOToDisplay(iso)
	if display == "" {
		return false
	}
	got, err := SplitDisplay(display).ISO()
	return err == nil && got == iso
}

// 西暦 "YYYY-MM" -> 民國 "YYY/MM"
// キーワード検索で民國表記でも引っかかるようにするため
func YearMonthToROC(ym string) string {
	display := ISOToDisplay(ym + "-01")
	if display == "" {
		return ""
	}
	return display[:len(display)-3]
}

// 民國の "YYYMMDD"（領収書番号などに使う）
func CompactROC(iso string) string {
	return strings.ReplaceAll(ISOToDisplay(iso), "/", "")
}

func splitISO(iso string) (int, string, string, bool) {
	if !isoPattern.MatchString(iso) {
		return 0, "", "", false
	}
	ad, err := strconv.Atoi(iso[0:4])
	if err != nil {
		return 0, "", "", false
	}
	return ad, iso[5:7], iso[8:10], true
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// 先頭の数字だけ読む
// 数字で始まらなければ 0
func leadingInt(s string) int {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func padLeft(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}
