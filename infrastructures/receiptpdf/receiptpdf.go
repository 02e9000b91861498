// gofpdf で領収書（收據）を A5 横の PDF にする
package receiptpdf

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/sobadon/carlot/domain/model/payment"
	"github.com/sobadon/carlot/domain/model/rocdate"
	"github.com/sobadon/carlot/domain/repository"
	"github.com/sobadon/carlot/internal/errutil"
)

const fontFamily = "receipt"

type printer struct {
	// 中文を出すための TrueType フォント
	// 空なら Helvetica（中文は出ない）
	fontPath string
}

func New(fontPath string) repository.ReceiptPrinter {
	return &printer{fontPath: fontPath}
}

func (p *printer) Print(ctx context.Context, w io.Writer, doc payment.ReceiptDocument) error {
	pdf := gofpdf.New("L", "mm", "A5", "")
	pdf.SetTitle(doc.Receipt.Number, true)

	family := "Helvetica"
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if p.fontPath != "" {
		if _, err := os.Stat(p.fontPath); err != nil {
			return errors.Wrap(errutil.ErrReceiptPrint, err.Error())
		}
		pdf.AddUTF8Font(fontFamily, "", p.fontPath)
		family = fontFamily
		tr = func(s string) string { return s }
	} else {
		log.Ctx(ctx).Warn().Msg("receipt font is not set; CJK text will not be rendered")
	}

	pdf.AddPage()
	pdf.SetFont(family, "", 20)
	pdf.CellFormat(0, 12, tr(p.label("收據", "RECEIPT")), "", 1, "C", false, 0, "")

	pdf.SetFont(family, "", 11)
	kind := doc.Payment.Kind.Label()
	if p.fontPath == "" {
		kind = doc.Payment.Kind.String()
	}
	rows := [][2]string{
		{"No.", doc.Receipt.Number},
		{p.label("日期", "Date"), rocdate.ISOToDisplay(doc.Receipt.IssuedOn)},
		{p.label("車牌", "Plate"), doc.PlateNumber},
		{p.label("車款", "Vehicle"), doc.Brand + " " + doc.Model},
		{p.label("付款人", "Payer"), doc.OwnerName},
		{p.label("款項", "Kind"), kind},
		{p.label("付款方式", "Method"), doc.Payment.Method},
		{p.label("付款日", "Paid on"), rocdate.ISOToDisplay(doc.Payment.PaidOn)},
		{p.label("金額", "Amount"), fmt.Sprintf("NT$ %s", formatAmount(doc.Payment.Amount))},
	}
	if doc.Payment.Note != "" {
		rows = append(rows, [2]string{p.label("備註", "Note"), doc.Payment.Note})
	}
	for _, row := range rows {
		pdf.CellFormat(40, 8, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 8, tr(row[1]), "1", 1, "L", false, 0, "")
	}

	if doc.Dealer != "" {
		pdf.Ln(6)
		pdf.CellFormat(0, 8, tr(doc.Dealer), "", 1, "R", false, 0, "")
	}

	if err := pdf.Output(w); err != nil {
		return errors.Wrap(errutil.ErrReceiptPrint, err.Error())
	}
	return nil
}

// フォントがなければ中文の見出しは出さない
func (p *printer) label(zh string, en string) string {
	if p.fontPath == "" {
		return en
	}
	return zh + " " + en
}

// 3 桁区切り
func formatAmount(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return sign + s
}
