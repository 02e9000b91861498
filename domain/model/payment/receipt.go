package payment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sobadon/carlot/domain/model/rocdate"
)

type Receipt struct {
	// UUID
	ID        string `json:"id"`
	PaymentID string `json:"paymentId"`

	// "R1130501-001"
	Number string `json:"number"`

	// ISO "YYYY-MM-DD"
	IssuedOn string `json:"issuedOn"`
}

// R + 民國 YYYMMDD + その日の通し番号
// seq は 1 始まり
func ReceiptNumber(issuedOn string, seq int) string {
	return fmt.Sprintf("R%s-%03d", rocdate.CompactROC(issuedOn), seq)
}

// 番号末尾の通し番号
// 形式が違えば 0
func ReceiptSeq(number string) int {
	i := strings.LastIndex(number, "-")
	if i < 0 {
		return 0
	}
	seq, err := strconv.Atoi(number[i+1:])
	if err != nil || seq < 0 {
		return 0
	}
	return seq
}

// その日に発行済みの番号のうち最大の通し番号
// 途中の領収書が消えていても番号は重ならない
func LastSeq(numbers []string) int {
	last := 0
	for _, n := range numbers {
		if seq := ReceiptSeq(n); seq > last {
			last = seq
		}
	}
	return last
}

// 印刷に必要なものをひとまとめにしたもの
type ReceiptDocument struct {
	Receipt     Receipt
	Payment     Payment
	PlateNumber string
	Brand       string
	Model       string
	OwnerName   string
	Dealer      string
}
