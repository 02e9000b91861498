package payment

import (
	"github.com/sobadon/carlot/domain/model/check"
)

type Kind string

const (
	// 訂金
	KindDeposit = Kind("deposit")
	// 分期
	KindInstallment = Kind("installment")
	// 尾款
	KindFinal = Kind("final")
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) Label() string {
	switch k {
	case KindDeposit:
		return "訂金"
	case KindInstallment:
		return "分期款"
	case KindFinal:
		return "尾款"
	}
	return string(k)
}

type Payment struct {
	// UUID
	ID        string `json:"id"`
	VehicleID string `json:"vehicleId"`
	Kind      Kind   `json:"kind"`

	// settings の payment_method（現金・匯款 など）
	Method string `json:"method"`

	// 新台幣（元）
	Amount int64 `json:"amount"`

	// ISO "YYYY-MM-DD"
	PaidOn string `json:"paidOn"`
	Note   string `json:"note"`
}

func (p Payment) Validate() error {
	return check.First(
		check.Required("vehicleId", p.VehicleID),
		check.OneOf("kind", p.Kind, KindDeposit, KindInstallment, KindFinal),
		check.NonNegative("amount", p.Amount),
		check.Required("paidOn", p.PaidOn),
		check.ISODate("paidOn", p.PaidOn),
	)
}
