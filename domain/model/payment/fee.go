package payment

import (
	"github.com/sobadon/carlot/domain/model/check"
)

// 整備費・過戶費など車両にかかった費用
type Fee struct {
	// UUID
	ID        string `json:"id"`
	VehicleID string `json:"vehicleId"`

	// settings の fee_type
	FeeType string `json:"feeType"`

	// 新台幣（元）
	Amount int64 `json:"amount"`

	// ISO "YYYY-MM-DD"
	IncurredOn string `json:"incurredOn"`
	Note       string `json:"note"`
}

func (f Fee) Validate() error {
	return check.First(
		check.Required("vehicleId", f.VehicleID),
		check.Required("feeType", f.FeeType),
		check.NonNegative("amount", f.Amount),
		check.ISODate("incurredOn", f.IncurredOn),
	)
}

// 車両ごとの収支
type Balance struct {
	VehicleID string `json:"vehicleId"`
	// 成交価格（未売約なら希望価格）
	Price int64 `json:"price"`
	Paid  int64 `json:"paid"`
	Fees  int64 `json:"fees"`
	// Price - Paid
	Outstanding int64 `json:"outstanding"`
	// Price - 仕入価格 - Fees
	Margin int64 `json:"margin"`
}

func NewBalance(vehicleID string, price int64, purchasePrice int64, payments []Payment, fees []Fee) Balance {
	b := Balance{VehicleID: vehicleID, Price: price}
	for _, p := range payments {
		b.Paid += p.Amount
	}
	for _, f := range fees {
		b.Fees += f.Amount
	}
	b.Outstanding = b.Price - b.Paid
	b.Margin = b.Price - purchasePrice - b.Fees
	return b
}
