package vehicle

import (
	"github.com/sobadon/carlot/domain/model/check"
)

type Vehicle struct {
	// UUID
	ID string `json:"id"`

	// 車牌 "ABC-1234"
	PlateNumber string `json:"plateNumber"`

	// 廠牌（settings の brand）
	Brand string `json:"brand"`
	Model string `json:"model"`
	// settings の color
	Color string `json:"color"`

	// 出廠年月 "YYYY-MM"
	ManufactureYM string `json:"manufactureYM"`
	// 領牌年月 "YYYY-MM"
	LicenseYM string `json:"licenseYM"`

	// km
	Mileage int64 `json:"mileage"`

	// 金額はすべて新台幣（元）
	PurchasePrice int64 `json:"purchasePrice"`
	AskingPrice   int64 `json:"askingPrice"`
	// 売れるまでは 0
	SalePrice int64 `json:"salePrice"`

	// ISO "YYYY-MM-DD"
	PurchasedOn string `json:"purchasedOn"`
	// 売れるまでは空
	SoldOn string `json:"soldOn"`

	Status Status `json:"status"`

	// 売れた先の車主
	OwnerID string `json:"ownerId"`
	Note    string `json:"note"`
}

func (v Vehicle) Validate() error {
	err := check.First(
		check.Required("plateNumber", v.PlateNumber),
		check.Required("brand", v.Brand),
		check.YearMonth("manufactureYM", v.ManufactureYM),
		check.YearMonth("licenseYM", v.LicenseYM),
		check.NonNegative("mileage", v.Mileage),
		check.NonNegative("purchasePrice", v.PurchasePrice),
		check.NonNegative("askingPrice", v.AskingPrice),
		check.NonNegative("salePrice", v.SalePrice),
		check.ISODate("purchasedOn", v.PurchasedOn),
		check.ISODate("soldOn", v.SoldOn),
		check.OneOf("status", v.Status, StatusInStock, StatusReserved, StatusSold),
	)
	if err != nil {
		return err
	}
	if v.Status == StatusSold {
		return check.First(
			check.Required("soldOn", v.SoldOn),
			check.Required("ownerId", v.OwnerID),
		)
	}
	return nil
}

// 売約
func (v Vehicle) Sell(ownerID string, price int64, soldOn string) Vehicle {
	v.OwnerID = ownerID
	v.SalePrice = price
	v.SoldOn = soldOn
	v.Status = StatusSold
	return v
}

func (v Vehicle) TextFields() []string {
	return []string{v.PlateNumber, v.Brand, v.Model, v.Color, v.Status.Label(), v.Note}
}

func (v Vehicle) NumericFields() []int64 {
	return []int64{v.Mileage, v.PurchasePrice, v.AskingPrice, v.SalePrice}
}

func (v Vehicle) YearMonthFields() []string {
	return []string{v.ManufactureYM, v.LicenseYM}
}
