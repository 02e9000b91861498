package owner

import (
	"github.com/sobadon/carlot/domain/model/address"
	"github.com/sobadon/carlot/domain/model/check"
)

type Owner struct {
	// UUID
	ID   string `json:"id"`
	Name string `json:"name"`

	// 身分證字號・統一編號
	IDNumber string `json:"idNumber"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`

	// Address から導出する "臺北市大安區"
	// 保存時に WithAddressPrefix() で埋める
	AddressPrefix string `json:"addressPrefix"`

	// ISO "YYYY-MM-DD"
	Birthday string `json:"birthday"`
	Note     string `json:"note"`
}

func (o Owner) Validate() error {
	return check.First(
		check.Required("name", o.Name),
		check.ISODate("birthday", o.Birthday),
	)
}

func (o Owner) WithAddressPrefix() Owner {
	o.AddressPrefix = address.Prefix(o.Address)
	return o
}

func (o Owner) TextFields() []string {
	return []string{o.Name, o.IDNumber, o.Phone, o.Address, o.AddressPrefix, o.Note}
}

func (o Owner) NumericFields() []int64 {
	return nil
}

func (o Owner) YearMonthFields() []string {
	if len(o.Birthday) < 7 {
		return nil
	}
	return []string{o.Birthday[:7]}
}
