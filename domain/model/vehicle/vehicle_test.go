package vehicle

import (
	"testing"

	"github.com/sobadon/carlot/domain/model/keyword"
	"github.com/sobadon/carlot/internal/errutil"
	"github.com/sobadon/carlot/internal/testutil"
)

func validVehicle() Vehicle {
	return Vehicle{
		ID:            "7d4af7b8-666f-48b0-b756-10ce4e3131a6",
		PlateNumber:   "ABC-1234",
		Brand:         "Toyota",
		Model:         "Corolla Altis",
		Color:         "銀",
		ManufactureYM: "2019-05",
		LicenseYM:     "2019-06",
		Mileage:       62000,
		PurchasePrice: 350000,
		AskingPrice:   398000,
		PurchasedOn:   "2024-03-10",
		Status:        StatusInStock,
	}
}

func TestVehicle_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(v *Vehicle)
		wantErr error
	}{
		{
			name:   "正常",
			modify: func(v *Vehicle) {},
		},
		{
			name:    "車牌がなければエラー",
			modify:  func(v *Vehicle) { v.PlateNumber = "" },
			wantErr: errutil.ErrValidation,
		},
		{
			name:    "出廠年月が不正ならエラー",
			modify:  func(v *Vehicle) { v.ManufactureYM = "2019-13" },
			wantErr: errutil.ErrValidation,
		},
		{
			name:    "購入日が存在しない日付ならエラー",
			modify:  func(v *Vehicle) { v.PurchasedOn = "2023-02-29" },
			wantErr: errutil.ErrValidation,
		},
		{
			name:    "価格が負ならエラー",
			modify:  func(v *Vehicle) { v.AskingPrice = -1 },
			wantErr: errutil.ErrValidation,
		},
		{
			name:    "不明な status はエラー",
			modify:  func(v *Vehicle) { v.Status = Status("scrapped") },
			wantErr: errutil.ErrValidation,
		},
		{
			name:    "sold なのに車主がいなければエラー",
			modify:  func(v *Vehicle) { v.Status = StatusSold; v.SoldOn = "2024-05-01" },
			wantErr: errutil.ErrValidation,
		},
		{
			name: "Sell したものは正常",
			modify: func(v *Vehicle) {
				*v = v.Sell("89350da4-7f3b-4438-b99f-41ae9aa52bf5", 385000, "2024-05-01")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validVehicle()
			tt.modify(&v)
			if err := v.Validate(); !testutil.ErrorsIs(err, tt.wantErr) {
				t.Errorf("Vehicle.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestVehicle_keyword(t *testing.T) {
	v := validVehicle()
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{name: "車牌", query: "abc-12", want: true},
		{name: "在庫の表示名", query: "在庫", want: true},
		{name: "希望価格", query: "398000", want: true},
		{name: "出廠年月（民國）", query: "108/05", want: true},
		{name: "一致しない", query: "Honda", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keyword.Match(tt.query, v); got != tt.want {
				t.Errorf("keyword.Match() = %v, want %v", got, tt.want)
			}
		})
	}
}
