package address

import "testing"

func TestPrefix(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want string
	}{
		{name: "直轄市 + 區", addr: "臺北市大安區忠孝東路四段1號", want: "臺北市大安區"},
		{name: "台 は 臺 に揃える", addr: "台中市西屯區市政路1號", want: "臺中市西屯區"},
		{name: "先頭の郵便番号を除く", addr: "106 臺北市大安區忠孝東路四段1號", want: "臺北市大安區"},
		{name: "6 桁郵便番号と全角数字", addr: "１０６００１臺北市大安區", want: "臺北市大安區"},
		{name: "縣 + 市", addr: "新竹縣竹北市光明六路1號", want: "新竹縣竹北市"},
		{name: "縣 + 鄉", addr: "宜蘭縣礁溪鄉中山路1號", want: "宜蘭縣礁溪鄉"},
		{name: "縣 + 鎮", addr: "彰化縣鹿港鎮中山路1號", want: "彰化縣鹿港鎮"},
		{name: "1 文字の區", addr: "新竹市東區光復路1號", want: "新竹市東區"},
		{name: "鄉鎮市區がなければ縣市だけ", addr: "嘉義市", want: "嘉義市"},
		{name: "縣市がなければ空", addr: "忠孝東路四段1號", want: ""},
		{name: "空文字は空", addr: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Prefix(tt.addr); got != tt.want {
				t.Errorf("Prefix() = %v, want %v", got, tt.want)
			}
		})
	}
}
