// 台湾の住所から「縣市 + 鄉鎮市區」の部分を取り出す
package address

import (
	"strings"

	"golang.org/x/text/width"
)

// 鄉鎮市區名は長くても 3 文字（例: 那瑪夏區, 太麻里鄉）
const maxDistrictLen = 4

// 先頭の郵便番号・空白を除き、縣市（+ 鄉鎮市區）を返す
// 縣市が見つからなければ空文字
func Prefix(addr string) string {
	s := width.Fold.String(addr)
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimLeft(s, "0123456789-")
	runes := []rune(s)

	cityEnd := -1
	var cityKind rune
	for i, r := range runes {
		if r == '市' || r == '縣' {
			cityEnd = i
			cityKind = r
			break
		}
	}
	if cityEnd <= 0 {
		return ""
	}

	end := cityEnd + 1
	for i := cityEnd + 1; i < len(runes) && i <= cityEnd+maxDistrictLen; i++ {
		if isDistrictMarker(cityKind, runes[i]) {
			end = i + 1
			break
		}
	}

	return strings.ReplaceAll(string(runes[:end]), "台", "臺")
}

// 直轄市・市の下は區、縣の下は鄉・鎮・市
func isDistrictMarker(cityKind rune, r rune) bool {
	if cityKind == '市' {
		return r == '區'
	}
	return r == '鄉' || r == '鎮' || r == '市'
}
