package timeutil

import "time"

// 台湾時間（UTC+8、サマータイムなし）
func LocationTaipei() *time.Location {
	return time.FixedZone("Asia/Taipei", 8*60*60)
}
