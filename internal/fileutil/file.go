package fileutil

import (
	"os"
	"strings"
)

var filenameReplacer = strings.NewReplacer(
	"\n", "",
	"\r", "",
	" ", "_",
	"　", "_",
	`\`, "_",
	"/", "_",
	":", "_",
	"*", "_",
	"?", "_",
	`"`, "_",
	"<", "_",
	">", "_",
	"|", "_",
)

// ファイル名（Content-Disposition 含む）に使えない・面倒なようなものを置換する
// 車牌番号の "ABC-1234" などはそのまま残る
func SanitizeFilename(name string) string {
	return filenameReplacer.Replace(strings.TrimSpace(name))
}

func MkdirAllIfNotExist(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0700)
	}
	return nil
}
