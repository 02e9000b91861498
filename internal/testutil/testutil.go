package testutil

import (
	"os"
	"testing"

	"github.com/pkg/errors"
)

// github.com/pkg/errors の errors.Is に nil も扱えるようにしたもの
// 第一引数に gotErr
// 第二引数に wantErr が期待されている
func ErrorsIs(err error, target error) bool {
	// nil と nil の比較のため
	if err == nil || target == nil {
		return err == target
	}

	return errors.Is(err, target)
}

// テスト用の一時ファイル名
// テスト終了時に削除される
func TempFilename(t testing.TB) string {
	t.Helper()
	f, err := os.CreateTemp("", "carlot-")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })
	return f.Name()
}
