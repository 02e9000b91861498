// 選択肢の初期値を YAML から読む
//
//	brand:
//	  - Toyota
//	  - Honda
//	color:
//	  - 白
package seedfile

import (
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sobadon/carlot/domain/model/setting"
	"github.com/sobadon/carlot/internal/errutil"
	"gopkg.in/yaml.v3"
)

// カテゴリ -> 値の並び
// 並び順がそのまま SortOrder になる
type File map[setting.Category][]string

func Load(path string) ([]setting.Setting, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errutil.ErrSeedFile, err.Error())
	}
	defer f.Close()
	return Decode(f)
}

// ID は空のまま返す（保存時に振る）
func Decode(r io.Reader) ([]setting.Setting, error) {
	var file File
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrap(errutil.ErrSeedFile, err.Error())
	}

	var settings []setting.Setting
	// map の順序に依存しないようにカテゴリの定義順で並べる
	for _, category := range setting.Categories() {
		for i, value := range file[category] {
			settings = append(settings, setting.Setting{
				Category:  category,
				Value:     value,
				SortOrder: i + 1,
			})
		}
		delete(file, category)
	}
	if len(file) > 0 {
		var unknown []string
		for category := range file {
			unknown = append(unknown, category.String())
		}
		sort.Strings(unknown)
		return nil, errors.Wrapf(errutil.ErrSeedFile, "unknown category: %s", strings.Join(unknown, ", "))
	}

	for _, s := range settings {
		if err := s.Validate(); err != nil {
			return nil, errors.Wrap(errutil.ErrSeedFile, err.Error())
		}
	}
	return settings, nil
}
