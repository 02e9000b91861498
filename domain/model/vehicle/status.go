package vehicle

type Status string

const (
	StatusInStock  = Status("in_stock")
	StatusReserved = Status("reserved")
	StatusSold     = Status("sold")
)

func (s Status) String() string {
	return string(s)
}

// 一覧・検索で出す表示名
func (s Status) Label() string {
	switch s {
	case StatusInStock:
		return "在庫"
	case StatusReserved:
		return "已訂"
	case StatusSold:
		return "已售"
	}
	return string(s)
}
