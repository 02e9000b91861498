package rocdate

type State string

const (
	// 入力途中（フォームには未反映）
	StateTyping = State("typing")
	// 正しい日付としてフォームに反映済み
	StateCommitted = State("committed")
)

func (s State) String() string {
	return string(s)
}

const Placeholder = "民國 YYY/MM/DD（例: 072/05/01 或 0720501）"

// 民國日付の入力欄
// 打ちかけの文字列はここで保持し、正しい日付になったときだけ ISO を更新する
// 不正な入力でもエラーは出さず、直前に確定した ISO をそのまま持ち続ける
type Field struct {
	display string
	iso     string
	state   State

	// 呼び出し側が明示的に設定したときだけ出すエラー文言
	// パース失敗では自動で埋まらない
	errorText string
}

func NewField(iso string) *Field {
	f := &Field{}
	f.SetISO(iso)
	return f
}

// 利用者の打鍵
// 確定したら true
func (f *Field) Input(raw string) bool {
	f.display = raw
	f.state = StateTyping

	parts := ParseInput(raw)
	if !parts.Complete() {
		return false
	}
	iso, err := parts.ISO()
	if err != nil {
		return false
	}

	f.iso = iso
	f.state = StateCommitted
	return true
}

// フォームのリセットなど外部からの変更
// 表示文字列は ISO から作り直す
func (f *Field) SetISO(iso string) {
	f.iso = iso
	f.display = ISOToDisplay(iso)
	f.state = StateCommitted
}

func (f *Field) Display() string {
	return f.display
}

// 最後に確定した ISO
func (f *Field) ISO() string {
	return f.iso
}

func (f *Field) State() State {
	return f.state
}

func (f *Field) Helper() string {
	return ISOToHelper(f.iso)
}

func (f *Field) Placeholder() string {
	return Placeholder
}

func (f *Field) SetErrorText(text string) {
	f.errorText = text
}

func (f *Field) ErrorText() string {
	return f.errorText
}
