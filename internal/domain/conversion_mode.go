package domain

// ConversionMode は変換方式（リマックス／再エンコード）を表す
type ConversionMode string

const (
	// ModeRemux はコーデックをコピーしてコンテナのみHLSに詰め替える
	ModeRemux ConversionMode = "remux"
	// ModeReencode はH.264+AACへ再エンコードする
	ModeReencode ConversionMode = "reencode"
)

// NewConversionMode は文字列からConversionModeを生成する。空文字列はremuxとして扱う
func NewConversionMode(s string) (ConversionMode, error) {
	switch ConversionMode(s) {
	case ModeRemux, ModeReencode:
		return ConversionMode(s), nil
	case "":
		return ModeRemux, nil
	default:
		return "", ErrInvalidConversionMode
	}
}

// Reencode は再エンコードが必要かどうかを返す
func (m ConversionMode) Reencode() bool {
	return m == ModeReencode
}

func (m ConversionMode) String() string {
	return string(m)
}
