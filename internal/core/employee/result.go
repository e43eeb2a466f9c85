package employee

// Result は全操作が返す (成否, メッセージ, ペイロード) の組です。
// OK が唯一の成否判定であり、失敗時の Payload はゼロ値です。
type Result[T any] struct {
	OK      bool
	Message string
	Payload T
}

// Succeed は成功結果を生成します。
func Succeed[T any](message string, payload T) Result[T] {
	return Result[T]{OK: true, Message: message, Payload: payload}
}

// Fail は失敗結果を生成します。
func Fail[T any](message string) Result[T] {
	var zero T
	return Result[T]{Message: message, Payload: zero}
}
