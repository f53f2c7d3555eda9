// Package errorx 集中定义库的错误类别, 调用方用 errors.Is 判定
package errorx

import "github.com/pkg/errors"

// 错误类别与各 API 边界的校验一一对应
var (
	ErrEmptyValue     = errors.New("empty value")
	ErrLengthMismatch = errors.New("length mismatch")
	ErrNonFinite      = errors.New("non-finite value")
	ErrInvalidOption  = errors.New("invalid option")
	ErrBadData        = errors.New("bad data")
)

// New 在错误类别上附加说明
func New(kind error, msg string) error {
	return errors.WithMessage(kind, msg)
}

// Newf 同 New, 带格式化
func Newf(kind error, format string, args ...interface{}) error {
	return errors.WithMessagef(kind, format, args...)
}
