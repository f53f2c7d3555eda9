package mutualinfo

import "github.com/sragli/mutual-information/errorx"

// 默认配置: 10 个等宽 bin, 以 2 为底(单位 bit)
const (
	DefaultBins = 10
	DefaultBase = 2.0
)

// Options 各入口共用的配置
// Bins: 连续数据离散化的等宽 bin 数; Base: 熵/互信息的对数底
// 零值字段取默认值, nil *Options 等价于 DefaultOptions()
type Options struct {
	Bins int
	Base float64
}

// DefaultOptions 返回全默认配置
func DefaultOptions() *Options {
	return &Options{Bins: DefaultBins, Base: DefaultBase}
}

// normalize 回填默认值并做边界校验, 返回副本不改动调用方的 Options
// bins < 1 或 base ∈ {<=0, 1} 直接报配置错误, 不让 NaN/Inf 流进计算
func (o *Options) normalize() (Options, error) {
	out := Options{Bins: DefaultBins, Base: DefaultBase}
	if o != nil {
		if o.Bins != 0 {
			out.Bins = o.Bins
		}
		if o.Base != 0 {
			out.Base = o.Base
		}
	}
	if out.Bins < 1 {
		return Options{}, errorx.Newf(errorx.ErrInvalidOption, "bins must be >= 1, got %d", out.Bins)
	}
	if out.Base <= 0 || out.Base == 1 {
		return Options{}, errorx.Newf(errorx.ErrInvalidOption, "base must be positive and != 1, got %v", out.Base)
	}
	return out, nil
}
