// Package mutualinfo 基于直方图的互信息估计
//
// 对两条等长序列 x, y:
//  1. 离散化: 整数序列直接按取值分组, 连续序列按等宽 bin 分箱
//  2. 经验分布: p(x,y) = count(x,y)/N, 边缘分布同理
//  3. 信息量:
//     I(X;Y) = Σ p(x,y)·log_b( p(x,y) / (p(x)·p(y)) )
//     NMI(X;Y) = I(X;Y) / min(H(X), H(Y))
//
// 估计量有限样本下可能出现微小负值, 统一截断到 0
package mutualinfo

import (
	"math"

	"github.com/sragli/mutual-information/discretize"
	"github.com/sragli/mutual-information/distribution"
	"github.com/sragli/mutual-information/errorx"
	"github.com/sragli/mutual-information/information"
)

// validatePair 两序列须等长且非空
func validatePair(x, y []float64) error {
	if len(x) != len(y) {
		return errorx.Newf(errorx.ErrLengthMismatch, "len(x)=%d len(y)=%d", len(x), len(y))
	}
	if len(x) == 0 {
		return errorx.New(errorx.ErrEmptyValue, "empty input sequences")
	}
	return nil
}

// codesPair 一对序列各自离散化
func codesPair(x, y []float64, bins int) (cx, cy []int, err error) {
	if cx, err = discretize.Discretize(x, bins); err != nil {
		return nil, nil, err
	}
	if cy, err = discretize.Discretize(y, bins); err != nil {
		return nil, nil, err
	}
	return cx, cy, nil
}

// Compute 互信息 I(X;Y), 单位由 opts.Base 决定(默认 bit)
func Compute(x, y []float64, opts *Options) (float64, error) {
	o, err := opts.normalize()
	if err != nil {
		return 0, err
	}
	if err := validatePair(x, y); err != nil {
		return 0, err
	}
	cx, cy, err := codesPair(x, y, o.Bins)
	if err != nil {
		return 0, err
	}
	joint := distribution.Joint(cx, cy)
	mx := distribution.Marginal(cx)
	my := distribution.Marginal(cy)
	mi := information.MutualInformation(joint, mx, my, o.Base)
	return math.Max(0, mi), nil
}

// Entropy 单序列香农熵 H(X)
func Entropy(x []float64, opts *Options) (float64, error) {
	o, err := opts.normalize()
	if err != nil {
		return 0, err
	}
	if len(x) == 0 {
		return 0, errorx.New(errorx.ErrEmptyValue, "empty input sequence")
	}
	cx, err := discretize.Discretize(x, o.Bins)
	if err != nil {
		return 0, err
	}
	return information.Entropy(distribution.Marginal(cx), o.Base), nil
}

// Normalized 归一化互信息 NMI = I(X;Y)/min(H(X),H(Y)), 取值 [0,1]
// 任一序列为常数(熵为 0)时返回 0
func Normalized(x, y []float64, opts *Options) (float64, error) {
	o, err := opts.normalize()
	if err != nil {
		return 0, err
	}
	if err := validatePair(x, y); err != nil {
		return 0, err
	}
	cx, cy, err := codesPair(x, y, o.Bins)
	if err != nil {
		return 0, err
	}
	mx := distribution.Marginal(cx)
	my := distribution.Marginal(cy)
	hx := information.Entropy(mx, o.Base)
	hy := information.Entropy(my, o.Base)
	minH := math.Min(hx, hy)
	if minH == 0 {
		return 0, nil
	}
	mi := math.Max(0, information.MutualInformation(distribution.Joint(cx, cy), mx, my, o.Base))
	// I(X;Y) <= min(H), 浮点尾差可能越过 1, 截回
	return math.Min(1, mi/minH), nil
}

// JointEntropy 联合熵 H(X,Y)
func JointEntropy(x, y []float64, opts *Options) (float64, error) {
	o, err := opts.normalize()
	if err != nil {
		return 0, err
	}
	if err := validatePair(x, y); err != nil {
		return 0, err
	}
	cx, cy, err := codesPair(x, y, o.Bins)
	if err != nil {
		return 0, err
	}
	return information.JointEntropy(distribution.Joint(cx, cy), o.Base), nil
}

// ConditionalEntropy 条件熵 H(X|Y) = H(X,Y) - H(Y)
func ConditionalEntropy(x, y []float64, opts *Options) (float64, error) {
	o, err := opts.normalize()
	if err != nil {
		return 0, err
	}
	if err := validatePair(x, y); err != nil {
		return 0, err
	}
	cx, cy, err := codesPair(x, y, o.Bins)
	if err != nil {
		return 0, err
	}
	joint := distribution.Joint(cx, cy)
	my := distribution.Marginal(cy)
	return math.Max(0, information.ConditionalEntropy(joint, my, o.Base)), nil
}

// VariationOfInformation 信息变差 VI(X;Y) = H(X,Y) - I(X;Y)
// 是聚类比较里常用的度量, 满足三角不等式
func VariationOfInformation(x, y []float64, opts *Options) (float64, error) {
	o, err := opts.normalize()
	if err != nil {
		return 0, err
	}
	if err := validatePair(x, y); err != nil {
		return 0, err
	}
	cx, cy, err := codesPair(x, y, o.Bins)
	if err != nil {
		return 0, err
	}
	joint := distribution.Joint(cx, cy)
	mx := distribution.Marginal(cx)
	my := distribution.Marginal(cy)
	hxy := information.JointEntropy(joint, o.Base)
	mi := math.Max(0, information.MutualInformation(joint, mx, my, o.Base))
	return math.Max(0, hxy-mi), nil
}
