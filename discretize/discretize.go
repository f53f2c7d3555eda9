// Package discretize 把原始观测序列离散化为 bin 编码, 供频率法估计概率
//
// 连续序列按值域等宽分箱:
//
//	width = (max - min) / bins
//	code  = floor((v - min) / width), clamp 到 bins-1
//
// 全整数序列视为已离散的类别数据, 编码即原值, bins 参数被忽略
package discretize

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sragli/mutual-information/errorx"
)

// IsIntegral 判断序列是否全部为整数值(已离散的类别数据)
// 离散/连续的判定只依赖这一个谓词, 避免散落的类型探测
func IsIntegral(seq []float64) bool {
	for _, v := range seq {
		if v != math.Trunc(v) {
			return false
		}
	}
	return true
}

func checkFinite(seq []float64) error {
	for i, v := range seq {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errorx.Newf(errorx.ErrNonFinite, "value %v at index %d", v, i)
		}
	}
	return nil
}

// Discretize 把原始序列映射为 bin 编码序列
// 整数序列原样转为编码; 连续序列等宽分箱, 零方差输入全部落入 bin 0
func Discretize(seq []float64, bins int) ([]int, error) {
	if len(seq) == 0 {
		return nil, errorx.New(errorx.ErrEmptyValue, "input sequence is empty")
	}
	if err := checkFinite(seq); err != nil {
		return nil, err
	}

	codes := make([]int, len(seq))

	// 已离散路径: 原值即编码
	if IsIntegral(seq) {
		for i, v := range seq {
			codes[i] = int(v)
		}
		return codes, nil
	}

	if bins < 1 {
		return nil, errorx.Newf(errorx.ErrInvalidOption, "bins must be >= 1, got %d", bins)
	}

	minV := floats.Min(seq)
	maxV := floats.Max(seq)

	// 零方差退化输入不是错误: 全部映射到 bin 0
	if minV == maxV {
		return codes, nil
	}

	width := (maxV - minV) / float64(bins)
	for i, v := range seq {
		idx := int(math.Floor((v - minV) / width))
		if idx >= bins { // v == maxV 的边界, 收进最后一个 bin
			idx = bins - 1
		}
		codes[i] = idx
	}
	return codes, nil
}

// Edges 返回等宽分箱的边界, 长度 bins+1, 仅用于诊断输出
// 整数序列与零方差序列没有分箱边界, 返回 nil
func Edges(seq []float64, bins int) []float64 {
	if len(seq) == 0 || bins < 1 || IsIntegral(seq) {
		return nil
	}
	minV := floats.Min(seq)
	maxV := floats.Max(seq)
	if minV == maxV {
		return nil
	}
	width := (maxV - minV) / float64(bins)
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = minV + float64(i)*width
	}
	edges[bins] = maxV
	return edges
}
