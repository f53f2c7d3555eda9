package dataset

import (
	"github.com/gonum/stat"
	"github.com/sragli/mutual-information/discretize"
	"gonum.org/v1/gonum/floats"
)

// Summary 单列概要统计
type Summary struct {
	Name     string
	N        int
	Mean     float64
	Std      float64 // 样本标准差
	Min      float64
	Max      float64
	Integral bool // 全为整数值时走离散路径
}

// Describe 单列概要, 空列返回零值
func Describe(name string, col []float64) Summary {
	s := Summary{Name: name, N: len(col)}
	if len(col) == 0 {
		return s
	}
	s.Mean = stat.Mean(col, nil)
	if len(col) > 1 {
		s.Std = stat.StdDev(col, nil)
	}
	s.Min = floats.Min(col)
	s.Max = floats.Max(col)
	s.Integral = discretize.IsIntegral(col)
	return s
}

// DescribeAll 逐列概要
func (d *Dataset) DescribeAll() []Summary {
	out := make([]Summary, len(d.Cols))
	for i, col := range d.Cols {
		out[i] = Describe(d.Names[i], col)
	}
	return out
}
