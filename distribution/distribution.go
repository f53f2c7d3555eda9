// Package distribution 频率法估计经验概率分布
//
//	p(x)   = count(x) / N
//	p(x,y) = count(x,y) / N   (按同索引配对)
//
// 映射中只保留已观测到的编码, 未观测编码不写 0 值条目, 概率按 0 处理(无平滑)
package distribution

import "sort"

// Dist 单变量边际分布: 编码 -> 概率
type Dist map[int]float64

// Pair 联合分布的键
type Pair struct {
	X, Y int
}

// JointDist 二元联合分布: (x,y) -> 概率
type JointDist map[Pair]float64

// Marginal 统计编码频次并归一化为边际分布
func Marginal(codes []int) Dist {
	if len(codes) == 0 {
		return Dist{}
	}
	counts := make(map[int]int)
	for _, c := range codes {
		counts[c]++
	}
	n := float64(len(codes))
	d := make(Dist, len(counts))
	for c, cnt := range counts {
		d[c] = float64(cnt) / n
	}
	return d
}

// Joint 按同索引配对统计联合频次, 两序列等长由调用方保证
func Joint(xs, ys []int) JointDist {
	if len(xs) == 0 {
		return JointDist{}
	}
	counts := make(map[Pair]int)
	for i, x := range xs {
		counts[Pair{X: x, Y: ys[i]}]++
	}
	n := float64(len(xs))
	j := make(JointDist, len(counts))
	for p, cnt := range counts {
		j[p] = float64(cnt) / n
	}
	return j
}

// P 查询编码概率, 缺失键按 0 返回 (get-or-zero)
func (d Dist) P(code int) float64 {
	return d[code]
}

// P 查询配对概率, 缺失键按 0 返回
func (j JointDist) P(x, y int) float64 {
	return j[Pair{X: x, Y: y}]
}

// Support 已观测编码的有序列表
func (d Dist) Support() []int {
	out := make([]int, 0, len(d))
	for c := range d {
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}

// Sum 概率总和, 非空分布应 ≈ 1.0
func (d Dist) Sum() float64 {
	var s float64
	for _, p := range d {
		s += p
	}
	return s
}

// Sum 同上, 联合版本
func (j JointDist) Sum() float64 {
	var s float64
	for _, p := range j {
		s += p
	}
	return s
}
