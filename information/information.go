// Package information 从经验分布计算信息论量
//
//	H(X)   = -Σ p(x)·log_b p(x)
//	H(X,Y) = -Σ p(x,y)·log_b p(x,y)
//	I(X;Y) =  Σ p(x,y)·log_b[ p(x,y) / (p(x)·p(y)) ]
//	H(X|Y) =  H(X,Y) - H(Y)
//
// 对数换底统一用 log_b(v) = ln(v)/ln(b), b=2 得 bit, b=e 得 nat, b=10 得 dit
package information

import (
	"math"

	"github.com/sragli/mutual-information/distribution"
)

// Entropy 香农熵
// 分布里只含已观测编码, p 恒为正; p<=0 的项跳过, 不触发 log(0)
func Entropy(d distribution.Dist, base float64) float64 {
	invLn := 1 / math.Log(base)
	var h float64
	for _, p := range d {
		if p <= 0 {
			continue
		}
		h -= p * math.Log(p) * invLn
	}
	return h
}

// JointEntropy 联合熵 H(X,Y)
func JointEntropy(j distribution.JointDist, base float64) float64 {
	invLn := 1 / math.Log(base)
	var h float64
	for _, p := range j {
		if p <= 0 {
			continue
		}
		h -= p * math.Log(p) * invLn
	}
	return h
}

// MutualInformation 互信息
// 逐个联合键累加 p(x,y)·log_b[p(x,y)/(p(x)·p(y))]
// 任一概率 <=0 的项贡献 0; 边际里查不到的键按 0 处理, 不报错
func MutualInformation(j distribution.JointDist, mx, my distribution.Dist, base float64) float64 {
	invLn := 1 / math.Log(base)
	var mi float64
	for pair, pxy := range j {
		if pxy <= 0 {
			continue
		}
		px := mx.P(pair.X)
		py := my.P(pair.Y)
		if px <= 0 || py <= 0 {
			continue
		}
		mi += pxy * math.Log(pxy/(px*py)) * invLn
	}
	return mi
}

// ConditionalEntropy 条件熵 H(X|Y), condY 是条件变量 Y 的边际分布
func ConditionalEntropy(j distribution.JointDist, condY distribution.Dist, base float64) float64 {
	return JointEntropy(j, base) - Entropy(condY, base)
}
