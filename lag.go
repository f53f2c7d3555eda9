package mutualinfo

import (
	"math"
	"runtime"
	"sync"

	"github.com/sragli/mutual-information/discretize"
	"github.com/sragli/mutual-information/distribution"
	"github.com/sragli/mutual-information/errorx"
	"github.com/sragli/mutual-information/information"
)

// 滞后互信息: 自相关函数的非线性对应
//
//	r(τ) = I(x_t ; x_{t+τ})    τ = 0..maxLag-1
//
// r(0) = H(X); 嵌入延迟通常取 r 的第一个极小值处的 τ
// 整条序列只离散化一次, 各 lag 共用同一套 bin

// validateLag 每个 lag 至少要剩一对观测
func validateLag(n, maxLag int) error {
	if maxLag < 1 || maxLag >= n {
		return errorx.Newf(errorx.ErrInvalidOption, "maxLag must be in [1, %d), got %d", n, maxLag)
	}
	return nil
}

// lagMI 两段对齐编码序列的互信息, 编码已在入口处校验
func lagMI(a, b []int, base float64) float64 {
	joint := distribution.Joint(a, b)
	ma := distribution.Marginal(a)
	mb := distribution.Marginal(b)
	return math.Max(0, information.MutualInformation(joint, ma, mb, base))
}

// AutoMI 滞后互信息序列 r[τ] = I(x_t; x_{t+τ})
func AutoMI(seq []float64, maxLag int, opts *Options) ([]float64, error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, errorx.New(errorx.ErrEmptyValue, "input sequence is empty")
	}
	if err := validateLag(len(seq), maxLag); err != nil {
		return nil, err
	}
	codes, err := discretize.Discretize(seq, o.Bins)
	if err != nil {
		return nil, err
	}

	out := make([]float64, maxLag)
	for tau := range out {
		out[tau] = lagMI(codes[:len(codes)-tau], codes[tau:], o.Base)
	}
	return out, nil
}

// AutoMIParallel 与 AutoMI 同值, 按 CPU 核心数并行分发 lag
func AutoMIParallel(seq []float64, maxLag int, opts *Options) ([]float64, error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	if len(seq) == 0 {
		return nil, errorx.New(errorx.ErrEmptyValue, "input sequence is empty")
	}
	if err := validateLag(len(seq), maxLag); err != nil {
		return nil, err
	}
	codes, err := discretize.Discretize(seq, o.Bins)
	if err != nil {
		return nil, err
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > maxLag {
		numWorkers = maxLag
	}
	wg := sync.WaitGroup{}
	tasks := make(chan int, maxLag)

	// 各 lag 写独立下标
	results := make([]float64, maxLag)

	worker := func() {
		defer wg.Done()
		for tau := range tasks {
			results[tau] = lagMI(codes[:len(codes)-tau], codes[tau:], o.Base)
		}
	}

	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go worker()
	}

	for tau := 0; tau < maxLag; tau++ {
		tasks <- tau
	}
	close(tasks)
	wg.Wait()

	return results, nil
}

// CrossMI 滞后交叉互信息 r[τ] = I(x_t; y_{t+τ}), τ >= 0
// 负方向的滞后把两个参数对调即可
func CrossMI(x, y []float64, maxLag int, opts *Options) ([]float64, error) {
	o, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	if err := validatePair(x, y); err != nil {
		return nil, err
	}
	if err := validateLag(len(x), maxLag); err != nil {
		return nil, err
	}
	cx, cy, err := codesPair(x, y, o.Bins)
	if err != nil {
		return nil, err
	}

	out := make([]float64, maxLag)
	for tau := range out {
		out[tau] = lagMI(cx[:len(cx)-tau], cy[tau:], o.Base)
	}
	return out, nil
}
