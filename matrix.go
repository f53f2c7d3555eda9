package mutualinfo

import (
	"math"
	"runtime"
	"sync"

	"github.com/gonum/stat"
	"github.com/sragli/mutual-information/errorx"
	"gonum.org/v1/gonum/mat"
)

// pairFunc 单对序列的度量, 由 PairwiseMatrix/PairwiseNormalized 注入
type pairFunc func(x, y []float64, opts *Options) (float64, error)

// validateSeries 所有序列须等长且非空
func validateSeries(series [][]float64) error {
	if len(series) == 0 {
		return errorx.New(errorx.ErrEmptyValue, "no series")
	}
	n := len(series[0])
	if n == 0 {
		return errorx.New(errorx.ErrEmptyValue, "series[0] is empty")
	}
	for i, s := range series {
		if len(s) != n {
			return errorx.Newf(errorx.ErrLengthMismatch, "len(series[%d])=%d, want %d", i, len(s), n)
		}
	}
	return nil
}

// pairwise 对上三角(含对角线)逐对计算, 按 CPU 核心数并行
func pairwise(series [][]float64, opts *Options, fn pairFunc) (*mat.SymDense, error) {
	if err := validateSeries(series); err != nil {
		return nil, err
	}
	if _, err := opts.normalize(); err != nil {
		return nil, err
	}

	m := len(series)
	type task struct{ i, j int }
	pairs := make([]task, 0, m*(m+1)/2)
	for i := 0; i < m; i++ {
		for j := i; j < m; j++ {
			pairs = append(pairs, task{i, j})
		}
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > len(pairs) {
		numWorkers = len(pairs)
	}
	wg := sync.WaitGroup{}
	tasks := make(chan int, len(pairs))

	// 各任务写独立下标, 无需加锁
	vals := make([]float64, len(pairs))
	errs := make([]error, len(pairs))

	worker := func() {
		defer wg.Done()
		for k := range tasks {
			p := pairs[k]
			vals[k], errs[k] = fn(series[p.i], series[p.j], opts)
		}
	}

	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go worker()
	}

	for k := range pairs {
		tasks <- k
	}
	close(tasks)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := mat.NewSymDense(m, nil)
	for k, p := range pairs {
		out.SetSym(p.i, p.j, vals[k])
	}
	return out, nil
}

// PairwiseMatrix 多序列两两互信息矩阵
// 对角线为自互信息 I(X;X) = H(X)
func PairwiseMatrix(series [][]float64, opts *Options) (*mat.SymDense, error) {
	return pairwise(series, opts, Compute)
}

// PairwiseNormalized 多序列两两归一化互信息矩阵
// 对角线为 1, 常数序列所在行列为 0
func PairwiseNormalized(series [][]float64, opts *Options) (*mat.SymDense, error) {
	return pairwise(series, opts, Normalized)
}

// PairwiseCorrelation 两两 Pearson 相关系数矩阵, 互信息矩阵的线性对照
// 零方差序列的相关系数未定义, 按 0 返回
func PairwiseCorrelation(series [][]float64) (*mat.SymDense, error) {
	return pairwise(series, nil, corrPair)
}

func corrPair(x, y []float64, _ *Options) (float64, error) {
	c := stat.Correlation(x, y, nil)
	if math.IsNaN(c) {
		return 0, nil
	}
	return c, nil
}
