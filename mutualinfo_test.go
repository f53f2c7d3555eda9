package mutualinfo

import (
	"math"
	"testing"

	"github.com/sragli/mutual-information/errorx"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestCompute(t *testing.T) {
	t.Run("identical discrete sequences share log2(5) bits", func(t *testing.T) {
		r := require.New(t)

		x := []float64{1, 2, 3, 4, 5, 1, 2, 3, 4, 5}
		mi, err := Compute(x, x, nil)
		r.NoError(err)
		r.InDelta(2.321928094887362, mi, 1e-12)
	})

	t.Run("independent by construction is exactly zero", func(t *testing.T) {
		r := require.New(t)

		// 联合分布逐项等于边际乘积, 每一项 log(1)=0
		x := []float64{1, 1, 2, 2, 3, 3}
		y := []float64{1, 2, 1, 2, 1, 2}
		mi, err := Compute(x, y, nil)
		r.NoError(err)
		r.Equal(0.0, mi)
	})

	t.Run("symmetric in its arguments", func(t *testing.T) {
		r := require.New(t)

		x := []float64{1, 2, 2, 3, 3, 3, 4, 1}
		y := []float64{0, 1, 0, 1, 1, 0, 0, 1}
		ab, err := Compute(x, y, nil)
		r.NoError(err)
		ba, err := Compute(y, x, nil)
		r.NoError(err)
		r.InDelta(ab, ba, 1e-12)
	})

	t.Run("never negative", func(t *testing.T) {
		r := require.New(t)

		x := []float64{0.1, 0.9, 0.4, 0.7, 0.2, 0.6, 0.3, 0.8}
		y := []float64{5, 1, 4, 2, 5, 3, 1, 2}
		mi, err := Compute(x, y, nil)
		r.NoError(err)
		r.GreaterOrEqual(mi, 0.0)
	})

	t.Run("a tighter pairing carries more information", func(t *testing.T) {
		r := require.New(t)

		x := []float64{1, 2, 3, 4, 5}
		exact, err := Compute(x, x, nil)
		r.NoError(err)
		loose, err := Compute(x, []float64{0, 0, 3, 4, 5}, nil)
		r.NoError(err)
		r.Greater(exact, loose)
	})

	t.Run("bounded by the smaller marginal entropy", func(t *testing.T) {
		r := require.New(t)

		x := []float64{1, 2, 3, 1, 2, 3, 1, 2}
		y := []float64{1, 1, 2, 2, 1, 1, 2, 2}
		mi, err := Compute(x, y, nil)
		r.NoError(err)
		hx, err := Entropy(x, nil)
		r.NoError(err)
		hy, err := Entropy(y, nil)
		r.NoError(err)
		r.LessOrEqual(mi, math.Min(hx, hy)+1e-12)
	})

	t.Run("identical continuous sequences recover their binned entropy", func(t *testing.T) {
		r := require.New(t)

		u := distuv.Uniform{Min: 0, Max: 1}
		x := make([]float64, 1000)
		for i := range x {
			x[i] = u.Rand()
		}
		mi, err := Compute(x, x, nil)
		r.NoError(err)
		hx, err := Entropy(x, nil)
		r.NoError(err)
		r.InDelta(hx, mi, 1e-12)
	})

	t.Run("bins option reshapes the continuous estimate", func(t *testing.T) {
		r := require.New(t)

		x := make([]float64, 256)
		for i := range x {
			x[i] = float64(i) + 0.5
		}
		coarse, err := Compute(x, x, &Options{Bins: 2})
		r.NoError(err)
		fine, err := Compute(x, x, &Options{Bins: 64})
		r.NoError(err)
		r.InDelta(1.0, coarse, 1e-12)
		r.InDelta(6.0, fine, 1e-12)
	})

	t.Run("base option converts units", func(t *testing.T) {
		r := require.New(t)

		x := []float64{1, 2, 3, 4, 5, 1, 2, 3, 4, 5}
		bits, err := Compute(x, x, &Options{Base: 2})
		r.NoError(err)
		nats, err := Compute(x, x, &Options{Base: math.E})
		r.NoError(err)
		r.InDelta(bits*math.Log(2), nats, 1e-12)
	})

	t.Run("zero option fields fall back to defaults", func(t *testing.T) {
		r := require.New(t)

		x := []float64{0.1, 0.5, 0.9, 0.3, 0.7}
		y := []float64{1, 0, 1, 0, 1}
		def, err := Compute(x, y, nil)
		r.NoError(err)
		viaZero, err := Compute(x, y, &Options{})
		r.NoError(err)
		viaExplicit, err := Compute(x, y, &Options{Bins: DefaultBins, Base: DefaultBase})
		r.NoError(err)
		// map 遍历顺序不定, 累加次序允许末位差异
		r.InDelta(def, viaZero, 1e-12)
		r.InDelta(def, viaExplicit, 1e-12)
	})
}

func TestComputeErrors(t *testing.T) {
	t.Run("length mismatch", func(t *testing.T) {
		r := require.New(t)

		_, err := Compute([]float64{1, 2, 3}, []float64{1, 2}, nil)
		r.ErrorIs(err, errorx.ErrLengthMismatch)
	})

	t.Run("empty input", func(t *testing.T) {
		r := require.New(t)

		_, err := Compute(nil, nil, nil)
		r.ErrorIs(err, errorx.ErrEmptyValue)
	})

	t.Run("non-finite input", func(t *testing.T) {
		r := require.New(t)

		_, err := Compute([]float64{1, math.NaN()}, []float64{1, 2}, nil)
		r.ErrorIs(err, errorx.ErrNonFinite)

		_, err = Compute([]float64{1, 2}, []float64{math.Inf(1), 2}, nil)
		r.ErrorIs(err, errorx.ErrNonFinite)
	})

	t.Run("invalid bins", func(t *testing.T) {
		r := require.New(t)

		_, err := Compute([]float64{1, 2}, []float64{1, 2}, &Options{Bins: -1})
		r.ErrorIs(err, errorx.ErrInvalidOption)
	})

	t.Run("invalid base", func(t *testing.T) {
		r := require.New(t)

		for _, base := range []float64{-2, 1} {
			_, err := Compute([]float64{1, 2}, []float64{1, 2}, &Options{Base: base})
			r.ErrorIs(err, errorx.ErrInvalidOption)
		}
	})
}

func TestEntropy(t *testing.T) {
	t.Run("uniform symbols carry log k", func(t *testing.T) {
		r := require.New(t)

		x := []float64{1, 2, 3, 4, 1, 2, 3, 4}
		h2, err := Entropy(x, nil)
		r.NoError(err)
		r.InDelta(2.0, h2, 1e-12)

		hE, err := Entropy(x, &Options{Base: math.E})
		r.NoError(err)
		r.InDelta(math.Log(4), hE, 1e-12)

		h10, err := Entropy(x, &Options{Base: 10})
		r.NoError(err)
		r.InDelta(math.Log10(4), h10, 1e-12)
	})

	t.Run("constant sequence has zero entropy", func(t *testing.T) {
		r := require.New(t)

		h, err := Entropy([]float64{7, 7, 7, 7}, nil)
		r.NoError(err)
		r.Equal(0.0, h)
	})

	t.Run("empty input", func(t *testing.T) {
		r := require.New(t)

		_, err := Entropy(nil, nil)
		r.ErrorIs(err, errorx.ErrEmptyValue)
	})
}

func TestNormalized(t *testing.T) {
	t.Run("identical sequences saturate at one", func(t *testing.T) {
		r := require.New(t)

		x := []float64{1, 2, 3, 4, 5, 1, 2, 3, 4, 5}
		nmi, err := Normalized(x, x, nil)
		r.NoError(err)
		r.InDelta(1.0, nmi, 1e-12)
		r.LessOrEqual(nmi, 1.0)
	})

	t.Run("constant input yields zero without error", func(t *testing.T) {
		r := require.New(t)

		c := []float64{3, 3, 3, 3}
		v := []float64{1, 2, 1, 2}
		nmi, err := Normalized(c, v, nil)
		r.NoError(err)
		r.Equal(0.0, nmi)

		nmi, err = Normalized(v, c, nil)
		r.NoError(err)
		r.Equal(0.0, nmi)
	})

	t.Run("stays inside the unit interval", func(t *testing.T) {
		r := require.New(t)

		x := []float64{0.12, 0.48, 0.91, 0.33, 0.74, 0.05, 0.66, 0.29}
		y := []float64{2, 5, 1, 5, 2, 1, 2, 5}
		nmi, err := Normalized(x, y, nil)
		r.NoError(err)
		r.GreaterOrEqual(nmi, 0.0)
		r.LessOrEqual(nmi, 1.0)
	})

	t.Run("length mismatch", func(t *testing.T) {
		r := require.New(t)

		_, err := Normalized([]float64{1}, []float64{1, 2}, nil)
		r.ErrorIs(err, errorx.ErrLengthMismatch)
	})
}

func TestJointAndConditional(t *testing.T) {
	x := []float64{1, 1, 2, 2, 3, 3, 1, 2}
	y := []float64{0, 1, 0, 1, 0, 1, 1, 0}

	t.Run("chain rule ties the quantities together", func(t *testing.T) {
		r := require.New(t)

		hxy, err := JointEntropy(x, y, nil)
		r.NoError(err)
		hcond, err := ConditionalEntropy(x, y, nil)
		r.NoError(err)
		hy, err := Entropy(y, nil)
		r.NoError(err)
		r.InDelta(hxy, hcond+hy, 1e-12)
	})

	t.Run("mutual information drops out of the entropies", func(t *testing.T) {
		r := require.New(t)

		// I(X;Y) = H(X) - H(X|Y)
		mi, err := Compute(x, y, nil)
		r.NoError(err)
		hx, err := Entropy(x, nil)
		r.NoError(err)
		hcond, err := ConditionalEntropy(x, y, nil)
		r.NoError(err)
		r.InDelta(mi, hx-hcond, 1e-9)
	})

	t.Run("joint entropy of a variable with itself", func(t *testing.T) {
		r := require.New(t)

		hxx, err := JointEntropy(x, x, nil)
		r.NoError(err)
		hx, err := Entropy(x, nil)
		r.NoError(err)
		r.InDelta(hx, hxx, 1e-12)
	})
}

func TestVariationOfInformation(t *testing.T) {
	t.Run("zero between a sequence and itself", func(t *testing.T) {
		r := require.New(t)

		x := []float64{1, 2, 3, 1, 2, 3}
		vi, err := VariationOfInformation(x, x, nil)
		r.NoError(err)
		r.InDelta(0.0, vi, 1e-12)
	})

	t.Run("equals joint entropy minus mutual information", func(t *testing.T) {
		r := require.New(t)

		x := []float64{1, 1, 2, 2, 3, 3, 1, 2}
		y := []float64{0, 1, 0, 1, 0, 1, 1, 0}
		vi, err := VariationOfInformation(x, y, nil)
		r.NoError(err)
		hxy, err := JointEntropy(x, y, nil)
		r.NoError(err)
		mi, err := Compute(x, y, nil)
		r.NoError(err)
		r.InDelta(hxy-mi, vi, 1e-12)
	})

	t.Run("symmetric", func(t *testing.T) {
		r := require.New(t)

		x := []float64{1, 2, 2, 3, 1, 3}
		y := []float64{5, 5, 6, 6, 5, 6}
		ab, err := VariationOfInformation(x, y, nil)
		r.NoError(err)
		ba, err := VariationOfInformation(y, x, nil)
		r.NoError(err)
		r.InDelta(ab, ba, 1e-12)
	})
}

// 大样本下的统计性质: 阈值留了几十倍标准差的余量, 不依赖随机种子
func TestAsymptotics(t *testing.T) {
	t.Run("independent samples carry almost no information", func(t *testing.T) {
		r := require.New(t)

		u := distuv.Uniform{Min: 0, Max: 1}
		n := 20000
		x := make([]float64, n)
		y := make([]float64, n)
		for i := range x {
			x[i] = u.Rand()
			y[i] = u.Rand()
		}
		mi, err := Compute(x, y, nil)
		r.NoError(err)
		r.Less(mi, 0.05)
	})

	t.Run("noisy copies stay strongly dependent", func(t *testing.T) {
		r := require.New(t)

		u := distuv.Uniform{Min: 0, Max: 1}
		noise := distuv.Normal{Mu: 0, Sigma: 0.02}
		n := 20000
		x := make([]float64, n)
		y := make([]float64, n)
		for i := range x {
			x[i] = u.Rand()
			y[i] = x[i] + noise.Rand()
		}
		nmi, err := Normalized(x, y, nil)
		r.NoError(err)
		r.Greater(nmi, 0.5)
	})
}
