package preprocessing

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/esol/core/model"
	"github.com/YuminosukeSato/esol/core/parallel"
	"github.com/YuminosukeSato/esol/pkg/errors"
)

// Transform時の並列化閾値（行数）
const parallelThreshold = 1000

// StandardScaler はscikit-learn互換の標準化スケーラー
// 各特徴量を平均0、標準偏差1に変換する
//
// MolWtのような桁の大きい記述子とAromaticProportionのような[0,1]の記述子を
// 同じ係数スケールで比較したい場合に、学習前の前処理として使う。
type StandardScaler struct {
	model.BaseEstimator

	// Mean は各特徴量の平均値
	Mean []float64

	// Scale は各特徴量の標準偏差
	Scale []float64

	// NFeatures は特徴量の数
	NFeatures int

	// WithMean は平均を引くかどうか (デフォルト: true)
	WithMean bool

	// WithStd は標準偏差で割るかどうか (デフォルト: true)
	WithStd bool
}

// NewStandardScaler は新しいStandardScalerを作成する
func NewStandardScaler(withMean, withStd bool) *StandardScaler {
	return &StandardScaler{
		WithMean: withMean,
		WithStd:  withStd,
	}
}

// NewStandardScalerDefault はデフォルト設定でStandardScalerを作成する
func NewStandardScalerDefault() *StandardScaler {
	return NewStandardScaler(true, true)
}

// Fit は訓練データから各列の平均と標準偏差を計算する
//
// 分散がゼロの列はUndefinedMetricWarningを発し、スケールを1として扱う
// （ゼロ除算にしない）。
func (s *StandardScaler) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("StandardScaler.Fit", "empty data", errors.ErrEmptyData)
	}

	s.NFeatures = c
	s.Mean = make([]float64, c)
	s.Scale = make([]float64, c)

	// 列ごとの平均
	for j := 0; j < c; j++ {
		var sum float64
		for i := 0; i < r; i++ {
			sum += X.At(i, j)
		}
		s.Mean[j] = sum / float64(r)
	}

	// 列ごとの標準偏差（母標準偏差）
	for j := 0; j < c; j++ {
		var sq float64
		for i := 0; i < r; i++ {
			d := X.At(i, j) - s.Mean[j]
			sq += d * d
		}
		s.Scale[j] = math.Sqrt(sq / float64(r))

		if s.Scale[j] == 0 {
			errors.Warn(errors.NewUndefinedMetricWarning(
				"StandardScaler.Scale", "zero variance column", 1.0))
			s.Scale[j] = 1.0
		}
	}

	s.SetFitted()
	return nil
}

// Transform は学習済みの統計量でXを標準化した新しい行列を返す
func (s *StandardScaler) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "Transform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.Transform", s.NFeatures, c, 1)
	}

	out := mat.NewDense(r, c, nil)
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			for j := 0; j < c; j++ {
				v := X.At(i, j)
				if s.WithMean {
					v -= s.Mean[j]
				}
				if s.WithStd {
					v /= s.Scale[j]
				}
				out.Set(i, j, v)
			}
		}
	})

	return out, nil
}

// FitTransform はFitとTransformを続けて実行する
func (s *StandardScaler) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// InverseTransform は標準化を逆変換し、元のスケールに戻す
func (s *StandardScaler) InverseTransform(X mat.Matrix) (mat.Matrix, error) {
	if !s.IsFitted() {
		return nil, errors.NewNotFittedError("StandardScaler", "InverseTransform")
	}

	r, c := X.Dims()
	if c != s.NFeatures {
		return nil, errors.NewDimensionError("StandardScaler.InverseTransform", s.NFeatures, c, 1)
	}

	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := X.At(i, j)
			if s.WithStd {
				v *= s.Scale[j]
			}
			if s.WithMean {
				v += s.Mean[j]
			}
			out.Set(i, j, v)
		}
	}

	return out, nil
}
