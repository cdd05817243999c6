package vectormath_test

import (
	"math/rand"
	"testing"

	"github.com/tessellab/gosom/vectormath"
)

func benchVectors(n int) ([]float64, []float64) {
	rng := rand.New(rand.NewSource(7))
	v := make([]float64, n)
	w := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()
		w[i] = rng.Float64()
	}
	return v, w
}

func BenchmarkSquaredEuclidean_64(b *testing.B) {
	v, w := benchVectors(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = vectormath.SquaredEuclidean(v, w)
	}
}

func BenchmarkEuclidean_64(b *testing.B) {
	v, w := benchVectors(64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = vectormath.Euclidean(v, w)
	}
}
