package vec

import (
	"testing"

	"github.com/cwbudde/algo-relaxed/internal/testutil"
)

var benchSink float64

func BenchmarkSum(b *testing.B) {
	sizes := []int{16, 64, 256, 1024, 4096, 16384, 65536}
	for _, size := range sizes {
		x := testutil.Ramp(size)

		b.Run(sizeStr(size), func(b *testing.B) {
			b.SetBytes(int64(size * 8))
			for i := 0; i < b.N; i++ {
				benchSink = Sum(x)
			}
		})
	}
}

func BenchmarkSumSequential(b *testing.B) {
	sizes := []int{16, 64, 256, 1024, 4096}
	for _, size := range sizes {
		x := testutil.Ramp(size)

		b.Run(sizeStr(size), func(b *testing.B) {
			b.SetBytes(int64(size * 8))
			for i := 0; i < b.N; i++ {
				benchSink = seqSum(x)
			}
		})
	}
}

func BenchmarkDot(b *testing.B) {
	sizes := []int{16, 256, 4096, 65536}
	for _, size := range sizes {
		x := testutil.DeterministicNoise(1, 1, size)
		y := testutil.DeterministicNoise(2, 1, size)

		b.Run(sizeStr(size), func(b *testing.B) {
			b.SetBytes(int64(size * 16))
			for i := 0; i < b.N; i++ {
				benchSink = Dot(x, y)
			}
		})
	}
}
