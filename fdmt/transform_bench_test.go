package fdmt

import (
	"testing"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"

	"github.com/cwbudde/algo-fdmt/internal/testutil"
)

func benchmarkSizes() []struct {
	name  string
	nChan int
	nTime int
} {
	return []struct {
		name  string
		nChan int
		nTime int
	}{
		{"16x256", 16, 256},
		{"64x1K", 64, 1024},
		{"256x4K", 256, 4096},
	}
}

func BenchmarkTransform(b *testing.B) {
	for _, testCase := range benchmarkSizes() {
		b.Run(testCase.name, func(b *testing.B) {
			data := testutil.NoiseBlock(1, testCase.nChan, testCase.nTime, 1)
			tr := Transformer{FHi: 1500, FLo: 1200, TSamp: 0.001}
			tr.DMMax = float64(testCase.nChan/2) * 0.96

			b.SetBytes(int64(testCase.nChan * testCase.nTime * 8))
			b.ResetTimer()

			for range b.N {
				if _, err := tr.Transform(data, testCase.nChan, testCase.nTime); err != nil {
					b.Fatalf("Transform error: %v", err)
				}
			}
		})
	}
}

func BenchmarkTransformParallel(b *testing.B) {
	pool := workerpool.New(0)
	defer pool.Close()

	for _, testCase := range benchmarkSizes() {
		b.Run(testCase.name, func(b *testing.B) {
			data := testutil.NoiseBlock(1, testCase.nChan, testCase.nTime, 1)
			tr := Transformer{FHi: 1500, FLo: 1200, TSamp: 0.001}
			tr.DMMax = float64(testCase.nChan/2) * 0.96

			b.SetBytes(int64(testCase.nChan * testCase.nTime * 8))
			b.ResetTimer()

			for range b.N {
				if _, err := tr.Transform(data, testCase.nChan, testCase.nTime, WithPool(pool)); err != nil {
					b.Fatalf("Transform error: %v", err)
				}
			}
		})
	}
}

func BenchmarkSplit(b *testing.B) {
	band, err := NewBand(1500, 1200, 64e-6, 1024)
	if err != nil {
		b.Fatalf("NewBand error: %v", err)
	}

	b.ResetTimer()
	for range b.N {
		_, _ = band.Split()
	}
}
