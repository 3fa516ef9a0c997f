package baked_test

import (
	"testing"

	"github.com/katalvlaran/flowfield/baked"
	"github.com/katalvlaran/flowfield/costfield"
	"github.com/katalvlaran/flowfield/grid"
)

func benchmarkBake(b *testing.B, workers int) {
	g := grid.MustGeometry(24, 24)
	costs := costfield.Uniform(g, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := baked.Bake(g, costs, baked.WithWorkers(workers)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBake_1Worker(b *testing.B)  { benchmarkBake(b, 1) }
func BenchmarkBake_4Workers(b *testing.B) { benchmarkBake(b, 4) }
func BenchmarkBake_MaxProcs(b *testing.B) { benchmarkBake(b, 0) }
