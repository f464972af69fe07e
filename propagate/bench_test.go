package propagate_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/flowfield/propagate"
)

// BenchmarkPropagate measures a full pass on a 500×500 grid with 25% barriers
// and a sprinkling of sources.
func BenchmarkPropagate(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	layout := randomLayout(rng, 500, 500, 0.25, 0.001)
	g, src := fromLayout(b, layout...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := propagate.Propagate(g, src); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPropagate_OpenField measures the single-source, no-barrier worst case.
func BenchmarkPropagate_OpenField(b *testing.B) {
	layout := make([]string, 500)
	row := make([]byte, 500)
	for i := range row {
		row[i] = '.'
	}
	for i := range layout {
		layout[i] = string(row)
	}
	layout[0] = "S" + layout[0][1:]
	g, src := fromLayout(b, layout...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = propagate.Propagate(g, src)
	}
}
