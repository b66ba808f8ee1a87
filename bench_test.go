package idxgo_test

import (
	"slices"
	"testing"

	"github.com/hupe1980/idxgo"
)

type kilo struct{}

func (kilo) Size() int { return 1024 }

func BenchmarkArrayAt(b *testing.B) {
	arr := idxgo.NewArray[kilo, int]()
	indices := slices.Collect(idxgo.All[kilo]())

	b.ResetTimer()

	var sink int
	for n := 0; n < b.N; n++ {
		sink += arr.At(indices[n&1023])
	}
	benchSink = sink
}

// Baseline: the same access pattern on the raw backing slice.
func BenchmarkSliceAt(b *testing.B) {
	items := make([]int, 1024)

	b.ResetTimer()

	var sink int
	for n := 0; n < b.N; n++ {
		sink += items[n&1023]
	}
	benchSink = sink
}

func BenchmarkAll(b *testing.B) {
	var sink int
	for n := 0; n < b.N; n++ {
		for i := range idxgo.All[kilo]() {
			sink += i.Int()
		}
	}
	benchSink = sink
}

func BenchmarkNew(b *testing.B) {
	for n := 0; n < b.N; n++ {
		i, err := idxgo.New[kilo](n & 1023)
		if err != nil {
			b.Fatal(err)
		}
		benchSink = i.Int()
	}
}

// benchSink defeats dead-code elimination in the benchmarks above.
var benchSink int
