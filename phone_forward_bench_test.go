package phone_forward

import (
	"context"
	"runtime"
	"testing"
)

func benchNumbers(b *testing.B, count int, class numberClass) []string {
	b.Helper()

	ng := newNumberGenerator(int64(count))
	if err := ng.initNumberBlock(count, class); err != nil {
		b.Fatalf("initNumberBlock: %v", err)
	}

	return ng.block
}

func populate(ctx context.Context, pf *PhoneForward, numbers []string) {
	for i := 0; i+1 < len(numbers); i += 2 {
		pf.Add(ctx, numbers[i], numbers[i+1])
	}
}

// BenchmarkAdd benchmarks adding forwardings
func BenchmarkAdd(b *testing.B) {
	ctx := context.Background()
	pf := New()
	numbers := benchNumbers(b, 2*b.N+2, numberClassDigits)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pf.Add(ctx, numbers[2*i], numbers[2*i+1])
	}
}

// BenchmarkGet benchmarks forward lookups in a pre-populated structure
func BenchmarkGet(b *testing.B) {
	ctx := context.Background()
	pf := New()
	numbers := benchNumbers(b, 10000, numberClassDigits)
	populate(ctx, pf, numbers)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pf.Get(ctx, numbers[i%len(numbers)])
	}
}

// BenchmarkReverse benchmarks reverse lookups in a pre-populated structure
func BenchmarkReverse(b *testing.B) {
	ctx := context.Background()
	pf := New()
	numbers := benchNumbers(b, 10000, numberClassShort)
	populate(ctx, pf, numbers)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pf.GetReverse(ctx, numbers[i%len(numbers)])
	}
}

// BenchmarkRemove benchmarks removal of prefixes
func BenchmarkRemove(b *testing.B) {
	ctx := context.Background()
	numbers := benchNumbers(b, 1000, numberClassDigits)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		pf := New()
		populate(ctx, pf, numbers)
		b.StartTimer()

		pf.Remove(ctx, numbers[i%len(numbers)][:1])
	}
}

// BenchmarkGCPressure measures heap allocations and GC counts while adding
func BenchmarkGCPressure(b *testing.B) {
	ctx := context.Background()
	tests := []struct {
		name  string
		count int
		class numberClass
	}{
		{"Small_Digits", 1000, numberClassDigits},
		{"Large_Digits", 10000, numberClassDigits},
		{"Small_Short", 1000, numberClassShort},
		{"Large_Any", 10000, numberClassAny},
	}

	for _, tt := range tests {
		b.Run(tt.name, func(b *testing.B) {
			numbers := benchNumbers(b, tt.count, tt.class)

			var m runtime.MemStats

			runtime.GC()
			runtime.ReadMemStats(&m)
			baseHeap := m.HeapAlloc
			baseGC := m.NumGC

			b.ResetTimer()

			pf := New()
			populate(ctx, pf, numbers)

			b.StopTimer()

			runtime.ReadMemStats(&m)
			heapUsed := m.HeapAlloc - baseHeap
			gcCount := m.NumGC - baseGC

			b.ReportMetric(float64(heapUsed), "bytes_alloc")
			b.ReportMetric(float64(gcCount), "gc_runs")
			b.ReportMetric(float64(pf.GetNodesCount()), "nodes")
			b.Logf("%s: Heap used: %d bytes, GC runs: %d, nodes: %d",
				tt.name, heapUsed, gcCount, pf.GetNodesCount())
		})
	}
}
