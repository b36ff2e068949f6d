package formula_bench

import (
	"testing"

	"github.com/osse101/etwmath/internal/domain"
	"github.com/osse101/etwmath/internal/format"
	"github.com/osse101/etwmath/internal/formula"
	"github.com/osse101/etwmath/internal/schedule"
)

// Results are kept in package vars so the compiler cannot drop the calls
var (
	sinkValue  float64
	sinkString string
)

func BenchmarkLevelAtSize(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkValue, _ = formula.LevelAtSize(505000)
	}
}

func BenchmarkTotalUpgradeInvestment(b *testing.B) {
	levels := formula.Levels{Size: 1000, Walk: 400, Multi: 200, Eat: 75}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkValue, _ = formula.TotalUpgradeInvestment(levels)
	}
}

func BenchmarkBiteAmount(b *testing.B) {
	for _, tier := range domain.BiteTiers {
		b.Run(string(tier), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkValue, _ = formula.BiteAmount(tier, 505000, 100)
			}
		})
	}
}

func BenchmarkEstimateTimeToMax(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkValue, _ = formula.EstimateTimeToMax(565, 101)
	}
}

// BenchmarkValidationFailure measures the rejected-input path
func BenchmarkValidationFailure(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkValue, _ = formula.SizeAtLevel(-1)
	}
}

func BenchmarkFormatNumber(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkString = format.Number(5474602884855, false)
	}
}

func BenchmarkScheduleBuild(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		rows, _ := schedule.Build(domain.TrackMulti, 1, 1000)
		sinkValue = rows[len(rows)-1].TotalInvestment
	}
}
