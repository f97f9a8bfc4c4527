package engine

import (
	"testing"

	"github.com/osse101/CokeFamer_Go/internal/config"
	"github.com/osse101/CokeFamer_Go/internal/content"
	"github.com/osse101/CokeFamer_Go/internal/domain"
	"github.com/osse101/CokeFamer_Go/internal/storage/memory"
)

// benchFarm returns an engine with a 32x32 plot of watered parsnips.
func benchFarm(b *testing.B) *Engine {
	b.Helper()
	e := New(content.Default(), config.DefaultTuning(), memory.New(), nil, 1)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			e.field.Set(domain.Coord{X: x, Y: y}, domain.TileState{
				Tilled:  true,
				Watered: true,
				Crop:    &domain.CropState{Crop: domain.CropParsnip},
			})
		}
	}
	return e
}

func BenchmarkSleepNextDay(b *testing.B) {
	e := benchFarm(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.SleepNextDay()
	}
}

func BenchmarkSnapshot(b *testing.B) {
	e := benchFarm(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Snapshot()
	}
}
