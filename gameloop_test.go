package tilespin

import (
	"testing"
	"time"
)

func TestClockTick(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{
		base,
		base.Add(250 * time.Millisecond),
		base.Add(250 * time.Millisecond),
		base.Add(100 * time.Millisecond),
	}
	i := 0
	c := NewClock(50)
	c.now = func() time.Time {
		tm := times[i]
		i++
		return tm
	}

	want := []float64{1.0 / 50, 0.25, 0, 0}
	for n, w := range want {
		ld := c.Tick()
		if ld.Delta != w {
			t.Errorf("tick %d: delta %v, want %v", n, ld.Delta, w)
		}
		if ld.Frame != int64(n+1) {
			t.Errorf("tick %d: frame %d", n, ld.Frame)
		}
	}
}

func TestNewClockDefaultsTPS(t *testing.T) {
	if c := NewClock(0); c.tps != DefaultTPS {
		t.Errorf("tps = %d, want %d", c.tps, DefaultTPS)
	}
}
