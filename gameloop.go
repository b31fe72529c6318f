package tilespin

import "time"

type LoopData struct {
	Time  time.Time
	Frame int64
	Delta float64
}

// Clock measures wall-clock time between ticks. The first tick reports one
// nominal tick at the given rate.
type Clock struct {
	tps        int
	now        func() time.Time
	lastUpdate time.Time
	frame      int64
}

func NewClock(tps int) *Clock {
	if tps <= 0 {
		tps = DefaultTPS
	}
	return &Clock{tps: tps, now: time.Now}
}

func (c *Clock) Tick() LoopData {
	now := c.now()
	var deltaTime float64
	if !c.lastUpdate.IsZero() {
		deltaTime = now.Sub(c.lastUpdate).Seconds()
	} else {
		deltaTime = 1.0 / float64(c.tps)
	}
	if deltaTime < 0 {
		deltaTime = 0
	}
	c.lastUpdate = now
	c.frame++

	return LoopData{
		Time:  now,
		Frame: c.frame,
		Delta: deltaTime,
	}
}
