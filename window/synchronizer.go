package window

type clock interface {
	getTicks() int64 // microseconds
	delay(us int64)
}

// TimeSynchronizer paces a polling loop to a target frame rate.
type TimeSynchronizer struct {
	prevTicks, usPerFrame int64
	clk                   clock
}

func NewTimeSynchronizer(clk clock, targetFPS float64) *TimeSynchronizer {
	return &TimeSynchronizer{
		prevTicks:  clk.getTicks(),
		usPerFrame: int64(1000000.0 / targetFPS),
		clk:        clk,
	}
}

func (ts *TimeSynchronizer) MaySleep() {
	cur := ts.clk.getTicks()
	if cur < ts.prevTicks {
		return
	}
	diff := ts.usPerFrame - (cur - ts.prevTicks)
	if diff > 1000 { // Larger than 1ms
		ts.clk.delay(diff)
	}
	ts.prevTicks += ts.usPerFrame
	if cur-ts.prevTicks > ts.usPerFrame {
		// Too far behind; don't try to catch up.
		ts.prevTicks = cur
	}
}
