package config

// Cadence is the timing config expressed in platform ticks.
type Cadence struct {
	GravityTicks int // Ticks between two SoftDropTick commands
	InputTicks   int // Ticks between two applications of buffered input
}

// CadenceFor converts millisecond intervals to ticks at the given tick rate.
// Every interval is at least one tick.
func CadenceFor(t TimingConfig, tickRate int) Cadence {
	return Cadence{
		GravityTicks: msToTicks(t.GravityMS, tickRate),
		InputTicks:   msToTicks(t.InputMS, tickRate),
	}
}

// msToTicks rounds to the nearest tick.
func msToTicks(ms, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := (ms*tickRate + 500) / 1000
	if ticks < 1 {
		return 1
	}
	return ticks
}
