package breakout

// Effects holds the transient screen effects applied during post-processing.
type Effects struct {
	Shake   bool
	Confuse bool
	Chaos   bool

	ShakeTime float64 // Seconds of shake left
}

// StartShake begins a shake lasting d seconds.
func (e *Effects) StartShake(d float64) {
	e.ShakeTime = d
	e.Shake = true
}

// Tick counts the shake timer down by dt. The shake ends once the timer
// is at or below zero, including a shake started with no duration.
func (e *Effects) Tick(dt float64) {
	if e.ShakeTime > 0 {
		e.ShakeTime -= dt
	}
	if e.ShakeTime <= 0 {
		e.Shake = false
	}
}
