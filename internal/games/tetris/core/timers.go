package core

import (
	"math"
	"time"
)

// FallInterval returns the time between gravity steps at the current speed.
// Frequencies too small to express as a Duration never fall.
func (e *Engine) FallInterval() time.Duration {
	if e.fallFrequency <= 0 {
		return time.Duration(math.MaxInt64)
	}
	d := float64(time.Second) / e.fallFrequency
	if d >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(d)
}

// UpdateTimers is called by the host loop as often as it likes. Once the
// fall interval has passed since the last gravity step the piece moves down
// one row, or locks if it cannot. Separately, once SpeedUpEvery has passed
// the fall frequency increases. Both timers use the wall clock, so gravity
// does not depend on how often this is called.
func (e *Engine) UpdateTimers() {
	if !e.acceptsInput() {
		return
	}

	now := e.now()
	if now.Sub(e.fallStart) > e.FallInterval() {
		e.fallStart = now
		if e.CanMoveDown() {
			e.moveOneDown()
		} else {
			e.lockCurrentPiece()
		}
	}

	if e.timing.SpeedUpEvery > 0 && now.Sub(e.speedStart) > e.timing.SpeedUpEvery {
		e.speedStart = now
		e.fallFrequency += e.timing.SpeedUpAmount
		e.logger.Debug("speed up", "fall_frequency", e.fallFrequency)
	}
}

// SetPaused suspends or resumes the game. Time spent paused does not count
// towards either timer. Only a running game can be paused.
func (e *Engine) SetPaused(paused bool) {
	if e.phase != PhaseRunning || paused == e.paused {
		return
	}
	now := e.now()
	if paused {
		e.pausedAt = now
	} else {
		idle := now.Sub(e.pausedAt)
		e.fallStart = e.fallStart.Add(idle)
		e.speedStart = e.speedStart.Add(idle)
	}
	e.paused = paused
}
