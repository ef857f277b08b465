// Copyright (c) 2024, The Spikenet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

// spikenet.Time contains the timing state for running a network
type Time struct {

	// accumulated amount of time the network has been running,
	// in simulation-time (not real world time), in msec.
	Time float32

	// cycle counter: number of integration steps taken on the
	// current episode, from 0 to the episode step count.
	Cycle int

	// total cycle count, incrementing continuously from whenever
	// it was last reset.
	CycleTot int

	// amount of simulation time to increment per cycle, msec.
	TimePerCyc float32 `def:"0.1"`
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.TimePerCyc = 0.1
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Cycle = 0
	tm.CycleTot = 0
	if tm.TimePerCyc == 0 {
		tm.Defaults()
	}
}

// EpisodeStart starts a new episode of steps
func (tm *Time) EpisodeStart() {
	tm.Cycle = 0
}

// CycleInc increments at the cycle level
func (tm *Time) CycleInc() {
	tm.Cycle++
	tm.CycleTot++
	tm.Time += tm.TimePerCyc
}
