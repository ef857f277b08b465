// Copyright (c) 2024, The Spikenet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"github.com/chewxy/math32"
	"github.com/emer/etable/minmax"
	"github.com/goki/ki/kit"
)

///////////////////////////////////////////////////////////////////////
//  modulate.go implements the global oscillator / neuromodulator state

// OscBands are the oscillator frequency bands
type OscBands int

//go:generate stringer -type=OscBands

var KiT_OscBands = kit.Enums.AddEnum(OscBandsN, kit.NotBitFlag, nil)

func (ev OscBands) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *OscBands) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Theta is the hippocampal ~7 Hz band
	Theta OscBands = iota

	// Alpha is the thalamic ~10 Hz band
	Alpha

	// Gamma is the cortical ~40 Hz band
	Gamma

	OscBandsN
)

// ModParams are the parameters for updating the global modulation
// state and for computing per-neuron modulation factors from it.
type ModParams struct {
	Freq       [OscBandsN]float32 `desc:"oscillator frequency per band in Hz"`
	OscGain    float32            `def:"10" desc:"amplitude in pA of the region-tagged oscillatory input current bias"`
	DADecay    float32            `def:"0.995" desc:"per-step multiplicative passive decay of dopamine"`
	NEDecay    float32            `def:"0.995" desc:"per-step multiplicative passive decay of norepinephrine"`
	HiBand     float32            `def:"0.1" desc:"upper homeostatic band on population firing fraction -- serotonin rises above it"`
	LoBand     float32            `def:"0.01" desc:"lower homeostatic band on population firing fraction -- serotonin falls below it"`
	SEStep     float32            `def:"0.001" desc:"per-step serotonin adjustment when outside the homeostatic band"`
	LevelRange minmax.F32         `view:"inline" desc:"valid range for all neuromodulator levels"`
}

func (mp *ModParams) Defaults() {
	mp.Freq[Theta] = 7
	mp.Freq[Alpha] = 10
	mp.Freq[Gamma] = 40
	mp.OscGain = 10
	mp.DADecay = 0.995
	mp.NEDecay = 0.995
	mp.HiBand = 0.1
	mp.LoBand = 0.01
	mp.SEStep = 0.001
	mp.LevelRange.Set(0, 1)
}

func (mp *ModParams) Update() {
}

// ModState is the global oscillator / neuromodulator state.  One
// instance per network -- it is owned by and passed through the network
// instance, never ambient, so concurrent networks cannot leak state
// into each other.
type ModState struct {
	Phases [OscBandsN]float32 `desc:"oscillator phase per band, always in [0, 2pi)"`
	DA     float32            `desc:"dopamine / reward level in [0, 1]"`
	SE     float32            `desc:"serotonin / mood level in [0, 1] -- homeostatic on population firing"`
	ACh    float32            `desc:"acetylcholine / attention level in [0, 1] -- tracks theta phase scaled by the attention setpoint"`
	NE     float32            `desc:"norepinephrine / arousal level in [0, 1]"`
	Attn   float32            `desc:"attention setpoint from the external SetAttention control"`
}

// Init resets the modulation state to baseline levels and zero phases
func (ms *ModState) Init() {
	for bi := range ms.Phases {
		ms.Phases[bi] = 0
	}
	ms.DA = 0.3
	ms.SE = 0.5
	ms.ACh = 0.5
	ms.NE = 0.5
	ms.Attn = 0.5
}

// StepOsc advances each oscillator phase by 2pi * freq * dt, wrapping
// into [0, 2pi).  dt is in msec.
func (mp *ModParams) StepOsc(ms *ModState, dt float32) {
	for bi := range ms.Phases {
		ph := ms.Phases[bi] + 2*math32.Pi*mp.Freq[bi]*dt*0.001
		ms.Phases[bi] = math32.Mod(ph, 2*math32.Pi)
	}
}

// StepLevels updates the neuromodulator levels from the population
// firing fraction for this step: serotonin homeostasis against the
// firing band, passive multiplicative decay of dopamine and
// norepinephrine, and acetylcholine tracking theta phase scaled by the
// attention setpoint.  All levels are clamped to [0, 1].
func (mp *ModParams) StepLevels(ms *ModState, firedFrac float32) {
	if firedFrac > mp.HiBand {
		ms.SE += mp.SEStep
	} else if firedFrac < mp.LoBand {
		ms.SE -= mp.SEStep
	}
	ms.DA *= mp.DADecay
	ms.NE *= mp.NEDecay
	ms.ACh = ms.Attn * (0.5 + 0.5*math32.Sin(ms.Phases[Theta]))
	ms.DA = mp.LevelRange.ClipVal(ms.DA)
	ms.SE = mp.LevelRange.ClipVal(ms.SE)
	ms.ACh = mp.LevelRange.ClipVal(ms.ACh)
	ms.NE = mp.LevelRange.ClipVal(ms.NE)
}

// ModFactor returns the multiplicative modulation factor for a neuron
// of the given class in a region with the given function tag.  Each
// relevant level contributes a (0.5 + level) term, so a level at its
// 0.5 baseline is neutral: reward regions scale with dopamine,
// attention regions with acetylcholine, inhibitory cells with
// serotonin, and all cells with norepinephrine.
func (mp *ModParams) ModFactor(ms *ModState, class NeuronClass, fn RegionFuncs) float32 {
	f := float32(1)
	switch fn {
	case RewardFunc:
		f *= 0.5 + ms.DA
	case AttnFunc:
		f *= 0.5 + ms.ACh
	}
	if class == Inhibitory {
		f *= 0.5 + ms.SE
	}
	f *= 0.5 + ms.NE
	return f
}

// OscBias returns the small oscillatory input current bias (pA) for a
// region with the given function tag: memory regions ride theta,
// thalamic regions alpha, everything else gamma.
func (mp *ModParams) OscBias(ms *ModState, fn RegionFuncs) float32 {
	switch fn {
	case MemoryFunc:
		return mp.OscGain * math32.Sin(ms.Phases[Theta])
	case ThalamicFunc:
		return mp.OscGain * math32.Sin(ms.Phases[Alpha])
	default:
		return mp.OscGain * math32.Sin(ms.Phases[Gamma])
	}
}
