// Copyright (c) 2024, The Spikenet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"github.com/chewxy/math32"
	"github.com/emer/etable/minmax"
)

///////////////////////////////////////////////////////////////////////
//  learn.go implements spike-timing-dependent plasticity (STDP)

// StdpParams are the spike-timing-dependent plasticity parameters.
// Amplitudes and trace time constants live on the per-class dynamics
// presets (AdExParams); this holds the rule-level parameters shared by
// all synapses.
type StdpParams struct {
	Learn      bool       `def:"true" desc:"enable weight updates -- traces still decay when off"`
	Window     float32    `def:"1" min:"0" desc:"recent-spike window in msec: a neuron counts as having just spiked if its last spike is within this window of the current time.  Deliberately independent of the integration timestep"`
	ExcRange   minmax.F32 `view:"inline" desc:"valid weight range for excitatory synapses"`
	InhRange   minmax.F32 `view:"inline" desc:"valid weight range for inhibitory synapses"`
	RewardGain float32    `def:"0.1" desc:"multiplicative strengthening per unit reward for synapses whose pre and post eligibility traces are both above RewardThr"`
	RewardThr  float32    `def:"0.5" desc:"eligibility trace threshold for reward credit assignment"`
}

func (sp *StdpParams) Defaults() {
	sp.Learn = true
	sp.Window = 1
	sp.ExcRange.Set(0, 10)
	sp.InhRange.Set(-10, 0)
	sp.RewardGain = 0.1
	sp.RewardThr = 0.5
}

func (sp *StdpParams) Update() {
}

// ClampWt clamps the synapse weight into its sign-appropriate range
func (sp *StdpParams) ClampWt(sy *Synapse) {
	if sy.Exc {
		sy.Wt = sp.ExcRange.ClipVal(sy.Wt)
	} else {
		sy.Wt = sp.InhRange.ClipVal(sy.Wt)
	}
}

// JustSpiked returns true if the neuron's last spike falls within the
// recent-spike window of time t.
func (sp *StdpParams) JustSpiked(nrn *Neuron, t float32) bool {
	return nrn.LastSpike >= 0 && t-nrn.LastSpike <= sp.Window
}

// Dwt applies one STDP update to the synapse at time t: potentiation
// when the presynaptic neuron just spiked onto a positive postsynaptic
// trace (pre shortly before post), depression when the postsynaptic
// neuron just spiked onto a positive presynaptic trace (post shortly
// before pre).  Both eligibility traces are then updated: set to 1 on a
// spike, otherwise decayed toward 0.  The weight is clamped to its
// valid range after every update.  pr is the presynaptic neuron's
// dynamics preset, which carries the amplitudes and time constants.
func (sp *StdpParams) Dwt(sy *Synapse, sn, rn *Neuron, pr *AdExParams, t, dt float32) {
	preSpk := sp.JustSpiked(sn, t)
	postSpk := sp.JustSpiked(rn, t)
	if sp.Learn {
		if preSpk && sy.PostTrace > 0 {
			sy.Wt += sy.Lrate * pr.AmpLTP * sy.PostTrace
		}
		if postSpk && sy.PreTrace > 0 {
			sy.Wt -= sy.Lrate * pr.AmpLTD * sy.PreTrace
		}
	}
	if preSpk {
		sy.PreTrace = 1
	} else {
		sy.PreTrace *= math32.Exp(-dt / pr.TauPlus)
	}
	if postSpk {
		sy.PostTrace = 1
	} else {
		sy.PostTrace *= math32.Exp(-dt / pr.TauMinus)
	}
	sp.ClampWt(sy)
}

// RewardDwt strengthens the synapse in proportion to reward r if both
// eligibility traces exceed the credit threshold -- credit assignment
// for recently coactive synapses.
func (sp *StdpParams) RewardDwt(sy *Synapse, r float32) {
	if sy.PreTrace > sp.RewardThr && sy.PostTrace > sp.RewardThr {
		sy.Wt += sp.RewardGain * r * sy.Wt
		sp.ClampWt(sy)
	}
}
