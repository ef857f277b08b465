// Copyright (c) 2024, The Spikenet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"github.com/chewxy/math32"
	"github.com/emer/emergent/erand"
	"github.com/goki/ki/kit"
	"github.com/neurosim/spikenet/chans"
)

///////////////////////////////////////////////////////////////////////
//  act.go contains the neuron dynamics params and integration functions

// AdExParams are the adaptive exponential integrate-and-fire parameters
// for one neuron class preset (Brette & Gerstner, 2005).  Units are
// biological: capacitance in pF, conductance in nS, potential in mV,
// current in pA, time in msec -- so current = conductance * potential
// works out to pA directly.
type AdExParams struct {
	C      float32 `def:"281" min:"1" desc:"membrane capacitance"`
	GL     float32 `def:"30" desc:"leak conductance"`
	EL     float32 `def:"-70.6" desc:"leak reversal (resting) potential"`
	VT     float32 `def:"-50.4" desc:"spike-onset threshold potential for the exponential term"`
	DeltaT float32 `def:"2" min:"0.1" desc:"slope factor for the exponential spike-onset term"`
	VR     float32 `def:"-70.6" desc:"post-spike reset potential"`
	VPeak  float32 `def:"20" desc:"peak potential -- reaching it registers a spike and triggers reset"`
	A      float32 `desc:"adaptation coupling to subthreshold voltage (nS) -- preset-specific"`
	B      float32 `desc:"spike-triggered adaptation increment (pA) -- preset-specific"`
	TauW   float32 `min:"1" desc:"adaptation time constant (msec) -- preset-specific"`
	TauSyn float32 `def:"5" min:"0.1" desc:"decay time constant for accumulated synaptic current"`

	TauPlus  float32 `def:"20" min:"0.1" desc:"STDP potentiation (and spike trace) decay time constant"`
	TauMinus float32 `def:"20" min:"0.1" desc:"STDP depression trace decay time constant"`
	AmpLTP   float32 `def:"0.01" desc:"STDP potentiation amplitude"`
	AmpLTD   float32 `def:"0.012" desc:"STDP depression amplitude -- slightly exceeds AmpLTP so only tightly causal pairings potentiate in the long run"`

	HH *chans.HHParams `desc:"optional Hodgkin-Huxley channel parameters -- required for the conductance-based mode, which falls back to AdEx when nil"`
}

// Defaults sets the regular-spiking baseline -- class presets adjust
// A, B, TauW (and VR for bursting) on top of this.
func (ap *AdExParams) Defaults() {
	ap.C = 281
	ap.GL = 30
	ap.EL = -70.6
	ap.VT = -50.4
	ap.DeltaT = 2
	ap.VR = -70.6
	ap.VPeak = 20
	ap.A = 4
	ap.B = 80.5
	ap.TauW = 144
	ap.TauSyn = 5
	ap.TauPlus = 20
	ap.TauMinus = 20
	ap.AmpLTP = 0.01
	ap.AmpLTD = 0.012
}

func (ap *AdExParams) Update() {
}

// RegularSpiking is the default excitatory principal cell preset
func (ap *AdExParams) RegularSpiking() {
	ap.Defaults()
}

// FastSpiking is the interneuron preset: negligible adaptation,
// fast recovery
func (ap *AdExParams) FastSpiking() {
	ap.Defaults()
	ap.A = 2
	ap.B = 10
	ap.TauW = 30
}

// Adapting is the sensory cell preset: strong, slow adaptation so
// sustained input produces a decelerating spike train
func (ap *AdExParams) Adapting() {
	ap.Defaults()
	ap.A = 2
	ap.B = 100
	ap.TauW = 300
}

// Bursting is the motor cell preset: elevated reset near threshold
// produces burst firing
func (ap *AdExParams) Bursting() {
	ap.Defaults()
	ap.A = 4
	ap.B = 120
	ap.TauW = 50
	ap.VR = -47.4
}

//////////////////////////////////////////////////////////////////////////////////////
//  DynModes

// DynModes are the interchangeable neuron dynamics modes
type DynModes int

//go:generate stringer -type=DynModes

var KiT_DynModes = kit.Enums.AddEnum(DynModesN, kit.NotBitFlag, nil)

func (ev DynModes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *DynModes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// AdExMode is adaptive exponential integrate-and-fire with hard reset
	AdExMode DynModes = iota

	// CondMode is conductance-based (Hodgkin-Huxley) dynamics with
	// edge-triggered spike detection and no reset -- falls back to
	// AdExMode per-neuron when the preset has no channel parameters
	CondMode

	DynModesN
)

//////////////////////////////////////////////////////////////////////////////////////
//  ActNoiseParams

// ActNoiseParams contains parameters for additive noise on the
// injected input current
type ActNoiseParams struct {
	erand.RndParams
	On bool `desc:"whether to add noise to input current each step"`
}

func (an *ActNoiseParams) Update() {
}

func (an *ActNoiseParams) Defaults() {
	an.On = false
	an.Dist = erand.Gaussian
	an.Mean = 0
	an.Var = 5
}

//////////////////////////////////////////////////////////////////////////////////////
//  ActParams

// spikenet.ActParams contains all the neuron dynamics parameters and
// integration functions: per-class AdEx presets, the dynamics mode, and
// input noise.  This is included in spikenet.Network to drive the
// per-step computation.
type ActParams struct {
	Mode    DynModes                 `desc:"dynamics mode used for all neurons whose preset supports it"`
	Presets [NeuronClassN]AdExParams `view:"no-inline" desc:"dynamics parameter preset per neuron class"`
	Noise   ActNoiseParams           `view:"inline" desc:"additive input current noise"`
}

func (ac *ActParams) Defaults() {
	ac.Mode = AdExMode
	ac.Presets[Excitatory].RegularSpiking()
	ac.Presets[Inhibitory].FastSpiking()
	ac.Presets[Sensory].Adapting()
	ac.Presets[Motor].Bursting()
	ac.Noise.Defaults()
	ac.Update()
}

// Update must be called after any changes to parameters
func (ac *ActParams) Update() {
	for ci := range ac.Presets {
		ac.Presets[ci].Update()
	}
	ac.Noise.Update()
}

// Preset returns the dynamics preset for the given neuron's class
func (ac *ActParams) Preset(nrn *Neuron) *AdExParams {
	return &ac.Presets[nrn.Class]
}

// InitActs initializes the continuous neuron state to baseline.
// Does not touch identity fields (Class, Region).
func (ac *ActParams) InitActs(nrn *Neuron) {
	pr := ac.Preset(nrn)
	if ac.Mode == CondMode && pr.HH != nil {
		hp := pr.HH
		nrn.Vm = -65
		nrn.GateM = chans.GateSteady(hp.AlphaM(nrn.Vm), hp.BetaM(nrn.Vm))
		nrn.GateH = chans.GateSteady(hp.AlphaH(nrn.Vm), hp.BetaH(nrn.Vm))
		nrn.GateN = chans.GateSteady(hp.AlphaN(nrn.Vm), hp.BetaN(nrn.Vm))
	} else {
		nrn.Vm = pr.EL
		nrn.GateM = 0
		nrn.GateH = 0
		nrn.GateN = 0
	}
	nrn.Adapt = 0
	nrn.SpkTrace = 0
	nrn.SynI = 0
	nrn.Spike = 0
	nrn.Ext = 0
	nrn.Noise = 0
	nrn.LastSpike = -1
}

// Integrate advances the neuron's continuous state by one timestep of
// dt msec given externally injected current ext (pA), and reports
// whether the neuron spiked.  Dispatches on the dynamics mode, falling
// back to AdEx when channel parameters are absent.
func (ac *ActParams) Integrate(nrn *Neuron, dt, ext float32) bool {
	if ac.Noise.On {
		nrn.Noise = float32(ac.Noise.Gen(-1))
		ext += nrn.Noise
	}
	pr := ac.Preset(nrn)
	if ac.Mode == CondMode && pr.HH != nil {
		return ac.IntegrateHH(nrn, pr, dt, ext)
	}
	return ac.IntegrateAdEx(nrn, pr, dt, ext)
}

// IntegrateAdEx integrates the two-variable AdEx dynamics forward-Euler.
// On entry, a membrane potential at or above VPeak is registered as a
// spike: Vm is reset to VR exactly, the adaptation current is bumped by
// B, and the spike trace is set to 1.
func (ac *ActParams) IntegrateAdEx(nrn *Neuron, pr *AdExParams, dt, ext float32) bool {
	if nrn.Vm >= pr.VPeak {
		nrn.Vm = pr.VR
		nrn.Adapt += pr.B
		nrn.SpkTrace = 1
		return true
	}
	vm := nrn.Vm
	expTerm := pr.GL * pr.DeltaT * math32.Exp((vm-pr.VT)/pr.DeltaT)
	inet := -pr.GL*(vm-pr.EL) + expTerm - nrn.Adapt + ext + nrn.SynI
	nrn.Vm += dt * inet / pr.C
	nrn.Adapt += dt * (pr.A*(vm-pr.EL) - nrn.Adapt) / pr.TauW
	if nrn.Vm > pr.VPeak { // spike registered on next entry, at exactly VPeak
		nrn.Vm = pr.VPeak
	}
	nrn.SpkTrace *= math32.Exp(-dt / pr.TauPlus)
	nrn.SynI *= math32.Exp(-dt / pr.TauSyn)
	return false
}

// IntegrateHH integrates conductance-based dynamics forward-Euler:
// three gating variables via voltage-dependent rate functions, then Vm
// from the ionic currents.  There is no reset -- a spike is an upward
// crossing of the detection voltage.
func (ac *ActParams) IntegrateHH(nrn *Neuron, pr *AdExParams, dt, ext float32) bool {
	hp := pr.HH
	vm := nrn.Vm
	nrn.GateM += dt * (hp.AlphaM(vm)*(1-nrn.GateM) - hp.BetaM(vm)*nrn.GateM)
	nrn.GateH += dt * (hp.AlphaH(vm)*(1-nrn.GateH) - hp.BetaH(vm)*nrn.GateH)
	nrn.GateN += dt * (hp.AlphaN(vm)*(1-nrn.GateN) - hp.BetaN(vm)*nrn.GateN)
	inet := hp.Inet(vm, nrn.GateM, nrn.GateH, nrn.GateN, ext+nrn.SynI)
	nrn.Vm += dt * inet / hp.C
	spiked := vm < hp.VDetect && nrn.Vm >= hp.VDetect
	if spiked {
		nrn.SpkTrace = 1
	} else {
		nrn.SpkTrace *= math32.Exp(-dt / pr.TauPlus)
	}
	nrn.SynI *= math32.Exp(-dt / pr.TauSyn)
	return spiked
}
