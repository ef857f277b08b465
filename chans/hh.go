// Copyright (c) 2024, The Spikenet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chans

import "github.com/chewxy/math32"

// HHParams holds Hodgkin-Huxley channel parameters for the
// conductance-based spiking mode.  Conductances are in mS/cm^2,
// potentials in mV, capacitance in uF/cm^2, matching the original
// squid-axon parameterization so the standard rate functions apply.
type HHParams struct {
	Gbar    Chans   `view:"inline" desc:"maximal conductances for Na, K, leak channels"`
	ENa     float32 `def:"50" desc:"sodium reversal potential"`
	EK      float32 `def:"-77" desc:"potassium reversal potential"`
	EL      float32 `def:"-54.4" desc:"leak reversal potential"`
	C       float32 `def:"1" min:"0.1" desc:"membrane capacitance"`
	VDetect float32 `def:"0" desc:"detection voltage for registering a spike as an upward threshold crossing -- there is no reset in this mode"`
}

func (hp *HHParams) Defaults() {
	hp.Gbar.SetAll(120, 36, 0.3, 0)
	hp.ENa = 50
	hp.EK = -77
	hp.EL = -54.4
	hp.C = 1
	hp.VDetect = 0
}

func (hp *HHParams) Update() {
}

// vtrap evaluates x / (exp(x/y) - 1) guarding the removable
// singularity at x = 0.
func vtrap(x, y float32) float32 {
	if math32.Abs(x/y) < 1e-6 {
		return y * (1 - x/y/2)
	}
	return x / (math32.Exp(x/y) - 1)
}

// AlphaM is the opening rate for the Na activation gate m
func (hp *HHParams) AlphaM(vm float32) float32 {
	return 0.1 * vtrap(-(vm+40), 10)
}

// BetaM is the closing rate for the Na activation gate m
func (hp *HHParams) BetaM(vm float32) float32 {
	return 4 * math32.Exp(-(vm+65)/18)
}

// AlphaH is the opening rate for the Na inactivation gate h
func (hp *HHParams) AlphaH(vm float32) float32 {
	return 0.07 * math32.Exp(-(vm+65)/20)
}

// BetaH is the closing rate for the Na inactivation gate h
func (hp *HHParams) BetaH(vm float32) float32 {
	return 1 / (1 + math32.Exp(-(vm+35)/10))
}

// AlphaN is the opening rate for the K activation gate n
func (hp *HHParams) AlphaN(vm float32) float32 {
	return 0.01 * vtrap(-(vm+55), 10)
}

// BetaN is the closing rate for the K activation gate n
func (hp *HHParams) BetaN(vm float32) float32 {
	return 0.125 * math32.Exp(-(vm+65)/80)
}

// GateSteady returns the steady-state value alpha / (alpha + beta)
// for a gate with the given rates, used to initialize gating state
// at the resting potential.
func GateSteady(alpha, beta float32) float32 {
	return alpha / (alpha + beta)
}

// Inet computes the net current (uA/cm^2, depolarizing positive) from
// the channel conductances, gating variables, and membrane potential,
// with ext the externally injected current.
func (hp *HHParams) Inet(vm, m, h, n, ext float32) float32 {
	iNa := hp.Gbar.Na * m * m * m * h * (vm - hp.ENa)
	iK := hp.Gbar.K * n * n * n * n * (vm - hp.EK)
	iL := hp.Gbar.L * (vm - hp.EL)
	return ext - iNa - iK - iL
}
