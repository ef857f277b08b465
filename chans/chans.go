// Copyright (c) 2024, The Spikenet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides ion channel conductance parameters for computing
a point-neuron approximation based on the standard equivalent RC circuit
model of a neuron (i.e., basic Ohms law equations).
Includes the voltage-gated sodium and potassium channels and leak used
by the conductance-based spiking mode.
*/
package chans

// Chans are ion channel conductances used in computing point-neuron currents
type Chans struct {
	Na float32 `desc:"voltage-gated sodium (Na) channels driving the rapid spike upstroke"`
	K  float32 `desc:"delayed-rectifier potassium (K+) channels repolarizing the membrane after a spike"`
	L  float32 `desc:"constant leak channels -- determines resting potential"`
	I  float32 `desc:"inhibitory chloride (Cl-) channels activated by synaptic GABA"`
}

// SetAll sets all the values
func (ch *Chans) SetAll(na, k, l, i float32) {
	ch.Na, ch.K, ch.L, ch.I = na, k, l, i
}
