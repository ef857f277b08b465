// Copyright (c) 2024, The Spikenet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spikenet is the overall repository for the spikenet spiking
point-neuron simulation engine, implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* spikenet: the core engine: adaptive exponential (AdEx) and
conductance-based point-neuron dynamics, delayed synaptic delivery,
spike-timing-dependent plasticity (STDP), probabilistic region topology,
and the global oscillator / neuromodulator state that biases per-neuron
input current.

* chans: ion channel conductance parameters for the conductance-based
dynamics mode, as a point-neuron equivalent circuit with voltage-gated
sodium and potassium channels.

* examples: runnable programs demonstrating the engine.  examples/pulse
drives a small three-region network with a constant input pulse and
reports spiking activity.

Higher-level consumers (memory systems, decision layers, visualization,
APIs) are external to this repository: they supply numeric input vectors
and scalar control signals (attention, arousal, reward) and consume
activity records and network state snapshots.
*/
package spikenet
