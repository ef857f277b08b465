// Copyright (c) 2024, The Spikenet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spikenet implements the core spiking point-neuron simulation
engine: adaptive exponential (AdEx) and conductance-based neuron
dynamics, delayed synaptic current delivery, spike-timing-dependent
plasticity (STDP) with eligibility traces, probabilistic region
topology generation, and a global oscillator / neuromodulator state
that biases per-neuron input current.

A Network is constructed once from region specs with an explicit random
seed, then driven episode by episode: ProcessInput injects an external
current vector and runs a fixed number of integration steps, returning
sampled activity records.  ApplyReward, SetAttention, and SetArousal
are the scalar control surface for external consumers.

Everything is single-threaded and synchronous: one logical owner drives
one network instance at a time.
*/
package spikenet
