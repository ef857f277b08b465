// Copyright (c) 2024, The Spikenet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

///////////////////////////////////////////////////////////////////////
//  delivery.go implements delayed synaptic current delivery

// PendingDelivery is one scheduled synaptic current arrival.
// Created when the presynaptic neuron spikes, consumed once the
// arrival time is reached.
type PendingDelivery struct {
	Recv int32   `desc:"index of the target neuron"`
	At   float32 `desc:"arrival time in msec of simulation time"`
	Amp  float32 `desc:"current amplitude in pA -- always non-negative, sign is applied at delivery from the queue it sits in"`
}

// GainParams convert a synapse weight into a delivered current
// amplitude at spike time: amp = |wt| * modFactor(recv) * gain.
type GainParams struct {
	Exc float32 `def:"50" desc:"pA of delivered current per unit weight for excitatory synapses"`
	Inh float32 `def:"30" desc:"pA of delivered current per unit weight for inhibitory synapses"`
}

func (gp *GainParams) Defaults() {
	gp.Exc = 50
	gp.Inh = 30
}

func (gp *GainParams) Update() {
}

// DeliveryQueue holds pending synaptic current deliveries, split by
// sign.  It never invents connectivity -- it only moves
// already-weighted current; weight-to-amplitude conversion and
// neuromodulation scaling happen at spike time.
type DeliveryQueue struct {
	Exc []PendingDelivery `desc:"pending excitatory deliveries"`
	Inh []PendingDelivery `desc:"pending inhibitory deliveries"`
}

// Add schedules a delivery of amp pA to neuron recv at time at.
func (dq *DeliveryQueue) Add(recv int32, at, amp float32, exc bool) {
	pd := PendingDelivery{Recv: recv, At: at, Amp: amp}
	if exc {
		dq.Exc = append(dq.Exc, pd)
	} else {
		dq.Inh = append(dq.Inh, pd)
	}
}

// DeliverDue applies every pending delivery whose arrival time is at or
// before t, adding (excitatory) or subtracting (inhibitory) its
// amplitude into the target neuron's synaptic current accumulator.
// Consumed items are removed; unconsumed items remain queued.
// Returns the number of deliveries applied.
func (dq *DeliveryQueue) DeliverDue(t float32, neurons []Neuron) int {
	n := 0
	n += deliverDue(&dq.Exc, t, neurons, 1)
	n += deliverDue(&dq.Inh, t, neurons, -1)
	return n
}

func deliverDue(q *[]PendingDelivery, t float32, neurons []Neuron, sign float32) int {
	n := 0
	kept := (*q)[:0]
	for _, pd := range *q {
		if pd.At <= t {
			neurons[pd.Recv].SynI += sign * pd.Amp
			n++
		} else {
			kept = append(kept, pd)
		}
	}
	*q = kept
	return n
}

// Len returns the total number of pending deliveries
func (dq *DeliveryQueue) Len() int {
	return len(dq.Exc) + len(dq.Inh)
}

// Reset discards all pending deliveries
func (dq *DeliveryQueue) Reset() {
	dq.Exc = dq.Exc[:0]
	dq.Inh = dq.Inh[:0]
}
