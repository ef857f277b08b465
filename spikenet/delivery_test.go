// Copyright (c) 2024, The Spikenet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"testing"
)

func TestDeliverDue(t *testing.T) {
	nrns := make([]Neuron, 3)
	dq := DeliveryQueue{}
	dq.Add(0, 1.0, 5, true)
	dq.Add(1, 2.0, 3, true)
	dq.Add(2, 1.0, 4, false)
	if dq.Len() != 3 {
		t.Fatalf("queue len: got %v, want 3", dq.Len())
	}

	n := dq.DeliverDue(1.0, nrns)
	if n != 2 {
		t.Errorf("deliveries at t=1: got %v, want 2", n)
	}
	CmprFloats([]float32{nrns[0].SynI, nrns[1].SynI, nrns[2].SynI},
		[]float32{5, 0, -4}, "SynI after t=1 deliveries", t)
	if dq.Len() != 1 {
		t.Errorf("remaining queue len: got %v, want 1", dq.Len())
	}

	n = dq.DeliverDue(2.0, nrns)
	if n != 1 {
		t.Errorf("deliveries at t=2: got %v, want 1", n)
	}
	CmprFloats([]float32{nrns[0].SynI, nrns[1].SynI, nrns[2].SynI},
		[]float32{5, 3, -4}, "SynI after t=2 deliveries", t)
	if dq.Len() != 0 {
		t.Errorf("queue should be empty: got %v", dq.Len())
	}
}

func TestQueueReset(t *testing.T) {
	dq := DeliveryQueue{}
	dq.Add(0, 1.0, 5, true)
	dq.Add(0, 1.0, 5, false)
	dq.Reset()
	if dq.Len() != 0 {
		t.Errorf("queue len after reset: got %v, want 0", dq.Len())
	}
}
