// Copyright (c) 2024, The Spikenet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"fmt"
	"reflect"
)

// spikenet.Synapse holds state for one directed, delayed connection
// between neurons.  The connectivity (Send, Recv, Delay, Exc) is fixed
// at construction; only Wt and the two eligibility traces mutate.
// All variables accessible via the VarByName / VarByIndex interface must
// be float32 and come first, in contiguous order.
type Synapse struct {
	Wt        float32 `desc:"synaptic weight -- positive for excitatory, negative for inhibitory, clamped to its sign's valid range after every plasticity update"`
	Delay     float32 `desc:"transmission delay in msec -- spikes arrive at the receiver this long after they fire"`
	Lrate     float32 `desc:"plasticity rate multiplier for STDP updates on this synapse"`
	PreTrace  float32 `desc:"presynaptic eligibility trace -- 1 on a presynaptic spike, decays exponentially"`
	PostTrace float32 `desc:"postsynaptic eligibility trace -- 1 on a postsynaptic spike, decays exponentially"`

	Send int32 `desc:"index of the presynaptic neuron"`
	Recv int32 `desc:"index of the postsynaptic neuron"`
	Exc  bool  `desc:"excitatory (true) or inhibitory (false) -- derived from the presynaptic neuron class, determines delivery sign and weight range"`
}

var SynapseVars = []string{"Wt", "Delay", "Lrate", "PreTrace", "PostTrace"}

var SynapseVarsMap map[string]int

func init() {
	SynapseVarsMap = make(map[string]int, len(SynapseVars))
	for i, v := range SynapseVars {
		SynapseVarsMap[v] = i
	}
}

func (sy *Synapse) VarNames() []string {
	return SynapseVars
}

// SynapseVarByName returns the index of the variable in the Synapse, or error
func SynapseVarByName(varNm string) (int, error) {
	i, ok := SynapseVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("Synapse VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in SynapseVars list)
func (sy *Synapse) VarByIndex(idx int) float32 {
	v := reflect.ValueOf(*sy)
	return v.Field(idx).Interface().(float32)
}

// VarByName returns variable by name, or error
func (sy *Synapse) VarByName(varNm string) (float32, error) {
	i, err := SynapseVarByName(varNm)
	if err != nil {
		return 0, err
	}
	return sy.VarByIndex(i), nil
}
