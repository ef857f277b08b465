// Copyright (c) 2024, The Spikenet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"fmt"
	"reflect"

	"github.com/chewxy/math32"
	"github.com/goki/ki/kit"
)

// spikenet.Neuron holds all of the neuron (unit) level state.
// All variables accessible via the VarByName / VarByIndex interface must be
// float32 and come first, in contiguous order -- identity fields are at the end.
type Neuron struct {
	Vm        float32 `desc:"membrane potential in mV -- integrates net current over time, reset to VR on spike in AdEx mode, continuous in conductance mode"`
	Adapt     float32 `desc:"adaptation current w in pA -- rises with sustained depolarization and on each spike (by preset B), producing spike-frequency adaptation"`
	GateM     float32 `desc:"Na activation gating variable m -- conductance mode only"`
	GateH     float32 `desc:"Na inactivation gating variable h -- conductance mode only"`
	GateN     float32 `desc:"K activation gating variable n -- conductance mode only"`
	SpkTrace  float32 `desc:"decaying trace of recent spiking -- set to 1 on spike, decays exponentially with the preset LTP time constant -- gates reward credit assignment"`
	SynI      float32 `desc:"accumulated pending synaptic current in pA from delivered events -- decays with the preset synaptic time constant"`
	Spike     float32 `desc:"whether neuron spiked on the current step (0 or 1)"`
	Ext       float32 `desc:"external input current in pA injected for the current episode"`
	Noise     float32 `desc:"last noise value added to input current"`
	LastSpike float32 `desc:"time of last spike in msec of simulation time -- -1 if never spiked"`

	Class  NeuronClass `desc:"biological class of this neuron -- selects the dynamics parameter preset"`
	Region int32       `desc:"index of the region this neuron belongs to"`
}

// NeuronVars are the named float32 variables, in struct field order.
var NeuronVars = []string{"Vm", "Adapt", "GateM", "GateH", "GateN", "SpkTrace", "SynI", "Spike", "Ext", "Noise", "LastSpike"}

var NeuronVarsMap map[string]int

func init() {
	NeuronVarsMap = make(map[string]int, len(NeuronVars))
	for i, v := range NeuronVars {
		NeuronVarsMap[v] = i
	}
}

func (nrn *Neuron) VarNames() []string {
	return NeuronVars
}

// NeuronVarIndexByName returns the index of the variable in the Neuron, or error
func NeuronVarIndexByName(varNm string) (int, error) {
	i, ok := NeuronVarsMap[varNm]
	if !ok {
		return -1, fmt.Errorf("Neuron VarByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in NeuronVars list)
func (nrn *Neuron) VarByIndex(idx int) float32 {
	v := reflect.ValueOf(*nrn)
	return v.Field(idx).Interface().(float32)
}

// VarByName returns variable by name, or error
func (nrn *Neuron) VarByName(varNm string) (float32, error) {
	i, err := NeuronVarIndexByName(varNm)
	if err != nil {
		return math32.NaN(), err
	}
	return nrn.VarByIndex(i), nil
}

// IsInhib returns true if this neuron makes inhibitory connections
// (fast-spiking interneuron class)
func (nrn *Neuron) IsInhib() bool {
	return nrn.Class == Inhibitory
}

//////////////////////////////////////////////////////////////////////////////////////
//  NeuronClass

// NeuronClass are the biological classes of neurons, each selecting a
// dynamics parameter preset (adaptation coupling, spike increment, and
// adaptation time constant differ between them).
type NeuronClass int

//go:generate stringer -type=NeuronClass

var KiT_NeuronClass = kit.Enums.AddEnum(NeuronClassN, kit.NotBitFlag, nil)

func (ev NeuronClass) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *NeuronClass) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// Excitatory principal cells -- regular-spiking preset
	Excitatory NeuronClass = iota

	// Inhibitory fast interneurons -- fast-spiking preset, negative outgoing weights
	Inhibitory

	// Sensory input cells -- adapting preset
	Sensory

	// Motor output cells -- bursting preset
	Motor

	NeuronClassN
)
