// Copyright (c) 2024, The Spikenet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/chewxy/math32"
	"github.com/emer/etable/etensor"
	"github.com/goki/ki/ints"
)

///////////////////////////////////////////////////////////////////////
//  network.go implements the network and the simulation stepper

// ActivityRecord is one sampled activity entry for one neuron
type ActivityRecord struct {
	Neuron int32   `desc:"neuron index"`
	Time   float32 `desc:"simulation time of the sample, msec"`
	Vm     float32 `desc:"membrane potential at the sample"`
	Spike  bool    `desc:"whether the neuron fired on the sampled step"`
}

// NetState is a copyable snapshot of the full network state, for
// external consumers (memory systems, visualization).
type NetState struct {
	Neurons []Neuron           `desc:"neuron state copies"`
	Syns    []Synapse          `desc:"synapse state copies"`
	Phases  [OscBandsN]float32 `desc:"oscillator phases"`
	DA      float32            `desc:"dopamine level"`
	SE      float32            `desc:"serotonin level"`
	ACh     float32            `desc:"acetylcholine level"`
	NE      float32            `desc:"norepinephrine level"`
	Regions map[string][]int32 `desc:"region membership: name to neuron indexes"`
}

// spikenet.Network is a population of spiking point-neurons connected
// by weighted, delayed synapses, with a global oscillator /
// neuromodulator state feeding back into per-neuron input current.
// Each instance owns all of its state exclusively: one logical owner
// must drive one instance at a time -- nothing here is synchronized.
type Network struct {
	Nm   string `desc:"overall name of network -- helps discriminate if there are multiple"`
	Seed int64  `desc:"random seed used for topology generation"`

	Act  ActParams  `view:"add-fields" desc:"neuron dynamics parameters"`
	Stdp StdpParams `view:"inline" desc:"plasticity parameters"`
	Mod  ModParams  `view:"inline" desc:"modulation parameters"`
	Topo TopoParams `view:"inline" desc:"topology generation parameters"`
	Gain GainParams `view:"inline" desc:"weight to delivered-current conversion"`

	StepCount   int     `def:"100" desc:"number of integration steps per episode"`
	SampleEvery int     `def:"10" desc:"record a sampled activity entry every this many steps"`
	MaxRecords  int     `def:"8192" desc:"cap on retained history records -- oldest are dropped beyond this"`
	ResetWts    bool    `desc:"whether Reset also reverts synapse weights to their initial values -- off by default so learned structure survives a reset"`

	Neurons   []Neuron  `desc:"all neurons, indexed by region construction order"`
	Syns      []Synapse `desc:"all synapses"`
	Regions   []Region  `desc:"named regions, including the generated lateral inhibition pool (last)"`
	SendIndex [][]int32 `view:"-" desc:"outgoing synapse indexes per neuron"`
	InIdxs    []int32   `view:"-" desc:"neurons receiving the external input vector"`
	InitWts   []float32 `view:"-" desc:"snapshot of weights at construction, for ResetWts"`

	Queue   DeliveryQueue    `view:"-" desc:"pending synaptic deliveries"`
	Mods    ModState         `desc:"global oscillator / neuromodulator state"`
	Time    Time             `desc:"timing state"`
	Records []ActivityRecord `view:"-" desc:"retained activity history, capped at MaxRecords"`

	Rand *rand.Rand `view:"-" desc:"seeded generator driving topology construction"`
}

// NewNetwork constructs a network from the given region specs, with
// all randomness drawn from the given seed so the resulting synapse
// set is reproducible.
func NewNetwork(name string, specs []RegionSpec, seed int64) (*Network, error) {
	nt := &Network{Nm: name}
	nt.Defaults()
	nt.Seed = seed
	nt.Rand = rand.New(rand.NewSource(seed))
	if err := nt.Build(specs); err != nil {
		return nil, err
	}
	nt.InitWts = make([]float32, len(nt.Syns))
	for si := range nt.Syns {
		nt.InitWts[si] = nt.Syns[si].Wt
	}
	nt.InitActs()
	return nt, nil
}

// Defaults sets all parameters to their defaults
func (nt *Network) Defaults() {
	nt.Act.Defaults()
	nt.Stdp.Defaults()
	nt.Mod.Defaults()
	nt.Topo.Defaults()
	nt.Gain.Defaults()
	nt.StepCount = 100
	nt.SampleEvery = 10
	nt.MaxRecords = 8192
	nt.Time.Defaults()
}

// UpdateParams updates all params given any changes that might have
// been made to individual values
func (nt *Network) UpdateParams() {
	nt.Act.Update()
	nt.Stdp.Update()
	nt.Mod.Update()
	nt.Topo.Update()
	nt.Gain.Update()
}

// InitActs initializes all continuous neuron state, the modulation
// state, timing, the delivery queue, and the history buffers.
// Weights and topology are untouched.
func (nt *Network) InitActs() {
	for ni := range nt.Neurons {
		nt.Act.InitActs(&nt.Neurons[ni])
	}
	nt.Mods.Init()
	nt.Queue.Reset()
	nt.Time.Reset()
	nt.Records = nil
}

// Reset restores neuron continuous state and modulation state to
// baseline and clears pending deliveries and history.  Synapse weights
// and topology are left untouched unless ResetWts is set, in which
// case weights revert to their values at construction.
func (nt *Network) Reset() {
	nt.InitActs()
	if nt.ResetWts {
		for si := range nt.Syns {
			sy := &nt.Syns[si]
			sy.Wt = nt.InitWts[si]
			sy.PreTrace = 0
			sy.PostTrace = 0
		}
	}
}

// ProcessInput injects the given current vector (pA) into the input
// neurons and runs one fixed-length episode, returning the activity
// records sampled during it.  The vector is mapped round-robin onto
// the input neurons.  Non-finite input is rejected before any state
// mutates.
func (nt *Network) ProcessInput(currents []float32) ([]ActivityRecord, error) {
	if len(currents) == 0 {
		err := fmt.Errorf("Network.ProcessInput: %v: empty input vector", nt.Nm)
		log.Println(err)
		return nil, err
	}
	for i, c := range currents {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			err := fmt.Errorf("Network.ProcessInput: %v: non-finite input current at index %v", nt.Nm, i)
			log.Println(err)
			return nil, err
		}
	}
	for i, idx := range nt.InIdxs {
		nt.Neurons[idx].Ext = currents[i%len(currents)]
	}
	recs := nt.RunEpisode()
	for i := range nt.InIdxs {
		nt.Neurons[nt.InIdxs[i]].Ext = 0
	}
	return recs, nil
}

// ApplyInputPattern is a convenience wrapper injecting a tensor
// pattern as the input current vector.
func (nt *Network) ApplyInputPattern(pat *etensor.Float32) ([]ActivityRecord, error) {
	return nt.ProcessInput(pat.Values)
}

// RunEpisode runs StepCount integration steps to completion and
// returns the activity records sampled during the episode.  There is
// no suspension or cancellation mid-episode.
func (nt *Network) RunEpisode() []ActivityRecord {
	nt.Time.EpisodeStart()
	var recs []ActivityRecord
	for step := 0; step < nt.StepCount; step++ {
		nt.StepNet()
		if step%nt.SampleEvery == 0 {
			recs = nt.sampleActivity(recs)
		}
	}
	return recs
}

// StepNet advances the whole network by one timestep: oscillator
// phases, neuron integration with modulation biases, spike fanout onto
// the delivery queue, due deliveries, STDP, and the neuromodulator
// update from population activity.
func (nt *Network) StepNet() {
	dt := nt.Time.TimePerCyc
	t := nt.Time.Time

	nt.Mod.StepOsc(&nt.Mods, dt)

	fired := 0
	for ni := range nt.Neurons {
		nrn := &nt.Neurons[ni]
		nrn.Spike = 0
		fn := nt.Regions[nrn.Region].Func
		bias := nt.Mod.OscBias(&nt.Mods, fn)
		if nt.Act.Integrate(nrn, dt, nrn.Ext+bias) {
			nrn.Spike = 1
			nrn.LastSpike = t
			fired++
			nt.sendSpike(int32(ni), t)
		}
	}

	nt.Queue.DeliverDue(t, nt.Neurons)

	for si := range nt.Syns {
		sy := &nt.Syns[si]
		sn := &nt.Neurons[sy.Send]
		rn := &nt.Neurons[sy.Recv]
		nt.Stdp.Dwt(sy, sn, rn, nt.Act.Preset(sn), t, dt)
	}

	nt.Mod.StepLevels(&nt.Mods, float32(fired)/float32(len(nt.Neurons)))

	nt.Time.CycleInc()
}

// sendSpike enqueues delayed deliveries on all outgoing synapses of
// the spiking neuron: amplitude = |wt| * modFactor(target) * gain.
func (nt *Network) sendSpike(ni int32, t float32) {
	for _, si := range nt.SendIndex[ni] {
		sy := &nt.Syns[si]
		rn := &nt.Neurons[sy.Recv]
		f := nt.Mod.ModFactor(&nt.Mods, rn.Class, nt.Regions[rn.Region].Func)
		amp := math32.Abs(sy.Wt) * f
		if sy.Exc {
			amp *= nt.Gain.Exc
		} else {
			amp *= nt.Gain.Inh
		}
		nt.Queue.Add(sy.Recv, t+sy.Delay, amp, sy.Exc)
	}
}

// sampleActivity appends one record per neuron to recs and to the
// retained history, trimming the oldest history beyond MaxRecords.
func (nt *Network) sampleActivity(recs []ActivityRecord) []ActivityRecord {
	t := nt.Time.Time
	for ni := range nt.Neurons {
		nrn := &nt.Neurons[ni]
		rec := ActivityRecord{Neuron: int32(ni), Time: t, Vm: nrn.Vm, Spike: nrn.Spike > 0}
		recs = append(recs, rec)
		nt.Records = append(nt.Records, rec)
	}
	over := ints.MaxInt(0, len(nt.Records)-nt.MaxRecords)
	if over > 0 {
		nt.Records = nt.Records[over:]
	}
	return recs
}

// ApplyReward shifts dopamine by r (clamped to [0, 1]) and strengthens
// every synapse whose pre and post eligibility traces are both above
// threshold, in proportion to r.
func (nt *Network) ApplyReward(r float32) {
	nt.Mods.DA = nt.Mod.LevelRange.ClipVal(nt.Mods.DA + r)
	for si := range nt.Syns {
		nt.Stdp.RewardDwt(&nt.Syns[si], r)
	}
}

// SetAttention sets the attention setpoint (clamped to [0, 1]), which
// scales the theta-tracking acetylcholine level.
func (nt *Network) SetAttention(attn float32) {
	nt.Mods.Attn = nt.Mod.LevelRange.ClipVal(attn)
}

// SetArousal sets the norepinephrine arousal level (clamped to [0, 1])
func (nt *Network) SetArousal(arousal float32) {
	nt.Mods.NE = nt.Mod.LevelRange.ClipVal(arousal)
}

// State returns a copyable snapshot of the full network state
func (nt *Network) State() *NetState {
	st := &NetState{
		Neurons: append([]Neuron(nil), nt.Neurons...),
		Syns:    append([]Synapse(nil), nt.Syns...),
		Phases:  nt.Mods.Phases,
		DA:      nt.Mods.DA,
		SE:      nt.Mods.SE,
		ACh:     nt.Mods.ACh,
		NE:      nt.Mods.NE,
		Regions: make(map[string][]int32, len(nt.Regions)),
	}
	for ri := range nt.Regions {
		rg := &nt.Regions[ri]
		st.Regions[rg.Name] = append([]int32(nil), rg.Idxs...)
	}
	return st
}

// WeightsTensor returns the summed weight matrix as a send x recv
// tensor -- parallel synapses between the same pair are summed.
func (nt *Network) WeightsTensor() *etensor.Float32 {
	n := len(nt.Neurons)
	tsr := etensor.NewFloat32([]int{n, n}, nil, []string{"Send", "Recv"})
	for si := range nt.Syns {
		sy := &nt.Syns[si]
		tsr.Values[int(sy.Send)*n+int(sy.Recv)] += sy.Wt
	}
	return tsr
}
