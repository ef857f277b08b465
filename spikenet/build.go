// Copyright (c) 2024, The Spikenet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"fmt"
	"log"

	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

///////////////////////////////////////////////////////////////////////
//  build.go generates the region / neuron / synapse topology

// RegionFuncs are functional tags for regions, used for selecting
// which oscillator band and neuromodulator biases apply to a neuron.
type RegionFuncs int

//go:generate stringer -type=RegionFuncs

var KiT_RegionFuncs = kit.Enums.AddEnum(RegionFuncsN, kit.NotBitFlag, nil)

func (ev RegionFuncs) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *RegionFuncs) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

const (
	// SensoryFunc regions receive the external input vector
	SensoryFunc RegionFuncs = iota

	// AssocFunc is generic association cortex -- gamma-biased
	AssocFunc

	// MemoryFunc is hippocampal-style memory -- theta-biased
	MemoryFunc

	// RewardFunc regions are scaled by dopamine
	RewardFunc

	// AttnFunc regions are scaled by acetylcholine
	AttnFunc

	// MotorFunc regions drive external outputs
	MotorFunc

	// ThalamicFunc regions are alpha-biased
	ThalamicFunc

	// InhibFunc is the lateral inhibition interneuron pool
	InhibFunc

	RegionFuncsN
)

// RegionSpec specifies one region to build: its neurons and the
// feed-forward connection it makes to the next region in the list.
type RegionSpec struct {
	Name  string      `desc:"region name -- must be unique"`
	N     int         `desc:"number of neurons -- must be > 0"`
	Class NeuronClass `desc:"dominant neuron class -- roughly 1 in 5 neurons are the inhibitory interneuron subtype regardless"`
	Func  RegionFuncs `desc:"functional tag selecting modulation biases"`
	Prob  float32     `desc:"connection probability for the feed-forward pathway to the next region"`
	Wt    float32     `desc:"base weight for the feed-forward pathway to the next region"`
}

// Region is a named group of neurons.  Immutable after construction.
type Region struct {
	Name string      `desc:"region name"`
	Func RegionFuncs `desc:"functional tag"`
	Idxs []int32     `desc:"indexes of the neurons belonging to this region"`
}

// TopoParams are the topology generation parameters beyond the
// per-region specs: delay ranges, the lateral inhibition pool, and
// local recurrence.
type TopoParams struct {
	FFDelayMin    float32 `def:"1" desc:"minimum feed-forward transmission delay, msec"`
	FFDelayRange  float32 `def:"5" desc:"uniform range above the minimum feed-forward delay"`
	PoolFrac      float32 `def:"0.1" desc:"size of the lateral inhibition pool as a fraction of the total population"`
	PoolProb      float32 `def:"0.1" desc:"connection probability from the lateral inhibition pool into each region"`
	PoolWt        float32 `def:"0.5" desc:"base weight magnitude for lateral inhibition (stored negative)"`
	PoolDelayMin  float32 `def:"0.5" desc:"minimum lateral inhibition delay, msec"`
	PoolDelayRng  float32 `def:"2" desc:"uniform range above the minimum lateral inhibition delay"`
	RecurN        int     `def:"3" desc:"number of random same-region peers each neuron connects to"`
	RecurWt       float32 `def:"0.3" desc:"base weight for local recurrent connections"`
	RecurDelayMin float32 `def:"0.5" desc:"minimum local recurrent delay, msec"`
	RecurDelayRng float32 `def:"1.5" desc:"uniform range above the minimum local recurrent delay"`
	Lrate         float32 `def:"1" desc:"plasticity rate assigned to generated synapses"`
}

func (tp *TopoParams) Defaults() {
	tp.FFDelayMin = 1
	tp.FFDelayRange = 5
	tp.PoolFrac = 0.1
	tp.PoolProb = 0.1
	tp.PoolWt = 0.5
	tp.PoolDelayMin = 0.5
	tp.PoolDelayRng = 2
	tp.RecurN = 3
	tp.RecurWt = 0.3
	tp.RecurDelayMin = 0.5
	tp.RecurDelayRng = 1.5
	tp.Lrate = 1
}

func (tp *TopoParams) Update() {
}

// Build creates all neurons and synapses from the given region specs.
// Connectivity is a feed-forward backbone between consecutive regions,
// a lateral inhibition pool projecting sparsely into every region, and
// local recurrence within each region.  All randomness comes from the
// network's seeded generator, so identical seed and specs produce an
// identical synapse set.  Counts are fixed after this call.
func (nt *Network) Build(specs []RegionSpec) error {
	if len(specs) == 0 {
		err := fmt.Errorf("Network.Build: %v: no region specs given", nt.Nm)
		log.Println(err)
		return err
	}
	total := 0
	for _, sp := range specs {
		if sp.N <= 0 {
			err := fmt.Errorf("Network.Build: %v: region %v has invalid size %v", nt.Nm, sp.Name, sp.N)
			log.Println(err)
			return err
		}
		total += sp.N
	}

	nt.Regions = make([]Region, 0, len(specs)+1)
	nt.Neurons = make([]Neuron, 0, total)
	nt.Syns = nil

	for ri, sp := range specs {
		rg := Region{Name: sp.Name, Func: sp.Func}
		for ni := 0; ni < sp.N; ni++ {
			cls := sp.Class
			if ni%5 == 4 { // every 5th neuron is an interneuron
				cls = Inhibitory
			}
			idx := int32(len(nt.Neurons))
			nt.Neurons = append(nt.Neurons, Neuron{Class: cls, Region: int32(ri)})
			rg.Idxs = append(rg.Idxs, idx)
		}
		nt.Regions = append(nt.Regions, rg)
	}

	// lateral inhibition pool, ~10% of the population of fast interneurons
	poolN := int(mat32.Round(nt.Topo.PoolFrac * float32(total)))
	if poolN < 1 {
		poolN = 1
	}
	pool := Region{Name: "InhibPool", Func: InhibFunc}
	pri := int32(len(nt.Regions))
	for ni := 0; ni < poolN; ni++ {
		idx := int32(len(nt.Neurons))
		nt.Neurons = append(nt.Neurons, Neuron{Class: Inhibitory, Region: pri})
		pool.Idxs = append(pool.Idxs, idx)
	}
	nt.Regions = append(nt.Regions, pool)

	// feed-forward backbone between consecutive regions
	for ri := 0; ri+1 < len(specs); ri++ {
		nt.connectRegions(&nt.Regions[ri], &nt.Regions[ri+1], specs[ri].Prob, specs[ri].Wt)
	}

	// lateral inhibition into every spec'd region
	for ri := range specs {
		nt.connectPool(&pool, &nt.Regions[ri])
	}

	// local recurrence within each spec'd region
	for ri := range specs {
		nt.connectRecurrent(&nt.Regions[ri])
	}

	nt.buildSendIndex()
	nt.buildInputIdxs()
	return nil
}

// connectRegions makes the probabilistic feed-forward pathway from
// send to recv: Bernoulli(p) per ordered neuron pair, weight
// w0*(0.5+U), delay FFDelayMin+U*FFDelayRange, inhibitory (negative
// weight) iff the source is an interneuron.
func (nt *Network) connectRegions(send, recv *Region, p, w0 float32) {
	for _, si := range send.Idxs {
		for _, ti := range recv.Idxs {
			if nt.Rand.Float32() >= p {
				continue
			}
			wt := w0 * (0.5 + nt.Rand.Float32())
			exc := !nt.Neurons[si].IsInhib()
			if !exc {
				wt = -wt
			}
			dl := nt.Topo.FFDelayMin + nt.Rand.Float32()*nt.Topo.FFDelayRange
			nt.addSyn(si, ti, wt, dl, exc)
		}
	}
}

// connectPool makes sparse inhibitory connections from the lateral
// inhibition pool into the given region.
func (nt *Network) connectPool(pool, recv *Region) {
	for _, si := range pool.Idxs {
		for _, ti := range recv.Idxs {
			if nt.Rand.Float32() >= nt.Topo.PoolProb {
				continue
			}
			wt := -nt.Topo.PoolWt * (0.5 + nt.Rand.Float32())
			dl := nt.Topo.PoolDelayMin + nt.Rand.Float32()*nt.Topo.PoolDelayRng
			nt.addSyn(si, ti, wt, dl, false)
		}
	}
}

// connectRecurrent connects each neuron to RecurN randomly chosen
// peers within its own region, with short delays.
func (nt *Network) connectRecurrent(rg *Region) {
	if len(rg.Idxs) < 2 {
		return
	}
	for _, si := range rg.Idxs {
		for ci := 0; ci < nt.Topo.RecurN; ci++ {
			ti := rg.Idxs[nt.Rand.Intn(len(rg.Idxs))]
			for ti == si {
				ti = rg.Idxs[nt.Rand.Intn(len(rg.Idxs))]
			}
			wt := nt.Topo.RecurWt * (0.5 + nt.Rand.Float32())
			exc := !nt.Neurons[si].IsInhib()
			if !exc {
				wt = -wt
			}
			dl := nt.Topo.RecurDelayMin + nt.Rand.Float32()*nt.Topo.RecurDelayRng
			nt.addSyn(si, ti, wt, dl, exc)
		}
	}
}

func (nt *Network) addSyn(send, recv int32, wt, delay float32, exc bool) {
	nt.Syns = append(nt.Syns, Synapse{
		Wt:    wt,
		Delay: delay,
		Lrate: nt.Topo.Lrate,
		Send:  send,
		Recv:  recv,
		Exc:   exc,
	})
}

// buildSendIndex indexes outgoing synapses per neuron for spike-time fanout
func (nt *Network) buildSendIndex() {
	nt.SendIndex = make([][]int32, len(nt.Neurons))
	for si := range nt.Syns {
		sy := &nt.Syns[si]
		nt.SendIndex[sy.Send] = append(nt.SendIndex[sy.Send], int32(si))
	}
}

// buildInputIdxs collects the neurons that receive the external input
// vector: all neurons of Sensory-tagged regions, or the first region
// if no region is tagged Sensory.
func (nt *Network) buildInputIdxs() {
	nt.InIdxs = nil
	for ri := range nt.Regions {
		if nt.Regions[ri].Func == SensoryFunc {
			nt.InIdxs = append(nt.InIdxs, nt.Regions[ri].Idxs...)
		}
	}
	if len(nt.InIdxs) == 0 {
		nt.InIdxs = append(nt.InIdxs, nt.Regions[0].Idxs...)
	}
}

// RegionByName returns a region by name (nil if not found)
func (nt *Network) RegionByName(name string) *Region {
	for ri := range nt.Regions {
		if nt.Regions[ri].Name == name {
			return &nt.Regions[ri]
		}
	}
	return nil
}

// RegionByNameTry returns a region by name, with an error if not found
func (nt *Network) RegionByNameTry(name string) (*Region, error) {
	rg := nt.RegionByName(name)
	if rg == nil {
		err := fmt.Errorf("Region named: %v not found in Network: %v", name, nt.Nm)
		log.Println(err)
		return nil, err
	}
	return rg, nil
}

// SynsBetween returns the indexes of all synapses from region send to
// region recv, in construction order.
func (nt *Network) SynsBetween(send, recv *Region) []int {
	var idxs []int
	for si := range nt.Syns {
		sy := &nt.Syns[si]
		srg := &nt.Regions[nt.Neurons[sy.Send].Region]
		rrg := &nt.Regions[nt.Neurons[sy.Recv].Region]
		if srg.Name == send.Name && rrg.Name == recv.Name {
			idxs = append(idxs, si)
		}
	}
	return idxs
}
