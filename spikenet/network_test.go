// Copyright (c) 2024, The Spikenet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"testing"

	"github.com/chewxy/math32"
)

// CmprFloats compares two float32 slices against the difTol tolerance
func CmprFloats(out, cor []float32, msg string, t *testing.T) {
	if len(out) != len(cor) {
		t.Errorf("%v: length mismatch: got %v, want %v\n", msg, len(out), len(cor))
		return
	}
	for i := range out {
		dif := math32.Abs(out[i] - cor[i])
		if dif > difTol {
			t.Errorf("%v, out: %v, cor: %v, dif: %v\n", msg, out[i], cor[i], dif)
		}
	}
}

func testNet(t *testing.T) *Network {
	specs := []RegionSpec{
		{Name: "In", N: 10, Class: Sensory, Func: SensoryFunc, Prob: 0.5, Wt: 0.5},
		{Name: "Hid", N: 10, Class: Excitatory, Func: MemoryFunc, Prob: 0.5, Wt: 0.5},
		{Name: "Out", N: 5, Class: Motor, Func: MotorFunc},
	}
	nt, err := NewNetwork("TestNet", specs, 7)
	if err != nil {
		t.Fatal(err)
	}
	return nt
}

func TestProcessInputRecords(t *testing.T) {
	nt := testNet(t)
	recs, err := nt.ProcessInput([]float32{100, 200, 300})
	if err != nil {
		t.Fatal(err)
	}
	want := (nt.StepCount / nt.SampleEvery) * len(nt.Neurons)
	if len(recs) != want {
		t.Errorf("record count: got %v, want %v", len(recs), want)
	}
	if len(nt.Records) != want {
		t.Errorf("retained history count: got %v, want %v", len(nt.Records), want)
	}
	// input currents are cleared after the episode
	for _, idx := range nt.InIdxs {
		if nt.Neurons[idx].Ext != 0 {
			t.Errorf("input current not cleared on neuron %v: %v", idx, nt.Neurons[idx].Ext)
		}
	}
}

func TestInputValidation(t *testing.T) {
	nt := testNet(t)
	if _, err := nt.ProcessInput(nil); err == nil {
		t.Errorf("empty input should fail")
	}
	if _, err := nt.ProcessInput([]float32{100, math32.NaN()}); err == nil {
		t.Errorf("NaN input should fail")
	}
	if _, err := nt.ProcessInput([]float32{100, math32.Inf(1)}); err == nil {
		t.Errorf("Inf input should fail")
	}
	// rejection happens before any state mutates
	if nt.Time.CycleTot != 0 {
		t.Errorf("rejected input advanced time: %v cycles", nt.Time.CycleTot)
	}
	for ni := range nt.Neurons {
		if nt.Neurons[ni].Ext != 0 {
			t.Errorf("rejected input left current on neuron %v", ni)
		}
	}
}

func TestRheobaseSpiking(t *testing.T) {
	nt := testNet(t)
	nt.StepCount = 1000 // 100 msec at dt = 0.1
	nt.SampleEvery = 1

	recs, err := nt.ProcessInput([]float32{1200}) // ~2x rheobase
	if err != nil {
		t.Fatal(err)
	}
	nspk := 0
	for _, rec := range recs {
		if rec.Spike {
			nspk++
		}
	}
	if nspk < 1 {
		t.Errorf("no spikes at 2x rheobase over 100 msec")
	}

	nt.Reset()
	recs, err = nt.ProcessInput([]float32{0})
	if err != nil {
		t.Fatal(err)
	}
	for _, rec := range recs {
		if rec.Spike {
			t.Fatalf("spike at zero input current: neuron %v at t=%v", rec.Neuron, rec.Time)
		}
	}
}

func TestResetWeights(t *testing.T) {
	nt := testNet(t)
	w0 := nt.Syns[0].Wt
	nt.Syns[0].Wt = 9
	nt.Syns[0].PreTrace = 0.5

	nt.Reset() // default: learned weights survive
	if nt.Syns[0].Wt != 9 {
		t.Errorf("Reset should preserve weights by default: got %v, want 9", nt.Syns[0].Wt)
	}

	nt.ResetWts = true
	nt.Reset()
	if nt.Syns[0].Wt != w0 {
		t.Errorf("Reset with ResetWts should revert weights: got %v, want %v", nt.Syns[0].Wt, w0)
	}
	if nt.Syns[0].PreTrace != 0 {
		t.Errorf("Reset with ResetWts should clear traces: got %v", nt.Syns[0].PreTrace)
	}
}

func TestRewardSaturation(t *testing.T) {
	nt := testNet(t)
	for i := 0; i < 3; i++ {
		nt.ApplyReward(10)
		if nt.Mods.DA != 1 {
			t.Errorf("DA after outsized reward %v: got %v, want exactly 1", i, nt.Mods.DA)
		}
	}
}

func TestAttentionArousalClamp(t *testing.T) {
	nt := testNet(t)
	nt.SetAttention(1.5)
	if nt.Mods.Attn != 1 {
		t.Errorf("attention clamp high: got %v, want 1", nt.Mods.Attn)
	}
	nt.SetAttention(-0.5)
	if nt.Mods.Attn != 0 {
		t.Errorf("attention clamp low: got %v, want 0", nt.Mods.Attn)
	}
	nt.SetArousal(2)
	if nt.Mods.NE != 1 {
		t.Errorf("arousal clamp high: got %v, want 1", nt.Mods.NE)
	}
	nt.SetArousal(-1)
	if nt.Mods.NE != 0 {
		t.Errorf("arousal clamp low: got %v, want 0", nt.Mods.NE)
	}
}

func TestStateSnapshot(t *testing.T) {
	nt := testNet(t)
	st := nt.State()
	if len(st.Neurons) != len(nt.Neurons) || len(st.Syns) != len(nt.Syns) {
		t.Fatalf("snapshot sizes: got %v/%v, want %v/%v",
			len(st.Neurons), len(st.Syns), len(nt.Neurons), len(nt.Syns))
	}
	for _, rg := range nt.Regions {
		if len(st.Regions[rg.Name]) != len(rg.Idxs) {
			t.Errorf("snapshot region %v: got %v neurons, want %v",
				rg.Name, len(st.Regions[rg.Name]), len(rg.Idxs))
		}
	}
	// snapshot is a copy: mutating it must not touch the network
	vm := nt.Neurons[0].Vm
	st.Neurons[0].Vm = 999
	st.Syns[0].Wt = 999
	st.Regions["In"][0] = 999
	if nt.Neurons[0].Vm != vm {
		t.Errorf("snapshot mutation leaked into network neurons")
	}
	if nt.Syns[0].Wt == 999 {
		t.Errorf("snapshot mutation leaked into network synapses")
	}
	if nt.Regions[0].Idxs[0] == 999 {
		t.Errorf("snapshot mutation leaked into network regions")
	}
}

func TestRecordsCap(t *testing.T) {
	nt := testNet(t)
	nt.MaxRecords = 50
	nt.SampleEvery = 1
	if _, err := nt.ProcessInput([]float32{100}); err != nil {
		t.Fatal(err)
	}
	if len(nt.Records) != 50 {
		t.Errorf("retained history should be capped: got %v, want 50", len(nt.Records))
	}
}

func TestWeightsTensor(t *testing.T) {
	nt := testNet(t)
	tsr := nt.WeightsTensor()
	n := len(nt.Neurons)
	if tsr.Dim(0) != n || tsr.Dim(1) != n {
		t.Fatalf("tensor dims: got %v x %v, want %v x %v", tsr.Dim(0), tsr.Dim(1), n, n)
	}
	var wsum, tsum float32
	for si := range nt.Syns {
		wsum += nt.Syns[si].Wt
	}
	for _, v := range tsr.Values {
		tsum += v
	}
	if math32.Abs(wsum-tsum) > 1.0e-3 {
		t.Errorf("tensor weight sum: got %v, want %v", tsum, wsum)
	}
}

func TestAllParams(t *testing.T) {
	nt := testNet(t)
	str := nt.AllParams()
	if len(str) < 100 {
		t.Errorf("AllParams listing suspiciously short: %v", str)
	}
}
