// Copyright (c) 2024, The Spikenet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spikenet

import (
	"encoding/json"
	"strings"
)

// JsonToParams reformates json output to suitable params display output
func JsonToParams(b []byte) string {
	br := strings.Replace(string(b), `"`, ``, -1)
	br = strings.Replace(br, ",\n", "", -1)
	br = strings.Replace(br, "{\n", "{", -1)
	br = strings.Replace(br, "} ", "}\n  ", -1)
	br = strings.Replace(br, "\n }", " }", -1)
	br = strings.Replace(br, "\n  }\n", " }", -1)
	return br[1:] + "\n"
}

// AllParams returns a listing of all parameters in the Network
func (nt *Network) AllParams() string {
	str := "/////////////////////////////////////////////////\nNetwork: " + nt.Nm + "\n"
	b, _ := json.MarshalIndent(&nt.Act, "", " ")
	str += "Act: {\n " + JsonToParams(b)
	b, _ = json.MarshalIndent(&nt.Stdp, "", " ")
	str += "Stdp: {\n " + JsonToParams(b)
	b, _ = json.MarshalIndent(&nt.Mod, "", " ")
	str += "Mod: {\n " + JsonToParams(b)
	b, _ = json.MarshalIndent(&nt.Topo, "", " ")
	str += "Topo: {\n " + JsonToParams(b)
	b, _ = json.MarshalIndent(&nt.Gain, "", " ")
	str += "Gain: {\n " + JsonToParams(b)
	return str
}
