// Copyright 2017 Hajime Hoshi
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package frame

import (
	"github.com/hajimehoshi/go-mpegaudio/internal/consts"
	"github.com/hajimehoshi/go-mpegaudio/internal/imdct"
	"github.com/hajimehoshi/go-mpegaudio/internal/sideinfo"
)

// hybridSynthesis runs the IMDCT of every subband and overlaps it with the
// tail kept from the previous granule of the same channel.
func (d *Decoder) hybridSynthesis(si *sideinfo.SideInfo, xr *[consts.SamplesPerGr]float32, gr, ch int) {
	prev := &d.prev[ch][d.parity]
	next := &d.prev[ch][d.parity^1]
	var in [consts.SubbandSamples]float32
	var raw [36]float32
	for sb := 0; sb < consts.Subbands; sb++ {
		bt := si.BlockType[gr][ch]
		if sb < 2 && si.IsMixed(gr, ch) {
			bt = consts.BlockNormal
		}
		copy(in[:], xr[sb*consts.SubbandSamples:(sb+1)*consts.SubbandSamples])
		imdct.Win(&in, bt, &raw)
		for i := 0; i < consts.SubbandSamples; i++ {
			xr[sb*consts.SubbandSamples+i] = raw[i] + prev[sb][i]
			next[sb][i] = raw[i+consts.SubbandSamples]
		}
	}
}

// frequencyInversion negates the odd samples of the odd subbands.
func frequencyInversion(xr *[consts.SamplesPerGr]float32) {
	for sb := 1; sb < consts.Subbands; sb += 2 {
		for i := 1; i < consts.SubbandSamples; i += 2 {
			xr[sb*consts.SubbandSamples+i] = -xr[sb*consts.SubbandSamples+i]
		}
	}
}
