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
	"github.com/hajimehoshi/go-mpegaudio/internal/sideinfo"
)

var (
	cs = [8]float32{0.857493, 0.881742, 0.949629, 0.983315, 0.995518, 0.999161, 0.999899, 0.999993}
	ca = [8]float32{-0.514496, -0.471732, -0.313377, -0.181913, -0.094574, -0.040966, -0.014199, -0.003700}
)

// reorder interleaves the three windows of every short band so that line
// j of window w lands at 3*j+w within the band.
func reorder(si *sideinfo.SideInfo, bands *consts.SfBandIndices, xr *[consts.SamplesPerGr]float32, gr, ch int) {
	if !si.IsShort(gr, ch) {
		return
	}
	_, startSfb := shortStart(si, bands, gr, ch)
	var re [consts.SamplesPerGr]float32
	for sfb := startSfb; sfb < 13; sfb++ {
		start := 3 * bands.S[sfb]
		width := bands.S[sfb+1] - bands.S[sfb]
		for win := 0; win < 3; win++ {
			for j := 0; j < width; j++ {
				re[3*j+win] = xr[start+win*width+j]
			}
		}
		copy(xr[start:start+3*width], re[:3*width])
	}
}

// antialias runs the alias reduction butterflies across subband
// boundaries. Pure short blocks are left alone and mixed blocks only get
// the boundary between subbands 0 and 1.
func antialias(si *sideinfo.SideInfo, xr *[consts.SamplesPerGr]float32, gr, ch int) {
	sblim := consts.Subbands
	if si.IsShort(gr, ch) {
		if !si.IsMixed(gr, ch) {
			return
		}
		sblim = 2
	}
	for sb := 1; sb < sblim; sb++ {
		for i := 0; i < 8; i++ {
			li := consts.SubbandSamples*sb - 1 - i
			ui := consts.SubbandSamples*sb + i
			lb := xr[li]*cs[i] - xr[ui]*ca[i]
			ub := xr[ui]*cs[i] + xr[li]*ca[i]
			xr[li] = lb
			xr[ui] = ub
		}
	}
}
