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

package maindata

import (
	"github.com/hajimehoshi/go-mpegaudio/internal/bits"
	"github.com/hajimehoshi/go-mpegaudio/internal/sideinfo"
)

// ScaleFactors of one granule and channel. For the right channel of an
// MPEG-2 intensity stereo frame the values are intensity positions, and
// IllegalL/IllegalS mark positions that disable intensity for the band.
type ScaleFactors struct {
	L        [23]int
	S        [13][3]int
	IllegalL [23]bool
	IllegalS [13][3]bool
}

var scalefacSizesMPEG1 = [16][2]int{
	{0, 0}, {0, 1}, {0, 2}, {0, 3}, {3, 0}, {1, 1}, {1, 2}, {1, 3},
	{2, 1}, {2, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}, {4, 2}, {4, 3},
}

// Band groups sharing one scfsi flag.
var scfsiBands = [5]int{0, 6, 11, 16, 21}

// ReadScaleFactorsMPEG1 reads the scale factors of granule gr. For the
// second granule, band groups whose scfsi flag is set are copied from prev.
func ReadScaleFactorsMPEG1(r *bits.Window, si *sideinfo.SideInfo, gr, ch int, sf, prev *ScaleFactors) {
	*sf = ScaleFactors{}
	slen1 := scalefacSizesMPEG1[si.ScalefacCompress[gr][ch]][0]
	slen2 := scalefacSizesMPEG1[si.ScalefacCompress[gr][ch]][1]
	if si.IsShort(gr, ch) {
		start := 0
		if si.IsMixed(gr, ch) {
			for sfb := 0; sfb < 8; sfb++ {
				sf.L[sfb] = r.Bits9(slen1)
			}
			start = 3
		}
		for sfb := start; sfb < 12; sfb++ {
			n := slen1
			if sfb >= 6 {
				n = slen2
			}
			for win := 0; win < 3; win++ {
				sf.S[sfb][win] = r.Bits9(n)
			}
		}
		return
	}
	for i := 0; i < 4; i++ {
		if gr == 1 && si.Scfsi[ch][i] == 1 && prev != nil {
			for sfb := scfsiBands[i]; sfb < scfsiBands[i+1]; sfb++ {
				sf.L[sfb] = prev.L[sfb]
			}
			continue
		}
		n := slen1
		if i >= 2 {
			n = slen2
		}
		for sfb := scfsiBands[i]; sfb < scfsiBands[i+1]; sfb++ {
			sf.L[sfb] = r.Bits9(n)
		}
	}
}

// Number of scale factors per slen group, indexed by the row chosen from
// scalefac_compress and by long, short or mixed blocks.
var scalefacSizesMPEG2 = [6][3][4]int{
	{{6, 5, 5, 5}, {9, 9, 9, 9}, {6, 9, 9, 9}},
	{{6, 5, 7, 3}, {9, 9, 12, 6}, {6, 9, 12, 6}},
	{{11, 10, 0, 0}, {18, 18, 0, 0}, {15, 18, 0, 0}},
	{{7, 7, 7, 0}, {12, 12, 12, 0}, {6, 15, 12, 0}},
	{{6, 6, 6, 3}, {12, 9, 9, 6}, {6, 12, 9, 6}},
	{{8, 8, 5, 0}, {15, 12, 9, 0}, {6, 18, 9, 0}},
}

func lsfSlen(sfc int, intensityRight bool) (slen [4]int, row int, preflag int) {
	if intensityRight {
		isc := sfc >> 1
		switch {
		case isc < 180:
			return [4]int{isc / 36, (isc % 36) / 6, isc % 6, 0}, 3, 0
		case isc < 244:
			isc -= 180
			return [4]int{(isc & 63) >> 4, (isc & 15) >> 2, isc & 3, 0}, 4, 0
		default:
			isc -= 244
			return [4]int{isc / 3, isc % 3, 0, 0}, 5, 0
		}
	}
	switch {
	case sfc < 400:
		return [4]int{(sfc >> 4) / 5, (sfc >> 4) % 5, (sfc & 15) >> 2, sfc & 3}, 0, 0
	case sfc < 500:
		sfc -= 400
		return [4]int{(sfc >> 2) / 5, (sfc >> 2) % 5, sfc & 3, 0}, 1, 0
	default:
		sfc -= 500
		return [4]int{sfc / 3, sfc % 3, 0, 0}, 2, 1
	}
}

// ReadScaleFactorsMPEG2 reads the scale factors of an MPEG-2/2.5 granule.
// intensityRight selects the intensity stereo tables used for the right
// channel when intensity stereo is on. It returns the derived preflag.
func ReadScaleFactorsMPEG2(r *bits.Window, si *sideinfo.SideInfo, ch int, intensityRight bool, sf *ScaleFactors) int {
	*sf = ScaleFactors{}
	slen, row, preflag := lsfSlen(si.ScalefacCompress[0][ch], intensityRight)
	blockIdx := 0
	if si.IsShort(0, ch) {
		blockIdx = 1
		if si.IsMixed(0, ch) {
			blockIdx = 2
		}
	}
	n := 0
	for part := 0; part < 4; part++ {
		max := (1 << uint(slen[part])) - 1
		for i := 0; i < scalefacSizesMPEG2[row][blockIdx][part]; i++ {
			v := r.Bits9(slen[part])
			illegal := intensityRight && v == max
			switch blockIdx {
			case 0:
				sf.L[n] = v
				sf.IllegalL[n] = illegal
			case 1:
				sf.S[n/3][n%3] = v
				sf.IllegalS[n/3][n%3] = illegal
			case 2:
				if n < 6 {
					sf.L[n] = v
					sf.IllegalL[n] = illegal
				} else {
					k := n - 6
					sf.S[3+k/3][k%3] = v
					sf.IllegalS[3+k/3][k%3] = illegal
				}
			}
			n++
		}
	}
	return preflag
}
