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
	"math"

	"github.com/hajimehoshi/go-mpegaudio/internal/consts"
	"github.com/hajimehoshi/go-mpegaudio/internal/maindata"
	"github.com/hajimehoshi/go-mpegaudio/internal/sideinfo"
)

var (
	powtab34 = make([]float64, 8207)
	pretab   = []float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 3, 3, 3, 2, 0}
)

func init() {
	for i := range powtab34 {
		powtab34[i] = math.Pow(float64(i), 4.0/3.0)
	}
}

// requantizeLine returns sign(is) * |is|^(4/3) * 2^exp.
func requantizeLine(is float32, exp float64) float32 {
	a := int(is)
	if a < 0 {
		a = -a
	}
	if a >= len(powtab34) {
		a = len(powtab34) - 1
	}
	v := float32(powtab34[a] * math.Pow(2, exp))
	if is < 0 {
		return -v
	}
	return v
}

// shortStart returns the first line of the short block part of a granule.
// It is 0 for pure short blocks.
func shortStart(si *sideinfo.SideInfo, bands *consts.SfBandIndices, gr, ch int) (line, sfb int) {
	if si.IsMixed(gr, ch) {
		return 3 * bands.S[3], 3
	}
	return 0, 0
}

func requantize(si *sideinfo.SideInfo, bands *consts.SfBandIndices, sf *maindata.ScaleFactors, is, xr *[consts.SamplesPerGr]float32, gr, ch int) {
	limit := si.Count1[gr][ch]
	gain := 0.25 * float64(si.GlobalGain[gr][ch]-210)
	scale := 0.5 * float64(1+si.ScalefacScale[gr][ch])
	pre := float64(si.Preflag[gr][ch])

	long := func(from, to int) {
		sfb := 0
		for i := from; i < to; i++ {
			for i >= bands.L[sfb+1] {
				sfb++
			}
			if i >= limit || is[i] == 0 {
				xr[i] = 0
				continue
			}
			exp := gain - scale*(float64(sf.L[sfb])+pre*pretab[sfb])
			xr[i] = requantizeLine(is[i], exp)
		}
	}

	if !si.IsShort(gr, ch) {
		long(0, consts.SamplesPerGr)
		return
	}

	i, startSfb := shortStart(si, bands, gr, ch)
	long(0, i)
	for sfb := startSfb; sfb < 13; sfb++ {
		width := bands.S[sfb+1] - bands.S[sfb]
		for win := 0; win < 3; win++ {
			exp := gain - 2*float64(si.SubblockGain[gr][ch][win]) - scale*float64(sf.S[sfb][win])
			for j := 0; j < width; j++ {
				if i >= limit || is[i] == 0 {
					xr[i] = 0
				} else {
					xr[i] = requantizeLine(is[i], exp)
				}
				i++
			}
		}
	}
}
