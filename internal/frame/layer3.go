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
	"github.com/hajimehoshi/go-mpegaudio/internal/frameheader"
	"github.com/hajimehoshi/go-mpegaudio/internal/maindata"
	"github.com/hajimehoshi/go-mpegaudio/internal/sideinfo"
)

func (d *Decoder) decodeLayer3(h frameheader.FrameHeader, data []byte, out *PCM) (int, error) {
	si, err := sideinfo.Parse(h, data)
	if err != nil {
		// The slot still belongs to the reservoir of the following frames.
		if len(data) >= h.SideInfoSize() {
			if err := d.reservoir.Append(data[h.SideInfoSize():]); err != nil {
				return 0, err
			}
		}
		return 0, err
	}
	// The frame's main data slot is pushed even when main_data_begin points
	// before the reservoir, so that following frames can still use it.
	if err := d.reservoir.Push(si.MainDataBegin, data[h.SideInfoSize():]); err != nil {
		return 0, err
	}
	if err := maindata.Read(d.reservoir.Window(), h, si, &d.md); err != nil {
		return 0, err
	}

	nch := h.NumberOfChannels()
	bands := consts.BandIndices(h.ID(), h.SamplingFrequency())
	for gr := 0; gr < h.Granules(); gr++ {
		for ch := 0; ch < nch; ch++ {
			requantize(si, bands, &d.md.Scalefac[gr][ch], &d.md.Is[gr][ch], &d.xr[ch], gr, ch)
		}
		if nch == 2 {
			stereo(h, si, &d.md.Scalefac[gr][1], &d.xr, gr)
		}
		for ch := 0; ch < nch; ch++ {
			xr := &d.xr[ch]
			reorder(si, bands, xr, gr, ch)
			antialias(si, xr, gr, ch)
			d.hybridSynthesis(si, xr, gr, ch)
			frequencyInversion(xr)

			var in [consts.Subbands]float32
			for ss := 0; ss < consts.SubbandSamples; ss++ {
				for sb := 0; sb < consts.Subbands; sb++ {
					in[sb] = xr[sb*consts.SubbandSamples+ss]
				}
				d.synth.Synthesize(ch, &in, out[ch][gr*consts.SamplesPerGr+ss*consts.Subbands:])
			}
		}
		d.parity ^= 1
	}
	return consts.SamplesPerGr * h.Granules(), nil
}
