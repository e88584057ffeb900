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

	"github.com/pkg/errors"

	"github.com/hajimehoshi/go-mpegaudio/internal/bits"
	"github.com/hajimehoshi/go-mpegaudio/internal/consts"
	"github.com/hajimehoshi/go-mpegaudio/internal/frameheader"
)

// Scale factor multipliers 2^(1-i/3). Index 63 is reserved and mutes the
// subband.
var scalefactors [64]float32

func init() {
	for i := 0; i < 63; i++ {
		scalefactors[i] = float32(math.Pow(2, 1-float64(i)/3))
	}
}

// dequantize maps a code of a quantizer with the given number of levels to
// (2v - levels + 1) / levels.
func dequantize(v, levels int) float32 {
	return float32(2*v-levels+1) / float32(levels)
}

// bound returns the first subband whose samples are shared between the
// channels.
func bound(h frameheader.FrameHeader, limit int) int {
	if h.Mode() != consts.ModeJointStereo {
		return limit
	}
	b := 4 * (h.ModeExtension() + 1)
	if b > limit {
		return limit
	}
	return b
}

func (d *Decoder) decodeLayer1(h frameheader.FrameHeader, data []byte, out *PCM) (int, error) {
	r := bits.New(data)
	nch := h.NumberOfChannels()
	bnd := bound(h, consts.Subbands)

	var alloc [2][consts.Subbands]int
	for sb := 0; sb < consts.Subbands; sb++ {
		for ch := 0; ch < nch; ch++ {
			if sb >= bnd && ch == 1 {
				alloc[1][sb] = alloc[0][sb]
				continue
			}
			a := r.Bits(4)
			if a == 15 {
				return 0, errors.Errorf("mpegaudio: forbidden Layer I allocation in subband %d", sb)
			}
			alloc[ch][sb] = a
		}
	}
	var scale [2][consts.Subbands]float32
	for sb := 0; sb < consts.Subbands; sb++ {
		for ch := 0; ch < nch; ch++ {
			if alloc[ch][sb] != 0 {
				scale[ch][sb] = scalefactors[r.Bits(6)]
			}
		}
	}
	if r.BitPos() > r.LenInBits() {
		return 0, errors.New("mpegaudio: Layer I frame is too short")
	}

	var sample [2][consts.Subbands]float32
	for s := 0; s < 12; s++ {
		for sb := 0; sb < consts.Subbands; sb++ {
			a := alloc[0][sb]
			if sb >= bnd && nch == 2 {
				if a == 0 {
					sample[0][sb], sample[1][sb] = 0, 0
					continue
				}
				v := dequantize(r.Bits(a+1), 1<<uint(a+1)-1)
				sample[0][sb] = v * scale[0][sb]
				sample[1][sb] = v * scale[1][sb]
				continue
			}
			for ch := 0; ch < nch; ch++ {
				a := alloc[ch][sb]
				if a == 0 {
					sample[ch][sb] = 0
					continue
				}
				sample[ch][sb] = dequantize(r.Bits(a+1), 1<<uint(a+1)-1) * scale[ch][sb]
			}
		}
		for ch := 0; ch < nch; ch++ {
			d.synth.Synthesize(ch, &sample[ch], out[ch][s*32:])
		}
	}
	return 384, nil
}
