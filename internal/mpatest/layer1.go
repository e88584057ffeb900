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

package mpatest

import (
	"github.com/pkg/errors"

	"github.com/hajimehoshi/go-mpegaudio/internal/consts"
	"github.com/hajimehoshi/go-mpegaudio/internal/frameheader"
)

// A Layer1Frame describes one Layer I frame. Alloc holds nb-1 per channel
// and subband (0 means no samples), Scale the 6-bit scalefactor indices and
// Samples the raw nb-bit codes per block.
type Layer1Frame struct {
	Header  frameheader.FrameHeader
	Alloc   [2][32]int
	Scale   [2][32]int
	Samples [12][2][32]int
}

// BuildLayer1 encodes frames back to back. Above the joint stereo bound
// only the first channel's allocation and samples are written.
func BuildLayer1(frames []Layer1Frame) ([]byte, error) {
	var out []byte
	for i := range frames {
		f := &frames[i]
		h := f.Header
		if h.Layer() != consts.Layer1 {
			return nil, errors.Errorf("mpatest: frame %d is not Layer I", i)
		}
		size, err := h.FrameSize()
		if err != nil {
			return nil, err
		}
		nch := h.NumberOfChannels()
		bound := 32
		if h.Mode() == consts.ModeJointStereo {
			bound = 4 * (h.ModeExtension() + 1)
		}

		w := &BitWriter{}
		for sb := 0; sb < 32; sb++ {
			for ch := 0; ch < nch; ch++ {
				if sb >= bound && ch == 1 {
					continue
				}
				a := f.Alloc[ch][sb]
				if a < 0 || a > 14 {
					return nil, errors.Errorf("mpatest: allocation %d out of range", a)
				}
				w.WriteBits(uint32(a), 4)
			}
		}
		alloc := func(ch, sb int) int {
			if sb >= bound {
				return f.Alloc[0][sb]
			}
			return f.Alloc[ch][sb]
		}
		for sb := 0; sb < 32; sb++ {
			for ch := 0; ch < nch; ch++ {
				if alloc(ch, sb) != 0 {
					w.WriteBits(uint32(f.Scale[ch][sb]), 6)
				}
			}
		}
		for s := 0; s < 12; s++ {
			for sb := 0; sb < 32; sb++ {
				for ch := 0; ch < nch; ch++ {
					if sb >= bound && ch == 1 {
						continue
					}
					if a := alloc(ch, sb); a != 0 {
						w.WriteBits(uint32(f.Samples[s][ch][sb]), a+1)
					}
				}
			}
		}
		body := w.Bytes()
		if 4+len(body) > size {
			return nil, errors.Errorf("mpatest: frame %d needs %d bytes, has %d", i, 4+len(body), size)
		}
		hb := h.Bytes()
		frame := make([]byte, size)
		copy(frame, hb[:])
		copy(frame[4:], body)
		out = append(out, frame...)
	}
	return out, nil
}
