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

// A Layer2Frame describes one MPEG-1 Layer II frame coded with the high-rate
// allocation tables (ISO 11172-3 3-B.2a and 3-B.2b). Alloc holds the
// allocation codes, Scfsi the scalefactor selection, Scale the scalefactor
// index of each of the three parts and Samples the quantized code of each
// sample, [sample][ch][sb]. Only the scalefactors selected by Scfsi are
// written.
type Layer2Frame struct {
	Header  frameheader.FrameHeader
	Sblimit int
	Alloc   [2][32]int
	Scfsi   [2][32]int
	Scale   [2][32][3]int
	Samples [36][2][32]int
}

// Layer2Levels returns the number of quantization levels of allocation
// code a in subband sb of the high-rate tables, or 0 for no samples.
func Layer2Levels(sb, a int) int {
	if a == 0 {
		return 0
	}
	l := layer2HighRate(sb)
	if a >= len(l) {
		return -1
	}
	return l[a]
}

func layer2HighRate(sb int) []int {
	switch {
	case sb < 3:
		return []int{0, 3, 7, 15, 31, 63, 127, 255, 511, 1023, 2047, 4095, 8191, 16383, 32767, 65535}
	case sb < 11:
		return []int{0, 3, 5, 7, 9, 15, 31, 63, 127, 255, 511, 1023, 2047, 4095, 8191, 65535}
	case sb < 23:
		return []int{0, 3, 5, 7, 9, 15, 31, 65535}
	default:
		return []int{0, 3, 5, 65535}
	}
}

func layer2AllocBits(sb int) int {
	switch {
	case sb < 11:
		return 4
	case sb < 23:
		return 3
	default:
		return 2
	}
}

// layer2CodeBits returns the code width of a quantizer and whether the
// three samples of a triple share one grouped code.
func layer2CodeBits(levels int) (int, bool) {
	switch levels {
	case 3:
		return 5, true
	case 5:
		return 7, true
	case 9:
		return 10, true
	}
	n := 0
	for 1<<n <= levels {
		n++
	}
	return n, false
}

// BuildLayer2 encodes frames back to back. Above the joint stereo bound
// only the first channel's allocation and samples are written.
func BuildLayer2(frames []Layer2Frame) ([]byte, error) {
	var out []byte
	for i := range frames {
		f := &frames[i]
		h := f.Header
		if h.Layer() != consts.Layer2 || h.IsLSF() {
			return nil, errors.Errorf("mpatest: frame %d is not MPEG-1 Layer II", i)
		}
		if f.Sblimit != 27 && f.Sblimit != 30 {
			return nil, errors.Errorf("mpatest: sblimit %d has no high-rate table", f.Sblimit)
		}
		size, err := h.FrameSize()
		if err != nil {
			return nil, err
		}
		nch := h.NumberOfChannels()
		bound := f.Sblimit
		if h.Mode() == consts.ModeJointStereo {
			bound = 4 * (h.ModeExtension() + 1)
		}
		alloc := func(ch, sb int) int {
			if sb >= bound {
				return f.Alloc[0][sb]
			}
			return f.Alloc[ch][sb]
		}

		w := &BitWriter{}
		for sb := 0; sb < f.Sblimit; sb++ {
			for ch := 0; ch < nch; ch++ {
				if sb >= bound && ch == 1 {
					continue
				}
				a := f.Alloc[ch][sb]
				if Layer2Levels(sb, a) < 0 {
					return nil, errors.Errorf("mpatest: allocation %d out of range in subband %d", a, sb)
				}
				w.WriteBits(uint32(a), layer2AllocBits(sb))
			}
		}
		for sb := 0; sb < f.Sblimit; sb++ {
			for ch := 0; ch < nch; ch++ {
				if alloc(ch, sb) != 0 {
					w.WriteBits(uint32(f.Scfsi[ch][sb]), 2)
				}
			}
		}
		for sb := 0; sb < f.Sblimit; sb++ {
			for ch := 0; ch < nch; ch++ {
				if alloc(ch, sb) == 0 {
					continue
				}
				s := f.Scale[ch][sb]
				var parts []int
				switch f.Scfsi[ch][sb] {
				case 0:
					parts = []int{s[0], s[1], s[2]}
				case 1:
					parts = []int{s[0], s[2]}
				case 2:
					parts = []int{s[0]}
				case 3:
					parts = []int{s[0], s[1]}
				default:
					return nil, errors.Errorf("mpatest: scfsi %d out of range", f.Scfsi[ch][sb])
				}
				for _, p := range parts {
					w.WriteBits(uint32(p), 6)
				}
			}
		}
		for gr := 0; gr < 12; gr++ {
			for sb := 0; sb < f.Sblimit; sb++ {
				for ch := 0; ch < nch; ch++ {
					if sb >= bound && ch == 1 {
						continue
					}
					levels := Layer2Levels(sb, alloc(ch, sb))
					if levels == 0 {
						continue
					}
					n, grouped := layer2CodeBits(levels)
					var c [3]int
					for j := range c {
						c[j] = f.Samples[gr*3+j][ch][sb]
						if c[j] < 0 || c[j] >= levels {
							return nil, errors.Errorf("mpatest: code %d out of range for %d levels", c[j], levels)
						}
					}
					if grouped {
						w.WriteBits(uint32(c[0]+levels*(c[1]+levels*c[2])), n)
						continue
					}
					for _, v := range c {
						w.WriteBits(uint32(v), n)
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
