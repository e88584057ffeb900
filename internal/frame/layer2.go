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
	"github.com/pkg/errors"

	"github.com/hajimehoshi/go-mpegaudio/internal/bits"
	"github.com/hajimehoshi/go-mpegaudio/internal/consts"
	"github.com/hajimehoshi/go-mpegaudio/internal/frameheader"
)

type quantizerSpec struct {
	levels  int
	grouped bool
	bits    int
}

// Quantizer lookup, step 1: bitrate index - 1 -> bitrate class.
var quantLutStep1 = [2][14]int{
	// 32, 48, 56, 64, 80, 96,112,128,160,192,224,256,320,384 <- bitrate
	{0, 0, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2}, // mono
	// 16, 24, 28, 32, 40, 48, 56, 64, 80, 96,112,128,160,192 <- bitrate / chan
	{0, 0, 0, 0, 0, 0, 1, 1, 1, 2, 2, 2, 2, 2}, // stereo
}

const (
	quantTabA = 27 | 64 // Table 3-B.2a: high-rate, sblimit = 27
	quantTabB = 30 | 64 // Table 3-B.2b: high-rate, sblimit = 30
	quantTabC = 8       // Table 3-B.2c:  low-rate, sblimit =  8
	quantTabD = 12      // Table 3-B.2d:  low-rate, sblimit = 12

	lsfSblimit = 30
)

// Quantizer lookup, step 2: bitrate class, sampling frequency -> table and
// sblimit.
var quantLutStep2 = [3][3]int{
	// 44.1 kHz, 48 kHz, 32 kHz
	{quantTabC, quantTabC, quantTabD}, // 32 - 48 kbit/sec/ch
	{quantTabA, quantTabA, quantTabA}, // 56 - 80 kbit/sec/ch
	{quantTabB, quantTabA, quantTabB}, // 96+	 kbit/sec/ch
}

// Quantizer lookup, step 3: table, subband -> nbal<<4 | row.
var quantLutStep3 = [3][]int{
	// Low-rate table (3-B.2c and 3-B.2d)
	{
		0x44, 0x44,
		0x34, 0x34, 0x34, 0x34, 0x34, 0x34, 0x34, 0x34, 0x34, 0x34,
	},
	// High-rate table (3-B.2a and 3-B.2b)
	{
		0x43, 0x43, 0x43,
		0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42,
		0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31,
		0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
	},
	// MPEG-2 LSF table (B.1 in ISO 13818-3)
	{
		0x45, 0x45, 0x45, 0x45,
		0x34, 0x34, 0x34, 0x34, 0x34, 0x34, 0x34,
		0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24,
		0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24,
	},
}

// Quantizer lookup, step 4: row, allocation -> quantTab index + 1.
var quantLutStep4 = [6][]int{
	{0, 1, 2, 17},
	{0, 1, 2, 3, 4, 5, 6, 17},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 17},
	{0, 1, 3, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
	{0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
}

var quantTab = [17]quantizerSpec{
	{3, true, 5},       //  1
	{5, true, 7},       //  2
	{7, false, 3},      //  3
	{9, true, 10},      //  4
	{15, false, 4},     //  5
	{31, false, 5},     //  6
	{63, false, 6},     //  7
	{127, false, 7},    //  8
	{255, false, 8},    //  9
	{511, false, 9},    // 10
	{1023, false, 10},  // 11
	{2047, false, 11},  // 12
	{4095, false, 12},  // 13
	{8191, false, 13},  // 14
	{16383, false, 14}, // 15
	{32767, false, 15}, // 16
	{65535, false, 16}, // 17
}

// layer2Table returns the step 3 table row and the number of coded
// subbands of a frame.
func layer2Table(h frameheader.FrameHeader) (table int, sblimit int) {
	if h.IsLSF() {
		return 2, lsfSblimit
	}
	mode := 1
	if h.Mode() == consts.ModeSingleChannel {
		mode = 0
	}
	class := quantLutStep1[mode][h.BitrateIndex()-1]
	tab := quantLutStep2[class][h.SamplingFrequency()]
	return tab >> 6, tab & 63
}

// layer2Samples holds the dequantized subband samples of a Layer II frame,
// [ch][sample][subband].
type layer2Samples [2][36][consts.Subbands]float32

func (d *Decoder) decodeLayer2(h frameheader.FrameHeader, data []byte, out *PCM) (int, error) {
	if err := readLayer2(h, data, &d.l2); err != nil {
		return 0, err
	}
	nch := h.NumberOfChannels()
	for s := 0; s < 36; s++ {
		for ch := 0; ch < nch; ch++ {
			d.synth.Synthesize(ch, &d.l2[ch][s], out[ch][s*consts.Subbands:])
		}
	}
	return consts.MaxSamplesPerChan, nil
}

// readLayer2 reads the allocation, scale factors and samples of a frame.
func readLayer2(h frameheader.FrameHeader, data []byte, out *layer2Samples) error {
	r := bits.New(data)
	nch := h.NumberOfChannels()
	table, sblimit := layer2Table(h)
	bnd := bound(h, sblimit)

	readAllocation := func(sb int) *quantizerSpec {
		tab4 := quantLutStep3[table][sb]
		q := quantLutStep4[tab4&15][r.Bits(tab4>>4)]
		if q == 0 {
			return nil
		}
		return &quantTab[q-1]
	}

	var alloc [2][consts.Subbands]*quantizerSpec
	for sb := 0; sb < sblimit; sb++ {
		if sb >= bnd {
			alloc[0][sb] = readAllocation(sb)
			alloc[1][sb] = alloc[0][sb]
			continue
		}
		for ch := 0; ch < nch; ch++ {
			alloc[ch][sb] = readAllocation(sb)
		}
	}

	var scfsi [2][consts.Subbands]int
	for sb := 0; sb < sblimit; sb++ {
		for ch := 0; ch < nch; ch++ {
			if alloc[ch][sb] != nil {
				scfsi[ch][sb] = r.Bits(2)
			}
		}
	}

	var scale [2][consts.Subbands][3]float32
	for sb := 0; sb < sblimit; sb++ {
		for ch := 0; ch < nch; ch++ {
			if alloc[ch][sb] == nil {
				continue
			}
			s := &scale[ch][sb]
			switch scfsi[ch][sb] {
			case 0:
				s[0] = scalefactors[r.Bits(6)]
				s[1] = scalefactors[r.Bits(6)]
				s[2] = scalefactors[r.Bits(6)]
			case 1:
				s[0] = scalefactors[r.Bits(6)]
				s[1] = s[0]
				s[2] = scalefactors[r.Bits(6)]
			case 2:
				s[0] = scalefactors[r.Bits(6)]
				s[1] = s[0]
				s[2] = s[0]
			case 3:
				s[0] = scalefactors[r.Bits(6)]
				s[1] = scalefactors[r.Bits(6)]
				s[2] = s[1]
			}
		}
	}

	readTriple := func(q *quantizerSpec) (v [3]float32) {
		if q.grouped {
			val := r.Bits(q.bits)
			for i := 0; i < 3; i++ {
				v[i] = dequantize(val%q.levels, q.levels)
				val /= q.levels
			}
			return
		}
		for i := 0; i < 3; i++ {
			v[i] = dequantize(r.Bits(q.bits), q.levels)
		}
		return
	}

	*out = layer2Samples{}
	for gr := 0; gr < 12; gr++ {
		part := gr / 4
		for sb := 0; sb < sblimit; sb++ {
			if sb >= bnd && nch == 2 {
				if alloc[0][sb] == nil {
					continue
				}
				v := readTriple(alloc[0][sb])
				for i := 0; i < 3; i++ {
					out[0][gr*3+i][sb] = v[i] * scale[0][sb][part]
					out[1][gr*3+i][sb] = v[i] * scale[1][sb][part]
				}
				continue
			}
			for ch := 0; ch < nch; ch++ {
				if alloc[ch][sb] == nil {
					continue
				}
				v := readTriple(alloc[ch][sb])
				for i := 0; i < 3; i++ {
					out[ch][gr*3+i][sb] = v[i] * scale[ch][sb][part]
				}
			}
		}
	}
	if r.BitPos() > r.LenInBits() {
		return errors.New("mpegaudio: Layer II frame is too short")
	}
	return nil
}
