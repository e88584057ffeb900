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

// Package maindata reads Layer III main data: scale factors and Huffman
// coded frequency lines, through the bit reservoir.
package maindata

import (
	"github.com/pkg/errors"

	"github.com/hajimehoshi/go-mpegaudio/internal/bits"
	"github.com/hajimehoshi/go-mpegaudio/internal/consts"
	"github.com/hajimehoshi/go-mpegaudio/internal/frameheader"
	"github.com/hajimehoshi/go-mpegaudio/internal/huffman"
	"github.com/hajimehoshi/go-mpegaudio/internal/sideinfo"
)

// A MainData is Layer 3 Main Data of one frame.
// [2][2] means [gr][ch].
type MainData struct {
	Scalefac [2][2]ScaleFactors
	Is       [2][2][consts.SamplesPerGr]float32 // Huffman coded freq. lines
}

// Read decodes the main data of every granule and channel. The reservoir
// cursor must point at the first bit of the frame's main data. For LSF
// frames the derived preflag is stored back into si.
func Read(r *bits.Window, header frameheader.FrameHeader, si *sideinfo.SideInfo, md *MainData) error {
	nch := header.NumberOfChannels()
	bands := consts.BandIndices(header.ID(), header.SamplingFrequency())
	intensity := header.Mode() == consts.ModeJointStereo && header.ModeExtension()&0x1 != 0
	for gr := 0; gr < header.Granules(); gr++ {
		for ch := 0; ch < nch; ch++ {
			part2Start := r.TotalBits()
			sf := &md.Scalefac[gr][ch]
			if header.IsLSF() {
				si.Preflag[gr][ch] = ReadScaleFactorsMPEG2(r, si, ch, intensity && ch == 1, sf)
			} else {
				var prev *ScaleFactors
				if gr == 1 {
					prev = &md.Scalefac[0][ch]
				}
				ReadScaleFactorsMPEG1(r, si, gr, ch, sf, prev)
			}
			if err := readHuffman(r, bands, si, &md.Is[gr][ch], part2Start, gr, ch); err != nil {
				return errors.Wrapf(err, "granule %d channel %d", gr, ch)
			}
		}
	}
	return nil
}

func readHuffman(m *bits.Window, bands *consts.SfBandIndices, sideInfo *sideinfo.SideInfo, is *[consts.SamplesPerGr]float32, part_2_start, gr, ch int) error {
	// Check that there is any data to decode. If not,zero the array.
	if sideInfo.Part2_3Length[gr][ch] == 0 {
		for is_pos := 0; is_pos < consts.SamplesPerGr; is_pos++ {
			is[is_pos] = 0.0
		}
		sideInfo.Count1[gr][ch] = 0
		m.SetTotalBits(part_2_start)
		return nil
	}
	// Calculate bit_pos_end which is the index of the last bit for this part.
	bit_pos_end := part_2_start + sideInfo.Part2_3Length[gr][ch] - 1
	if m.TotalBits() > bit_pos_end+1 {
		return errors.Errorf("mpegaudio: scale factors overrun part2_3_length %d", sideInfo.Part2_3Length[gr][ch])
	}
	// Determine region boundaries
	region_1_start := 0
	region_2_start := 0
	if sideInfo.IsShort(gr, ch) {
		if sideInfo.IsMixed(gr, ch) {
			region_1_start = 36
		} else {
			region_1_start = bands.S[3] * 3
		}
		region_2_start = consts.SamplesPerGr // No Region2 for short block case.
	} else {
		l := bands.L
		region_1_start = consts.SamplesPerGr
		if i := sideInfo.Region0Count[gr][ch] + 1; i < len(l) {
			region_1_start = l[i]
		}
		region_2_start = consts.SamplesPerGr
		if j := sideInfo.Region0Count[gr][ch] + sideInfo.Region1Count[gr][ch] + 2; j < len(l) {
			region_2_start = l[j]
		}
	}
	for _, t := range sideInfo.TableSelect[gr][ch] {
		if !huffman.Valid(t) {
			return errors.Errorf("mpegaudio: Huffman table %d is not allowed", t)
		}
	}
	// Read big_values using tables according to region_x_start
	for is_pos := 0; is_pos < sideInfo.BigValues[gr][ch]*2; is_pos++ {
		table_num := 0
		if is_pos < region_1_start {
			table_num = sideInfo.TableSelect[gr][ch][0]
		} else if is_pos < region_2_start {
			table_num = sideInfo.TableSelect[gr][ch][1]
		} else {
			table_num = sideInfo.TableSelect[gr][ch][2]
		}
		// Get next Huffman coded words
		x, y, err := huffman.Decode(m, table_num)
		if err != nil {
			return err
		}
		// In the big_values area there are two freq lines per Huffman word
		is[is_pos] = float32(x)
		is_pos++
		is[is_pos] = float32(y)
	}
	// Read small values until is_pos = 576 or we run out of huffman data
	table_num := sideInfo.Count1TableSelect[gr][ch] + 32
	is_pos := sideInfo.BigValues[gr][ch] * 2
	quads := 0
	for (is_pos <= 572) && (m.TotalBits() <= bit_pos_end) {
		// Get next Huffman coded words
		v, w, x, y, err := huffman.DecodeQuad(m, table_num)
		if err != nil {
			return err
		}
		is[is_pos] = float32(v)
		is[is_pos+1] = float32(w)
		is[is_pos+2] = float32(x)
		is[is_pos+3] = float32(y)
		is_pos += 4
		quads++
	}
	// Check that we didn't read past the end of this section
	if quads > 0 && m.TotalBits() > (bit_pos_end+1) {
		// Remove last words read
		is_pos -= 4
	}
	// Setup count1 which is the index of the first sample in the rzero reg.
	sideInfo.Count1[gr][ch] = is_pos
	// Zero out the last part if necessary
	for is_pos < consts.SamplesPerGr {
		is[is_pos] = 0.0
		is_pos++
	}
	// Set the bitpos to point to the next part to read
	m.SetTotalBits(bit_pos_end + 1)
	return nil
}
