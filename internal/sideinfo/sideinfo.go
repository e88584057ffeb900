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

package sideinfo

import (
	"github.com/pkg/errors"

	"github.com/hajimehoshi/go-mpegaudio/internal/bits"
	"github.com/hajimehoshi/go-mpegaudio/internal/consts"
	"github.com/hajimehoshi/go-mpegaudio/internal/frameheader"
)

// A SideInfo is Layer 3 Side Information of MPEG1 (two granules) or MPEG2/2.5
// (one granule).
// [2][2] means [gr][ch].
type SideInfo struct {
	MainDataBegin    int       // 9 bits, 8 bits in LSF
	PrivateBits      int       // 5 bits in mono, 3 in stereo; 1 or 2 in LSF
	Scfsi            [2][4]int // 1 bit, MPEG1 only
	Part2_3Length    [2][2]int // 12 bits
	BigValues        [2][2]int // 9 bits
	GlobalGain       [2][2]int // 8 bits
	ScalefacCompress [2][2]int // 4 bits, 9 bits in LSF
	WinSwitchFlag    [2][2]int // 1 bit

	BlockType      [2][2]int    // 2 bits
	MixedBlockFlag [2][2]int    // 1 bit
	TableSelect    [2][2][3]int // 5 bits
	SubblockGain   [2][2][3]int // 3 bits

	Region0Count [2][2]int // 4 bits
	Region1Count [2][2]int // 3 bits

	Preflag           [2][2]int // 1 bit, derived from scalefac_compress in LSF
	ScalefacScale     [2][2]int // 1 bit
	Count1TableSelect [2][2]int // 1 bit
	Count1            [2][2]int // Not in file,calc. by huff.dec.!
}

// Parse reads the side information that follows the header (and CRC) of a
// Layer III frame. b must hold at least header.SideInfoSize() bytes.
func Parse(header frameheader.FrameHeader, b []byte) (*SideInfo, error) {
	size := header.SideInfoSize()
	if len(b) < size {
		return nil, errors.Errorf("mpegaudio: side info needs %d bytes, got %d", size, len(b))
	}
	s := bits.New(b[:size])
	nch := header.NumberOfChannels()
	lsf := header.IsLSF()

	// Pointer to where we should start reading main data
	si := &SideInfo{}
	if lsf {
		si.MainDataBegin = s.Bits(8)
		si.PrivateBits = s.Bits(nch)
	} else {
		si.MainDataBegin = s.Bits(9)
		// Get private bits. Not used for anything.
		if header.Mode() == consts.ModeSingleChannel {
			si.PrivateBits = s.Bits(5)
		} else {
			si.PrivateBits = s.Bits(3)
		}
		// Get scale factor selection information
		for ch := 0; ch < nch; ch++ {
			for scfsi_band := 0; scfsi_band < 4; scfsi_band++ {
				si.Scfsi[ch][scfsi_band] = s.Bits(1)
			}
		}
	}
	// Get the rest of the side information
	for gr := 0; gr < header.Granules(); gr++ {
		for ch := 0; ch < nch; ch++ {
			si.Part2_3Length[gr][ch] = s.Bits(12)
			si.BigValues[gr][ch] = s.Bits(9)
			if si.BigValues[gr][ch] > consts.SamplesPerGr/2 {
				return nil, errors.Errorf("mpegaudio: big_values %d exceeds %d", si.BigValues[gr][ch], consts.SamplesPerGr/2)
			}
			si.GlobalGain[gr][ch] = s.Bits(8)
			if lsf {
				si.ScalefacCompress[gr][ch] = s.Bits(9)
			} else {
				si.ScalefacCompress[gr][ch] = s.Bits(4)
			}
			si.WinSwitchFlag[gr][ch] = s.Bits(1)
			if si.WinSwitchFlag[gr][ch] == 1 {
				si.BlockType[gr][ch] = s.Bits(2)
				if si.BlockType[gr][ch] == consts.BlockNormal {
					return nil, errors.New("mpegaudio: window switching with block type 0 is reserved")
				}
				si.MixedBlockFlag[gr][ch] = s.Bits(1)
				for region := 0; region < 2; region++ {
					si.TableSelect[gr][ch][region] = s.Bits(5)
				}
				for window := 0; window < 3; window++ {
					si.SubblockGain[gr][ch][window] = s.Bits(3)
				}
				if (si.BlockType[gr][ch] == consts.BlockShort) && (si.MixedBlockFlag[gr][ch] == 0) {
					si.Region0Count[gr][ch] = 8 // Implicit
				} else {
					si.Region0Count[gr][ch] = 7 // Implicit
				}
				// Implicit, no region 2
				si.Region1Count[gr][ch] = 20 - si.Region0Count[gr][ch]
			} else {
				for region := 0; region < 3; region++ {
					si.TableSelect[gr][ch][region] = s.Bits(5)
				}
				si.Region0Count[gr][ch] = s.Bits(4)
				si.Region1Count[gr][ch] = s.Bits(3)
				si.BlockType[gr][ch] = consts.BlockNormal // Implicit
			}
			if !lsf {
				si.Preflag[gr][ch] = s.Bits(1)
			}
			si.ScalefacScale[gr][ch] = s.Bits(1)
			si.Count1TableSelect[gr][ch] = s.Bits(1)
		}
	}
	return si, nil
}

// IsShort reports whether the granule uses short (or mixed) blocks.
func (si *SideInfo) IsShort(gr, ch int) bool {
	return si.WinSwitchFlag[gr][ch] == 1 && si.BlockType[gr][ch] == consts.BlockShort
}

// IsMixed reports whether the granule is a mixed block.
func (si *SideInfo) IsMixed(gr, ch int) bool {
	return si.IsShort(gr, ch) && si.MixedBlockFlag[gr][ch] == 1
}
