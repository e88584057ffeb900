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
	"github.com/hajimehoshi/go-mpegaudio/internal/huffman"
)

// Granule is the quantized content of one Layer III granule and channel.
// Values are in bitstream order.
type Granule struct {
	Values           [consts.SamplesPerGr]int
	GlobalGain       int
	ScalefacScale    int
	Preflag          int
	BlockType        int // 0 disables window switching
	Mixed            bool
	SubblockGain     [3]int
	ScalefacCompress int // MPEG-1 only; LSF granules must leave it 0
	ScaleL           [22]int
	ScaleS           [13][3]int
	Count1Table      int
}

// Layer3Frame is one Layer III frame. Only Granules[0] is used for LSF
// headers.
type Layer3Frame struct {
	Header   frameheader.FrameHeader
	Scfsi    [2][4]int
	Granules [2][2]Granule
}

var (
	slen1 = [16]int{0, 0, 0, 0, 3, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4}
	slen2 = [16]int{0, 1, 2, 3, 0, 1, 2, 3, 1, 2, 3, 1, 2, 3, 2, 3}
)

type granuleSide struct {
	part23Length int
	bigValues    int
	tableSelect  [3]int
	region0      int
	region1      int
}

func checkedWrite(w *BitWriter, v, n int) error {
	if v < 0 || v >= 1<<uint(n) {
		return errors.Errorf("mpatest: scale factor %d does not fit in %d bits", v, n)
	}
	w.WriteBits(uint32(v), n)
	return nil
}

func writeScalefactors(w *BitWriter, g *Granule, gr int, scfsi [4]int) error {
	if g.ScalefacCompress < 0 || g.ScalefacCompress > 15 {
		return errors.Errorf("mpatest: scalefac_compress %d out of range", g.ScalefacCompress)
	}
	s1 := slen1[g.ScalefacCompress]
	s2 := slen2[g.ScalefacCompress]
	if g.BlockType == consts.BlockShort {
		start := 0
		if g.Mixed {
			for sfb := 0; sfb < 8; sfb++ {
				if err := checkedWrite(w, g.ScaleL[sfb], s1); err != nil {
					return err
				}
			}
			start = 3
		}
		for sfb := start; sfb < 12; sfb++ {
			n := s1
			if sfb >= 6 {
				n = s2
			}
			for win := 0; win < 3; win++ {
				if err := checkedWrite(w, g.ScaleS[sfb][win], n); err != nil {
					return err
				}
			}
		}
		return nil
	}
	groups := [5]int{0, 6, 11, 16, 21}
	for i := 0; i < 4; i++ {
		if gr == 1 && scfsi[i] == 1 {
			continue
		}
		for sfb := groups[i]; sfb < groups[i+1]; sfb++ {
			n := s1
			if sfb >= 11 {
				n = s2
			}
			if err := checkedWrite(w, g.ScaleL[sfb], n); err != nil {
				return err
			}
		}
	}
	return nil
}

func chooseTable(max int) int {
	switch {
	case max == 0:
		return 0
	case max <= 1:
		return 1
	case max <= 2:
		return 2
	case max <= 3:
		return 5
	case max <= 5:
		return 7
	case max <= 7:
		return 10
	case max <= 15:
		return 13
	}
	for t := 16; t < 32; t++ {
		if max-15 < 1<<uint(huffman.Linbits(t)) {
			return t
		}
	}
	return 31
}

func writeSpectrum(w *BitWriter, g *Granule, bands *consts.SfBandIndices) (granuleSide, error) {
	var side granuleSide
	v := &g.Values
	i := consts.SamplesPerGr
	for i > 1 && v[i-1] == 0 && v[i-2] == 0 {
		i -= 2
	}
	rzero := i
	for i > 3 && abs(v[i-1]) <= 1 && abs(v[i-2]) <= 1 && abs(v[i-3]) <= 1 && abs(v[i-4]) <= 1 {
		i -= 4
	}
	big := i
	side.bigValues = big / 2

	var bounds [3]int
	if g.BlockType != 0 {
		r1 := 36
		if !g.Mixed {
			r1 = bands.S[3] * 3
		}
		bounds = [3]int{r1, consts.SamplesPerGr, consts.SamplesPerGr}
	} else {
		side.region0 = 7
		side.region1 = 7
		bounds = [3]int{bands.L[side.region0+1], bands.L[side.region0+side.region1+2], consts.SamplesPerGr}
	}
	start := 0
	for r := 0; r < 3; r++ {
		end := bounds[r]
		if end > big {
			end = big
		}
		max := 0
		for j := start; j < end; j++ {
			if abs(v[j]) > max {
				max = abs(v[j])
			}
		}
		side.tableSelect[r] = chooseTable(max)
		if end > start {
			start = end
		}
	}
	for j := 0; j < big; j += 2 {
		t := side.tableSelect[2]
		switch {
		case j < bounds[0]:
			t = side.tableSelect[0]
		case j < bounds[1]:
			t = side.tableSelect[1]
		}
		if err := w.WritePair(t, v[j], v[j+1]); err != nil {
			return side, err
		}
	}
	for j := big; j < rzero; j += 4 {
		if err := w.WriteQuad(32+g.Count1Table, v[j], v[j+1], v[j+2], v[j+3]); err != nil {
			return side, err
		}
	}
	return side, nil
}

func writeSideInfo(w *BitWriter, f *Layer3Frame, mainDataBegin int, sides *[2][2]granuleSide) {
	h := f.Header
	nch := h.NumberOfChannels()
	lsf := h.IsLSF()
	if lsf {
		w.WriteBits(uint32(mainDataBegin), 8)
		if nch == 1 {
			w.WriteBits(0, 1)
		} else {
			w.WriteBits(0, 2)
		}
	} else {
		w.WriteBits(uint32(mainDataBegin), 9)
		if nch == 1 {
			w.WriteBits(0, 5)
		} else {
			w.WriteBits(0, 3)
		}
		for ch := 0; ch < nch; ch++ {
			for i := 0; i < 4; i++ {
				w.WriteBits(uint32(f.Scfsi[ch][i]), 1)
			}
		}
	}
	for gr := 0; gr < h.Granules(); gr++ {
		for ch := 0; ch < nch; ch++ {
			g := &f.Granules[gr][ch]
			s := &sides[gr][ch]
			w.WriteBits(uint32(s.part23Length), 12)
			w.WriteBits(uint32(s.bigValues), 9)
			w.WriteBits(uint32(g.GlobalGain), 8)
			if lsf {
				w.WriteBits(uint32(g.ScalefacCompress), 9)
			} else {
				w.WriteBits(uint32(g.ScalefacCompress), 4)
			}
			if g.BlockType != 0 {
				w.WriteBits(1, 1)
				w.WriteBits(uint32(g.BlockType), 2)
				if g.Mixed {
					w.WriteBits(1, 1)
				} else {
					w.WriteBits(0, 1)
				}
				w.WriteBits(uint32(s.tableSelect[0]), 5)
				w.WriteBits(uint32(s.tableSelect[1]), 5)
				for win := 0; win < 3; win++ {
					w.WriteBits(uint32(g.SubblockGain[win]), 3)
				}
			} else {
				w.WriteBits(0, 1)
				for r := 0; r < 3; r++ {
					w.WriteBits(uint32(s.tableSelect[r]), 5)
				}
				w.WriteBits(uint32(s.region0), 4)
				w.WriteBits(uint32(s.region1), 3)
			}
			if !lsf {
				w.WriteBits(uint32(g.Preflag), 1)
			}
			w.WriteBits(uint32(g.ScalefacScale), 1)
			w.WriteBits(uint32(g.Count1Table), 1)
		}
	}
}

// BuildLayer3 serializes frames. With useReservoir, each frame's main data
// starts as early as the bit reservoir allows, so it spills into the
// previous frames' unused bytes.
func BuildLayer3(frames []Layer3Frame, useReservoir bool) ([]byte, error) {
	type built struct {
		mainData []byte
		sides    [2][2]granuleSide
		capacity int
		size     int
	}
	bs := make([]built, len(frames))
	for i := range frames {
		f := &frames[i]
		h := f.Header
		size, err := h.FrameSize()
		if err != nil {
			return nil, err
		}
		bands := consts.BandIndices(h.ID(), h.SamplingFrequency())
		var md BitWriter
		for gr := 0; gr < h.Granules(); gr++ {
			for ch := 0; ch < h.NumberOfChannels(); ch++ {
				g := &f.Granules[gr][ch]
				start := md.Len()
				if h.IsLSF() {
					if g.ScalefacCompress != 0 {
						return nil, errors.New("mpatest: LSF granules support scalefac_compress 0 only")
					}
				} else if err := writeScalefactors(&md, g, gr, f.Scfsi[ch]); err != nil {
					return nil, err
				}
				side, err := writeSpectrum(&md, g, bands)
				if err != nil {
					return nil, errors.Wrapf(err, "frame %d granule %d channel %d", i, gr, ch)
				}
				side.part23Length = md.Len() - start
				bs[i].sides[gr][ch] = side
			}
		}
		bs[i].mainData = md.Bytes()
		bs[i].size = size
		bs[i].capacity = size - 4 - h.SideInfoSize()
	}

	total := 0
	for _, b := range bs {
		total += b.capacity
	}
	mainStream := make([]byte, total)
	begins := make([]int, len(frames))
	slot := 0
	end := 0
	for i, b := range bs {
		maxBegin := 511
		if frames[i].Header.IsLSF() {
			maxBegin = 255
		}
		pos := slot
		if useReservoir {
			pos = slot - maxBegin
			if pos < end {
				pos = end
			}
		}
		if pos < end {
			return nil, errors.Errorf("mpatest: frame %d overlaps the previous main data", i)
		}
		if pos+len(b.mainData) > slot+b.capacity {
			return nil, errors.Errorf("mpatest: frame %d main data (%d bytes) does not fit", i, len(b.mainData))
		}
		copy(mainStream[pos:], b.mainData)
		begins[i] = slot - pos
		end = pos + len(b.mainData)
		slot += b.capacity
	}

	var out []byte
	slot = 0
	for i, b := range bs {
		hb := frames[i].Header.Bytes()
		out = append(out, hb[:]...)
		var si BitWriter
		writeSideInfo(&si, &frames[i], begins[i], &b.sides)
		out = append(out, si.Bytes()...)
		out = append(out, mainStream[slot:slot+b.capacity]...)
		slot += b.capacity
	}
	return out, nil
}
