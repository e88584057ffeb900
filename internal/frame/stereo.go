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
	"github.com/hajimehoshi/go-mpegaudio/internal/frameheader"
	"github.com/hajimehoshi/go-mpegaudio/internal/maindata"
	"github.com/hajimehoshi/go-mpegaudio/internal/sideinfo"
)

const invSqrt2 = math.Sqrt2 / 2

var (
	// MPEG-1 intensity ratios for is_pos 0..6.
	isRatiosMPEG1 [7][2]float32

	// MPEG-2 intensity ratios indexed [intensity_scale][is_pos].
	isRatiosMPEG2 [2][64][2]float32
)

func init() {
	for p := 0; p < 6; p++ {
		r := math.Tan(float64(p) * math.Pi / 12)
		isRatiosMPEG1[p] = [2]float32{float32(r / (1 + r)), float32(1 / (1 + r))}
	}
	isRatiosMPEG1[6] = [2]float32{1, 0}

	for j := 0; j < 2; j++ {
		base := math.Pow(2, -float64(j+1)/4)
		for p := range isRatiosMPEG2[j] {
			switch {
			case p == 0:
				isRatiosMPEG2[j][p] = [2]float32{1, 1}
			case p%2 == 1:
				isRatiosMPEG2[j][p] = [2]float32{float32(math.Pow(base, float64(p+1)/2)), 1}
			default:
				isRatiosMPEG2[j][p] = [2]float32{1, float32(math.Pow(base, float64(p)/2))}
			}
		}
	}
}

// midSide turns mid/side lines back into left/right in place.
func midSide(l, r []float32) {
	for i := range l {
		m, s := l[i], r[i]
		l[i] = (m + s) * invSqrt2
		r[i] = (m - s) * invSqrt2
	}
}

// intensity spreads the left lines over both channels with the ratios kl
// and kr.
func intensity(l, r []float32, kl, kr float32) {
	for i := range l {
		v := l[i]
		l[i] = v * kl
		r[i] = v * kr
	}
}

func isZero(v []float32) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

type stereoProcessor struct {
	ms, is bool
	lsf    bool
	scale  int // intensity_scale, LSF only
	sf     *maindata.ScaleFactors
	l, r   *[consts.SamplesPerGr]float32
}

// ratios returns the intensity ratios of a position. ok is false when the
// position is illegal.
func (p *stereoProcessor) ratios(pos int, illegal bool) (kl, kr float32, ok bool) {
	if p.lsf {
		if illegal {
			return 0, 0, false
		}
		if pos >= len(isRatiosMPEG2[p.scale]) {
			pos = len(isRatiosMPEG2[p.scale]) - 1
		}
		k := isRatiosMPEG2[p.scale][pos]
		return k[0], k[1], true
	}
	if pos >= 7 {
		return 0, 0, false
	}
	k := isRatiosMPEG1[pos]
	return k[0], k[1], true
}

// band processes lines [from, to). useIS selects intensity stereo with the
// given position.
func (p *stereoProcessor) band(from, to int, useIS bool, pos int, illegal bool) {
	l, r := p.l[from:to], p.r[from:to]
	if useIS {
		if kl, kr, ok := p.ratios(pos, illegal); ok {
			intensity(l, r, kl, kr)
			return
		}
	}
	if p.ms {
		midSide(l, r)
	}
}

// long handles the long bands whose lines are below limit. isAllowed
// tells whether intensity may be used at all in this region.
func (p *stereoProcessor) long(bands *consts.SfBandIndices, limit int, isAllowed bool) {
	last := -1
	for i := limit - 1; i >= 0; i-- {
		if p.r[i] != 0 {
			last = i
			break
		}
	}
	for sfb := 0; sfb < 22 && bands.L[sfb] < limit; sfb++ {
		from, to := bands.L[sfb], bands.L[sfb+1]
		if to > limit {
			to = limit
		}
		// The last band has no scale factor of its own.
		psfb := sfb
		if psfb == 21 {
			psfb = 20
		}
		useIS := p.is && isAllowed && from > last
		p.band(from, to, useIS, p.sf.L[psfb], p.sf.IllegalL[psfb])
	}
}

// short handles the short bands from startSfb on. It reports whether the
// right channel is zero across all of them.
func (p *stereoProcessor) short(bands *consts.SfBandIndices, startSfb int) bool {
	allZero := true
	for win := 0; win < 3; win++ {
		last := startSfb - 1
		for sfb := 12; sfb >= startSfb; sfb-- {
			width := bands.S[sfb+1] - bands.S[sfb]
			from := 3*bands.S[sfb] + win*width
			if !isZero(p.r[from : from+width]) {
				last = sfb
				break
			}
		}
		if last >= startSfb {
			allZero = false
		}
		for sfb := startSfb; sfb < 13; sfb++ {
			width := bands.S[sfb+1] - bands.S[sfb]
			from := 3*bands.S[sfb] + win*width
			psfb := sfb
			if psfb == 12 {
				psfb = 11
			}
			p.band(from, from+width, p.is && sfb > last, p.sf.S[psfb][win], p.sf.IllegalS[psfb][win])
		}
	}
	return allZero
}

// stereo undoes joint stereo coding of one granule. Lines are in bitstream
// order, so short bands are still window-contiguous.
func stereo(h frameheader.FrameHeader, si *sideinfo.SideInfo, sf *maindata.ScaleFactors, xr *[2][consts.SamplesPerGr]float32, gr int) {
	if h.Mode() != consts.ModeJointStereo || h.NumberOfChannels() != 2 {
		return
	}
	p := &stereoProcessor{
		ms:    h.ModeExtension()&0x2 != 0,
		is:    h.ModeExtension()&0x1 != 0,
		lsf:   h.IsLSF(),
		scale: si.ScalefacCompress[gr][1] & 1,
		sf:    sf,
		l:     &xr[0],
		r:     &xr[1],
	}
	if !p.ms && !p.is {
		return
	}
	bands := consts.BandIndices(h.ID(), h.SamplingFrequency())

	if !si.IsShort(gr, 1) {
		p.long(bands, consts.SamplesPerGr, true)
		return
	}
	start, startSfb := shortStart(si, bands, gr, 1)
	if start == 0 {
		p.short(bands, 0)
		return
	}
	// Mixed blocks: the long part may use intensity only when the whole
	// short part of the right channel is zero.
	allZero := p.short(bands, startSfb)
	p.long(bands, start, allZero)
}
