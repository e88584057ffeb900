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
	"sort"
	"testing"

	"go.viam.com/test"

	"github.com/hajimehoshi/go-mpegaudio/internal/consts"
	"github.com/hajimehoshi/go-mpegaudio/internal/imdct"
	"github.com/hajimehoshi/go-mpegaudio/internal/maindata"
	"github.com/hajimehoshi/go-mpegaudio/internal/mpatest"
	"github.com/hajimehoshi/go-mpegaudio/internal/sideinfo"
)

var bands44 = consts.BandIndices(consts.Version1, 0)

func longSideInfo(gain int) *sideinfo.SideInfo {
	si := &sideinfo.SideInfo{}
	for gr := 0; gr < 2; gr++ {
		for ch := 0; ch < 2; ch++ {
			si.GlobalGain[gr][ch] = gain
			si.Count1[gr][ch] = consts.SamplesPerGr
		}
	}
	return si
}

func shortSideInfo(mixed bool) *sideinfo.SideInfo {
	si := longSideInfo(210)
	for ch := 0; ch < 2; ch++ {
		si.WinSwitchFlag[0][ch] = 1
		si.BlockType[0][ch] = consts.BlockShort
		if mixed {
			si.MixedBlockFlag[0][ch] = 1
		}
	}
	return si
}

func TestRequantizeMonotonic(t *testing.T) {
	si := longSideInfo(210)
	var sf maindata.ScaleFactors
	var is, xr [consts.SamplesPerGr]float32
	for i := range is {
		is[i] = float32(i % 100)
	}
	requantize(si, bands44, &sf, &is, &xr, 0, 0)
	for i := 1; i < 100; i++ {
		test.That(t, xr[i], test.ShouldBeGreaterThan, xr[i-1])
	}
	test.That(t, float64(xr[8]), test.ShouldAlmostEqual, 16, 1e-4)

	for i := range is {
		is[i] = -is[i]
	}
	var neg [consts.SamplesPerGr]float32
	requantize(si, bands44, &sf, &is, &neg, 0, 0)
	for i := range xr {
		test.That(t, neg[i], test.ShouldEqual, -xr[i])
	}
}

func TestRequantizeGainAndScale(t *testing.T) {
	var is [consts.SamplesPerGr]float32
	is[0] = 8
	is[400] = 8

	var sf maindata.ScaleFactors
	var lo, hi [consts.SamplesPerGr]float32
	requantize(longSideInfo(210), bands44, &sf, &is, &lo, 0, 0)
	requantize(longSideInfo(214), bands44, &sf, &is, &hi, 0, 0)
	test.That(t, float64(hi[0]/lo[0]), test.ShouldAlmostEqual, 2, 1e-5)

	// A scale factor of 2 halves the line at scalefac_scale 0.
	sf.L[0] = 2
	var scaled [consts.SamplesPerGr]float32
	requantize(longSideInfo(210), bands44, &sf, &is, &scaled, 0, 0)
	test.That(t, float64(scaled[0]), test.ShouldAlmostEqual, 8, 1e-4)
	test.That(t, scaled[400], test.ShouldEqual, lo[400])

	// preflag adds pretab[20] = 2 to band 20.
	si := longSideInfo(210)
	si.Preflag[0][0] = 1
	sf = maindata.ScaleFactors{}
	var pre [consts.SamplesPerGr]float32
	requantize(si, bands44, &sf, &is, &pre, 0, 0)
	test.That(t, pre[0], test.ShouldEqual, lo[0])
	test.That(t, float64(pre[400]), test.ShouldAlmostEqual, 8, 1e-4)
}

func TestRequantizeCount1Limit(t *testing.T) {
	si := longSideInfo(210)
	si.Count1[0][0] = 4
	var sf maindata.ScaleFactors
	var is, xr [consts.SamplesPerGr]float32
	for i := range is {
		is[i] = 1
	}
	requantize(si, bands44, &sf, &is, &xr, 0, 0)
	for i := range xr {
		if i < 4 {
			test.That(t, xr[i], test.ShouldEqual, float32(1))
		} else {
			test.That(t, xr[i], test.ShouldEqual, float32(0))
		}
	}
}

func TestRequantizeShortSubblockGain(t *testing.T) {
	si := shortSideInfo(false)
	si.SubblockGain[0][0] = [3]int{0, 1, 0}
	var sf maindata.ScaleFactors
	var is, xr [consts.SamplesPerGr]float32
	// Band 0 is 4 lines wide; windows occupy lines 0-3, 4-7 and 8-11.
	for i := 0; i < 12; i++ {
		is[i] = 8
	}
	requantize(si, bands44, &sf, &is, &xr, 0, 0)
	test.That(t, float64(xr[0]), test.ShouldAlmostEqual, 16, 1e-4)
	test.That(t, float64(xr[4]), test.ShouldAlmostEqual, 4, 1e-4)
	test.That(t, float64(xr[8]), test.ShouldAlmostEqual, 16, 1e-4)
}

func TestMidSide(t *testing.T) {
	l := []float32{1, 0}
	r := []float32{0, 1}
	midSide(l, r)
	test.That(t, l[0], test.ShouldEqual, r[0])
	test.That(t, float64(l[0]), test.ShouldAlmostEqual, 1/math.Sqrt2, 1e-6)
	test.That(t, l[1], test.ShouldEqual, -r[1])
	test.That(t, float64(l[1]), test.ShouldAlmostEqual, 1/math.Sqrt2, 1e-6)
}

func fillStereo(xr *[2][consts.SamplesPerGr]float32, l, r float32) {
	for i := 0; i < consts.SamplesPerGr; i++ {
		xr[0][i] = l
		xr[1][i] = r
	}
}

func TestStereoMidSideWholeGranule(t *testing.T) {
	h := mpatest.Header(consts.Version1, consts.Layer3, 9, 0, consts.ModeJointStereo, 2)
	si := longSideInfo(210)
	var sf maindata.ScaleFactors
	var xr [2][consts.SamplesPerGr]float32
	fillStereo(&xr, 1, 1)
	stereo(h, si, &sf, &xr, 0)
	for i := 0; i < consts.SamplesPerGr; i++ {
		test.That(t, float64(xr[0][i]), test.ShouldAlmostEqual, math.Sqrt2, 1e-6)
		test.That(t, float64(xr[1][i]), test.ShouldAlmostEqual, 0, 1e-6)
	}

	// Plain stereo leaves the lines untouched.
	h = mpatest.Header(consts.Version1, consts.Layer3, 9, 0, consts.ModeStereo, 0)
	fillStereo(&xr, 1, 1)
	stereo(h, si, &sf, &xr, 0)
	test.That(t, xr[0][7], test.ShouldEqual, float32(1))
	test.That(t, xr[1][7], test.ShouldEqual, float32(1))
}

func TestStereoIntensityMPEG1(t *testing.T) {
	h := mpatest.Header(consts.Version1, consts.Layer3, 9, 0, consts.ModeJointStereo, 1)
	si := longSideInfo(210)

	for _, tc := range []struct {
		pos    int
		kl, kr float64
	}{
		{0, 0, 1},
		{3, 0.5, 0.5},
		{6, 1, 0},
		{7, 1, 0}, // illegal, left as is
	} {
		var sf maindata.ScaleFactors
		for sfb := range sf.L {
			sf.L[sfb] = tc.pos
		}
		var xr [2][consts.SamplesPerGr]float32
		for i := range xr[0] {
			xr[0][i] = 1
		}
		stereo(h, si, &sf, &xr, 0)
		test.That(t, float64(xr[0][0]), test.ShouldAlmostEqual, tc.kl, 1e-6)
		test.That(t, float64(xr[1][0]), test.ShouldAlmostEqual, tc.kr, 1e-6)
		test.That(t, float64(xr[0][575]), test.ShouldAlmostEqual, tc.kl, 1e-6)
		test.That(t, float64(xr[1][575]), test.ShouldAlmostEqual, tc.kr, 1e-6)
	}
}

func TestStereoIntensityStartsAboveRightChannel(t *testing.T) {
	h := mpatest.Header(consts.Version1, consts.Layer3, 9, 0, consts.ModeJointStereo, 3)
	si := longSideInfo(210)
	var sf maindata.ScaleFactors // position 0: all energy to the right
	var xr [2][consts.SamplesPerGr]float32
	fillStereo(&xr, 1, 0)
	// Band 14 covers lines 90-109 at 44.1 kHz.
	xr[1][100] = 1
	stereo(h, si, &sf, &xr, 0)

	// M/S below the intensity bound.
	test.That(t, float64(xr[0][89]), test.ShouldAlmostEqual, 1/math.Sqrt2, 1e-6)
	test.That(t, float64(xr[1][89]), test.ShouldAlmostEqual, 1/math.Sqrt2, 1e-6)
	test.That(t, float64(xr[0][100]), test.ShouldAlmostEqual, math.Sqrt2, 1e-6)
	test.That(t, float64(xr[1][100]), test.ShouldAlmostEqual, 0, 1e-6)
	// Intensity from band 15 on, without the M/S scaling.
	test.That(t, xr[0][110], test.ShouldEqual, float32(0))
	test.That(t, xr[1][110], test.ShouldEqual, float32(1))
	test.That(t, xr[1][575], test.ShouldEqual, float32(1))
}

func TestStereoIntensityShortPerWindow(t *testing.T) {
	h := mpatest.Header(consts.Version1, consts.Layer3, 9, 0, consts.ModeJointStereo, 1)
	si := shortSideInfo(false)
	var sf maindata.ScaleFactors
	var xr [2][consts.SamplesPerGr]float32
	fillStereo(&xr, 1, 0)
	// Window 1 of short band 11 (lines 318+30 .. 318+59) carries right data.
	width := bands44.S[12] - bands44.S[11]
	from := 3*bands44.S[11] + width
	xr[1][from] = 2

	stereo(h, si, &sf, &xr, 0)
	// Window 0 is intensity coded from band 0.
	test.That(t, xr[0][0], test.ShouldEqual, float32(0))
	test.That(t, xr[1][0], test.ShouldEqual, float32(1))
	// Window 1 keeps L/R up to band 11.
	test.That(t, xr[0][from], test.ShouldEqual, float32(1))
	test.That(t, xr[1][from], test.ShouldEqual, float32(2))
	w12 := bands44.S[13] - bands44.S[12]
	last := 3*bands44.S[12] + w12
	test.That(t, xr[0][last], test.ShouldEqual, float32(0))
	test.That(t, xr[1][last], test.ShouldEqual, float32(1))
}

func TestStereoIntensityMPEG2(t *testing.T) {
	h := mpatest.Header(consts.Version2, consts.Layer3, 8, 0, consts.ModeJointStereo, 1)
	si := longSideInfo(210)
	si.ScalefacCompress[0][1] = 1 // intensity_scale 1, base 2^-1/2

	var sf maindata.ScaleFactors
	for sfb := range sf.L {
		sf.L[sfb] = 2
	}
	sf.IllegalL[3] = true
	var xr [2][consts.SamplesPerGr]float32
	fillStereo(&xr, 1, 0)
	stereo(h, si, &sf, &xr, 0)
	test.That(t, float64(xr[0][0]), test.ShouldAlmostEqual, 1, 1e-6)
	test.That(t, float64(xr[1][0]), test.ShouldAlmostEqual, 1/math.Sqrt2, 1e-6)

	lsfBands := consts.BandIndices(consts.Version2, 0)
	i := lsfBands.L[3]
	test.That(t, xr[0][i], test.ShouldEqual, float32(1))
	test.That(t, xr[1][i], test.ShouldEqual, float32(0))
}

func TestReorder(t *testing.T) {
	si := shortSideInfo(false)
	var xr [consts.SamplesPerGr]float32
	for i := range xr {
		xr[i] = float32(i)
	}
	reorder(si, bands44, &xr, 0, 0)
	test.That(t, xr[:12], test.ShouldResemble, []float32{0, 4, 8, 1, 5, 9, 2, 6, 10, 3, 7, 11})

	got := make([]float64, len(xr))
	for i, v := range xr {
		got[i] = float64(v)
	}
	sort.Float64s(got)
	for i, v := range got {
		test.That(t, v, test.ShouldEqual, float64(i))
	}
}

func TestReorderMixedKeepsLongPart(t *testing.T) {
	si := shortSideInfo(true)
	var xr [consts.SamplesPerGr]float32
	for i := range xr {
		xr[i] = float32(i)
	}
	reorder(si, bands44, &xr, 0, 0)
	for i := 0; i < 36; i++ {
		test.That(t, xr[i], test.ShouldEqual, float32(i))
	}
	// Band 3 is 4 lines wide and starts at 36.
	test.That(t, xr[36:48], test.ShouldResemble, []float32{36, 40, 44, 37, 41, 45, 38, 42, 46, 39, 43, 47})
}

func TestAntialias(t *testing.T) {
	si := longSideInfo(210)
	var xr [consts.SamplesPerGr]float32
	xr[17] = 1
	antialias(si, &xr, 0, 0)
	test.That(t, xr[17], test.ShouldEqual, cs[0])
	test.That(t, xr[18], test.ShouldEqual, ca[0])
	for i := range cs {
		test.That(t, float64(cs[i]*cs[i]+ca[i]*ca[i]), test.ShouldAlmostEqual, 1, 1e-5)
	}

	short := shortSideInfo(false)
	xr = [consts.SamplesPerGr]float32{}
	xr[17] = 1
	antialias(short, &xr, 0, 0)
	test.That(t, xr[17], test.ShouldEqual, float32(1))
	test.That(t, xr[18], test.ShouldEqual, float32(0))

	mixed := shortSideInfo(true)
	xr = [consts.SamplesPerGr]float32{}
	xr[17] = 1
	xr[35] = 1
	antialias(mixed, &xr, 0, 0)
	test.That(t, xr[18], test.ShouldEqual, ca[0])
	test.That(t, xr[35], test.ShouldEqual, float32(1))
	test.That(t, xr[36], test.ShouldEqual, float32(0))
}

func TestFrequencyInversion(t *testing.T) {
	var xr [consts.SamplesPerGr]float32
	for i := range xr {
		xr[i] = 1
	}
	frequencyInversion(&xr)
	test.That(t, xr[0], test.ShouldEqual, float32(1))
	test.That(t, xr[1], test.ShouldEqual, float32(1))
	test.That(t, xr[18], test.ShouldEqual, float32(1))
	test.That(t, xr[19], test.ShouldEqual, float32(-1))
	test.That(t, xr[20], test.ShouldEqual, float32(1))
}

func TestHybridSynthesisOverlap(t *testing.T) {
	d := NewDecoder()
	si := longSideInfo(210)
	var xr [consts.SamplesPerGr]float32
	xr[0] = 1
	var in [18]float32
	in[0] = 1
	var raw [36]float32
	imdct.Win(&in, consts.BlockNormal, &raw)

	d.hybridSynthesis(si, &xr, 0, 0)
	for i := 0; i < 18; i++ {
		test.That(t, xr[i], test.ShouldEqual, raw[i])
	}
	d.parity ^= 1

	// The next granule of the same channel gets the tail.
	xr = [consts.SamplesPerGr]float32{}
	d.hybridSynthesis(si, &xr, 1, 0)
	for i := 0; i < 18; i++ {
		test.That(t, xr[i], test.ShouldEqual, raw[i+18])
	}

	// The other channel has its own history.
	xr = [consts.SamplesPerGr]float32{}
	d.hybridSynthesis(si, &xr, 1, 1)
	test.That(t, xr[:18], test.ShouldResemble, make([]float32, 18))
}
