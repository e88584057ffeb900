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

package maindata_test

import (
	"testing"

	"github.com/pkg/errors"
	"go.viam.com/test"

	"github.com/hajimehoshi/go-mpegaudio/internal/bits"
	"github.com/hajimehoshi/go-mpegaudio/internal/consts"
	. "github.com/hajimehoshi/go-mpegaudio/internal/maindata"
	"github.com/hajimehoshi/go-mpegaudio/internal/mpatest"
	"github.com/hajimehoshi/go-mpegaudio/internal/sideinfo"
)

func TestReservoir(t *testing.T) {
	var r Reservoir
	r.Reset()
	test.That(t, r.Available(), test.ShouldEqual, 0)

	slot := make([]byte, 100)
	slot[0] = 0xa5
	test.That(t, r.Push(0, slot), test.ShouldBeNil)
	test.That(t, r.Window().TotalBits(), test.ShouldEqual, 0)
	test.That(t, r.Window().Bits(8), test.ShouldEqual, 0xa5)

	test.That(t, r.Available(), test.ShouldEqual, 100)
	test.That(t, r.Push(100, make([]byte, 50)), test.ShouldBeNil)
	test.That(t, r.Window().TotalBits(), test.ShouldEqual, 0)

	err := r.Push(151, make([]byte, 50))
	test.That(t, errors.Is(err, ErrReservoir), test.ShouldBeTrue)
	// The slot is kept for the next frame.
	test.That(t, r.Available(), test.ShouldEqual, 200)
	test.That(t, r.Push(200, nil), test.ShouldBeNil)

	test.That(t, r.Push(0, make([]byte, MaxFrameBytes+1)), test.ShouldNotBeNil)
}

func TestReservoirAppend(t *testing.T) {
	var r Reservoir
	r.Reset()
	test.That(t, r.Push(0, make([]byte, 10)), test.ShouldBeNil)
	slot := make([]byte, 20)
	slot[0] = 0x5a
	test.That(t, r.Append(slot), test.ShouldBeNil)
	test.That(t, r.Available(), test.ShouldEqual, 30)

	// The next frame reaches back into the appended slot.
	test.That(t, r.Push(20, make([]byte, 5)), test.ShouldBeNil)
	test.That(t, r.Window().Bits(8), test.ShouldEqual, 0x5a)

	test.That(t, r.Append(make([]byte, MaxFrameBytes+1)), test.ShouldNotBeNil)
}

func TestReservoirAvailableIsBounded(t *testing.T) {
	var r Reservoir
	r.Reset()
	for i := 0; i < 10; i++ {
		test.That(t, r.Push(0, make([]byte, 1000)), test.ShouldBeNil)
	}
	test.That(t, r.Available(), test.ShouldEqual, bits.WindowSize-MaxFrameBytes)
}

func pattern(g *mpatest.Granule, seed, n int) {
	for i := 0; i < n; i++ {
		g.Values[i] = (i*7+seed)%21 - 10
	}
	for i := n; i < n+20; i++ {
		g.Values[i] = (i+seed)%3 - 1
	}
}

func TestReadRoundTrip(t *testing.T) {
	h := mpatest.Header(consts.Version1, consts.Layer3, 14, 0, consts.ModeStereo, 0)
	f := mpatest.Layer3Frame{Header: h}
	f.Scfsi[1] = [4]int{1, 0, 1, 0}
	for gr := 0; gr < 2; gr++ {
		for ch := 0; ch < 2; ch++ {
			g := &f.Granules[gr][ch]
			g.GlobalGain = 150
			g.ScalefacCompress = 15
			pattern(g, gr*2+ch, 60)
			for sfb := 0; sfb < 21; sfb++ {
				g.ScaleL[sfb] = (sfb + gr*3 + ch) % 8
			}
		}
	}
	f.Granules[0][1].Values[300] = 400
	f.Granules[0][1].Values[301] = -16

	// Groups 0 and 2 of granule 1, channel 1 are shared with granule 0.
	for sfb := 0; sfb < 6; sfb++ {
		f.Granules[1][1].ScaleL[sfb] = f.Granules[0][1].ScaleL[sfb]
	}
	for sfb := 11; sfb < 16; sfb++ {
		f.Granules[1][1].ScaleL[sfb] = f.Granules[0][1].ScaleL[sfb]
	}

	short := &f.Granules[1][0]
	short.BlockType = consts.BlockShort
	short.SubblockGain = [3]int{1, 0, 2}
	for sfb := 0; sfb < 12; sfb++ {
		for win := 0; win < 3; win++ {
			short.ScaleS[sfb][win] = (sfb + win) % 8
		}
	}

	data, err := mpatest.BuildLayer3([]mpatest.Layer3Frame{f}, false)
	test.That(t, err, test.ShouldBeNil)
	size, _ := h.FrameSize()
	test.That(t, data, test.ShouldHaveLength, size)

	si, err := sideinfo.Parse(h, data[4:])
	test.That(t, err, test.ShouldBeNil)
	test.That(t, si.MainDataBegin, test.ShouldEqual, 0)

	var r Reservoir
	r.Reset()
	test.That(t, r.Push(si.MainDataBegin, data[4+h.SideInfoSize():]), test.ShouldBeNil)

	var md MainData
	test.That(t, Read(r.Window(), h, si, &md), test.ShouldBeNil)
	for gr := 0; gr < 2; gr++ {
		for ch := 0; ch < 2; ch++ {
			g := &f.Granules[gr][ch]
			for i := 0; i < consts.SamplesPerGr; i++ {
				if md.Is[gr][ch][i] != float32(g.Values[i]) {
					t.Fatalf("gr %d ch %d line %d: got %v, want %d", gr, ch, i, md.Is[gr][ch][i], g.Values[i])
				}
			}
			if g.BlockType == consts.BlockShort {
				for sfb := 0; sfb < 12; sfb++ {
					test.That(t, md.Scalefac[gr][ch].S[sfb], test.ShouldResemble, g.ScaleS[sfb])
				}
				continue
			}
			for sfb := 0; sfb < 21; sfb++ {
				test.That(t, md.Scalefac[gr][ch].L[sfb], test.ShouldEqual, g.ScaleL[sfb])
			}
		}
	}
	test.That(t, si.Count1[0][0], test.ShouldEqual, 80)
}

func TestReadErrors(t *testing.T) {
	h := mpatest.Header(consts.Version1, consts.Layer3, 14, 0, consts.ModeSingleChannel, 0)
	si := &sideinfo.SideInfo{}
	si.Part2_3Length[0][0] = 100
	si.BigValues[0][0] = 10
	si.TableSelect[0][0] = [3]int{4, 0, 0}

	var r Reservoir
	r.Reset()
	test.That(t, r.Push(0, make([]byte, 200)), test.ShouldBeNil)
	var md MainData
	test.That(t, Read(r.Window(), h, si, &md), test.ShouldNotBeNil)

	// Scale factors longer than part2_3_length.
	si.TableSelect[0][0] = [3]int{1, 1, 1}
	si.ScalefacCompress[0][0] = 15
	si.Part2_3Length[0][0] = 10
	r.Reset()
	test.That(t, r.Push(0, make([]byte, 200)), test.ShouldBeNil)
	test.That(t, Read(r.Window(), h, si, &md), test.ShouldNotBeNil)
}

func TestZeroPart23Length(t *testing.T) {
	h := mpatest.Header(consts.Version1, consts.Layer3, 14, 0, consts.ModeSingleChannel, 0)
	si := &sideinfo.SideInfo{}
	si.ScalefacCompress[0][0] = 15
	var r Reservoir
	r.Reset()
	slot := make([]byte, 200)
	for i := range slot {
		slot[i] = 0xff
	}
	test.That(t, r.Push(0, slot), test.ShouldBeNil)
	var md MainData
	md.Is[0][0][3] = 5
	test.That(t, Read(r.Window(), h, si, &md), test.ShouldBeNil)
	test.That(t, md.Is[0][0][3], test.ShouldEqual, float32(0))
	test.That(t, r.Window().TotalBits(), test.ShouldEqual, 0)
}

func TestScaleFactorsMPEG2(t *testing.T) {
	var w mpatest.BitWriter
	// scalefac_compress 511: slen {3, 2, 0, 0}, 11 and 10 long bands, preflag.
	for i := 0; i < 11; i++ {
		w.WriteBits(uint32(i%8), 3)
	}
	for i := 0; i < 10; i++ {
		w.WriteBits(uint32(i%4), 2)
	}
	var win bits.Window
	win.Initialize()
	for _, c := range append(w.Bytes(), 0, 0, 0, 0) {
		win.PutByte(c)
	}

	si := &sideinfo.SideInfo{}
	si.ScalefacCompress[0][0] = 511
	var sf ScaleFactors
	preflag := ReadScaleFactorsMPEG2(&win, si, 0, false, &sf)
	test.That(t, preflag, test.ShouldEqual, 1)
	test.That(t, win.TotalBits(), test.ShouldEqual, 11*3+10*2)
	for i := 0; i < 11; i++ {
		test.That(t, sf.L[i], test.ShouldEqual, i%8)
	}
	for i := 0; i < 10; i++ {
		test.That(t, sf.L[11+i], test.ShouldEqual, i%4)
	}
	test.That(t, sf.IllegalL[7], test.ShouldBeFalse)
}

func TestScaleFactorsMPEG2IntensityRight(t *testing.T) {
	var w mpatest.BitWriter
	// scalefac_compress 414: isc 207, slen {1, 2, 3, 0}, 6 long bands each.
	for i := 0; i < 6; i++ {
		w.WriteBits(uint32(i%2), 1)
	}
	for i := 0; i < 6; i++ {
		w.WriteBits(uint32(i%4), 2)
	}
	for i := 0; i < 6; i++ {
		w.WriteBits(uint32(i+2), 3)
	}
	var win bits.Window
	win.Initialize()
	for _, c := range append(w.Bytes(), 0, 0, 0, 0) {
		win.PutByte(c)
	}

	si := &sideinfo.SideInfo{}
	si.ScalefacCompress[0][1] = 414
	var sf ScaleFactors
	preflag := ReadScaleFactorsMPEG2(&win, si, 1, true, &sf)
	test.That(t, preflag, test.ShouldEqual, 0)
	test.That(t, win.TotalBits(), test.ShouldEqual, 6+12+18)

	test.That(t, sf.L[1], test.ShouldEqual, 1)
	test.That(t, sf.IllegalL[1], test.ShouldBeTrue)
	test.That(t, sf.IllegalL[0], test.ShouldBeFalse)
	test.That(t, sf.IllegalL[9], test.ShouldBeTrue) // 3 in 2 bits
	test.That(t, sf.IllegalL[8], test.ShouldBeFalse)
	test.That(t, sf.L[17], test.ShouldEqual, 7)
	test.That(t, sf.IllegalL[17], test.ShouldBeTrue)
	// Bands coded with zero bits have no usable position.
	test.That(t, sf.IllegalL[18], test.ShouldBeTrue)
	test.That(t, sf.IllegalL[21], test.ShouldBeFalse)
}
