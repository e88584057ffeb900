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

package mpegaudio_test

import (
	"bytes"
	"io"
	"io/ioutil"
	"testing"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.viam.com/test"

	"github.com/hajimehoshi/go-mpegaudio"
	"github.com/hajimehoshi/go-mpegaudio/internal/consts"
	"github.com/hajimehoshi/go-mpegaudio/internal/mpatest"
)

// reader hides io.Seeker.
type reader struct {
	io.Reader
}

// testStream returns n Layer III frames at 44100 Hz with varying content
// that spills into the bit reservoir.
func testStream(t testing.TB, n int, mode consts.Mode, modeExt int) []byte {
	return buildStream(t, n, mode, modeExt, true)
}

func buildStream(t testing.TB, n int, mode consts.Mode, modeExt int, useReservoir bool) []byte {
	h := mpatest.Header(consts.Version1, consts.Layer3, 9, 0, mode, modeExt)
	frames := make([]mpatest.Layer3Frame, n)
	for i := range frames {
		f := &frames[i]
		f.Header = h
		for gr := 0; gr < 2; gr++ {
			for ch := 0; ch < h.NumberOfChannels(); ch++ {
				g := &f.Granules[gr][ch]
				g.GlobalGain = 170 + (i+ch)%5
				g.ScalefacCompress = 5
				for j := 0; j < 48; j++ {
					g.Values[j] = (j*3+i+gr+ch)%9 - 4
				}
				for sfb := 0; sfb < 21; sfb++ {
					g.ScaleL[sfb] = (sfb + i) % 2
				}
			}
		}
		if i%4 == 2 {
			g := &f.Granules[1][0]
			g.BlockType = consts.BlockShort
			g.ScaleL = [22]int{}
			for sfb := 0; sfb < 12; sfb++ {
				g.ScaleS[sfb] = [3]int{1, 0, 1}
			}
		}
	}
	data, err := mpatest.BuildLayer3(frames, useReservoir)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestZeroFrame(t *testing.T) {
	h := mpatest.Header(consts.Version1, consts.Layer3, 9, 0, consts.ModeStereo, 0)
	data, err := mpatest.BuildLayer3([]mpatest.Layer3Frame{{Header: h}}, false)
	test.That(t, err, test.ShouldBeNil)

	d, err := mpegaudio.NewDecoder(bytes.NewReader(data))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d.SampleRate(), test.ShouldEqual, 44100)
	test.That(t, d.Channels(), test.ShouldEqual, 2)
	test.That(t, d.PCMPerFrame(), test.ShouldEqual, 1152)
	test.That(t, d.TotalFrames(), test.ShouldEqual, 1)
	test.That(t, d.Length(), test.ShouldEqual, int64(1152*4))

	dst := make([]float32, 2*1152)
	n, err := d.RunFloat(dst, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, 2*1152)
	for _, v := range dst {
		test.That(t, float64(v), test.ShouldAlmostEqual, 0, 1e-9)
	}
	test.That(t, d.CurrentFrame(), test.ShouldEqual, 1)

	n, err = d.RunFloat(dst, 1)
	test.That(t, n, test.ShouldEqual, 0)
	test.That(t, err, test.ShouldEqual, io.EOF)
	test.That(t, mpegaudio.ErrorCode(err), test.ShouldEqual, mpegaudio.CodeEOF)
}

func TestReadMatchesRun(t *testing.T) {
	data := testStream(t, 6, consts.ModeJointStereo, 2)

	d, err := mpegaudio.NewDecoder(reader{bytes.NewReader(data)})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d.Length(), test.ShouldEqual, int64(-1))
	test.That(t, d.TotalFrames(), test.ShouldEqual, -1)
	b, err := ioutil.ReadAll(d)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, b, test.ShouldHaveLength, 6*1152*4)

	d, err = mpegaudio.NewDecoder(bytes.NewReader(data))
	test.That(t, err, test.ShouldBeNil)
	dst := make([]int16, 6*1152*2)
	n, err := d.Run(dst, 10)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, len(dst))
	nonzero := 0
	for i, v := range dst {
		test.That(t, int16(b[2*i])|int16(b[2*i+1])<<8, test.ShouldEqual, v)
		if v != 0 {
			nonzero++
		}
	}
	test.That(t, nonzero, test.ShouldBeGreaterThan, 0)
}

func TestRunBufferTooSmall(t *testing.T) {
	data := testStream(t, 2, consts.ModeJointStereo, 2)
	d, err := mpegaudio.NewDecoder(bytes.NewReader(data))
	test.That(t, err, test.ShouldBeNil)

	small := make([]int16, 1000)
	n, err := d.Run(small, 1)
	test.That(t, n, test.ShouldEqual, 0)
	test.That(t, mpegaudio.ErrorCode(err), test.ShouldEqual, mpegaudio.CodeMemory)
	test.That(t, d.Err(), test.ShouldEqual, err)
	test.That(t, d.CurrentFrame(), test.ShouldEqual, 0)

	// The frame is kept for the next call.
	dst := make([]int16, 2*1152*2)
	n, err = d.Run(dst, 2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, len(dst))
	test.That(t, d.CurrentFrame(), test.ShouldEqual, 2)
}

func TestCorruptedSyncAtStart(t *testing.T) {
	_, err := mpegaudio.NewDecoder(bytes.NewReader(make([]byte, 4096)))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, mpegaudio.ErrBadStream), test.ShouldBeTrue)
	test.That(t, mpegaudio.ErrorCode(err), test.ShouldEqual, mpegaudio.CodeBadStream)

	_, err = mpegaudio.NewDecoder(bytes.NewReader(nil))
	test.That(t, mpegaudio.ErrorCode(err), test.ShouldEqual, mpegaudio.CodeEOF)
}

func TestCorruptedSyncMidStream(t *testing.T) {
	frames := testStream(t, 2, consts.ModeJointStereo, 2)
	size := len(frames) / 2
	var data []byte
	data = append(data, frames[:size]...)
	data = append(data, make([]byte, 2000)...)
	data = append(data, frames[size:]...)

	d, err := mpegaudio.NewDecoder(reader{bytes.NewReader(data)}, mpegaudio.WithMaxResync(1000))
	test.That(t, err, test.ShouldBeNil)
	dst := make([]int16, 1152*2)
	n, err := d.Run(dst, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, len(dst))
	test.That(t, d.CurrentFrame(), test.ShouldEqual, 1)

	for i := 0; i < 2; i++ {
		n, err = d.Run(dst, 1)
		test.That(t, n, test.ShouldEqual, 0)
		test.That(t, mpegaudio.ErrorCode(err), test.ShouldEqual, mpegaudio.CodeBadStream)
		test.That(t, d.CurrentFrame(), test.ShouldEqual, 1)
	}
	test.That(t, mpegaudio.ErrorCode(d.Err()), test.ShouldEqual, mpegaudio.CodeBadStream)
}

func TestResyncWithinLimit(t *testing.T) {
	frames := testStream(t, 2, consts.ModeJointStereo, 2)
	size := len(frames) / 2
	var data []byte
	data = append(data, frames[:size]...)
	data = append(data, make([]byte, 100)...)
	data = append(data, frames[size:]...)

	d, err := mpegaudio.NewDecoder(bytes.NewReader(data), mpegaudio.WithLogger(zap.NewExample()))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d.TotalFrames(), test.ShouldEqual, 2)
	info, err := d.FrameInfo(1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, info.Offset, test.ShouldEqual, int64(size+100))
	test.That(t, info.Bitrate, test.ShouldEqual, 128000)
	test.That(t, info.Layer, test.ShouldEqual, "Layer III")
}

func TestFrameErrorIsSkipped(t *testing.T) {
	data := buildStream(t, 3, consts.ModeJointStereo, 2, false)
	size := len(data) / 3
	// A big_values count above 288 makes the second frame undecodable.
	data[size+4+4] = 0xff
	data[size+4+5] |= 0x80

	d, err := mpegaudio.NewDecoder(bytes.NewReader(data))
	test.That(t, err, test.ShouldBeNil)
	dst := make([]int16, 3*1152*2)
	n, err := d.Run(dst, 3)
	test.That(t, n, test.ShouldEqual, 1152*2)
	var ferr *mpegaudio.FrameError
	test.That(t, errors.As(err, &ferr), test.ShouldBeTrue)
	test.That(t, ferr.Frame, test.ShouldEqual, 1)
	test.That(t, mpegaudio.ErrorCode(err), test.ShouldEqual, mpegaudio.CodeBadStream)
	test.That(t, d.CurrentFrame(), test.ShouldEqual, 2)

	n, err = d.Run(dst[n:], 3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, 1152*2)

	// Read keeps the dropped frame as silence.
	d, err = mpegaudio.NewDecoder(bytes.NewReader(data))
	test.That(t, err, test.ShouldBeNil)
	b, err := ioutil.ReadAll(d)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, b, test.ShouldHaveLength, 3*1152*4)
	test.That(t, b[1152*4:2*1152*4], test.ShouldResemble, make([]byte, 1152*4))
}

func TestReservedHeaderIsDropped(t *testing.T) {
	data := buildStream(t, 3, consts.ModeJointStereo, 2, false)
	size := len(data) / 3
	// The second frame gets bitrate index 15 and an empty body.
	data[size+2] |= 0xf0
	for i := size + 4; i < 2*size; i++ {
		data[i] = 0
	}

	d, err := mpegaudio.NewDecoder(bytes.NewReader(data))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d.TotalFrames(), test.ShouldEqual, 3)
	info, err := d.FrameInfo(1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, info.Reserved, test.ShouldBeTrue)
	test.That(t, info.Offset, test.ShouldEqual, int64(size))
	test.That(t, info.Size, test.ShouldEqual, 0)
	info, err = d.FrameInfo(2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, info.Reserved, test.ShouldBeFalse)
	test.That(t, info.Offset, test.ShouldEqual, int64(2*size))

	b, err := ioutil.ReadAll(d)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, b, test.ShouldHaveLength, 3*1152*4)
	test.That(t, b[1152*4:2*1152*4], test.ShouldResemble, make([]byte, 1152*4))

	d, err = mpegaudio.NewDecoder(reader{bytes.NewReader(data)})
	test.That(t, err, test.ShouldBeNil)
	dst := make([]int16, 3*1152*2)
	n, err := d.Run(dst, 3)
	test.That(t, n, test.ShouldEqual, 1152*2)
	var ferr *mpegaudio.FrameError
	test.That(t, errors.As(err, &ferr), test.ShouldBeTrue)
	test.That(t, ferr.Frame, test.ShouldEqual, 1)
	test.That(t, mpegaudio.ErrorCode(err), test.ShouldEqual, mpegaudio.CodeBadStream)

	n, err = d.Run(dst[n:], 3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, 1152*2)
	test.That(t, d.CurrentFrame(), test.ShouldEqual, 3)
}

func TestBadSideInfoKeepsReservoir(t *testing.T) {
	data := testStream(t, 4, consts.ModeJointStereo, 2)
	size := len(data) / 4
	// The third frame starts its main data inside the second frame's slot.
	mainDataBegin := int(data[2*size+4])<<1 | int(data[2*size+5]>>7)
	test.That(t, mainDataBegin, test.ShouldBeGreaterThan, 0)

	ref, err := mpegaudio.NewDecoder(bytes.NewReader(data))
	test.That(t, err, test.ShouldBeNil)
	want := make([]float32, 4*1152*2)
	n, err := ref.RunFloat(want, 4)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, len(want))

	bad := append([]byte(nil), data...)
	bad[size+4+4] = 0xff
	bad[size+4+5] |= 0x80
	d, err := mpegaudio.NewDecoder(bytes.NewReader(bad))
	test.That(t, err, test.ShouldBeNil)
	got := make([]float32, 4*1152*2)
	n, err = d.RunFloat(got, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, 1152*2)
	_, err = d.RunFloat(got[1152*2:], 1)
	var ferr *mpegaudio.FrameError
	test.That(t, errors.As(err, &ferr), test.ShouldBeTrue)
	test.That(t, ferr.Frame, test.ShouldEqual, 1)
	for i := 2; i < 4; i++ {
		n, err = d.RunFloat(got[i*1152*2:], 1)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, n, test.ShouldEqual, 1152*2)
	}

	// The first granule of the third frame overlaps the dropped frame.
	for i := 2*1152*2 + 576*2; i < len(want); i++ {
		test.That(t, float64(got[i]), test.ShouldAlmostEqual, float64(want[i]), 1e-5)
	}
}

func TestForceMonoToggle(t *testing.T) {
	data := testStream(t, 3, consts.ModeJointStereo, 2)

	ref, err := mpegaudio.NewDecoder(bytes.NewReader(data))
	test.That(t, err, test.ShouldBeNil)
	want := make([]float32, 3*1152*2)
	_, err = ref.RunFloat(want, 3)
	test.That(t, err, test.ShouldBeNil)

	d, err := mpegaudio.NewDecoder(bytes.NewReader(data))
	test.That(t, err, test.ShouldBeNil)
	got := make([]float32, 1152*2)
	n, err := d.RunFloat(got, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, 1152*2)
	test.That(t, got, test.ShouldResemble, want[:1152*2])

	d.SetForceMono(true)
	test.That(t, d.Channels(), test.ShouldEqual, 1)
	n, err = d.RunFloat(got, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, 1152)
	for i := 0; i < 1152; i++ {
		l, r := want[1152*2+2*i], want[1152*2+2*i+1]
		test.That(t, float64(got[i]), test.ShouldAlmostEqual, float64((l+r)/2), 1e-6)
	}

	d.SetForceMono(false)
	test.That(t, d.Channels(), test.ShouldEqual, 2)
	n, err = d.RunFloat(got, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, got[:n], test.ShouldResemble, want[2*1152*2:])
}

func TestForceMonoKeepsBufferedBytes(t *testing.T) {
	data := testStream(t, 2, consts.ModeJointStereo, 2)

	ref, err := mpegaudio.NewDecoder(bytes.NewReader(data))
	test.That(t, err, test.ShouldBeNil)
	want, err := ioutil.ReadAll(ref)
	test.That(t, err, test.ShouldBeNil)

	d, err := mpegaudio.NewDecoder(bytes.NewReader(data))
	test.That(t, err, test.ShouldBeNil)
	head := make([]byte, 1000)
	_, err = io.ReadFull(d, head)
	test.That(t, err, test.ShouldBeNil)
	d.SetForceMono(true)
	rest, err := ioutil.ReadAll(d)
	test.That(t, err, test.ShouldBeNil)

	// The rest of frame 0 is still stereo, frame 1 is mono.
	test.That(t, rest, test.ShouldHaveLength, 1152*4-1000+1152*2)
	test.That(t, append(head, rest[:1152*4-1000]...), test.ShouldResemble, want[:1152*4])
}

func TestDownsample(t *testing.T) {
	data := testStream(t, 2, consts.ModeJointStereo, 2)
	d, err := mpegaudio.NewDecoder(bytes.NewReader(data), mpegaudio.WithDownsample(1), mpegaudio.WithForceMono(true))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d.SampleRate(), test.ShouldEqual, 22050)
	test.That(t, d.Channels(), test.ShouldEqual, 1)
	test.That(t, d.PCMPerFrame(), test.ShouldEqual, 576)
	test.That(t, d.Length(), test.ShouldEqual, int64(2*576*2))

	test.That(t, d.SetDownsample(2), test.ShouldBeNil)
	test.That(t, d.SampleRate(), test.ShouldEqual, 11025)
	test.That(t, d.SetDownsample(3), test.ShouldNotBeNil)
	test.That(t, d.SampleRate(), test.ShouldEqual, 11025)

	_, err = mpegaudio.NewDecoder(bytes.NewReader(data), mpegaudio.WithDownsample(5))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSkipTags(t *testing.T) {
	data := testStream(t, 2, consts.ModeJointStereo, 2)
	id3 := []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 1, 0}
	id3 = append(id3, make([]byte, 128)...)
	tagged := append(id3, data...)
	tagged = append(tagged, []byte("TAG")...)
	tagged = append(tagged, make([]byte, 125)...)

	for _, r := range []io.Reader{bytes.NewReader(tagged), reader{bytes.NewReader(tagged)}} {
		d, err := mpegaudio.NewDecoder(r)
		test.That(t, err, test.ShouldBeNil)
		b, err := ioutil.ReadAll(d)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, b, test.ShouldHaveLength, 2*1152*4)
		test.That(t, d.CurrentFrame(), test.ShouldEqual, 2)
	}
}

func TestXingFrameIsSkipped(t *testing.T) {
	data := testStream(t, 2, consts.ModeJointStereo, 2)
	h := mpatest.Header(consts.Version1, consts.Layer3, 9, 0, consts.ModeJointStereo, 2)
	size, err := h.FrameSize()
	test.That(t, err, test.ShouldBeNil)
	tag := make([]byte, size)
	hb := h.Bytes()
	copy(tag, hb[:])
	copy(tag[4+32:], []byte{'X', 'i', 'n', 'g', 0, 0, 0, 1, 0, 0, 0, 2})

	d, err := mpegaudio.NewDecoder(reader{bytes.NewReader(append(tag, data...))})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, d.TotalFrames(), test.ShouldEqual, 2)
	b, err := ioutil.ReadAll(d)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, b, test.ShouldHaveLength, 2*1152*4)
}

func TestFormatChange(t *testing.T) {
	stereo := testStream(t, 1, consts.ModeJointStereo, 2)
	mono := testStream(t, 1, consts.ModeSingleChannel, 0)
	data := append(append([]byte{}, stereo...), mono...)

	d, err := mpegaudio.NewDecoder(bytes.NewReader(data))
	test.That(t, err, test.ShouldBeNil)
	dst := make([]int16, 1152*2)
	n, err := d.Run(dst, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, 1152*2)
	n, err = d.Run(dst, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n, test.ShouldEqual, 1152)
	test.That(t, d.Channels(), test.ShouldEqual, 1)

	// Decoding the mono frame alone gives the same samples: state was reset.
	alone, err := mpegaudio.NewDecoder(bytes.NewReader(mono))
	test.That(t, err, test.ShouldBeNil)
	want := make([]int16, 1152)
	_, err = alone.Run(want, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, dst[:1152], test.ShouldResemble, want)
}

func TestErrorCode(t *testing.T) {
	test.That(t, mpegaudio.ErrorCode(nil), test.ShouldEqual, mpegaudio.CodeOK)
	test.That(t, mpegaudio.ErrorCode(io.EOF), test.ShouldEqual, mpegaudio.CodeEOF)
	test.That(t, mpegaudio.ErrorCode(&mpegaudio.FrameError{Frame: 3, Err: errors.New("x")}), test.ShouldEqual, mpegaudio.CodeBadStream)
	test.That(t, mpegaudio.ErrorCode(errors.Wrap(mpegaudio.ErrMemory, "dst")), test.ShouldEqual, mpegaudio.CodeMemory)
	test.That(t, mpegaudio.ErrorCode(errors.New("disk on fire")), test.ShouldEqual, mpegaudio.CodeIO)
	test.That(t, mpegaudio.CodeBadStream.String(), test.ShouldEqual, "bad stream")
}
