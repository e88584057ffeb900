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

// Package pcm converts synthesized frames into interleaved output samples.
package pcm

import (
	"github.com/pkg/errors"

	"github.com/hajimehoshi/go-mpegaudio/internal/frame"
)

// MaxDownsample is the largest supported downsampling shift.
const MaxDownsample = 2

// ErrDownsample is returned for a shift outside [0, MaxDownsample].
var ErrDownsample = errors.New("mpegaudio: downsample must be 0, 1 or 2")

// A Stage mixes, decimates and quantizes frame output. It never touches
// decoder state, so changing it only affects frames converted afterwards.
type Stage struct {
	ForceMono  bool
	Downsample int // log2 of the decimation factor
}

// Validate checks the settings.
func (s Stage) Validate() error {
	if s.Downsample < 0 || s.Downsample > MaxDownsample {
		return errors.Wrapf(ErrDownsample, "got %d", s.Downsample)
	}
	return nil
}

// Channels returns the number of output channels for a stream of nch
// channels.
func (s Stage) Channels(nch int) int {
	if s.ForceMono {
		return 1
	}
	return nch
}

// SampleRate returns the output rate for a native rate.
func (s Stage) SampleRate(rate int) int {
	return rate >> uint(s.Downsample)
}

// Frames returns the number of output frames for n samples per channel.
func (s Stage) Frames(n int) int {
	return n >> uint(s.Downsample)
}

// Len returns the number of interleaved samples Stage writes for n samples
// per channel of an nch channel frame.
func (s Stage) Len(n, nch int) int {
	return s.Frames(n) * s.Channels(nch)
}

// sample returns output frame i of channel ch.
func (s Stage) sample(in *frame.PCM, i, ch, nch int) float32 {
	step := 1 << uint(s.Downsample)
	from := i * step
	var sum float32
	if s.ForceMono && nch == 2 {
		for j := from; j < from+step; j++ {
			sum += (in[0][j] + in[1][j]) * 0.5
		}
	} else {
		for j := from; j < from+step; j++ {
			sum += in[ch][j]
		}
	}
	return sum / float32(step)
}

// Float32 writes n samples per channel of in into dst, interleaved, and
// returns the number of values written. dst must hold Len(n, nch) values.
func (s Stage) Float32(dst []float32, in *frame.PCM, n, nch int) int {
	och := s.Channels(nch)
	frames := s.Frames(n)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < och; ch++ {
			dst[i*och+ch] = s.sample(in, i, ch, nch)
		}
	}
	return frames * och
}

// ToInt16 scales a sample in [-1, 1] to 16 bits with clamping.
func ToInt16(v float32) int16 {
	v *= 32767
	switch {
	case v >= 32767:
		return 32767
	case v <= -32767:
		return -32767
	case v < 0:
		return int16(v - 0.5)
	default:
		return int16(v + 0.5)
	}
}

// Int16 is like Float32 but produces 16-bit samples.
func (s Stage) Int16(dst []int16, in *frame.PCM, n, nch int) int {
	och := s.Channels(nch)
	frames := s.Frames(n)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < och; ch++ {
			dst[i*och+ch] = ToInt16(s.sample(in, i, ch, nch))
		}
	}
	return frames * och
}

// AppendBytes appends the 16-bit little endian form of the frame to buf.
func (s Stage) AppendBytes(buf []byte, in *frame.PCM, n, nch int) []byte {
	och := s.Channels(nch)
	frames := s.Frames(n)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < och; ch++ {
			v := ToInt16(s.sample(in, i, ch, nch))
			buf = append(buf, uint8(v), uint8(v>>8))
		}
	}
	return buf
}
