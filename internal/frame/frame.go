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

// Package frame decodes one MPEG audio frame into PCM.
package frame

import (
	"github.com/pkg/errors"

	"github.com/hajimehoshi/go-mpegaudio/internal/consts"
	"github.com/hajimehoshi/go-mpegaudio/internal/frameheader"
	"github.com/hajimehoshi/go-mpegaudio/internal/maindata"
	"github.com/hajimehoshi/go-mpegaudio/internal/synthesis"
)

// PCM holds the synthesized samples of one frame, [ch][sample], nominally
// in [-1, 1].
type PCM [2][consts.MaxSamplesPerChan]float32

// A Decoder carries the state that crosses frame boundaries: the bit
// reservoir, the previous IMDCT blocks and the synthesis filter history.
// Frames of one stream must go through the same Decoder in order.
type Decoder struct {
	reservoir maindata.Reservoir

	// Overlap-add tails indexed [ch][parity]. A granule reads
	// prev[ch][parity] and writes prev[ch][parity^1], then parity flips.
	prev   [2][2][consts.Subbands][consts.SubbandSamples]float32
	parity int

	synth synthesis.Filter

	// Per-frame work areas.
	md maindata.MainData
	xr [2][consts.SamplesPerGr]float32
	l2 layer2Samples
}

// NewDecoder returns a Decoder with empty state.
func NewDecoder() *Decoder {
	d := &Decoder{}
	d.Reset()
	return d
}

// Reset drops all cross-frame state, as after a seek or a format change.
func (d *Decoder) Reset() {
	d.reservoir.Reset()
	d.prev = [2][2][consts.Subbands][consts.SubbandSamples]float32{}
	d.parity = 0
	d.synth.Reset()
}

// Decode decodes one frame. payload is the frame without its 4 header
// bytes, CRC included when present. It returns the number of samples per
// channel written to out.
func (d *Decoder) Decode(h frameheader.FrameHeader, payload []byte, out *PCM) (int, error) {
	size, err := h.FrameSize()
	if err != nil {
		return 0, err
	}
	if len(payload) < size-4 {
		return 0, errors.Errorf("mpegaudio: frame payload is %d bytes, want %d", len(payload), size-4)
	}
	data := payload[:size-4]
	if h.ProtectionBit() == 0 {
		// The CRC is not verified.
		data = data[2:]
	}
	switch h.Layer() {
	case consts.Layer1:
		return d.decodeLayer1(h, data, out)
	case consts.Layer2:
		return d.decodeLayer2(h, data, out)
	case consts.Layer3:
		return d.decodeLayer3(h, data, out)
	}
	return 0, errors.Errorf("mpegaudio: reserved layer in header 0x%08x", uint32(h))
}
