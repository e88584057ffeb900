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

package mpegaudio

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/hajimehoshi/go-mpegaudio/internal/consts"
	"github.com/hajimehoshi/go-mpegaudio/internal/frame"
	"github.com/hajimehoshi/go-mpegaudio/internal/frameheader"
	"github.com/hajimehoshi/go-mpegaudio/internal/pcm"
)

// frameInfo is an entry of the frame offset table.
type frameInfo struct {
	offset int64
	header frameheader.FrameHeader
	// reserved marks a header with a reserved field. header then repeats
	// the previous frame's.
	reserved bool
}

// A Decoder is a decoded MPEG audio stream.
//
// Decoder decodes its underlying source on the fly. It is not safe for
// concurrent use, but independent Decoders share nothing mutable.
type Decoder struct {
	source *source
	cfg    Config
	logger *zap.SugaredLogger

	frame *frame.Decoder
	stage pcm.Stage
	pcm   frame.PCM
	raw   []byte

	// header is the last frame header read. It defines the current format.
	header frameheader.FrameHeader

	frames    []frameInfo
	scanned   bool
	tagFrames int
	dataStart int64
	current   int
	replaying bool

	// Read buffers one frame of 16-bit little endian bytes.
	buf   []byte
	bytes []byte
	pos   int64

	// Run keeps a decoded frame that did not fit the caller's buffer.
	// lastReserved is set after a reserved header was reported, so that
	// the bytes following it are scanned for the next sync word.
	lastReserved bool

	pending   bool
	pendingN  int
	pendingCh int

	err   error
	fatal error
}

// NewDecoder decodes the given io.Reader and returns a decoded stream.
//
// A leading ID3 tag and a Xing, Info or VBRI frame are skipped. The first
// audio frame header establishes SampleRate and Channels.
//
// If r is io.Seeker, every frame header is scanned up front so that
// Length, TotalFrames, SetFrame and Seek work.
func NewDecoder(r io.Reader, opts ...Option) (*Decoder, error) {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	stage := pcm.Stage{ForceMono: cfg.ForceMono, Downsample: cfg.Downsample}
	if err := stage.Validate(); err != nil {
		return nil, err
	}
	d := &Decoder{
		source:    &source{reader: r},
		cfg:       cfg,
		logger:    cfg.Logger.Sugar(),
		frame:     frame.NewDecoder(),
		stage:     stage,
		tagFrames: -1,
	}
	if err := d.source.skipTags(); err != nil {
		return nil, err
	}
	if err := d.readFirst(); err != nil {
		return nil, err
	}
	if d.source.seekable() {
		if err := d.scan(); err != nil {
			return nil, err
		}
	}
	d.logger.Debugw("stream opened", "format", describe(d.header), "frames", d.TotalFrames())
	return d, nil
}

func describe(h frameheader.FrameHeader) string {
	return fmt.Sprintf("%s %s %d Hz %s", h.ID(), h.Layer(), h.SamplingFrequencyValue(), h.Mode())
}

// readFirst finds the first audio frame and pushes it back to the source.
func (d *Decoder) readFirst() error {
	h, payload, start, err := d.readRaw()
	if err != nil {
		return err
	}
	if ok, n := vbrTag(h, payload); ok {
		d.tagFrames = n
		d.logger.Debugw("vbr tag", "offset", start, "frames", n)
		h, payload, start, err = d.readRaw()
		if err != nil {
			return err
		}
	}
	d.dataStart = start
	d.header = h
	b := h.Bytes()
	d.source.Unread(append(b[:], payload...))
	return nil
}

// readRaw reads the next frame header and its payload. The payload is only
// valid until the next call.
func (d *Decoder) readRaw() (frameheader.FrameHeader, []byte, int64, error) {
	report := d.header != 0 && !d.lastReserved
	h, start, skipped, err := frameheader.Read(d.source, d.source.pos, d.cfg.MaxResync, report)
	if err != nil {
		if errors.Is(err, frameheader.ErrReservedField) {
			b := h.Bytes()
			d.source.Unread(b[1:])
			d.lastReserved = true
			return h, nil, start, err
		}
		var eof *consts.UnexpectedEOF
		switch {
		case err == io.EOF:
			return 0, nil, 0, io.EOF
		case errors.As(err, &eof):
			if d.header == 0 && skipped > 0 {
				return 0, nil, 0, &badStreamError{errors.Errorf("mpegaudio: no frame sync in %d bytes", skipped)}
			}
			d.logger.Debugw("trailing bytes without frame sync", "skipped", skipped)
			return 0, nil, 0, io.EOF
		case errors.Is(err, frameheader.ErrResyncLimit):
			return 0, nil, 0, &badStreamError{err}
		}
		return 0, nil, 0, err
	}
	if skipped > 0 {
		d.logger.Debugw("resynchronized", "frame", d.current, "offset", start, "skipped", skipped)
	}
	if h.IsFreeFormat() {
		return 0, nil, 0, &badStreamError{errors.Wrapf(ErrFreeFormat, "frame at offset %d", start)}
	}
	size, err := h.FrameSize()
	if err != nil {
		return 0, nil, 0, &badStreamError{err}
	}
	if cap(d.raw) < size-4 {
		d.raw = make([]byte, size-4)
	}
	payload := d.raw[:size-4]
	n, err := d.source.ReadFull(payload)
	if n < len(payload) {
		if err == nil || err == io.EOF {
			d.logger.Debugw("stream ends inside a frame", "offset", start, "missing", len(payload)-n)
			return 0, nil, 0, io.EOF
		}
		return 0, nil, 0, err
	}
	d.lastReserved = false
	return h, payload, start, nil
}

func (d *Decoder) fail(err error) error {
	d.err = err
	return err
}

// decodeNext reads and decodes the next frame into d.pcm and returns the
// number of samples per channel. On a *FrameError the frame counter has
// advanced and the returned count is the nominal one.
func (d *Decoder) decodeNext() (frameheader.FrameHeader, int, error) {
	if d.fatal != nil {
		return 0, 0, d.fatal
	}
	h, payload, start, err := d.readRaw()
	if errors.Is(err, frameheader.ErrReservedField) {
		idx := d.current
		d.current++
		if idx == len(d.frames) {
			d.frames = append(d.frames, frameInfo{offset: start, header: d.header, reserved: true})
		}
		d.logger.Warnw("dropping frame", "frame", idx, "offset", start, "error", err)
		return d.header, d.header.SamplesPerFrame(), d.fail(&FrameError{Frame: idx, Err: err})
	}
	if err != nil {
		if err != io.EOF {
			d.fatal = err
		}
		return 0, 0, d.fail(err)
	}
	idx := d.current
	d.current++
	if idx == len(d.frames) {
		d.frames = append(d.frames, frameInfo{offset: start, header: h})
	}
	if d.header != 0 && !h.SameFormat(d.header) {
		d.logger.Infow("format changed", "frame", idx, "from", describe(d.header), "to", describe(h))
		d.frame.Reset()
	}
	d.header = h

	n, err := d.frame.Decode(h, payload, &d.pcm)
	if err != nil {
		ferr := &FrameError{Frame: idx, Err: err}
		if d.replaying {
			d.logger.Debugw("warm-up frame not decodable", "frame", idx, "error", err)
		} else {
			d.logger.Warnw("dropping frame", "frame", idx, "offset", start, "error", err)
		}
		return h, h.SamplesPerFrame(), d.fail(ferr)
	}
	return h, n, nil
}

// fill decodes the next frame into the Read buffer. A dropped frame is
// replaced by silence so the byte stream stays frame aligned.
func (d *Decoder) fill() error {
	h, n, err := d.decodeNext()
	if err != nil {
		var ferr *FrameError
		if !errors.As(err, &ferr) {
			return err
		}
		d.pcm = frame.PCM{}
	}
	d.buf = d.stage.AppendBytes(d.bytes[:0], &d.pcm, n, h.NumberOfChannels())
	d.bytes = d.buf
	return nil
}

// Read is io.Reader's Read. It produces interleaved 16-bit little endian
// samples with Channels channels.
func (d *Decoder) Read(buf []byte) (int, error) {
	for len(d.buf) == 0 {
		if err := d.fill(); err != nil {
			return 0, err
		}
	}
	n := copy(buf, d.buf)
	d.buf = d.buf[n:]
	d.pos += int64(n)
	return n, nil
}

// Run decodes up to frames frames into dst as interleaved 16-bit samples
// and returns the number of values written.
//
// A dropped frame stops Run with a *FrameError; the next call continues
// with the following frame. When dst cannot hold the next frame Run
// returns an error matching ErrMemory and keeps the frame for the next
// call. At the end of the stream Run returns io.EOF once nothing was
// written.
func (d *Decoder) Run(dst []int16, frames int) (int, error) {
	return d.run(frames, len(dst), func(off, n, nch int) int {
		return d.stage.Int16(dst[off:], &d.pcm, n, nch)
	})
}

// RunFloat is like Run but writes samples in [-1, 1].
func (d *Decoder) RunFloat(dst []float32, frames int) (int, error) {
	return d.run(frames, len(dst), func(off, n, nch int) int {
		return d.stage.Float32(dst[off:], &d.pcm, n, nch)
	})
}

func (d *Decoder) run(frames, capacity int, emit func(off, n, nch int) int) (int, error) {
	written := 0
	for i := 0; i < frames; i++ {
		if !d.pending {
			h, n, err := d.decodeNext()
			if err != nil {
				if err == io.EOF && written > 0 {
					return written, nil
				}
				return written, err
			}
			d.pending = true
			d.pendingN = n
			d.pendingCh = h.NumberOfChannels()
		}
		need := d.stage.Len(d.pendingN, d.pendingCh)
		if capacity-written < need {
			return written, d.fail(errors.Wrapf(ErrMemory, "need %d values, %d left", need, capacity-written))
		}
		written += emit(written, d.pendingN, d.pendingCh)
		d.pending = false
	}
	return written, nil
}

// CurrentFrame returns the index of the next frame Run or Read will emit.
// A frame kept back by ErrMemory is still counted as next.
func (d *Decoder) CurrentFrame() int {
	if d.pending {
		return d.current - 1
	}
	return d.current
}

// TotalFrames returns the number of audio frames, or -1 when it is not
// known. It is known for seekable sources and for streams with a VBR tag.
func (d *Decoder) TotalFrames() int {
	if d.scanned {
		return len(d.frames)
	}
	return d.tagFrames
}

// SampleRate returns the output sample rate like 44100.
//
// Note that the sample rate is retrieved from the last frame read and
// includes downsampling.
func (d *Decoder) SampleRate() int {
	return d.stage.SampleRate(d.header.SamplingFrequencyValue())
}

// Channels returns the number of output channels, 1 or 2.
func (d *Decoder) Channels() int {
	return d.stage.Channels(d.header.NumberOfChannels())
}

// PCMPerFrame returns the number of samples per channel one frame yields.
func (d *Decoder) PCMPerFrame() int {
	return d.stage.Frames(d.header.SamplesPerFrame())
}

// SetForceMono switches the mono mixdown. It applies from the next frame
// decoded; samples already buffered for Read keep their layout.
func (d *Decoder) SetForceMono(mono bool) {
	d.stage.ForceMono = mono
}

// SetDownsample sets the decimation shift (0, 1 or 2) from the next frame
// decoded.
func (d *Decoder) SetDownsample(shift int) error {
	s := d.stage
	s.Downsample = shift
	if err := s.Validate(); err != nil {
		return d.fail(err)
	}
	d.stage = s
	return nil
}

// ClearBuffer drops buffered output and all inter-frame state: the bit
// reservoir, the overlap buffers and the synthesis filter history.
func (d *Decoder) ClearBuffer() {
	d.buf = nil
	d.pending = false
	d.frame.Reset()
}

// Err returns the last error a call returned.
func (d *Decoder) Err() error {
	return d.err
}

// Close is io.Closer's Close. It closes the source if it is an io.Closer.
func (d *Decoder) Close() error {
	return d.source.Close()
}

// FrameInfo describes one frame of the stream.
type FrameInfo struct {
	Offset     int64
	Size       int
	Version    string
	Layer      string
	Mode       string
	Bitrate    int // bits per second
	SampleRate int
	Samples    int // per channel
	// Reserved is set for a header with a reserved bitrate or sampling
	// frequency. Such a frame decodes as silence, its Size is 0 and the
	// format fields repeat the previous frame's.
	Reserved bool
}

// FrameInfo returns the description of frame n. Frames are known once
// they were scanned or decoded.
func (d *Decoder) FrameInfo(n int) (FrameInfo, error) {
	if n < 0 || n >= len(d.frames) {
		return FrameInfo{}, errors.Errorf("mpegaudio: frame %d is not known", n)
	}
	f := d.frames[n]
	size := 0
	if !f.reserved {
		var err error
		if size, err = f.header.FrameSize(); err != nil {
			return FrameInfo{}, err
		}
	}
	return FrameInfo{
		Offset:     f.offset,
		Size:       size,
		Version:    f.header.ID().String(),
		Layer:      f.header.Layer().String(),
		Mode:       f.header.Mode().String(),
		Bitrate:    f.header.Bitrate(),
		SampleRate: f.header.SamplingFrequencyValue(),
		Samples:    f.header.SamplesPerFrame(),
		Reserved:   f.reserved,
	}, nil
}
