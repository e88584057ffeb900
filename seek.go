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
	"io"

	"github.com/pkg/errors"

	"github.com/hajimehoshi/go-mpegaudio/internal/consts"
	"github.com/hajimehoshi/go-mpegaudio/internal/frameheader"
)

// scan fills the frame offset table up to the end of the stream and
// rewinds to the first audio frame.
func (d *Decoder) scan() error {
	if err := d.source.Seek(d.dataStart); err != nil {
		return err
	}
	d.frames = d.frames[:0]
	d.lastReserved = false
	for {
		h, _, start, err := d.readRaw()
		if errors.Is(err, frameheader.ErrReservedField) {
			prev := d.header
			if len(d.frames) > 0 {
				prev = d.frames[len(d.frames)-1].header
			}
			d.frames = append(d.frames, frameInfo{offset: start, header: prev, reserved: true})
			continue
		}
		if err != nil {
			if err == io.EOF {
				break
			}
			if errors.Is(err, ErrBadStream) {
				d.logger.Warnw("frame scan stopped", "frames", len(d.frames), "error", err)
				break
			}
			return err
		}
		d.frames = append(d.frames, frameInfo{offset: start, header: h})
	}
	d.scanned = true
	d.lastReserved = false
	return d.source.Seek(d.dataStart)
}

// mainDataSize returns the size of the main data slot of a Layer III frame.
func mainDataSize(h frameheader.FrameHeader) int {
	size, err := h.FrameSize()
	if err != nil {
		return 0
	}
	size -= 4 + h.SideInfoSize()
	if h.ProtectionBit() == 0 {
		size -= 2
	}
	return size
}

// replayStart returns the first frame to decode so that the state before
// frame n equals the one sequential decoding reaches.
func (d *Decoder) replayStart(n int) int {
	if n == 0 {
		return 0
	}
	start := n - 1
	h := d.frames[start].header
	switch h.Layer() {
	case consts.Layer1:
		// One frame runs only 12 of the 16 synthesis steps the filter
		// history spans.
		if start > 0 {
			start--
		}
		return start
	case consts.Layer2:
		return start
	}
	// The overlap tail entering frame n comes from the last granule before
	// it, and the synthesis history from frame n-1. With one granule per
	// frame both depend on frame n-2 as well. The oldest of those frames
	// must find all its main data in the reservoir.
	need := 511
	if h.IsLSF() {
		need = 255
		if start > 0 {
			start--
		}
	}
	for covered := 0; start > 0 && covered < need; {
		start--
		if !d.frames[start].reserved {
			covered += mainDataSize(d.frames[start].header)
		}
	}
	return start
}

// SetFrame positions the decoder so that the next frame decoded is frame
// n. Earlier frames are decoded and discarded as needed, so the output is
// the same as when decoding sequentially from the start.
//
// SetFrame needs an io.Seeker source.
func (d *Decoder) SetFrame(n int) error {
	if !d.source.seekable() {
		return d.fail(ErrNotSeekable)
	}
	if n < 0 || n > len(d.frames) {
		return d.fail(errors.Errorf("mpegaudio: frame %d out of range [0, %d]", n, len(d.frames)))
	}
	d.buf = nil
	d.pending = false
	d.lastReserved = false
	d.fatal = nil
	d.frame.Reset()

	start := d.replayStart(n)
	offset := d.dataStart
	if start < len(d.frames) {
		offset = d.frames[start].offset
		d.header = d.frames[start].header
	}
	if err := d.source.Seek(offset); err != nil {
		return d.fail(err)
	}
	d.current = start

	d.replaying = true
	defer func() {
		d.replaying = false
	}()
	for d.current < n {
		if _, _, err := d.decodeNext(); err != nil {
			// The first frames of the replay may reach before the
			// reservoir.
			var ferr *FrameError
			if errors.As(err, &ferr) {
				continue
			}
			return err
		}
	}
	if start < n {
		d.logger.Debugw("frame set", "frame", n, "replayed", n-start)
	}
	return nil
}

// bytesPerFrame returns the size of one frame's output for Read.
func (d *Decoder) bytesPerFrame() int {
	h := d.header
	if len(d.frames) > 0 {
		h = d.frames[0].header
	}
	return 2 * d.stage.Len(h.SamplesPerFrame(), h.NumberOfChannels())
}

// Length returns the total size in bytes Read produces.
//
// Length returns -1 when the total size is not available
// e.g. when the given source is not io.Seeker.
func (d *Decoder) Length() int64 {
	if !d.scanned {
		return -1
	}
	l := int64(0)
	for _, f := range d.frames {
		l += 2 * int64(d.stage.Len(f.header.SamplesPerFrame(), f.header.NumberOfChannels()))
	}
	return l
}

// Seek is io.Seeker's Seek over the bytes Read produces. It assumes every
// frame has the format of the first one.
func (d *Decoder) Seek(offset int64, whence int) (int64, error) {
	if !d.source.seekable() {
		return 0, d.fail(ErrNotSeekable)
	}
	npos := int64(0)
	switch whence {
	case io.SeekStart:
		npos = offset
	case io.SeekCurrent:
		npos = d.pos + offset
	case io.SeekEnd:
		npos = d.Length() + offset
	default:
		return 0, d.fail(errors.Errorf("mpegaudio: invalid whence: %v", whence))
	}
	if npos < 0 {
		return 0, d.fail(errors.Errorf("mpegaudio: negative position %d", npos))
	}
	bpf := int64(d.bytesPerFrame())
	f := int(npos / bpf)
	if f >= len(d.frames) {
		if err := d.SetFrame(len(d.frames)); err != nil {
			return 0, err
		}
		d.pos = npos
		return npos, nil
	}
	if err := d.SetFrame(f); err != nil {
		return 0, err
	}
	if err := d.fill(); err != nil {
		return 0, d.fail(err)
	}
	skip := int(npos % bpf)
	if skip > len(d.buf) {
		skip = len(d.buf)
	}
	d.buf = d.buf[skip:]
	d.pos = npos
	return npos, nil
}
