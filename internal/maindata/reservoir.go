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

package maindata

import (
	"github.com/pkg/errors"

	"github.com/hajimehoshi/go-mpegaudio/internal/bits"
)

// ErrReservoir is returned when main_data_begin points before the oldest
// byte the reservoir holds, typically right after a seek or at the start
// of a cut stream.
var ErrReservoir = errors.New("mpegaudio: main_data_begin exceeds the bit reservoir")

// MaxFrameBytes bounds the main data a single frame may push.
const MaxFrameBytes = 2048

// A Reservoir is the Layer III bit reservoir. Every frame pushes its main
// data slot, and the next frame's main data may start up to main_data_begin
// bytes before its own slot.
type Reservoir struct {
	w bits.Window
}

// Reset drops all buffered bytes.
func (r *Reservoir) Reset() {
	r.w.Initialize()
}

// Available returns the number of bytes a new frame may reach back into.
func (r *Reservoir) Available() int {
	n := r.w.Written()
	if max := bits.WindowSize - MaxFrameBytes; n > max {
		return max
	}
	return n
}

// Append adds a main data slot without positioning the cursor, for frames
// whose own main data cannot be decoded.
func (r *Reservoir) Append(slot []byte) error {
	if len(slot) > MaxFrameBytes {
		return errors.Errorf("mpegaudio: main data slot of %d bytes is too large", len(slot))
	}
	for _, c := range slot {
		r.w.PutByte(c)
	}
	return nil
}

// Push appends the main data slot of the current frame and positions the
// bit cursor mainDataBegin bytes before it. The bytes are appended even
// when ErrReservoir is returned so the following frames can still use them.
func (r *Reservoir) Push(mainDataBegin int, slot []byte) error {
	if len(slot) > MaxFrameBytes {
		return errors.Errorf("mpegaudio: main data slot of %d bytes is too large", len(slot))
	}
	avail := r.Available()
	start := r.w.Written()
	for _, c := range slot {
		r.w.PutByte(c)
	}
	if mainDataBegin > avail {
		return errors.Wrapf(ErrReservoir, "main_data_begin %d, available %d", mainDataBegin, avail)
	}
	r.w.SetTotalBits((start - mainDataBegin) * 8)
	return nil
}

// Window returns the underlying bit window. Its cursor is valid after a
// successful Push.
func (r *Reservoir) Window() *bits.Window {
	return &r.w
}
