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

package bits

// WindowSize is the capacity of a Window in bytes. It must be a power of two.
const WindowSize = 4096

const windowMask = WindowSize - 1

// A Window is a circular, bit addressable buffer. Bytes are appended with
// PutByte and read back MSB first. Positions are absolute since the last
// Initialize and are masked on access, so the newest WindowSize bytes are
// always addressable.
//
// Reading bits that were never written, or that were overwritten by a wrap,
// returns stale data. Callers must not do that.
type Window struct {
	buf      [WindowSize]byte
	point    int
	bitIndex int
}

// Initialize empties the window and resets both cursors.
func (w *Window) Initialize() {
	w.point = 0
	w.bitIndex = 0
}

func (w *Window) PutByte(c byte) {
	w.buf[w.point&windowMask] = c
	w.point++
}

// Written returns the number of bytes put since Initialize.
func (w *Window) Written() int {
	return w.point
}

// TotalBits returns the bit cursor since Initialize.
func (w *Window) TotalBits() int {
	return w.bitIndex
}

// SetTotalBits moves the bit cursor to an absolute position.
func (w *Window) SetTotalBits(pos int) {
	if pos < w.bitIndex {
		w.Rewind(w.bitIndex - pos)
		return
	}
	w.Forward(pos - w.bitIndex)
}

func (w *Window) Rewind(n int) {
	w.bitIndex -= n
}

func (w *Window) Forward(n int) {
	w.bitIndex += n
}

func (w *Window) byteAt(i int) uint32 {
	return uint32(w.buf[i&windowMask])
}

func (w *Window) Bit() int {
	r := w.byteAt(w.bitIndex>>3) >> (7 - uint(w.bitIndex&7))
	w.bitIndex++
	return int(r & 1)
}

// Bits reads n bits, n <= 24.
func (w *Window) Bits(n int) int {
	if n == 0 {
		return 0
	}
	if n <= 9 {
		return w.Bits9(n)
	}
	p := w.bitIndex >> 3
	v := w.byteAt(p)<<24 | w.byteAt(p+1)<<16 | w.byteAt(p+2)<<8 | w.byteAt(p+3)
	v <<= uint(w.bitIndex & 7)
	v >>= 32 - uint(n)
	w.bitIndex += n
	return int(v)
}

// Bits9 reads n bits, n <= 9, from at most two adjacent bytes.
func (w *Window) Bits9(n int) int {
	if n == 0 {
		return 0
	}
	p := w.bitIndex >> 3
	v := (w.byteAt(p)<<8 | w.byteAt(p+1)) << uint(w.bitIndex&7)
	v = (v & 0xffff) >> (16 - uint(n))
	w.bitIndex += n
	return int(v)
}
