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

// Package mpatest builds small synthetic MPEG audio streams for tests.
package mpatest

import (
	"github.com/pkg/errors"

	"github.com/hajimehoshi/go-mpegaudio/internal/consts"
	"github.com/hajimehoshi/go-mpegaudio/internal/frameheader"
	"github.com/hajimehoshi/go-mpegaudio/internal/huffman"
)

// BitWriter appends bits MSB first.
type BitWriter struct {
	buf  []byte
	bits int
}

func (w *BitWriter) WriteBit(b int) {
	w.WriteBits(uint32(b&1), 1)
}

// WriteBits appends the low n bits of v, n <= 32.
func (w *BitWriter) WriteBits(v uint32, n int) {
	for i := n - 1; i >= 0; i-- {
		if w.bits&7 == 0 {
			w.buf = append(w.buf, 0)
		}
		if (v>>uint(i))&1 != 0 {
			w.buf[len(w.buf)-1] |= 0x80 >> uint(w.bits&7)
		}
		w.bits++
	}
}

// Len returns the number of bits written.
func (w *BitWriter) Len() int {
	return w.bits
}

// Bytes returns the written bits, zero padded to a byte boundary.
func (w *BitWriter) Bytes() []byte {
	return w.buf
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func (w *BitWriter) sign(v int) {
	if v < 0 {
		w.WriteBit(1)
	} else if v > 0 {
		w.WriteBit(0)
	}
}

// WritePair Huffman codes (x, y) with table tableNum including linbits and
// sign bits.
func (w *BitWriter) WritePair(tableNum int, x, y int) error {
	if tableNum == 0 {
		if x != 0 || y != 0 {
			return errors.Errorf("mpatest: table 0 cannot code (%d, %d)", x, y)
		}
		return nil
	}
	linbits := huffman.Linbits(tableNum)
	mx, my := abs(x), abs(y)
	cx, cy := mx, my
	if linbits > 0 {
		if cx > 15 {
			cx = 15
		}
		if cy > 15 {
			cy = 15
		}
	}
	if cx > 15 || cy > 15 {
		return errors.Errorf("mpatest: (%d, %d) is out of range for table %d", x, y, tableNum)
	}
	code, length, ok := huffman.Code(tableNum, uint8(cx<<4|cy))
	if !ok {
		return errors.Errorf("mpatest: (%d, %d) has no code in table %d", x, y, tableNum)
	}
	w.WriteBits(code, length)
	if linbits > 0 && cx == 15 {
		if mx-15 >= 1<<uint(linbits) {
			return errors.Errorf("mpatest: %d needs more than %d linbits", mx, linbits)
		}
		w.WriteBits(uint32(mx-15), linbits)
	}
	w.sign(x)
	if linbits > 0 && cy == 15 {
		if my-15 >= 1<<uint(linbits) {
			return errors.Errorf("mpatest: %d needs more than %d linbits", my, linbits)
		}
		w.WriteBits(uint32(my-15), linbits)
	}
	w.sign(y)
	return nil
}

// WriteQuad Huffman codes a count1 quadruple with table 32 or 33.
func (w *BitWriter) WriteQuad(tableNum int, v, ww, x, y int) error {
	q := 0
	for _, c := range []int{v, ww, x, y} {
		if abs(c) > 1 {
			return errors.Errorf("mpatest: count1 value %d is out of range", c)
		}
		q = q<<1 | abs(c)
	}
	code, length, ok := huffman.Code(tableNum, uint8(q))
	if !ok {
		return errors.Errorf("mpatest: quadruple %x has no code in table %d", q, tableNum)
	}
	w.WriteBits(code, length)
	for _, c := range []int{v, ww, x, y} {
		w.sign(c)
	}
	return nil
}

// Header returns a frame header with the given fields. The protection bit
// is set, so frames carry no CRC.
func Header(version consts.Version, layer consts.Layer, bitrateIndex int, freq consts.SamplingFrequency, mode consts.Mode, modeExtension int) frameheader.FrameHeader {
	return frameheader.FrameHeader(0xffe00000 |
		uint32(version)<<19 |
		uint32(layer)<<17 |
		1<<16 |
		uint32(bitrateIndex)<<12 |
		uint32(freq)<<10 |
		uint32(mode)<<6 |
		uint32(modeExtension)<<4)
}
