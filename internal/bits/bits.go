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

// Package bits provides MSB-first bit readers over frame bytes.
package bits

// Bits reads bits from a fixed byte slice, such as one frame's side
// information or a Layer I/II payload. Reading past the end yields zeros.
type Bits struct {
	vec []byte
	idx int
	pos int
}

func New(vec []byte) *Bits {
	return &Bits{
		vec: vec,
	}
}

func (b *Bits) Bit() int {
	if len(b.vec) <= b.pos {
		return 0
	}
	tmp := uint(b.vec[b.pos]) >> (7 - uint(b.idx))
	tmp &= 0x01
	b.pos += (b.idx + 1) >> 3
	b.idx = (b.idx + 1) & 0x07
	return int(tmp)
}

// Bits reads num bits, num <= 24.
func (b *Bits) Bits(num int) int {
	if num == 0 {
		return 0
	}
	if len(b.vec) <= b.pos {
		b.pos += (b.idx + num) >> 3
		b.idx = (b.idx + num) & 0x07
		return 0
	}
	var bb [4]byte
	copy(bb[:], b.vec[b.pos:])
	tmp := (uint32(bb[0]) << 24) | (uint32(bb[1]) << 16) | (uint32(bb[2]) << 8) | (uint32(bb[3]) << 0)
	tmp = tmp << uint(b.idx)
	tmp = tmp >> (32 - uint(num))
	b.pos += (b.idx + num) >> 3
	b.idx = (b.idx + num) & 0x07
	return int(tmp)
}

// BitPos returns the cursor in bits from the start of the slice.
func (b *Bits) BitPos() int {
	pos := b.pos
	pos *= 8 // Multiply by 8 to get number of bits
	pos += b.idx
	return pos
}

func (b *Bits) SetPos(pos int) {
	b.pos = pos >> 3
	b.idx = pos & 0x7
}

// LenInBits returns the size of the underlying slice in bits.
func (b *Bits) LenInBits() int {
	return len(b.vec) * 8
}
