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

// Package huffman decodes Layer III spectral values.
package huffman

import (
	"github.com/pkg/errors"
)

// ErrInvalidCode is returned when the bits read do not form a code word of
// the selected table.
var ErrInvalidCode = errors.New("huffman: illegal code in data")

// BitReader is the bit source, usually a *bits.Window.
type BitReader interface {
	Bit() int
	Bits(n int) int
}

type codeword struct {
	length uint8
	code   uint32
	xy     uint8
}

// A tree is a flat binary tree. Internal nodes store child indices, leaves
// store the decoded value.
type tree struct {
	child [][2]int32
	value []uint8
	leaf  []bool
}

const noChild = -1

func (t *tree) add(length int, code uint32, xy uint8) {
	n := int32(0)
	for i := length - 1; i >= 0; i-- {
		b := (code >> uint(i)) & 1
		next := t.child[n][b]
		if next == noChild {
			next = int32(len(t.child))
			t.child = append(t.child, [2]int32{noChild, noChild})
			t.value = append(t.value, 0)
			t.leaf = append(t.leaf, false)
			t.child[n][b] = next
		}
		n = next
	}
	t.leaf[n] = true
	t.value[n] = xy
}

func newTree(codes []codeword) *tree {
	t := &tree{
		child: [][2]int32{{noChild, noChild}},
		value: []uint8{0},
		leaf:  []bool{false},
	}
	for _, c := range codes {
		t.add(int(c.length), c.code, c.xy)
	}
	return t
}

func (t *tree) decode(r BitReader) (uint8, error) {
	n := int32(0)
	for depth := 0; !t.leaf[n]; depth++ {
		if depth >= 32 {
			return 0, ErrInvalidCode
		}
		n = t.child[n][r.Bit()]
		if n == noChild {
			return 0, ErrInvalidCode
		}
	}
	return t.value[n], nil
}

type table struct {
	codes   []codeword
	tree    *tree
	linbits int
}

// Tables 0-31 decode pairs, 32 and 33 decode count1 quadruples. Tables 4
// and 14 are not used by the format and have no tree.
var tables [34]table

func init() {
	single := map[int][]codeword{
		1: codes1, 2: codes2, 3: codes3, 5: codes5, 6: codes6, 7: codes7,
		8: codes8, 9: codes9, 10: codes10, 11: codes11, 12: codes12,
		13: codes13, 15: codes15, 32: codesA, 33: codesB,
	}
	for n, codes := range single {
		tables[n] = table{codes: codes, tree: newTree(codes)}
	}
	t16 := newTree(codes16)
	for i, l := range []int{1, 2, 3, 4, 6, 8, 10, 13} {
		tables[16+i] = table{codes: codes16, tree: t16, linbits: l}
	}
	t24 := newTree(codes24)
	for i, l := range []int{4, 5, 6, 7, 8, 9, 11, 13} {
		tables[24+i] = table{codes: codes24, tree: t24, linbits: l}
	}
}

// Code returns the code word for the magnitudes packed as x<<4 | y (or the
// vwxy bits for tables 32 and 33). Sign and linbits are not included.
func Code(tableNum int, xy uint8) (code uint32, length int, ok bool) {
	if tableNum <= 0 || tableNum >= len(tables) {
		return 0, 0, false
	}
	for _, c := range tables[tableNum].codes {
		if c.xy == xy {
			return c.code, int(c.length), true
		}
	}
	return 0, 0, false
}

// Linbits returns the escape length of a pair table.
func Linbits(tableNum int) int {
	if tableNum < 0 || tableNum >= 32 {
		return 0
	}
	return tables[tableNum].linbits
}

// Valid reports whether tableNum may be selected for big values.
func Valid(tableNum int) bool {
	return tableNum == 0 || (tableNum > 0 && tableNum < 32 && tables[tableNum].tree != nil)
}

// Decode decodes one (x, y) pair with table tableNum (0-31). Values equal to
// 15 are extended by linbits raw bits, and every nonzero value is followed
// by its sign bit.
func Decode(r BitReader, tableNum int) (x, y int, err error) {
	if tableNum == 0 {
		return 0, 0, nil
	}
	if !Valid(tableNum) {
		return 0, 0, errors.Errorf("huffman: table %d is not usable for big values", tableNum)
	}
	t := &tables[tableNum]
	xy, err := t.tree.decode(r)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "table %d", tableNum)
	}
	x = int(xy >> 4)
	y = int(xy & 0xf)
	if t.linbits != 0 && x == 15 {
		x += r.Bits(t.linbits)
	}
	if x != 0 && r.Bit() == 1 {
		x = -x
	}
	if t.linbits != 0 && y == 15 {
		y += r.Bits(t.linbits)
	}
	if y != 0 && r.Bit() == 1 {
		y = -y
	}
	return x, y, nil
}

// DecodeQuad decodes one count1 quadruple with table 32 or 33. Each nonzero
// value is followed by its sign bit in v, w, x, y order.
func DecodeQuad(r BitReader, tableNum int) (v, w, x, y int, err error) {
	if tableNum != 32 && tableNum != 33 {
		return 0, 0, 0, 0, errors.Errorf("huffman: table %d is not a count1 table", tableNum)
	}
	q, err := tables[tableNum].tree.decode(r)
	if err != nil {
		return 0, 0, 0, 0, errors.Wrapf(err, "table %d", tableNum)
	}
	vals := [4]int{int(q>>3) & 1, int(q>>2) & 1, int(q>>1) & 1, int(q) & 1}
	for i := range vals {
		if vals[i] != 0 && r.Bit() == 1 {
			vals[i] = -vals[i]
		}
	}
	return vals[0], vals[1], vals[2], vals[3], nil
}
