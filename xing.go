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
	"encoding/binary"

	"github.com/hajimehoshi/go-mpegaudio/internal/consts"
	"github.com/hajimehoshi/go-mpegaudio/internal/frameheader"
)

// vbrTag reads a Xing, Info or VBRI header from the payload of the first
// frame. frames is -1 when the tag does not carry a frame count.
func vbrTag(h frameheader.FrameHeader, payload []byte) (ok bool, frames int) {
	if h.Layer() != consts.Layer3 {
		return false, -1
	}
	off := h.SideInfoSize()
	if h.ProtectionBit() == 0 {
		off += 2
	}
	if len(payload) >= off+8 {
		switch string(payload[off : off+4]) {
		case "Xing", "Info":
			flags := binary.BigEndian.Uint32(payload[off+4:])
			if flags&1 == 0 || len(payload) < off+12 {
				return true, -1
			}
			return true, int(binary.BigEndian.Uint32(payload[off+8:]))
		}
	}
	// VBRI always sits 32 bytes after the header.
	const vbri = 32
	if len(payload) >= vbri+18 && string(payload[vbri:vbri+4]) == "VBRI" {
		return true, int(binary.BigEndian.Uint32(payload[vbri+14:]))
	}
	return false, -1
}
