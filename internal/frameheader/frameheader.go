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

package frameheader

import (
	"io"

	"github.com/pkg/errors"

	"github.com/hajimehoshi/go-mpegaudio/internal/consts"
)

// ErrResyncLimit is returned by Read when no sync word was found within the
// allowed distance.
var ErrResyncLimit = errors.New("mpegaudio: frame sync not found within resync limit")

// ErrReservedField is returned by Read for a header at the read position
// whose sync word is intact but whose bitrate or sampling frequency is
// reserved.
var ErrReservedField = errors.New("mpegaudio: reserved bitrate or sampling frequency")

// A FrameHeader is MPEG1/2/2.5 Layer 1-3 frame header
type FrameHeader uint32

// Parse builds a header from 4 bytes in stream (big-endian) order.
func Parse(b [4]byte) FrameHeader {
	return FrameHeader(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3]))
}

// Bytes returns the header in stream order.
func (m FrameHeader) Bytes() [4]byte {
	return [4]byte{byte(m >> 24), byte(m >> 16), byte(m >> 8), byte(m)}
}

// ID returns this header's ID stored in position 20,19
func (m FrameHeader) ID() consts.Version {
	return consts.Version((m & 0x00180000) >> 19)
}

// Layer returns the mpeg layer of this frame stored in position 18,17
func (m FrameHeader) Layer() consts.Layer {
	return consts.Layer((m & 0x00060000) >> 17)
}

// ProtectionBit returns the protection bit stored in position 16
func (m FrameHeader) ProtectionBit() int {
	return int(m&0x00010000) >> 16
}

// BitrateIndex returns the bitrate index stored in position 15,12
func (m FrameHeader) BitrateIndex() int {
	return int(m&0x0000f000) >> 12
}

// SamplingFrequency returns the sampling frequency index stored in position 11,10
func (m FrameHeader) SamplingFrequency() consts.SamplingFrequency {
	return consts.SamplingFrequency(int(m&0x00000c00) >> 10)
}

// PaddingBit returns the padding bit stored in position 9
func (m FrameHeader) PaddingBit() int {
	return int(m&0x00000200) >> 9
}

// PrivateBit returns the private bit stored in position 8 - this bit may be used to store arbitrary data to be used
// by an application
func (m FrameHeader) PrivateBit() int {
	return int(m&0x00000100) >> 8
}

// Mode returns the channel mode, stored in position 7,6
func (m FrameHeader) Mode() consts.Mode {
	return consts.Mode((m & 0x000000c0) >> 6)
}

// ModeExtension returns the mode_extension - for use with Joint Stereo - stored in position 4,5
func (m FrameHeader) ModeExtension() int {
	return int(m&0x00000030) >> 4
}

// Copyright returns whether or not this recording is copywritten - stored in position 3
func (m FrameHeader) Copyright() int {
	return int(m&0x00000008) >> 3
}

// OriginalOrCopy returns whether or not this is an Original recording or a copy of one - stored in position 2
func (m FrameHeader) OriginalOrCopy() int {
	return int(m&0x00000004) >> 2
}

// Emphasis returns emphasis - the emphasis indication is here to tell the decoder that the file must be de-emphasized - stored in position 0,1
func (m FrameHeader) Emphasis() int {
	return int(m&0x00000003) >> 0
}

// IsValid returns a boolean value indicating whether the header is valid or not.
func (m FrameHeader) IsValid() bool {
	const sync = 0xffe00000
	if (m & sync) != sync {
		return false
	}
	if m.ID() == consts.VersionReserved {
		return false
	}
	if m.BitrateIndex() == 15 {
		return false
	}
	if m.SamplingFrequency() == consts.SamplingFrequencyReserved {
		return false
	}
	if m.Layer() == consts.LayerReserved {
		return false
	}
	if m.Emphasis() == 2 {
		return false
	}
	return true
}

// hasReservedField reports whether the sync word, version and layer are
// valid while the bitrate or the sampling frequency is reserved.
func (m FrameHeader) hasReservedField() bool {
	const sync = 0xffe00000
	if (m&sync) != sync || m.ID() == consts.VersionReserved || m.Layer() == consts.LayerReserved {
		return false
	}
	return m.BitrateIndex() == 15 || m.SamplingFrequency() == consts.SamplingFrequencyReserved
}

// IsFreeFormat reports whether the bitrate index is 0, in which case the
// frame length cannot be derived from the header.
func (m FrameHeader) IsFreeFormat() bool {
	return m.BitrateIndex() == 0
}

// LowSamplingFrequency returns 1 for MPEG-2 and MPEG-2.5 (LSF) streams and 0
// for MPEG-1.
func (m FrameHeader) LowSamplingFrequency() int {
	if m.ID() == consts.Version1 {
		return 0
	}
	return 1
}

// IsLSF reports whether the header is MPEG-2 or MPEG-2.5.
func (m FrameHeader) IsLSF() bool {
	return m.LowSamplingFrequency() == 1
}

var bitrates = [2][4][15]int{
	{ // MPEG 1
		{}, // reserved
		{0, 32000, 40000, 48000, 56000, 64000, 80000, 96000, 112000, 128000, 160000, 192000, 224000, 256000, 320000},     // Layer 3
		{0, 32000, 48000, 56000, 64000, 80000, 96000, 112000, 128000, 160000, 192000, 224000, 256000, 320000, 384000},     // Layer 2
		{0, 32000, 64000, 96000, 128000, 160000, 192000, 224000, 256000, 288000, 320000, 352000, 384000, 416000, 448000}, // Layer 1
	},
	{ // MPEG 2, 2.5
		{}, // reserved
		{0, 8000, 16000, 24000, 32000, 40000, 48000, 56000, 64000, 80000, 96000, 112000, 128000, 144000, 160000},       // Layer 3
		{0, 8000, 16000, 24000, 32000, 40000, 48000, 56000, 64000, 80000, 96000, 112000, 128000, 144000, 160000},       // Layer 2
		{0, 32000, 48000, 56000, 64000, 80000, 96000, 112000, 128000, 144000, 160000, 176000, 192000, 224000, 256000}, // Layer 1
	},
}

// Bitrate returns the bitrate in bits per second. Free format and invalid
// headers report 0.
func (m FrameHeader) Bitrate() int {
	if !m.IsValid() {
		return 0
	}
	return bitrates[m.LowSamplingFrequency()][m.Layer()][m.BitrateIndex()]
}

// SamplingFrequencyValue returns the sampling frequency in Hz.
func (m FrameHeader) SamplingFrequencyValue() int {
	return m.SamplingFrequency().Int(m.ID())
}

// FrameSize returns the whole frame length in bytes, header included.
func (m FrameHeader) FrameSize() (int, error) {
	if !m.IsValid() {
		return 0, errors.Errorf("mpegaudio: invalid header 0x%08x", uint32(m))
	}
	if m.IsFreeFormat() {
		return 0, errors.Errorf("mpegaudio: free bitrate format is not supported: header 0x%08x", uint32(m))
	}
	br := m.Bitrate()
	freq := m.SamplingFrequencyValue()
	pad := m.PaddingBit()
	switch m.Layer() {
	case consts.Layer1:
		return (12*br/freq + pad) * 4, nil
	case consts.Layer2:
		return 144*br/freq + pad, nil
	}
	if m.IsLSF() {
		return 72*br/freq + pad, nil
	}
	return 144*br/freq + pad, nil
}

// SamplesPerFrame returns the number of PCM samples per channel a frame
// decodes to.
func (m FrameHeader) SamplesPerFrame() int {
	switch m.Layer() {
	case consts.Layer1:
		return 384
	case consts.Layer2:
		return 1152
	}
	return consts.SamplesPerGr * m.Granules()
}

// Granules returns the number of Layer III granules per frame.
func (m FrameHeader) Granules() int {
	if m.IsLSF() {
		return 1
	}
	return consts.GranulesMpeg1
}

func (m FrameHeader) NumberOfChannels() int {
	if m.Mode() == consts.ModeSingleChannel {
		return 1
	}
	return 2
}

// SideInfoSize returns the Layer III side information size in bytes.
func (m FrameHeader) SideInfoSize() int {
	mono := m.Mode() == consts.ModeSingleChannel
	if m.IsLSF() {
		if mono {
			return 9
		}
		return 17
	}
	if mono {
		return 17
	}
	return 32
}

// SameFormat reports whether two headers describe the same version, layer,
// sampling frequency and channel count.
func (m FrameHeader) SameFormat(other FrameHeader) bool {
	return m.ID() == other.ID() &&
		m.Layer() == other.Layer() &&
		m.SamplingFrequency() == other.SamplingFrequency() &&
		m.NumberOfChannels() == other.NumberOfChannels()
}

type FullReader interface {
	ReadFull([]byte) (int, error)
}

// Read reads a header, scanning forward one byte at a time until a valid
// sync word is found. It gives up with ErrResyncLimit after maxResync
// skipped bytes. The returned position is the offset of the header, and
// skipped is the number of bytes discarded before it.
//
// With reportReserved, a header right at position that only fails on a
// reserved bitrate or sampling frequency is returned together with
// ErrReservedField instead of being skipped.
func Read(source FullReader, position int64, maxResync int, reportReserved bool) (h FrameHeader, startPosition int64, skipped int, err error) {
	var buf [4]byte
	n, err := source.ReadFull(buf[:])
	if n < 4 {
		if err == io.EOF {
			if n == 0 {
				// Expected EOF
				return 0, 0, 0, io.EOF
			}
			return 0, 0, 0, &consts.UnexpectedEOF{At: "readHeader (1)"}
		}
		return 0, 0, 0, err
	}

	header := Parse(buf)
	pos := position
	if reportReserved && header.hasReservedField() {
		return header, pos, 0, errors.Wrapf(ErrReservedField, "header %08x at position %d", uint32(header), pos)
	}
	var b [1]byte
	for !header.IsValid() {
		if skipped >= maxResync {
			return 0, 0, skipped, errors.Wrapf(ErrResyncLimit, "gave up after %d bytes at position %d", skipped, pos)
		}
		// No,so scan the bitstream one byte at a time until we find it or EOF
		if _, err := source.ReadFull(b[:]); err != nil {
			if err == io.EOF {
				return 0, 0, skipped, &consts.UnexpectedEOF{At: "readHeader (2)"}
			}
			return 0, 0, skipped, err
		}
		header = header<<8 | FrameHeader(b[0])
		pos++
		skipped++
	}
	return header, pos, skipped, nil
}
