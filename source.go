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

	"github.com/hajimehoshi/go-mpegaudio/internal/consts"
)

type source struct {
	reader io.Reader
	buf    []byte
	pos    int64
}

func (s *source) seekable() bool {
	_, ok := s.reader.(io.Seeker)
	return ok
}

// Seek moves to an absolute byte position.
func (s *source) Seek(position int64) error {
	seeker, ok := s.reader.(io.Seeker)
	if !ok {
		return ErrNotSeekable
	}
	s.buf = nil
	p, err := seeker.Seek(position, io.SeekStart)
	if err != nil {
		return err
	}
	s.pos = p
	return nil
}

func (s *source) Close() error {
	s.buf = nil
	if c, ok := s.reader.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// skipTags skips an ID3v2 tag or a leading ID3v1 block.
func (s *source) skipTags() error {
	buf := make([]byte, 3)
	n, err := s.ReadFull(buf)
	if n < len(buf) {
		s.Unread(buf[:n])
		if err == io.EOF {
			return nil
		}
		return err
	}
	switch string(buf) {
	case "TAG":
		buf := make([]byte, 125)
		if _, err := s.ReadFull(buf); err != nil {
			return err
		}

	case "ID3":
		// Skip version (2 bytes) and flag (1 byte)
		buf := make([]byte, 3)
		if _, err := s.ReadFull(buf); err != nil {
			return err
		}
		footer := buf[2]&0x10 != 0

		buf = make([]byte, 4)
		n, err := s.ReadFull(buf)
		if err != nil {
			return err
		}
		if n != 4 {
			return nil
		}
		size := (uint32(buf[0]) << 21) | (uint32(buf[1]) << 14) |
			(uint32(buf[2]) << 7) | uint32(buf[3])
		if footer {
			size += 10
		}
		if err := s.skip(int64(size)); err != nil {
			return err
		}

	default:
		s.Unread(buf)
	}

	return nil
}

// skip discards n bytes.
func (s *source) skip(n int64) error {
	if seeker, ok := s.reader.(io.Seeker); ok && len(s.buf) == 0 {
		p, err := seeker.Seek(n, io.SeekCurrent)
		if err != nil {
			return err
		}
		s.pos = p
		return nil
	}
	buf := make([]byte, 4096)
	for n > 0 {
		b := buf
		if int64(len(b)) > n {
			b = b[:n]
		}
		m, err := s.ReadFull(b)
		n -= int64(m)
		if err != nil {
			if err == io.EOF {
				return &consts.UnexpectedEOF{At: "skip"}
			}
			return err
		}
	}
	return nil
}

func (s *source) Unread(buf []byte) {
	b := make([]byte, 0, len(buf)+len(s.buf))
	b = append(b, buf...)
	s.buf = append(b, s.buf...)
	s.pos -= int64(len(buf))
}

func (s *source) ReadFull(buf []byte) (int, error) {
	read := 0
	if s.buf != nil {
		read = copy(buf, s.buf)
		if len(s.buf) > read {
			s.buf = s.buf[read:]
		} else {
			s.buf = nil
		}
		s.pos += int64(read)
		if len(buf) == read {
			return read, nil
		}
	}

	n, err := io.ReadFull(s.reader, buf[read:])
	if err != nil {
		// Allow if all data can't be read. This is common.
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
	}
	s.pos += int64(n)
	return n + read, err
}
