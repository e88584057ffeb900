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
)

// Code classifies every error a Decoder returns.
type Code int

const (
	CodeOK Code = iota
	CodeEOF
	CodeBadStream
	CodeMemory
	CodeIO
)

func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeEOF:
		return "end of stream"
	case CodeBadStream:
		return "bad stream"
	case CodeMemory:
		return "memory"
	case CodeIO:
		return "i/o"
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

var (
	// ErrBadStream matches every malformed-stream error, including
	// *FrameError.
	ErrBadStream = errors.New("mpegaudio: bad stream")

	// ErrFreeFormat is returned for free format frames (bitrate index 0).
	// Their length cannot be derived from the header.
	ErrFreeFormat = errors.New("mpegaudio: free format bitstreams are not supported")

	// ErrMemory is returned when a caller buffer cannot hold a frame.
	ErrMemory = errors.New("mpegaudio: output buffer is too small")

	// ErrNotSeekable is returned by SetFrame and Seek on a source that is
	// not an io.Seeker.
	ErrNotSeekable = errors.New("mpegaudio: source must be io.Seeker")
)

// badStreamError marks a stream-fatal error while keeping its cause.
type badStreamError struct {
	err error
}

func (e *badStreamError) Error() string {
	return e.err.Error()
}

func (e *badStreamError) Unwrap() error {
	return e.err
}

func (e *badStreamError) Is(target error) bool {
	return target == ErrBadStream
}

// A FrameError is a frame-fatal error. The frame is dropped and decoding
// may continue with the next one.
type FrameError struct {
	Frame int
	Err   error
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("mpegaudio: frame %d: %v", e.Frame, e.Err)
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

func (e *FrameError) Is(target error) bool {
	return target == ErrBadStream
}

// ErrorCode maps err onto the closed set of codes. Errors that are none of
// the above, like source failures, are CodeIO.
func ErrorCode(err error) Code {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, io.EOF):
		return CodeEOF
	case errors.Is(err, ErrBadStream):
		return CodeBadStream
	case errors.Is(err, ErrMemory):
		return CodeMemory
	}
	return CodeIO
}
