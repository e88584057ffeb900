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

// Package mpegaudio decodes MPEG-1, MPEG-2 and MPEG-2.5 audio streams of
// Layer I, II and III into 16-bit or float PCM.
//
// A Decoder reads frames from an io.Reader on demand. It can be read as an
// io.Reader of little endian 16-bit samples, or driven frame by frame with
// Run and RunFloat. Seekable sources additionally support SetFrame and
// Seek; output after a seek equals the output of sequential decoding.
package mpegaudio
