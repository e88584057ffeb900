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

package mpegaudio_test

import (
	"bytes"
	"io"
	"io/ioutil"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"go.viam.com/test"

	"github.com/hajimehoshi/go-mpegaudio"
)

// limitedAccuracy is the RMS error bound of ISO/IEC 11172-4 limited
// accuracy, 2^-11/sqrt(12) of full scale, in 16-bit steps.
var limitedAccuracy = math.Exp2(-11) / math.Sqrt(12) * 32768

// TestCompliance decodes the conformance bitstreams in testdata/compliance.
// Each name.bit needs a name.pcm reference with interleaved 16-bit little
// endian samples.
func TestCompliance(t *testing.T) {
	streams, err := filepath.Glob(filepath.Join("testdata", "compliance", "*.bit"))
	test.That(t, err, test.ShouldBeNil)
	if len(streams) == 0 {
		t.Skip("no conformance bitstreams in testdata/compliance")
	}
	for _, s := range streams {
		s := s
		t.Run(filepath.Base(s), func(t *testing.T) {
			ref, err := ioutil.ReadFile(strings.TrimSuffix(s, ".bit") + ".pcm")
			if err != nil {
				t.Skipf("no reference output: %v", err)
			}
			data, err := ioutil.ReadFile(s)
			test.That(t, err, test.ShouldBeNil)
			d, err := mpegaudio.NewDecoder(bytes.NewReader(data))
			test.That(t, err, test.ShouldBeNil)

			var sum float64
			n := 0
			dst := make([]float32, 1152*2)
			for {
				m, err := d.RunFloat(dst, 1)
				if err == io.EOF {
					break
				}
				test.That(t, err, test.ShouldBeNil)
				for _, v := range dst[:m] {
					if 2*n+1 >= len(ref) {
						break
					}
					want := float64(int16(uint16(ref[2*n]) | uint16(ref[2*n+1])<<8))
					diff := float64(v)*32768 - want
					sum += diff * diff
					n++
				}
			}
			test.That(t, n, test.ShouldBeGreaterThan, 0)
			test.That(t, n, test.ShouldEqual, len(ref)/2)
			rms := math.Sqrt(sum / float64(n))
			t.Logf("%d samples, RMS error %.3f", n, rms)
			test.That(t, rms, test.ShouldBeLessThanOrEqualTo, limitedAccuracy)
		})
	}
}
