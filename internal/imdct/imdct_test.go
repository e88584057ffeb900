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

package imdct_test

import (
	"math"
	"math/rand"
	"testing"

	"go.viam.com/test"

	. "github.com/hajimehoshi/go-mpegaudio/internal/imdct"
)

func imdct36(in *[18]float32) [36]float64 {
	var out [36]float64
	for p := 0; p < 36; p++ {
		for m := 0; m < 18; m++ {
			out[p] += float64(in[m]) * math.Cos(math.Pi/72*float64(2*p+1+18)*float64(2*m+1))
		}
	}
	return out
}

func TestLongBlocks(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	var in [18]float32
	for i := range in {
		in[i] = r.Float32()*2 - 1
	}
	ref := imdct36(&in)
	for bt := 0; bt < 4; bt++ {
		if bt == 2 {
			continue
		}
		var out [36]float32
		Win(&in, bt, &out)
		w := Window(bt)
		for p := 0; p < 36; p++ {
			test.That(t, float64(out[p]), test.ShouldAlmostEqual, ref[p]*float64(w[p]), 1e-4)
		}
	}
}

func TestWindowShapes(t *testing.T) {
	start := Window(1)
	stop := Window(3)
	for i := 0; i < 6; i++ {
		test.That(t, start[30+i], test.ShouldEqual, float32(0))
		test.That(t, stop[i], test.ShouldEqual, float32(0))
		test.That(t, start[18+i], test.ShouldEqual, float32(1))
		test.That(t, stop[12+i], test.ShouldEqual, float32(1))
	}
	// The normal window is a power complementary sine window.
	normal := Window(0)
	for i := 0; i < 18; i++ {
		s := float64(normal[i])*float64(normal[i]) + float64(normal[i+18])*float64(normal[i+18])
		test.That(t, s, test.ShouldAlmostEqual, 1.0, 1e-6)
	}
}

func TestShortBlocks(t *testing.T) {
	var in [18]float32
	// Only the second window carries data.
	for m := 0; m < 6; m++ {
		in[3*m+1] = float32(m + 1)
	}
	var out [36]float32
	for i := range out {
		out[i] = 100
	}
	Win(&in, 2, &out)
	for p := 0; p < 12; p++ {
		test.That(t, out[p], test.ShouldEqual, float32(0))
	}
	for p := 24; p < 36; p++ {
		test.That(t, out[p], test.ShouldEqual, float32(0))
	}
	nonzero := false
	for p := 12; p < 24; p++ {
		if out[p] != 0 {
			nonzero = true
		}
	}
	test.That(t, nonzero, test.ShouldBeTrue)
}

func TestZeroIn(t *testing.T) {
	var in [18]float32
	for bt := 0; bt < 4; bt++ {
		var out [36]float32
		out[5] = 1
		Win(&in, bt, &out)
		test.That(t, out, test.ShouldResemble, [36]float32{})
	}
}
