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

// Package synthesis implements the polyphase synthesis filter bank shared
// by all three layers.
package synthesis

import (
	"math"
)

var synthNWin = [64][32]float32{}

func init() {
	for i := 0; i < 64; i++ {
		for j := 0; j < 32; j++ {
			synthNWin[i][j] =
				float32(math.Cos(float64((16+i)*(2*j+1)) * (math.Pi / 64.0)))
		}
	}
}

// A Filter holds the V vectors of both channels. The zero value is ready
// to use.
type Filter struct {
	v [2][1024]float32
	u [512]float32
}

// Reset clears the filter history.
func (f *Filter) Reset() {
	f.v = [2][1024]float32{}
}

// Synthesize consumes one sample of each of the 32 subbands of channel ch
// and writes 32 PCM samples, nominally in [-1, 1], into out.
func (f *Filter) Synthesize(ch int, in *[32]float32, out []float32) {
	_ = out[31]
	v := &f.v[ch]
	copy(v[64:1024], v[0:1024-64])
	for i := 0; i < 64; i++ { // Matrix multiply input with n_win[][] matrix
		sum := float32(0)
		for j := 0; j < 32; j++ {
			sum += synthNWin[i][j] * in[j]
		}
		v[i] = sum
	}
	u := &f.u
	for i := 0; i < 512; i += 64 { // Build the U vector
		copy(u[i:i+32], v[(i<<1):(i<<1)+32])
		copy(u[i+32:i+64], v[(i<<1)+96:(i<<1)+128])
	}
	for i := 0; i < 512; i++ { // Window by u_vec[i] with synthDtbl[i]
		u[i] *= synthDtbl[i]
	}
	for i := 0; i < 32; i++ {
		sum := float32(0)
		for j := 0; j < 512; j += 32 {
			sum += u[j+i]
		}
		out[i] = sum
	}
}
