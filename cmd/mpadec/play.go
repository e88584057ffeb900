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

package main

import (
	"time"

	"github.com/hajimehoshi/oto/v2"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
)

func playAction(c *cli.Context) (err error) {
	d, err := openDecoder(c)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, d.Close())
	}()

	ctx, ready, err := oto.NewContext(d.SampleRate(), d.Channels(), 2)
	if err != nil {
		return err
	}
	<-ready

	p := ctx.NewPlayer(d)
	defer func() {
		err = multierr.Combine(err, p.Close())
	}()
	loggerFrom(c).Sugar().Infow("playing", "rate", d.SampleRate(), "channels", d.Channels(), "frames", d.TotalFrames())
	p.Play()
	for p.IsPlaying() {
		time.Sleep(100 * time.Millisecond)
	}
	if err := p.Err(); err != nil {
		return err
	}
	return d.Err()
}
