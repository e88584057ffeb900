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
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/transforms"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/hajimehoshi/go-mpegaudio"
	"github.com/hajimehoshi/go-mpegaudio/internal/pcm"
)

// decodeAll decodes up to limit frames (all when limit <= 0). Dropped
// frames are replaced by silence.
func decodeAll(c *cli.Context, d *mpegaudio.Decoder, limit int) (*audio.FloatBuffer, error) {
	logger := loggerFrom(c).Sugar()
	nch := d.Channels()
	buf := &audio.FloatBuffer{
		Format: &audio.Format{
			NumChannels: nch,
			SampleRate:  d.SampleRate(),
		},
	}
	frame := make([]float32, 1152*2)
	for i := 0; limit <= 0 || i < limit; i++ {
		n, err := d.RunFloat(frame, 1)
		if err == io.EOF {
			break
		}
		if err != nil {
			var ferr *mpegaudio.FrameError
			if !errors.As(err, &ferr) {
				return nil, err
			}
			logger.Warnw("frame replaced by silence", "frame", ferr.Frame, "error", ferr.Err)
			buf.Data = append(buf.Data, make([]float64, d.PCMPerFrame()*nch)...)
			continue
		}
		if d.Channels() != nch || d.SampleRate() != buf.Format.SampleRate {
			return nil, errors.Errorf("format changes at frame %d", d.CurrentFrame()-1)
		}
		for _, v := range frame[:n] {
			buf.Data = append(buf.Data, float64(v))
		}
	}
	return buf, nil
}

func writeWAV(path string, buf *audio.FloatBuffer) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()

	out := &audio.IntBuffer{
		Format:         buf.Format,
		Data:           make([]int, len(buf.Data)),
		SourceBitDepth: 16,
	}
	for i, v := range buf.Data {
		out.Data[i] = int(pcm.ToInt16(float32(v)))
	}
	enc := wav.NewEncoder(f, buf.Format.SampleRate, 16, buf.Format.NumChannels, 1)
	if err := enc.Write(out); err != nil {
		return multierr.Combine(err, enc.Close())
	}
	return enc.Close()
}

func decodeAction(c *cli.Context) (err error) {
	if c.NArg() != 2 {
		return errors.New("decode needs INPUT and OUTPUT.wav")
	}
	d, err := openDecoder(c)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, d.Close())
	}()

	buf, err := decodeAll(c, d, c.Int(flagFrames))
	if err != nil {
		return err
	}
	if c.Bool(flagNormalize) {
		transforms.NormalizeMax(buf)
	}
	if pan := c.Float64(flagPan); pan != 0.5 {
		if err := transforms.StereoPan(buf, pan); err != nil {
			return errors.Wrap(err, "pan")
		}
	}
	out := c.Args().Get(1)
	if err := writeWAV(out, buf); err != nil {
		return err
	}
	loggerFrom(c).Sugar().Infow("decoded",
		"output", out,
		"frames", d.CurrentFrame(),
		"samples", len(buf.Data)/buf.Format.NumChannels,
		"rate", buf.Format.SampleRate,
		"channels", buf.Format.NumChannels,
	)
	return nil
}
