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

// Package main is the mpadec command. It decodes MPEG audio files to WAV,
// plays them and prints their frame layout.
package main

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hajimehoshi/go-mpegaudio"
)

const (
	// Flags.
	flagDebug      = "debug"
	flagMono       = "mono"
	flagDownsample = "downsample"
	flagMaxResync  = "max-resync"
	flagStart      = "start"
	flagFrames     = "frames"
	flagNormalize  = "normalize"
	flagPan        = "pan"

	metadataLogger = "logger"
)

var decoderFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:  flagMono,
		Usage: "mix stereo down to mono",
	},
	&cli.IntFlag{
		Name:  flagDownsample,
		Usage: "halve the sample rate `N` times (0, 1 or 2)",
	},
	&cli.IntFlag{
		Name:  flagMaxResync,
		Value: mpegaudio.DefaultMaxResync,
		Usage: "give up after `BYTES` without a frame sync",
	},
	&cli.IntFlag{
		Name:  flagStart,
		Usage: "start at frame `N`",
	},
}

func newLogger(debug bool) (*zap.Logger, error) {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	return zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalColorLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		DisableStacktrace: true,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}.Build()
}

func loggerFrom(c *cli.Context) *zap.Logger {
	if l, ok := c.App.Metadata[metadataLogger].(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}

// openDecoder opens the file named by the first argument with the decoder
// flags applied.
func openDecoder(c *cli.Context) (*mpegaudio.Decoder, error) {
	if c.NArg() < 1 {
		return nil, errors.New("missing input file")
	}
	path := c.Args().First()
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	opts := []mpegaudio.Option{
		mpegaudio.WithLogger(loggerFrom(c).Named("decoder")),
		mpegaudio.WithForceMono(c.Bool(flagMono)),
		mpegaudio.WithDownsample(c.Int(flagDownsample)),
	}
	if n := c.Int(flagMaxResync); n > 0 {
		opts = append(opts, mpegaudio.WithMaxResync(n))
	}
	d, err := mpegaudio.NewDecoder(f, opts...)
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "open %s", path)
	}
	if start := c.Int(flagStart); start > 0 {
		if err := d.SetFrame(start); err != nil {
			_ = d.Close()
			return nil, err
		}
	}
	return d, nil
}

func main() {
	app := &cli.App{
		Name:  "mpadec",
		Usage: "decode MPEG-1/2 audio Layer I, II and III",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			logger, err := newLogger(c.Bool(flagDebug))
			if err != nil {
				return err
			}
			c.App.Metadata = map[string]interface{}{metadataLogger: logger}
			return nil
		},
		After: func(c *cli.Context) error {
			_ = loggerFrom(c).Sync()
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "decode to a 16-bit WAV file",
				ArgsUsage: "INPUT OUTPUT.wav",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:  flagFrames,
						Usage: "decode at most `N` frames",
					},
					&cli.BoolFlag{
						Name:  flagNormalize,
						Usage: "scale the peak to full scale",
					},
					&cli.Float64Flag{
						Name:  flagPan,
						Value: 0.5,
						Usage: "stereo balance from 0 (left) to 1 (right)",
					},
				}, decoderFlags...),
				Action: decodeAction,
			},
			{
				Name:      "play",
				Usage:     "play through the default audio device",
				ArgsUsage: "INPUT",
				Flags:     decoderFlags,
				Action:    playAction,
			},
			{
				Name:      "info",
				Usage:     "print the stream format and frame table",
				ArgsUsage: "INPUT",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  flagFrames,
						Usage: "list every frame",
					},
				},
				Action: infoAction,
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
