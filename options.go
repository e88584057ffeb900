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
	"go.uber.org/zap"
)

// DefaultMaxResync is the default number of bytes skipped while looking
// for a frame sync before the stream is declared bad.
const DefaultMaxResync = 64 << 10

// Config holds the decoder settings.
type Config struct {
	// MaxResync bounds the bytes skipped between two frames.
	MaxResync int

	// ForceMono mixes stereo streams down to one channel.
	ForceMono bool

	// Downsample divides the output rate by 2^Downsample (0, 1 or 2).
	Downsample int

	Logger *zap.Logger
}

// DefaultConfig returns the settings NewDecoder starts from.
func DefaultConfig() Config {
	return Config{
		MaxResync: DefaultMaxResync,
		Logger:    zap.NewNop(),
	}
}

// An Option changes a Config.
type Option func(*Config)

// WithLogger sets the logger. Resyncs and dropped frames are logged at
// Debug and Warn, format changes at Info.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithForceMono sets Config.ForceMono.
func WithForceMono(mono bool) Option {
	return func(c *Config) {
		c.ForceMono = mono
	}
}

// WithDownsample sets Config.Downsample.
func WithDownsample(shift int) Option {
	return func(c *Config) {
		c.Downsample = shift
	}
}

// WithMaxResync sets Config.MaxResync.
func WithMaxResync(n int) Option {
	return func(c *Config) {
		c.MaxResync = n
	}
}

// WithConfig replaces the whole Config.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}
