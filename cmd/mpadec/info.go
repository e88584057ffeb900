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
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"

	"github.com/hajimehoshi/go-mpegaudio"
)

func infoAction(c *cli.Context) (err error) {
	d, err := openDecoder(c)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, d.Close())
	}()

	first, err := d.FrameInfo(0)
	if err != nil {
		return err
	}
	total := d.TotalFrames()
	var bytes, samples int64
	reserved := 0
	for i := 0; i < total; i++ {
		f, err := d.FrameInfo(i)
		if err != nil {
			return err
		}
		if f.Reserved {
			reserved++
		}
		bytes += int64(f.Size)
		samples += int64(f.Samples)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Property", "Value"})
	t.AppendRow(table.Row{"File", c.Args().First()})
	t.AppendRow(table.Row{"Format", fmt.Sprintf("%s %s", first.Version, first.Layer)})
	t.AppendRow(table.Row{"Mode", first.Mode})
	t.AppendRow(table.Row{"Sample rate", fmt.Sprintf("%d Hz", first.SampleRate)})
	t.AppendRow(table.Row{"Channels", d.Channels()})
	t.AppendRow(table.Row{"Frames", total})
	if reserved > 0 {
		t.AppendRow(table.Row{"Reserved headers", reserved})
	}
	if total > 0 && first.SampleRate > 0 {
		duration := time.Duration(samples) * time.Second / time.Duration(first.SampleRate)
		t.AppendRow(table.Row{"Duration", duration.Round(time.Millisecond)})
		t.AppendRow(table.Row{"Average bitrate", fmt.Sprintf("%d kbit/s", bytes*8*int64(first.SampleRate)/samples/1000)})
	}
	t.Render()

	if !c.Bool(flagFrames) {
		return nil
	}
	return printFrames(d, total)
}

func printFrames(d *mpegaudio.Decoder, total int) error {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"#", "Offset", "Size", "Bitrate", "Mode"})
	for i := 0; i < total; i++ {
		f, err := d.FrameInfo(i)
		if err != nil {
			return err
		}
		if f.Reserved {
			t.AppendRow(table.Row{i, f.Offset, "-", "reserved", "-"})
			continue
		}
		t.AppendRow(table.Row{i, f.Offset, f.Size, f.Bitrate / 1000, f.Mode})
	}
	t.Render()
	return nil
}
