// SPDX-License-Identifier: EPL-2.0

// Command augment mixes background noise into an audio file.
//
//	augment --noise noises/ --always speech.wav speech-noisy.wav
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/ik5/audaug/audio"
	"github.com/ik5/audaug/corpus"
	"github.com/ik5/audaug/formats/wav"
	"github.com/ik5/audaug/loader"
	"github.com/ik5/audaug/noise"
)

var version = "0.1.0"

// CLI defines the command-line interface
type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version information"`
	Config  string           `short:"c" type:"path" help:"YAML file with noise options"`
	Noise   []string         `short:"n" type:"path" help:"Noise file or directory, repeatable; added to the configured sounds"`
	Mode    string           `help:"Override the loudness mode (relative or absolute)"`
	Rate    int              `short:"r" default:"16000" help:"Processing and output sample rate in Hz"`
	Seed    int64            `short:"s" default:"-1" help:"Random seed; negative picks one at random"`
	Copies  int              `default:"1" help:"Number of augmented variants to write"`
	Always  bool             `help:"Apply noise to every copy (p=1)"`
	Verbose bool             `help:"Log parameter draws"`
	Input   string           `arg:"" type:"existingfile" help:"Clean input audio"`
	Output  string           `arg:"" type:"path" help:"Output WAV path; numbered when --copies > 1"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "augment:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("augment"),
		kong.Description("Mix background noise into speech or audio"),
		kong.UsageOnError(),
		kong.Vars{"version": version},
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	reg := loader.DefaultRegistry()
	opts, err := options(&cli, reg)
	if err != nil {
		return err
	}

	file := loader.NewFile(reg)
	cache, err := loader.NewCache(file, max(len(opts.Sounds), 1))
	if err != nil {
		return err
	}
	cache.SetLogger(logger)

	nopts := []noise.Option{noise.WithLogger(logger)}
	if cli.Seed >= 0 {
		nopts = append(nopts, noise.WithSeed(uint64(cli.Seed)))
	}
	// Configuration problems surface before any audio is decoded.
	bn, err := noise.New(opts, cache, nopts...)
	if err != nil {
		return err
	}

	samples, err := file.Load(cli.Input, cli.Rate)
	if err != nil {
		return err
	}
	if cli.Copies > 1 {
		if err := cache.Warm(context.Background(), opts.Sounds, cli.Rate, runtime.NumCPU()); err != nil {
			return err
		}
	}

	for i := range max(cli.Copies, 1) {
		out, err := bn.Apply(samples, cli.Rate)
		if err != nil {
			return err
		}

		path := outputPath(cli.Output, i, cli.Copies)
		if err := writeWAV(path, cli.Rate, out); err != nil {
			return err
		}

		params, err := json.Marshal(bn.SerializeParameters())
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s\t%s\n", path, params)
	}
	return nil
}

// options merges the config file with command-line overrides.
func options(cli *CLI, reg *audio.Registry) (noise.Options, error) {
	var opts noise.Options
	if cli.Config != "" {
		var err error
		if opts, err = noise.LoadOptionsFile(cli.Config); err != nil {
			return noise.Options{}, err
		}
	}

	if len(cli.Noise) > 0 {
		paths, err := corpus.ScanAll(cli.Noise, reg)
		if err != nil {
			return noise.Options{}, err
		}
		opts.Sounds = append(opts.Sounds, paths...)
	}

	if cli.Mode != "" {
		opts.NoiseRMS = noise.Mode(cli.Mode)
	}
	if cli.Always {
		opts.P = noise.Float64(1)
	}
	return opts, nil
}

// outputPath numbers the i-th of n outputs: out.wav, out-1.wav, ...
func outputPath(path string, i, n int) string {
	if n <= 1 || i == 0 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), i, ext)
}

func writeWAV(path string, rate int, samples []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := wav.WriteMono16(f, rate, samples); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
