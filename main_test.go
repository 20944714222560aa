package main

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-band-raytracer/pkg/output"
	"github.com/df07/go-band-raytracer/pkg/renderer"
	"github.com/df07/go-band-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		// Built-in scenes
		{"default scene", "default", false},
		{"sphere field", "spheres", false},
		{"case insensitive", "Default", false},

		// Invalid scenes
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, err := createScene(tt.sceneType, 42)

			if tt.expectError {
				if !errors.Is(err, scene.ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene for scene type '%s', got %v", tt.sceneType, err)
				}
				if sc != nil {
					t.Errorf("Expected nil scene for invalid scene type '%s'", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			if sc.Len() == 0 {
				t.Errorf("Scene '%s' has no shapes", tt.sceneType)
			}

			// Recommended settings must render without adjustment
			if err := buildConfig(sc, options{seed: 1}).Validate(); err != nil {
				t.Errorf("Scene '%s' recommends an invalid config: %v", tt.sceneType, err)
			}
		})
	}
}

func TestBuildConfigOverrides(t *testing.T) {
	sc, err := createScene("default", 1)
	if err != nil {
		t.Fatal(err)
	}

	defaults := buildConfig(sc, options{seed: 5})
	if defaults.Width != sc.SamplingConfig.Width || defaults.BandSize != sc.SamplingConfig.BandSize {
		t.Errorf("Expected scene defaults, got %+v", defaults)
	}
	if defaults.Seed != 5 {
		t.Errorf("Expected seed 5, got %d", defaults.Seed)
	}

	config := buildConfig(sc, options{width: 40, aspect: 2, samples: 3, depth: 4, band: 10, seed: 7})
	expected := renderer.Config{Width: 40, AspectRatio: 2, SamplesPerPixel: 3, MaxDepth: 4, BandSize: 10, Seed: 7}
	if config != expected {
		t.Errorf("Expected %+v, got %+v", expected, config)
	}
}

func TestRunWritesVersionedImage(t *testing.T) {
	dir := t.TempDir()
	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)

	opts := options{scene: "default", width: 8, aspect: 2, samples: 1, depth: 2, band: 4, seed: 1, format: "ppm", outDir: dir}
	if err := run(context.Background(), opts, logger); err != nil {
		t.Fatalf("run: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "trace-0.ppm"))
	if err != nil {
		t.Fatalf("Expected trace-0.ppm: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n8 4\n255\n") {
		t.Errorf("Unexpected PPM header in %q", string(data[:min(len(data), 20)]))
	}
	if lines := strings.Count(string(data), "\n"); lines != 3+32 {
		t.Errorf("Expected 35 lines, got %d", lines)
	}
	if !strings.Contains(logs.String(), "Wrote ") {
		t.Errorf("Expected a completion log line, got %q", logs.String())
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		opts options
		want error
	}{
		{"unknown scene", options{scene: "nope", format: "ppm"}, scene.ErrUnknownScene},
		{"band does not divide", options{scene: "default", width: 10, aspect: 1, band: 3, format: "ppm"}, renderer.ErrInvalidConfig},
		{"unknown format", options{scene: "default", width: 4, aspect: 1, band: 2, format: "gif"}, output.ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			tt.opts.outDir = dir
			err := run(context.Background(), tt.opts, log.New(&bytes.Buffer{}, "", 0))
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
			entries, _ := os.ReadDir(dir)
			if len(entries) != 0 {
				t.Errorf("Expected no output for a rejected run, found %d entries", len(entries))
			}
		})
	}
}

func TestFormatProgress(t *testing.T) {
	progress := renderer.NewProgress()
	if got := formatProgress(progress); got != "Progress: 0% (0 / 0 pixels)" {
		t.Errorf("Unexpected progress line %q", got)
	}
}
