package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/go-band-raytracer/pkg/output"
	"github.com/df07/go-band-raytracer/pkg/renderer"
	"github.com/df07/go-band-raytracer/pkg/scene"
)

// options holds the parsed command line. Zero numeric values fall back to the scene's recommendation.
type options struct {
	scene   string
	width   int
	aspect  float64
	samples int
	depth   int
	band    int
	seed    int64
	format  string
	outDir  string
}

func main() {
	// Parse command line flags
	var opts options
	flag.StringVar(&opts.scene, "scene", "default", "Scene name (see -help)")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.Float64Var(&opts.aspect, "aspect", 0, "Aspect ratio width/height (0 = scene default)")
	flag.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&opts.depth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	flag.IntVar(&opts.band, "band", 0, "Rows per render worker; must divide width and height (0 = scene default)")
	flag.Int64Var(&opts.seed, "seed", 42, "Random seed for sampling and scene generation")
	flag.StringVar(&opts.format, "format", "ppm", "Output format: ppm, png, bmp or tiff")
	flag.StringVar(&opts.outDir, "out", "rayout", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		printHelp(os.Stdout)
		return
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, logger); err != nil {
		logger.Printf("Error: %v", err)
		os.Exit(1)
	}
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Band Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	flag.CommandLine.SetOutput(w)
	flag.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-8s - %s\n", info.Name, info.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to <out>/trace-<n>.<format>")
}

// createScene builds the named scene
func createScene(name string, seed int64) (*scene.Scene, error) {
	return scene.ByName(name, seed)
}

// buildConfig starts from the scene's recommended settings and applies command line overrides
func buildConfig(sc *scene.Scene, opts options) renderer.Config {
	config := renderer.Config{
		Width:           sc.SamplingConfig.Width,
		AspectRatio:     sc.SamplingConfig.AspectRatio,
		SamplesPerPixel: sc.SamplingConfig.SamplesPerPixel,
		MaxDepth:        sc.SamplingConfig.MaxDepth,
		BandSize:        sc.SamplingConfig.BandSize,
		Seed:            opts.seed,
	}
	if opts.width != 0 {
		config.Width = opts.width
	}
	if opts.aspect != 0 {
		config.AspectRatio = opts.aspect
	}
	if opts.samples != 0 {
		config.SamplesPerPixel = opts.samples
	}
	if opts.depth != 0 {
		config.MaxDepth = opts.depth
	}
	if opts.band != 0 {
		config.BandSize = opts.band
	}
	return config
}

func run(ctx context.Context, opts options, logger *log.Logger) error {
	sc, err := createScene(opts.scene, opts.seed)
	if err != nil {
		return err
	}
	config := buildConfig(sc, opts)
	if err := config.Validate(); err != nil {
		return err
	}
	enc, err := output.NewEncoder(opts.format)
	if err != nil {
		return err
	}

	logger.Printf("Using %s scene with %d spheres", opts.scene, sc.Len())

	progress := renderer.NewProgress()
	camera := sc.Camera.WithAspectRatio(config.AspectRatio)
	raytracer := renderer.NewRaytracer(sc, camera, config, renderer.Options{Logger: logger, Progress: progress})

	done := make(chan struct{})
	reporterDone := make(chan struct{})
	go func() {
		defer close(reporterDone)
		reportProgress(progress, logger, 500*time.Millisecond, done)
	}()

	img, stats, err := raytracer.Render(ctx)
	close(done)
	<-reporterDone
	if err != nil {
		return fmt.Errorf("rendering %s: %w", opts.scene, err)
	}

	filename, err := output.NextVersionedPath(opts.outDir, "trace", enc.Extension())
	if err != nil {
		return err
	}
	if err := output.NewFileSink(filename, enc).WriteImage(img); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	logger.Print(p.Sprintf("Rendered %d samples in %v (%.0f samples/s), average luminance %.3f",
		stats.TotalSamples, stats.Duration.Round(time.Millisecond), stats.SamplesPerSecond(), img.AverageLuminance()))
	logger.Printf("Wrote %s", filename)
	return nil
}

// reportProgress logs whenever the completed percentage changes, until done is closed
func reportProgress(progress *renderer.Progress, logger *log.Logger, interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastPercent := -1
	for {
		select {
		case <-done:
			if progress.Total() > 0 && lastPercent != progress.Percent() {
				logger.Print(formatProgress(progress))
			}
			return
		case <-ticker.C:
			if progress.Total() == 0 {
				continue
			}
			if percent := progress.Percent(); percent != lastPercent {
				logger.Print(formatProgress(progress))
				lastPercent = percent
			}
		}
	}
}

// formatProgress renders a progress line with grouped thousands
func formatProgress(progress *renderer.Progress) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("Progress: %d%% (%d / %d pixels)", progress.Percent(), progress.Done(), progress.Total())
}
