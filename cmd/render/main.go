package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sphere-tracer/internal/config"
	"sphere-tracer/internal/output"
	"sphere-tracer/internal/postprocess"
	"sphere-tracer/internal/publish"
	"sphere-tracer/internal/raster"
	"sphere-tracer/internal/viewer"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	width := flag.Int("width", 0, "Image width in pixels (default: 2000)")
	height := flag.Int("height", 0, "Image height in pixels (default: 2000)")
	outPath := flag.String("output", "", "Output image; extension picks bmp/png/webp/tga (default: testfile.bmp)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	thumb := flag.Int("thumb", 0, "Also write a thumbnail with this longest side")
	openFlag := flag.Bool("open", false, "Open the result in the system image viewer")
	pub := flag.Bool("publish", false, "Upload the result to S3 (S3_* environment variables)")
	envFile := flag.String("env", "", "Environment file with S3 settings (default: .env)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Width:     *width,
		Height:    *height,
		Output:    *outPath,
		Workers:   *workers,
		Thumbnail: *thumb,
		Open:      *openFlag,
		Publish:   *pub,
		EnvFile:   *envFile,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sc, err := cfg.Scene()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cam := cfg.SceneCamera()
	format := cfg.OutputFormat()

	fmt.Printf("Sphere ray tracer → %s\n", format)
	fmt.Printf("Image: %dx%d, Spheres: %d, Lights: %d, Workers: %d\n",
		cfg.Width, cfg.Height, len(sc.Spheres), len(sc.Lights), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.Output)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	fb, err := raster.Render(sc, cam, raster.Options{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Workers: cfg.Workers,
		Progress: func(done, total int) {
			fmt.Printf("%g percent.\n", float64(done)/float64(total)*100)
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	img := fb.Image()
	if err := output.Save(cfg.Output, img, format); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	files := []string{cfg.Output}

	manifest := output.Manifest{
		Width:     cfg.Width,
		Height:    cfg.Height,
		Spheres:   len(sc.Spheres),
		Lights:    len(sc.Lights),
		Workers:   cfg.Workers,
		Image:     filepath.Base(cfg.Output),
		Format:    format,
		ElapsedMS: elapsed.Milliseconds(),
	}

	if cfg.Thumbnail > 0 {
		thumbPath := cfg.ThumbnailPath()
		if err := output.Save(thumbPath, postprocess.Thumbnail(img, cfg.Thumbnail), format); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: thumbnail: %v\n", err)
		} else {
			manifest.Thumbnail = filepath.Base(thumbPath)
			files = append(files, thumbPath)
			fmt.Printf("Thumbnail: %s\n", thumbPath)
		}
	}

	failed := false
	if cfg.Publish {
		keys, err := publishFiles(cfg, files, format)
		manifest.Published = keys
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			failed = true
		}
	}

	// Write manifest
	if err := output.WriteManifest(cfg.Manifest, manifest); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", cfg.Manifest)
	}

	if cfg.Open {
		var opener viewer.Opener = viewer.System{}
		if err := opener.Open(cfg.Output); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	if failed {
		os.Exit(1)
	}
}

func publishFiles(cfg config.Config, files []string, format output.Format) ([]string, error) {
	p, err := publish.NewS3(publish.LoadS3Config(cfg.EnvFile))
	if err != nil {
		return nil, err
	}
	return uploadAll(context.Background(), p, files, format)
}

func uploadAll(ctx context.Context, p publish.Publisher, files []string, format output.Format) ([]string, error) {
	var keys []string
	for _, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return keys, fmt.Errorf("read %s: %w", path, err)
		}
		key := filepath.Base(path)
		if err := p.Publish(ctx, key, data, format.ContentType()); err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
