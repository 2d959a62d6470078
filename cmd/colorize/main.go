package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sphere-colormap/internal/batch"
	"sphere-colormap/internal/colormap"
	"sphere-colormap/internal/config"
	"sphere-colormap/internal/sphere"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	scheme := flag.String("scheme", "", "Coloring scheme: "+strings.Join(sphere.Names(), ", ")+" (default: Ico)")
	pole := flag.String("pole", "", "Pole direction x,y,z (default: +Z)")
	up := flag.String("up", "", "Up reference x,y,z, used with -pole")
	rotate := flag.String("rotate", "", "Rotation x,y,z in degrees about X then Y then Z (replaces -pole)")
	ordering := flag.String("ordering", "", "Axis ordering, e.g. 2,0,1")
	cmap := flag.String("cmap", "", "Colormap for Inc/Azy: "+strings.Join(colormap.Names(), ", ")+" or a gradient image; append ^g for gamma")
	asym := flag.Bool("asym", false, "Asymmetric Inc/Azy")
	inputDir := flag.String("input", "", "Directory of vector files (.csv .txt .xyz .json)")
	single := flag.String("in", "", "Color a single vector file instead of a directory")
	outputDir := flag.String("output", "", "Output directory (default: <input>/colors)")
	format := flag.String("format", "", "Output format csv or json (default: csv)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

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

	inDir := *inputDir
	if *single != "" && inDir == "" {
		inDir = filepath.Dir(*single)
	}

	// CLI flags override config file
	if err := cfg.Resolve(config.Flags{
		Scheme:     *scheme,
		Pole:       *pole,
		Up:         *up,
		Rotation:   *rotate,
		Ordering:   *ordering,
		Colormap:   *cmap,
		Asymmetric: *asym,
		InputDir:   inDir,
		OutputDir:  *outputDir,
		Format:     *format,
		Workers:    *workers,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.InputDir == "" {
		fmt.Fprintln(os.Stderr, "Error: no input. Use -input, -in or config.json.")
		os.Exit(1)
	}

	params, err := cfg.Params(colormap.NewCache())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	m, err := sphere.Build(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var jobs []batch.Job
	if *single != "" {
		jobs = []batch.Job{batch.NewJob(*single, cfg.OutputDir, cfg.OutputFormat)}
	} else {
		jobs, err = batch.Jobs(cfg.InputDir, cfg.OutputDir, cfg.OutputFormat)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if len(jobs) == 0 {
		fmt.Println("No vector files to color.")
		os.Exit(0)
	}

	fmt.Printf("Sphere colormap %s -> %s\n", m.Name(), strings.ToUpper(cfg.OutputFormat))
	fmt.Printf("Files: %d, Workers: %d, Chunk: %d\n", len(jobs), cfg.Workers, cfg.ChunkSize)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		Map:       m,
		Workers:   cfg.Workers,
		ChunkSize: cfg.ChunkSize,
		Progress:  2 * time.Second,
	}, jobs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, vectors := 0, 0
	var failed []batch.Result
	for _, r := range results {
		if r.Success {
			success++
			vectors += r.Vectors
		} else {
			failed = append(failed, r)
		}
	}

	fmt.Printf("Colored: %d/%d files, %d vectors\n", success, len(jobs), vectors)

	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := min(20, len(failed))
		for _, r := range failed[:limit] {
			fmt.Printf("  %s: %s\n", filepath.Base(r.Input), r.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, m.Name(), results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
