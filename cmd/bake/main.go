package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"sphere-colormap/internal/bake"
	"sphere-colormap/internal/colormap"
	"sphere-colormap/internal/config"
	"sphere-colormap/internal/sphere"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	scheme := flag.String("scheme", "", "Coloring scheme: "+strings.Join(sphere.Names(), ", ")+" (default: Ico)")
	pole := flag.String("pole", "", "Pole direction x,y,z (default: +Z)")
	up := flag.String("up", "", "Up reference x,y,z, used with -pole")
	rotate := flag.String("rotate", "", "Rotation x,y,z in degrees about X then Y then Z (replaces -pole)")
	ordering := flag.String("ordering", "", "Axis ordering, e.g. 2,0,1")
	cmap := flag.String("cmap", "", "Colormap for Inc/Azy and -strip")
	asym := flag.Bool("asym", false, "Asymmetric Inc/Azy")
	strip := flag.Bool("strip", false, "Bake a colorbar of -cmap instead of a sphere texture")
	width := flag.Int("width", 0, "Texture width (default: 512)")
	height := flag.Int("height", 0, "Texture height (default: width/2)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	out := flag.String("out", "", "Output image .webp, .tga or .png (default: <scheme>.webp)")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *width > 0 {
		cfg.Bake.Width = *width
	}
	if *height > 0 {
		cfg.Bake.Height = *height
	}
	if *supersample > 0 {
		cfg.Bake.Supersample = *supersample
	}

	if err := cfg.Resolve(config.Flags{
		Scheme:     *scheme,
		Pole:       *pole,
		Up:         *up,
		Rotation:   *rotate,
		Ordering:   *ordering,
		Colormap:   *cmap,
		Asymmetric: *asym,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	path := *out
	if path == "" {
		name := cfg.Scheme
		if *strip {
			name = "strip"
		}
		path = strings.ToLower(name) + "." + cfg.Bake.Format
	}

	params, err := cfg.Params(colormap.NewCache())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *strip {
		cm := params.Colormap
		if cm == nil {
			cm = colormap.Jet
		}
		img, err := bake.Strip(cm, cfg.Bake.Width, max(cfg.Bake.Height/8, 1))
		if err == nil {
			err = bake.Save(path, img)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Strip %dx%d: %s\n", img.Bounds().Dx(), img.Bounds().Dy(), path)
		return
	}

	m, err := sphere.Build(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	img, err := bake.Equirect(m, cfg.Bake.Width, cfg.Bake.Height, cfg.Bake.Supersample)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := bake.Save(path, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s %dx%d (x%d): %s\n", m.Name(), cfg.Bake.Width, cfg.Bake.Height, cfg.Bake.Supersample, path)
}
