package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"texview/app"
	"texview/hal"
	"texview/imagedecode"
	"texview/internal/buildinfo"
	"texview/texture"
)

func main() {
	var (
		opts    hal.Options
		cfg     app.Config
		hcfg    hal.HeadlessConfig
		version bool
	)
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.IntVar(&opts.Width, "width", 800, "Initial surface width.")
	flag.IntVar(&opts.Height, "height", 600, "Initial surface height.")
	flag.StringVar(&opts.Title, "title", "texview", "Window title.")
	flag.IntVar(&opts.TPS, "tps", 60, "Window ticks per second.")
	flag.BoolVar(&opts.Quiet, "quiet", false, "Disable log output.")
	flag.StringVar(&cfg.Filter, "filter", "bilinear", "Texture filter: nearest or bilinear.")
	flag.StringVar(&cfg.Background, "bg", "#1e1e1e", "Background colour behind transparent texels.")
	flag.BoolVar(&cfg.HUD, "hud", true, "Show the status overlay.")
	flag.IntVar(&cfg.MaxTexture, "max-texture", 0, "Scale textures down to this many pixels on the long side (0 = off).")
	flag.StringVar(&cfg.ShotsDir, "shots", "", "Directory for F12 snapshots (empty = disabled).")
	flag.StringVar(&cfg.Out, "out", "", "Write the last frame to this .png or .webp file on exit.")
	flag.IntVar(&cfg.Workers, "workers", 0, "Render workers (0 = one per CPU).")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] IMAGE\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}
	cfg.TexturePath = flag.Arg(0)
	if err := run(opts, cfg, hcfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts hal.Options, cfg app.Config, hcfg hal.HeadlessConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	tex, err := texture.Load(imagedecode.New(imagedecode.Options{MaxSize: cfg.MaxTexture}), cfg.TexturePath)
	if err != nil {
		return err
	}

	var sess *app.Session
	newApp := func(h hal.HAL) func() error {
		s, err := app.New(h, tex, cfg)
		if err != nil {
			return func() error { return err }
		}
		sess = s
		return sess.Step
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, opts, hcfg)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	} else {
		err = hal.RunWindow(newApp, opts)
	}

	if sess != nil {
		if cerr := sess.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
