// Command raytracer renders a scene file to a PNG image, optionally
// serving a live preview of the render in progress.
package main

import (
	"flag"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/lumenray/raygo/pkg/config"
	"github.com/lumenray/raygo/pkg/loaders"
	"github.com/lumenray/raygo/pkg/output"
	"github.com/lumenray/raygo/pkg/preview"
	"github.com/lumenray/raygo/pkg/renderer"
	"github.com/lumenray/raygo/pkg/rtlog"
	"github.com/lumenray/raygo/pkg/shader"
	"go.uber.org/zap"
)

const previewAddr = ":8080"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	if err := rtlog.Init(false); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer rtlog.Sync()

	rtlog.Log.Info("loading scene", zap.String("path", cfg.InputScene))

	sc, err := loaders.LoadScene(cfg.InputScene)
	if err != nil {
		rtlog.Log.Error("failed to load scene", zap.Error(err))
		return err
	}

	buffer := renderer.NewBuffer(cfg.Width, cfg.Height)
	tracer := shader.New(sc, cfg)
	sampler := &renderer.Sampler{
		Camera:               sc.Camera,
		Tracer:               tracer,
		Width:                cfg.Width,
		Height:               cfg.Height,
		AntialiasingSamples:  cfg.AntialiasingSamples,
		AdaptiveAntialiasing: cfg.AdaptiveAntialiasing,
		DOFSamples:           cfg.EffectiveDOFSamples(),
	}
	driver := renderer.NewDriver(sampler, buffer, cfg.Workers, cfg.DeterministicSeed)

	done := make(chan struct{})
	var previewServer *preview.Server
	if cfg.Window {
		previewServer = preview.NewServer(previewAddr, buffer, driver.Cancel, done)
		previewServer.Start()
		rtlog.Log.Info("live preview available", zap.String("url", "http://localhost"+previewAddr+"/preview"))
	}

	rtlog.Log.Info("rendering",
		zap.Int("width", cfg.Width), zap.Int("height", cfg.Height), zap.Int("workers", driver.Workers))

	driver.Run()
	close(done)

	if previewServer != nil {
		previewServer.Stop()
	}

	if driver.Cancel.Load() {
		rtlog.Log.Warn("render cancelled, writing partial image")
	}

	if err := output.WriteFile(cfg.OutputImage, buffer); err != nil {
		rtlog.Log.Error("failed to write image", zap.Error(err))
		return err
	}

	rtlog.Log.Info("wrote image", zap.String("path", cfg.OutputImage))
	return nil
}

// loadConfig resolves the effective configuration from built-in defaults,
// an optional ".config" file, and CLI flags, in that precedence order.
func loadConfig(args []string) (config.Configuration, error) {
	base := config.Default()

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.String("config", "", "path to a .config file (optional)")

	// A first pass just to discover -config before the full flag set binds
	// every field, since flag values set later must win over file values
	// read in between.
	probe := flag.NewFlagSet("raytracer-probe", flag.ContinueOnError)
	probe.SetOutput(discard{})
	probeConfigPath := probe.String("config", "", "")
	_ = probe.Parse(args)

	if *probeConfigPath != "" {
		fileCfg, err := config.LoadFile(*probeConfigPath, base)
		if err != nil {
			return base, err
		}
		base = fileCfg
	}

	cfg, err := config.ParseFlags(fs, args, base)
	if err != nil {
		return base, err
	}

	return cfg, nil
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
