package config

import "flag"

// ParseFlags registers the CLI flag set on fs and overlays whichever flags
// were explicitly set by the caller onto base, implementing the
// flag > file > default precedence: flags default to base's current
// values, so an unset flag is a no-op and an explicit flag always wins.
func ParseFlags(fs *flag.FlagSet, args []string, base Configuration) (Configuration, error) {
	cfg := base

	fs.StringVar(&cfg.InputScene, "scene", base.InputScene, "path to the scene file")
	fs.StringVar(&cfg.OutputImage, "out", base.OutputImage, "path to the output PNG")
	fs.IntVar(&cfg.Depth, "depth", base.Depth, "maximum recursion depth")
	fs.IntVar(&cfg.Width, "width", base.Width, "image width in pixels")
	fs.IntVar(&cfg.Height, "height", base.Height, "image height in pixels")
	fs.IntVar(&cfg.AntialiasingSamples, "samples", base.AntialiasingSamples, "antialiasing samples per pixel")
	fs.BoolVar(&cfg.AdaptiveAntialiasing, "adaptive", base.AdaptiveAntialiasing, "use adaptive supersampling")
	fs.IntVar(&cfg.ShadowSamples, "shadow-samples", base.ShadowSamples, "shadow rays per light")
	fs.BoolVar(&cfg.DOF, "dof", base.DOF, "enable depth of field")
	fs.IntVar(&cfg.DOFSamples, "dof-samples", base.DOFSamples, "depth-of-field samples per pixel")
	fs.IntVar(&cfg.ReflectionSamples, "reflection-samples", base.ReflectionSamples, "glossy reflection samples")
	fs.BoolVar(&cfg.Window, "window", base.Window, "serve a live preview while rendering")
	fs.Float64Var(&cfg.Epsilon, "epsilon", base.Epsilon, "surface-offset bias")
	fs.IntVar(&cfg.Workers, "workers", base.Workers, "worker goroutines (0 = GOMAXPROCS-1)")

	if err := fs.Parse(args); err != nil {
		return base, err
	}

	return cfg, nil
}
