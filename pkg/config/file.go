package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
)

// LoadFile reads a ".config" file: up to thirteen whitespace-separated
// fields in order (in_path, out_path, depth, width, height, AA samples,
// adaptive flag, shadow samples, DoF flag, DoF samples, reflection
// samples, window flag, epsilon), overlaying them onto base. Missing
// trailing fields keep base's value rather than erroring, so older
// config files with fewer fields still load.
func LoadFile(path string, base Configuration) (Configuration, error) {
	f, err := os.Open(path)
	if err != nil {
		return base, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	fields, err := scanFields(f)
	if err != nil {
		return base, fmt.Errorf("config: read %q: %w", path, err)
	}

	cfg := base
	setters := []func(string) error{
		func(s string) error { cfg.InputScene = s; return nil },
		func(s string) error { cfg.OutputImage = s; return nil },
		intSetter(&cfg.Depth),
		intSetter(&cfg.Width),
		intSetter(&cfg.Height),
		intSetter(&cfg.AntialiasingSamples),
		boolSetter(&cfg.AdaptiveAntialiasing),
		intSetter(&cfg.ShadowSamples),
		boolSetter(&cfg.DOF),
		intSetter(&cfg.DOFSamples),
		intSetter(&cfg.ReflectionSamples),
		boolSetter(&cfg.Window),
		floatSetter(&cfg.Epsilon),
	}

	for i, set := range setters {
		if i >= len(fields) {
			break
		}
		if err := set(fields[i]); err != nil {
			return base, fmt.Errorf("config: field %d (%q): %w", i, fields[i], err)
		}
	}

	return cfg, nil
}

func scanFields(f *os.File) ([]string, error) {
	var fields []string
	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		fields = append(fields, scanner.Text())
	}
	return fields, scanner.Err()
}

func intSetter(dst *int) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func floatSetter(dst *float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func boolSetter(dst *bool) func(string) error {
	return func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*dst = v != 0
		return nil
	}
}
