// Package config defines the renderer's configuration record and the
// readers that populate it: a positional ".config" text file and
// command-line flag overrides, composed in flag > file > default
// precedence.
package config

// Configuration controls every tunable aspect of a render that is not
// part of the scene itself.
type Configuration struct {
	InputScene  string
	OutputImage string

	Depth                 int
	Width                 int
	Height                int
	AntialiasingSamples   int
	AdaptiveAntialiasing  bool
	ShadowSamples         int
	DOF                   bool
	DOFSamples            int
	ReflectionSamples     int
	Window                bool
	Epsilon               float64
	Workers               int

	// DeterministicSeed forces each worker's random stream to be seeded
	// by worker index alone, rather than worker index combined with
	// wall-clock time, so a render can be byte-for-byte reproduced.
	DeterministicSeed bool
}

// Default returns the built-in configuration used when no ".config" file
// is present and no flag overrides it.
func Default() Configuration {
	return Configuration{
		InputScene:           "scene.txt",
		OutputImage:          "out.png",
		Depth:                10,
		Width:                500,
		Height:               500,
		AntialiasingSamples:  10,
		AdaptiveAntialiasing: false,
		ShadowSamples:        1,
		DOF:                  true,
		DOFSamples:           1,
		ReflectionSamples:    1,
		Window:               true,
		Epsilon:              0.01,
		Workers:              0,
	}
}

// EffectiveDOFSamples returns the DoF sample count to actually render
// with: when the DOF flag is off, depth-of-field is disabled regardless
// of the configured sample count by forcing it to 1 (a single pinhole
// sample), matching the reference config reader's flag/sample-count
// pairing.
func (c Configuration) EffectiveDOFSamples() int {
	if !c.DOF {
		return 1
	}
	if c.DOFSamples < 1 {
		return 1
	}
	return c.DOFSamples
}
