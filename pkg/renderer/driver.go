package renderer

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"

	"github.com/lumenray/raygo/pkg/core"
)

// Buffer is a row-major RGB byte buffer, row 0 stored first and
// corresponding to the bottom of the image (image coordinates have their
// origin at the bottom-left).
type Buffer struct {
	Width, Height int
	Pixels        []byte
}

// NewBuffer allocates a zeroed buffer for an image of the given size.
func NewBuffer(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, Pixels: make([]byte, width*height*3)}
}

// Set writes a clamped-to-[0,1] color into pixel (col, row).
func (b *Buffer) Set(col, row int, color core.Vec3) {
	i := (row*b.Width + col) * 3
	b.Pixels[i+0] = toByte(color.X)
	b.Pixels[i+1] = toByte(color.Y)
	b.Pixels[i+2] = toByte(color.Z)
}

func toByte(c float64) byte {
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return byte(c * 255.99)
}

// Driver partitions image rows by stride across a fixed worker pool and
// renders each pixel through a Sampler, writing directly into a shared
// Buffer. Workers never lock: each byte of the buffer is written by
// exactly one worker.
type Driver struct {
	Sampler *Sampler
	Buffer  *Buffer
	Workers int

	// DeterministicSeed forces each worker's random stream to be seeded
	// by worker index alone, for reproducible renders.
	DeterministicSeed bool

	// Cancel is polled after every pixel; a worker that observes it true
	// returns without completing its remaining rows.
	Cancel *atomic.Bool
}

// NewDriver builds a Driver with the given worker count (0 selects
// runtime.GOMAXPROCS(0)-1, at least 1) and a fresh cancel flag.
func NewDriver(sampler *Sampler, buffer *Buffer, workers int, deterministicSeed bool) *Driver {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0) - 1
	}
	if workers < 1 {
		workers = 1
	}

	return &Driver{
		Sampler:           sampler,
		Buffer:            buffer,
		Workers:           workers,
		DeterministicSeed: deterministicSeed,
		Cancel:            &atomic.Bool{},
	}
}

// Run renders every row of Buffer, blocking until every worker finishes or
// the cancel flag is observed. Rows are partitioned by stride: worker k
// of Workers processes rows k, k+Workers, k+2*Workers, ...
func (d *Driver) Run() {
	pool := pond.NewPool(d.Workers)
	var wg sync.WaitGroup

	for k := 0; k < d.Workers; k++ {
		worker := k
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			d.renderWorker(worker)
		})
	}

	wg.Wait()
	pool.StopAndWait()
}

func (d *Driver) renderWorker(worker int) {
	seed := int64(worker)
	if !d.DeterministicSeed {
		seed = int64(worker) ^ time.Now().UnixNano()
	}
	rng := core.NewWorkerRandom(seed)

	for row := worker; row < d.Buffer.Height; row += d.Workers {
		for col := 0; col < d.Buffer.Width; col++ {
			if d.Cancel.Load() {
				return
			}
			color := d.Sampler.Pixel(col, row, rng)
			d.Buffer.Set(col, row, color)
		}
	}
}
