package traffic

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Options configures a Simulator.
type Options struct {
	Seed      int64   // noise seed
	Amplitude float64 // relative swing around the base weight
	Scale     float64 // noise frequency along slots and ticks
}

// Option represents a functional option for NewSimulator.
type Option func(*Options)

// WithSeed sets the noise seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithAmplitude sets the relative swing; 0.5 means ±50% of base.
func WithAmplitude(a float64) Option {
	return func(o *Options) { o.Amplitude = a }
}

// WithScale sets the noise frequency.
func WithScale(s float64) Option {
	return func(o *Options) { o.Scale = s }
}

// DefaultOptions returns seed 1, amplitude 0.5, scale 0.1.
func DefaultOptions() Options {
	return Options{Seed: 1, Amplitude: 0.5, Scale: 0.1}
}

// Simulator rewrites edge weights from seeded OpenSimplex noise.
type Simulator struct {
	idx   *Index
	noise opensimplex.Noise
	opts  Options
}

// NewSimulator binds a simulator to idx and its graph.
func NewSimulator(idx *Index, opts ...Option) *Simulator {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Simulator{
		idx:   idx,
		noise: opensimplex.New(o.Seed),
		opts:  o,
	}
}

// Weight returns the weight slot i takes at tick, without applying it.
// i must be in [0, Index.Len()).
func (s *Simulator) Weight(i, tick int) float64 {
	n := s.noise.Eval2(float64(i)*s.opts.Scale, float64(tick)*s.opts.Scale)
	w := s.idx.slots[i].base * (1 + s.opts.Amplitude*n)
	if w < 0 {
		return 0
	}

	return w
}

// Step applies tick to every slot, writing both the graph and the index.
// Complexity: O(E log E).
func (s *Simulator) Step(tick int) error {
	if err := s.idx.check(); err != nil {
		return err
	}
	for i := range s.idx.slots {
		if err := s.idx.set(i, s.Weight(i, tick)); err != nil {
			return fmt.Errorf("traffic: tick %d slot %d: %w", tick, i, err)
		}
	}

	return nil
}
