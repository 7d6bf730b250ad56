package projection

import (
	"runtime"

	"github.com/rs/zerolog"
)

// Options control the t-SNE optimisation.
type Options struct {
	Perplexity        float64
	LearningRate      float64
	Iterations        int
	ExaggerationIters int
	Exaggeration      float64
	InitialMomentum   float64
	FinalMomentum     float64
	Seed              int64
	Workers           int
	Logger            zerolog.Logger
}

// DefaultOptions returns perplexity 50, learning rate 200, 1000 iterations
// with early exaggeration 12 over the first 250.
func DefaultOptions() Options {
	return Options{
		Perplexity:        50,
		LearningRate:      200,
		Iterations:        1000,
		ExaggerationIters: 250,
		Exaggeration:      12,
		InitialMomentum:   0.5,
		FinalMomentum:     0.8,
		Seed:              1,
		Workers:           runtime.GOMAXPROCS(0),
		Logger:            zerolog.Nop(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Perplexity <= 0 {
		o.Perplexity = d.Perplexity
	}
	if o.LearningRate <= 0 {
		o.LearningRate = d.LearningRate
	}
	if o.Iterations <= 0 {
		o.Iterations = d.Iterations
	}
	if o.ExaggerationIters < 0 {
		o.ExaggerationIters = 0
	}
	if o.Exaggeration <= 0 {
		o.Exaggeration = 1
	}
	if o.InitialMomentum <= 0 && o.FinalMomentum <= 0 {
		o.InitialMomentum, o.FinalMomentum = d.InitialMomentum, d.FinalMomentum
	}
	if o.Workers <= 0 {
		o.Workers = d.Workers
	}
	return o
}
