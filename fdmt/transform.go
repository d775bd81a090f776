package fdmt

import "math"

// Transformer computes the fast dispersion-measure transform of
// channelized blocks over a physical DM search range.
//
// The frequency bounds describe the outer channel edges of the block and
// the DM range is inclusive on both ends. The zero value is not usable;
// all five parameters must be set.
type Transformer struct {
	FHi   float64 // upper channel-edge frequency in MHz
	FLo   float64 // lower channel-edge frequency in MHz
	TSamp float64 // sampling interval in seconds
	DMMin float64 // lower DM search bound in pc cm^-3
	DMMax float64 // upper DM search bound in pc cm^-3
}

// Validate checks that the Transformer parameters are valid.
func (tr *Transformer) Validate() error {
	if tr.FHi < tr.FLo {
		return ErrBandOrder
	}
	if tr.TSamp <= 0 {
		return ErrInvalidSampleInterval
	}
	if tr.DMMin < 0 || tr.DMMax < tr.DMMin {
		return ErrDMRange
	}
	return nil
}

// Transform dedisperses data at every DM trial covering [DMMin, DMMax]
// and returns the trial-major result.
//
// data must hold nChan*nTime samples in channel-major order, channels
// running from FHi down to FLo. The physical range converts to
// sample-space trial bounds by flooring the lower bound and ceiling the
// upper one, so the returned trials always cover the full requested
// range; Output.DMValue maps trial indices back to physical DMs.
//
// All parameters are checked before any allocation. Non-finite results
// from pathological frequencies (a zero-frequency band edge, for
// instance) are not guarded against.
func (tr *Transformer) Transform(data []float64, nChan, nTime int, opts ...Option) (*Output, error) {
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	band, err := NewBand(tr.FHi, tr.FLo, tr.TSamp, nChan)
	if err != nil {
		return nil, err
	}
	blk, err := NewBlock(data, nTime, band)
	if err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)

	dmStep := band.DMStep()
	yMin := int(tr.DMMin / dmStep)
	yMax := int(math.Ceil(tr.DMMax / dmStep))

	e := engine{pool: cfg.pool}
	if cfg.pool != nil {
		e.spawnDepth = spawnDepthFor(cfg.pool.NumWorkers())
	}

	out := e.run(*blk, yMin, yMax)
	// The caller owns the root storage; it never returns to the pool.
	out.buf = nil
	return out, nil
}

// spawnDepthFor returns the recursion depth down to which subtrees fork,
// the smallest depth whose leaf count covers the worker count.
func spawnDepthFor(workers int) int {
	d := 0
	for 1<<d < workers {
		d++
	}
	return d
}
