package fdmt

// Block is a channelized input block: NChan rows of nTime contiguous
// samples each, ordered from the band's FHi down to its FLo.
//
// A Block is a view. It never owns or copies sample data; sub-blocks
// produced during the recursion re-slice the same backing array and only
// recompute band parameters.
type Block struct {
	band  Band
	data  []float64
	nTime int
}

// NewBlock wraps data as an input block over band. data must hold
// band.NChan*nTime samples in channel-major order (each channel's time
// series contiguous). The block aliases data without copying.
func NewBlock(data []float64, nTime int, band Band) (*Block, error) {
	if band.NChan < 1 {
		return nil, ErrNoChannels
	}
	if nTime < 1 {
		return nil, ErrNoSamples
	}
	if len(data) != band.NChan*nTime {
		return nil, ErrSizeMismatch
	}
	return &Block{band: band, data: data, nTime: nTime}, nil
}

// Band returns the block's band parameters.
func (b Block) Band() Band { return b.band }

// NTime returns the number of time samples per channel.
func (b Block) NTime() int { return b.nTime }

// Channel returns channel c's time series. The slice aliases the block's
// backing data.
func (b Block) Channel(c int) []float64 {
	return b.data[c*b.nTime : (c+1)*b.nTime]
}

// split re-slices the block across a band split. head must cover the
// block's leading channels and tail the rest; no sample data is copied.
func (b Block) split(head, tail Band) (Block, Block) {
	cut := head.NChan * b.nTime
	return Block{band: head, data: b.data[:cut], nTime: b.nTime},
		Block{band: tail, data: b.data[cut:], nTime: b.nTime}
}

// TransposeToChannelMajor converts a time-major block (nTime rows of
// nChan samples each) into the channel-major layout the transform
// consumes. It returns a freshly allocated slice.
func TransposeToChannelMajor(data []float64, nTime, nChan int) ([]float64, error) {
	if nChan < 1 {
		return nil, ErrNoChannels
	}
	if nTime < 1 {
		return nil, ErrNoSamples
	}
	if len(data) != nTime*nChan {
		return nil, ErrSizeMismatch
	}

	out := make([]float64, len(data))
	for t := 0; t < nTime; t++ {
		row := data[t*nChan : (t+1)*nChan]
		for c, v := range row {
			out[c*nTime+t] = v
		}
	}
	return out, nil
}

func zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}
