package fdmt

import "math"

// DispersionConstant is the cold-plasma dispersion constant in
// MHz^2 s pc^-1 cm^3. A pulse at frequency f MHz lags an
// infinite-frequency pulse by DispersionConstant * DM / f^2 seconds.
const DispersionConstant = 4148.808

// Band describes one frequency band of a channelized block.
//
// FHi and FLo are the outer channel-edge frequencies in MHz. Channels are
// ordered from FHi down to FLo, each ChannelStep wide. Band is a value
// type; deriving sub-bands never mutates the parent.
type Band struct {
	FHi   float64 // upper channel-edge frequency in MHz
	FLo   float64 // lower channel-edge frequency in MHz
	TSamp float64 // sampling interval in seconds
	NChan int     // number of channels
}

// NewBand validates the band parameters and returns the band.
func NewBand(fHi, fLo, tSamp float64, nChan int) (Band, error) {
	if fHi < fLo {
		return Band{}, ErrBandOrder
	}
	if tSamp <= 0 {
		return Band{}, ErrInvalidSampleInterval
	}
	if nChan < 1 {
		return Band{}, ErrNoChannels
	}
	return Band{FHi: fHi, FLo: fLo, TSamp: tSamp, NChan: nChan}, nil
}

// Span returns the dispersion span of the band in seconds: the total
// group-delay sweep between FHi and FLo at a dispersion measure of one
// pc cm^-3. A trial index paired with a band always counts delay samples
// across that band's span, so Span is the conversion currency between a
// parent band and its children.
func (b Band) Span() float64 {
	return DispersionConstant * (1/(b.FLo*b.FLo) - 1/(b.FHi*b.FHi))
}

// ChannelStep returns the per-channel frequency width in MHz.
func (b Band) ChannelStep() float64 {
	return (b.FHi - b.FLo) / float64(b.NChan)
}

// DMStep returns the coarsest DM resolution the transform natively
// resolves for this band, in pc cm^-3: the DM at which the delay sweep
// across the band grows by exactly one sample. Wider bands sweep more
// delay and therefore resolve finer DM steps.
func (b Band) DMStep() float64 {
	return b.TSamp / b.Span()
}

// Split bisects the band at the frequency where half of its dispersion
// delay has accumulated from FHi and returns the high-frequency head and
// low-frequency tail. The children share the split edge, so their
// frequency ranges partition the parent's with no gap and their spans
// sum to the parent's. The split point lies in delay space rather than
// at the channel midpoint, which keeps recursion depth and merge cost
// balanced between the children.
//
// Split panics if the band has fewer than two channels.
func (b Band) Split() (head, tail Band) {
	if b.NChan < 2 {
		panic("fdmt: split of a band with fewer than two channels")
	}

	// Frequency at which half of the band's delay has accumulated:
	// f_mid^-2 = (f_lo^-2 + f_hi^-2) / 2.
	fMid := 1 / math.Sqrt(0.5*(1/(b.FLo*b.FLo)+1/(b.FHi*b.FHi)))

	step := b.ChannelStep()
	i := int(math.Round((b.FHi - fMid) / step))
	if i < 1 {
		i = 1
	}
	if i > b.NChan-1 {
		i = b.NChan - 1
	}

	edge := b.FHi - float64(i)*step
	head = Band{FHi: b.FHi, FLo: edge, TSamp: b.TSamp, NChan: i}
	tail = Band{FHi: edge, FLo: b.FLo, TSamp: b.TSamp, NChan: b.NChan - i}
	return head, tail
}
