package dedisp

import (
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fdmt/fdmt"
)

// ShiftFractional delays x circularly by a fractional number of samples
// using an FFT phase ramp: out[t] = x[t - delay] with wraparound. delay
// may be negative to advance the signal. len(x) must be a power of two.
func ShiftFractional(x []float64, delay float64) ([]float64, error) {
	n := len(x)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if n&(n-1) != 0 {
		return nil, ErrNonPowerOfTwo
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("dedisp: failed to create FFT plan: %w", err)
	}

	timeDomain := make([]complex128, n)
	for i, v := range x {
		timeDomain[i] = complex(v, 0)
	}

	freq := make([]complex128, n)
	if err := plan.Forward(freq, timeDomain); err != nil {
		return nil, fmt.Errorf("dedisp: forward FFT failed: %w", err)
	}

	// Each bin picks up e^(-2*pi*i*k*delay/n), with bins above n/2 taken
	// at their negative frequencies so a real input stays real.
	for k := 1; k < n; k++ {
		if k == n/2 {
			continue
		}
		kf := k
		if k > n/2 {
			kf = k - n
		}
		ang := -2 * math.Pi * float64(kf) * delay / float64(n)
		freq[k] *= cmplx.Exp(complex(0, ang))
	}
	// The Nyquist bin has no conjugate partner; the real part of its
	// ramp keeps the output real.
	if n > 1 {
		freq[n/2] *= complex(math.Cos(math.Pi*delay), 0)
	}

	if err := plan.Inverse(timeDomain, freq); err != nil {
		return nil, fmt.Errorf("dedisp: inverse FFT failed: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(timeDomain[i])
	}
	return out, nil
}

// Coherent dedisperses a channel-major block at the given trial DMs
// using fractional-sample channel shifts instead of Direct's rounded
// ones. nTime must be a power of two. The result is DM-major,
// len(dms) rows of nTime samples.
func Coherent(data []float64, nTime int, band fdmt.Band, dms []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if len(dms) == 0 {
		return nil, ErrNoTrials
	}
	if nTime < 1 || len(data) != band.NChan*nTime {
		return nil, ErrSizeMismatch
	}
	if nTime&(nTime-1) != 0 {
		return nil, ErrNonPowerOfTwo
	}
	for _, dm := range dms {
		if dm < 0 {
			return nil, ErrNegativeDM
		}
	}

	out := make([]float64, len(dms)*nTime)
	for di, dm := range dms {
		dst := out[di*nTime : (di+1)*nTime]
		for c := 0; c < band.NChan; c++ {
			ch := data[c*nTime : (c+1)*nTime]

			f := band.FHi - float64(c)*band.ChannelStep()
			delay := fdmt.DispersionConstant * dm * (1/(f*f) - 1/(band.FHi*band.FHi))

			// Advancing each channel by its delay aligns all channels
			// with the band's upper edge.
			shifted, err := ShiftFractional(ch, -delay/band.TSamp)
			if err != nil {
				return nil, err
			}
			vecmath.AddBlockInPlace(dst, shifted)
		}
	}
	return out, nil
}
