package dedisp

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fdmt/fdmt"
)

// Errors returned by dedispersion functions.
var (
	ErrEmptyInput    = errors.New("dedisp: empty input")
	ErrNoTrials      = errors.New("dedisp: at least one DM trial is required")
	ErrSizeMismatch  = errors.New("dedisp: data length does not match channel and sample counts")
	ErrNegativeDM    = errors.New("dedisp: dispersion measures must be non-negative")
	ErrTrialOrder    = errors.New("dedisp: trial bounds must satisfy 0 <= y min <= y max")
	ErrNonPowerOfTwo = errors.New("dedisp: length must be a power of two")
)

// Direct performs brute-force incoherent dedispersion of a channel-major
// block at the given trial DMs.
//
// data must hold band.NChan*nTime samples, channels ordered from
// band.FHi down to band.FLo. For each DM, every channel is shifted
// circularly by its dispersive delay relative to the band's upper edge,
// rounded to whole samples, and the channels are summed. The result is
// DM-major: len(dms) rows of nTime samples.
func Direct(data []float64, nTime int, band fdmt.Band, dms []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	if len(dms) == 0 {
		return nil, ErrNoTrials
	}
	if nTime < 1 || len(data) != band.NChan*nTime {
		return nil, ErrSizeMismatch
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

			s := ChannelShift(band, c, dm) % nTime
			if s < 0 {
				s += nTime
			}
			if s == 0 {
				vecmath.AddBlockInPlace(dst, ch)
				continue
			}

			k := nTime - s
			vecmath.AddBlockInPlace(dst[:k], ch[s:])
			vecmath.AddBlockInPlace(dst[k:], ch[:s])
		}
	}
	return out, nil
}

// DirectTrials dedisperses on the same integer trial grid the fast
// transform uses: trials yMin..yMax in units of band.DMStep(). The
// result is trial-major, (yMax-yMin+1) rows of nTime samples.
func DirectTrials(data []float64, nTime int, band fdmt.Band, yMin, yMax int) ([]float64, error) {
	if yMin < 0 || yMax < yMin {
		return nil, ErrTrialOrder
	}
	dmStep := band.DMStep()
	dms := make([]float64, yMax-yMin+1)
	for i := range dms {
		dms[i] = float64(yMin+i) * dmStep
	}
	return Direct(data, nTime, band, dms)
}

// ChannelShift returns the dispersive delay of channel c's upper edge
// relative to the band's upper edge at the given DM, rounded to whole
// samples.
func ChannelShift(band fdmt.Band, c int, dm float64) int {
	f := band.FHi - float64(c)*band.ChannelStep()
	delay := fdmt.DispersionConstant * dm * (1/(f*f) - 1/(band.FHi*band.FHi))
	return int(math.Floor(delay/band.TSamp + 0.5))
}
