package testutil

import "math/rand"

// ConstantBlock returns a channel-major block of nChan channels with
// nTime samples each, every sample set to value.
func ConstantBlock(nChan, nTime int, value float64) []float64 {
	out := make([]float64, nChan*nTime)
	for i := range out {
		out[i] = value
	}
	return out
}

// PulseBlock returns a channel-major block holding one unit pulse per
// channel. Channel c's pulse sits at (t0 + delays[c]) mod nTime, so a
// positive delay moves the pulse later in time with wraparound, the same
// circular convention the transform uses. len(delays) sets the channel
// count.
func PulseBlock(nTime int, delays []int, t0 int) []float64 {
	out := make([]float64, len(delays)*nTime)
	for c, d := range delays {
		pos := ((t0+d)%nTime + nTime) % nTime
		out[c*nTime+pos] = 1
	}
	return out
}

// NoiseBlock returns a channel-major block of white noise with a fixed
// seed for reproducibility.
func NoiseBlock(seed int64, nChan, nTime int, amplitude float64) []float64 {
	out := make([]float64, nChan*nTime)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// RampChannel returns a single time series 0, 1, ..., n-1, handy for
// verifying sample-exact copies and circular shifts.
func RampChannel(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
