package fdmt

// Output is a transform result: NTrials rows of NTime contiguous samples
// each, where row k holds the dedispersed channel sum for absolute trial
// YMin+k. Trial indices count delay samples across the output's band;
// DMValue converts them back to physical dispersion measures.
//
// An Output owns its storage. Intermediate outputs inside the recursion
// are recycled once their parent consumes them; the root output returned
// to the caller is detached and lives as long as the caller keeps it.
type Output struct {
	band  Band
	yMin  int
	yMax  int
	nTime int
	data  []float64
	buf   *trialBuf
}

// Band returns the band the output was computed over.
func (o *Output) Band() Band { return o.band }

// YMin returns the inclusive lower trial bound in delay samples.
func (o *Output) YMin() int { return o.yMin }

// YMax returns the inclusive upper trial bound in delay samples.
func (o *Output) YMax() int { return o.yMax }

// NTrials returns the number of DM trials in the output.
func (o *Output) NTrials() int { return o.yMax - o.yMin + 1 }

// NTime returns the number of time samples per trial.
func (o *Output) NTime() int { return o.nTime }

// Data returns the flat trial-major result: NTrials rows of NTime
// samples. The slice aliases the output's storage.
func (o *Output) Data() []float64 { return o.data }

// Trial returns the dedispersed time series for absolute trial y, which
// must lie in [YMin, YMax]. The slice aliases the output's storage.
func (o *Output) Trial(y int) []float64 {
	return o.row(y - o.yMin)
}

// DMValue converts an absolute trial index to a physical dispersion
// measure in pc cm^-3 using the output band's DM step.
func (o *Output) DMValue(y int) float64 {
	return float64(y) * o.band.DMStep()
}

func (o *Output) row(k int) []float64 {
	return o.data[k*o.nTime : (k+1)*o.nTime]
}
