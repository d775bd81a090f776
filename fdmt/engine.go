package fdmt

import (
	"math"
	"sync"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
	"github.com/cwbudde/algo-vecmath"
)

// minParallelTrials is the trial count below which a merge runs
// sequentially even when a worker pool is configured.
const minParallelTrials = 16

// trialBuf holds pooled backing storage for intermediate output blocks.
// Every recursion node allocates one output and releases both child
// outputs after merging, so in steady state the pool serves the whole
// call tree without allocator churn.
type trialBuf struct {
	data []float64
}

var trialPool = sync.Pool{
	New: func() any { return &trialBuf{} },
}

func getOutput(band Band, yMin, yMax, nTime int) *Output {
	buf := trialPool.Get().(*trialBuf)
	need := (yMax - yMin + 1) * nTime
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return &Output{band: band, yMin: yMin, yMax: yMax, nTime: nTime, data: buf.data, buf: buf}
}

func putOutput(o *Output) {
	if o.buf != nil {
		trialPool.Put(o.buf)
	}
}

// engine carries per-call settings through the recursion.
type engine struct {
	pool *workerpool.Pool
	// spawnDepth counts the remaining recursion levels at which head and
	// tail subtrees run on separate goroutines. The subtrees read
	// disjoint channel slices and write disjoint outputs, so no
	// synchronization beyond the join is needed.
	spawnDepth int
}

// run transforms blk over the inclusive trial bounds [yMin, yMax],
// expressed in delay samples across blk's band.
func (e *engine) run(blk Block, yMin, yMax int) *Output {
	if blk.band.NChan == 1 {
		return baseCase(blk, yMin, yMax)
	}

	headBand, tailBand := blk.band.Split()
	headBlk, tailBlk := blk.split(headBand, tailBand)

	span := blk.band.Span()
	headSpan := headBand.Span()
	tailSpan := tailBand.Span()

	var headOut, tailOut *Output
	if e.spawnDepth > 0 {
		child := engine{pool: e.pool, spawnDepth: e.spawnDepth - 1}
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			headOut = child.run(headBlk, rescaleTrial(yMin, headSpan, span), rescaleTrial(yMax, headSpan, span))
		}()
		tailOut = child.run(tailBlk, rescaleTrial(yMin, tailSpan, span), rescaleTrial(yMax, tailSpan, span))
		wg.Wait()
	} else {
		headOut = e.run(headBlk, rescaleTrial(yMin, headSpan, span), rescaleTrial(yMax, headSpan, span))
		tailOut = e.run(tailBlk, rescaleTrial(yMin, tailSpan, span), rescaleTrial(yMax, tailSpan, span))
	}

	out := getOutput(blk.band, yMin, yMax, blk.nTime)
	e.merge(out, headOut, tailOut, headSpan, tailSpan, span)

	putOutput(headOut)
	putOutput(tailOut)
	return out
}

// baseCase terminates the recursion on a single-channel band. A single
// channel carries next to no dispersion span, so its rescaled trial
// bounds collapse to one trial; the channel's samples are copied one to
// one into the first trial column. Remaining rows, if the bounds did not
// collapse, stay zero.
func baseCase(blk Block, yMin, yMax int) *Output {
	out := getOutput(blk.band, yMin, yMax, blk.nTime)
	copy(out.row(0), blk.Channel(0))
	for k := 1; k < out.NTrials(); k++ {
		zero(out.row(k))
	}
	return out
}

// rescaleTrial converts a trial index between the delay-sample grids of
// two nested bands. The ratio childSpan/parentSpan is below one, so the
// conversion rounds to nearest; truncation would bias every trial toward
// zero and misalign the merge.
func rescaleTrial(y int, childSpan, parentSpan float64) int {
	if !(parentSpan > 0) {
		return 0
	}
	return int(math.Floor(float64(y)*childSpan/parentSpan + 0.5))
}

// merge combines two child outputs into the parent's. For each parent
// trial y, the head's share of the delay is yHead, the tail's is yTail,
// and yBoundary is the residual shift aligning the two contributions at
// the shared band edge. Each trial writes a disjoint output row, so the
// loop distributes freely across the worker pool.
func (e *engine) merge(out, headOut, tailOut *Output, headSpan, tailSpan, span float64) {
	n := out.nTime

	mergeTrial := func(y int) {
		yHead := rescaleTrial(y, headSpan, span)
		yTail := rescaleTrial(y, tailSpan, span)
		yBoundary := y - yHead - yTail

		dst := out.row(y - out.yMin)
		head := headOut.row(yHead - headOut.yMin)
		tail := tailOut.row(yTail - tailOut.yMin)

		s := (yHead - yBoundary) % n
		if s < 0 {
			s += n
		}
		if s == 0 {
			vecmath.AddBlock(dst, head, tail)
			return
		}

		// The tail contribution is read with a circular time offset of s
		// samples, which splits the add into two contiguous segments.
		k := n - s
		vecmath.AddBlock(dst[:k], head[:k], tail[s:])
		vecmath.AddBlock(dst[k:], head[k:], tail[:s])
	}

	trials := out.NTrials()
	if e.pool != nil && trials >= minParallelTrials {
		yMin := out.yMin
		e.pool.ParallelFor(trials, func(start, end int) {
			for k := start; k < end; k++ {
				mergeTrial(yMin + k)
			}
		})
		return
	}
	for y := out.yMin; y <= out.yMax; y++ {
		mergeTrial(y)
	}
}
