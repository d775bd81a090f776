package dedisp

import (
	"testing"

	"github.com/cwbudde/algo-fdmt/fdmt"
	"github.com/cwbudde/algo-fdmt/internal/testutil"
)

func testBand(t *testing.T, fHi, fLo float64, nChan int) fdmt.Band {
	t.Helper()
	band, err := fdmt.NewBand(fHi, fLo, 0.001, nChan)
	if err != nil {
		t.Fatalf("NewBand error: %v", err)
	}
	return band
}

func TestDirectZeroDM(t *testing.T) {
	band := testBand(t, 1500, 1400, 4)
	data := testutil.ConstantBlock(4, 8, 1)

	out, err := Direct(data, 8, band, []float64{0})
	if err != nil {
		t.Fatalf("Direct error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, out, testutil.ConstantBlock(1, 8, 4), 1e-12)
}

func TestDirectRecoversPulse(t *testing.T) {
	const (
		nTime = 64
		t0    = 30
	)

	band := testBand(t, 1500, 1200, 8)
	dm := 40.0

	// Inject each channel's pulse at exactly the delay Direct will
	// remove, so the dedispersed row sums all channels at t0.
	delays := make([]int, band.NChan)
	for c := range delays {
		delays[c] = ChannelShift(band, c, dm)
	}
	if delays[band.NChan-1] == 0 {
		t.Fatalf("test setup: expected a dispersed sweep, lowest channel shift is 0")
	}

	data := testutil.PulseBlock(nTime, delays, t0)

	out, err := Direct(data, nTime, band, []float64{dm, 0})
	if err != nil {
		t.Fatalf("Direct error: %v", err)
	}

	aligned := out[:nTime]
	if aligned[t0] != float64(band.NChan) {
		t.Fatalf("aligned[%d]=%f want %d", t0, aligned[t0], band.NChan)
	}
	for j, v := range aligned {
		if j != t0 && v >= float64(band.NChan) {
			t.Fatalf("sample %d: unexpected coherent value %f", j, v)
		}
	}

	// At zero DM the sweep stays spread out.
	spread := out[nTime:]
	for j, v := range spread {
		if v >= float64(band.NChan) {
			t.Fatalf("zero-DM sample %d: unexpected coherent value %f", j, v)
		}
	}
}

func TestDirectTrialsMatchesTransformAtZero(t *testing.T) {
	band := testBand(t, 1500, 1200, 16)
	data := testutil.NoiseBlock(11, 16, 32, 1)

	direct, err := DirectTrials(data, 32, band, 0, 0)
	if err != nil {
		t.Fatalf("DirectTrials error: %v", err)
	}

	tr := fdmt.Transformer{FHi: band.FHi, FLo: band.FLo, TSamp: band.TSamp}
	out, err := tr.Transform(data, 16, 32)
	if err != nil {
		t.Fatalf("Transform error: %v", err)
	}

	// Trial zero shifts nothing in either algorithm; only the summation
	// order differs.
	testutil.RequireSliceNearlyEqual(t, out.Trial(0), direct, 1e-9)
}

func TestDirectErrors(t *testing.T) {
	band := testBand(t, 1500, 1400, 4)

	if _, err := Direct(nil, 8, band, []float64{0}); err != ErrEmptyInput {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}

	if _, err := Direct(make([]float64, 32), 8, band, nil); err != ErrNoTrials {
		t.Fatalf("expected ErrNoTrials, got %v", err)
	}

	if _, err := Direct(make([]float64, 31), 8, band, []float64{0}); err != ErrSizeMismatch {
		t.Fatalf("expected ErrSizeMismatch, got %v", err)
	}

	if _, err := Direct(make([]float64, 32), 8, band, []float64{-1}); err != ErrNegativeDM {
		t.Fatalf("expected ErrNegativeDM, got %v", err)
	}

	if _, err := DirectTrials(make([]float64, 32), 8, band, -1, 3); err != ErrTrialOrder {
		t.Fatalf("expected ErrTrialOrder, got %v", err)
	}

	if _, err := DirectTrials(make([]float64, 32), 8, band, 4, 3); err != ErrTrialOrder {
		t.Fatalf("expected ErrTrialOrder, got %v", err)
	}
}

func TestChannelShiftMonotonic(t *testing.T) {
	band := testBand(t, 1500, 1200, 32)

	if ChannelShift(band, 0, 100) != 0 {
		t.Fatalf("channel 0 must not shift: %d", ChannelShift(band, 0, 100))
	}

	prev := 0
	for c := 1; c < band.NChan; c++ {
		s := ChannelShift(band, c, 100)
		if s < prev {
			t.Fatalf("channel %d: shift %d below channel %d's %d", c, s, c-1, prev)
		}
		prev = s
	}

	if prev == 0 {
		t.Fatalf("expected a non-zero sweep across the band at DM 100")
	}
}
