package statistics

import (
	"math"
	"testing"
)

func TestBootstrapCI_EmptyValues(t *testing.T) {
	ci := BootstrapCI(nil, 0.95)
	if ci.Mean != 0.0 || ci.Lower != 0.0 || ci.Upper != 0.0 {
		t.Errorf("expected zero CI for empty input, got %+v", ci)
	}
	if ci.Resamples != 0 {
		t.Errorf("expected 0 resamples for empty input, got %d", ci.Resamples)
	}
}

func TestBootstrapCI_SingleValue(t *testing.T) {
	ci := BootstrapCI([]float64{3.25}, 0.95)
	if ci.Mean != 3.25 || ci.Lower != 3.25 || ci.Upper != 3.25 {
		t.Errorf("expected degenerate CI for single value, got %+v", ci)
	}
}

func TestBootstrapCI_IdenticalValues(t *testing.T) {
	ci := BootstrapCIWithSeed([]float64{6.0, 6.0, 6.0, 6.0}, 0.95, 42)
	if math.Abs(ci.Lower-6.0) > 1e-9 || math.Abs(ci.Upper-6.0) > 1e-9 {
		t.Errorf("expected CI [6, 6] for identical values, got [%f, %f]", ci.Lower, ci.Upper)
	}
}

func TestBootstrapCI_KnownDistribution(t *testing.T) {
	// 10 utilities with mean 5.5
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	ci := BootstrapCIWithSeed(values, 0.95, 42)

	if math.Abs(ci.Mean-5.5) > 1e-9 {
		t.Errorf("expected mean 5.5, got %f", ci.Mean)
	}
	if ci.Lower >= ci.Mean {
		t.Errorf("lower bound %f should be < mean %f", ci.Lower, ci.Mean)
	}
	if ci.Upper <= ci.Mean {
		t.Errorf("upper bound %f should be > mean %f", ci.Upper, ci.Mean)
	}
	if ci.Lower < 1.0 || ci.Upper > 10.0 {
		t.Errorf("CI should be within the sample range, got [%f, %f]", ci.Lower, ci.Upper)
	}
	if ci.Resamples != DefaultResamples {
		t.Errorf("expected %d resamples, got %d", DefaultResamples, ci.Resamples)
	}
	if ci.ConfidenceLevel != 0.95 {
		t.Errorf("expected confidence level 0.95, got %f", ci.ConfidenceLevel)
	}
}

func TestBootstrapCI_SeededIsReproducible(t *testing.T) {
	values := []float64{0.3, 0.5, 0.7, 0.4, 0.6}
	first := BootstrapCIWithSeed(values, 0.95, 123)
	second := BootstrapCIWithSeed(values, 0.95, 123)
	if first != second {
		t.Errorf("seeded bootstrap should be reproducible: %+v vs %+v", first, second)
	}
}

func TestBootstrapCI_WiderAtHigherConfidence(t *testing.T) {
	values := []float64{0.3, 0.5, 0.7, 0.4, 0.6, 0.2, 0.8}
	ci90 := BootstrapCIWithSeed(values, 0.90, 7)
	ci99 := BootstrapCIWithSeed(values, 0.99, 7)

	width90 := ci90.Upper - ci90.Lower
	width99 := ci99.Upper - ci99.Lower
	if width99 < width90 {
		t.Errorf("99%% CI (%f) should not be narrower than 90%% CI (%f)", width99, width90)
	}
}

func TestMean(t *testing.T) {
	if m := Mean(nil); m != 0.0 {
		t.Errorf("expected 0 for empty slice, got %f", m)
	}
	if m := Mean([]float64{2.0, 4.0, 6.0}); math.Abs(m-4.0) > 1e-12 {
		t.Errorf("expected 4.0, got %f", m)
	}
}

func TestStdDev(t *testing.T) {
	if sd := StdDev(nil); sd != 0.0 {
		t.Errorf("expected 0 for empty slice, got %f", sd)
	}
	if sd := StdDev([]float64{5.0, 5.0, 5.0}); sd != 0.0 {
		t.Errorf("expected 0 for identical values, got %f", sd)
	}
	// Population std dev of {2, 4, 4, 4, 5, 5, 7, 9} is 2.
	sd := StdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(sd-2.0) > 1e-12 {
		t.Errorf("expected 2.0, got %f", sd)
	}
}
