package quant

// silRange is one band's half-open range [lo, hi); silTable lists them
// for one Mode from SIL4 (lowest values) to SIL1. A value v bands into
// the entry with lo <= v < hi; anything below SIL4's lower bound, or
// at/above SIL1's upper bound, is SILOutOfRange.
type silRange struct {
	band Band
	lo   float64
	hi   float64
}

func silTable(mode Mode) []silRange {
	switch mode {
	case ModeContinuous:
		// Standard IEC 61508 continuous-mode bands: average probability
		// of a dangerous failure per hour (PFH).
		return []silRange{
			{SIL4, 1e-9, 1e-8},
			{SIL3, 1e-8, 1e-7},
			{SIL2, 1e-7, 1e-6},
			{SIL1, 1e-6, 1e-5},
		}
	default:
		// On-demand bands: average probability of failure on demand
		// (PFD avg).
		return []silRange{
			{SIL4, 1e-5, 1e-4},
			{SIL3, 1e-4, 1e-3},
			{SIL2, 1e-3, 1e-2},
			{SIL1, 1e-2, 1e-1},
		}
	}
}

// BandOf buckets a single probability value into its SIL band.
func BandOf(mode Mode, value float64) Band {
	for _, r := range silTable(mode) {
		if value >= r.lo && value < r.hi {
			return r.band
		}
	}

	return SILOutOfRange
}

// TimeWeightedBands integrates the fraction of mission time a curve
// spends in each band, approximating each inter-sample interval as
// constant at its leading sample's value (the curve is assumed to be
// produced by Curve at a uniform step).
func TimeWeightedBands(mode Mode, curve []CurvePoint) map[Band]float64 {
	out := make(map[Band]float64)
	if len(curve) < 2 {
		if len(curve) == 1 {
			out[BandOf(mode, curve[0].Probability)] = 1
		}

		return out
	}

	total := curve[len(curve)-1].Time - curve[0].Time
	if total <= 0 {
		return out
	}
	for i := 0; i < len(curve)-1; i++ {
		dt := curve[i+1].Time - curve[i].Time
		b := BandOf(mode, curve[i].Probability)
		out[b] += dt / total
	}

	return out
}
