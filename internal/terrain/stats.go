package terrain

// Stats summarizes a heightmap for sweeps and CLI output.
type Stats struct {
	Min, Max     float32
	LandFraction float64
	MeanLand     float64
	// RiverFraction is the share of land cells whose normalized flow
	// exceeds RiverFlow.
	RiverFraction float64
}

// RiverFlow is the normalized flow above which a cell is drawn as river.
const RiverFlow = 0.1

// Measure computes Stats relative to the given sea level.
func Measure(hm *Heightmap, seaLevel float64) Stats {
	if hm == nil || hm.Empty() {
		return Stats{}
	}
	return MeasureFlow(hm, FlowAccumulation(hm, seaLevel), seaLevel)
}

// MeasureFlow is Measure with flow already computed by FlowAccumulation for
// the same heightmap and sea level. A flow field of another size counts no
// rivers.
func MeasureFlow(hm *Heightmap, flow *FlowField, seaLevel float64) Stats {
	var s Stats
	if hm == nil || hm.Empty() {
		return s
	}
	vals := hm.Values()
	s.Min, s.Max = vals[0], vals[0]
	rivered := flow != nil && len(flow.norm) == len(vals)
	land, rivers := 0, 0
	sum := 0.0
	for i, v := range vals {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		if float64(v) <= seaLevel {
			continue
		}
		land++
		sum += float64(v)
		if rivered && flow.norm[i] > RiverFlow {
			rivers++
		}
	}
	s.LandFraction = float64(land) / float64(len(vals))
	if land > 0 {
		s.MeanLand = sum / float64(land)
		s.RiverFraction = float64(rivers) / float64(land)
	}
	return s
}
