package topology

import "math"

// Earth radius in meters, as used for all great-circle math.
const earthRadius = 6371000

// ErrorSummary quantifies the distortion introduced by quantization.
// It is measured once, at build time, while the original floats are
// still available; the persisted document only retains integers.
type ErrorSummary struct {
	Segments                int     `json:"segments"`
	MeanAbsoluteErrorMeters float64 `json:"meanAbsoluteErrorMeters"`
	MeanRelativeErrorPct    float64 `json:"meanRelativeErrorPct"`
	MaxRelativeErrorPct     float64 `json:"maxRelativeErrorPct"`
}

// measureError compares every consecutive original point pair against
// its dequantized counterpart. Zero-length original segments contribute
// a relative error of 0.
func measureError(t *ArcTable) ErrorSummary {
	segments := 0
	totalOrigLen := float64(0)
	totalAbsErr := float64(0)
	maxRel := float64(0)

	for i, arc := range t.arcs {
		orig := t.originals[i]
		for j := 1; j < len(orig); j++ {
			oLen := Haversine(orig[j-1][0], orig[j-1][1], orig[j][0], orig[j][1])

			lon1, lat1 := t.quant.Dequantize(arc.Points[j-1][0], arc.Points[j-1][1])
			lon2, lat2 := t.quant.Dequantize(arc.Points[j][0], arc.Points[j][1])
			qLen := Haversine(lon1, lat1, lon2, lat2)

			absErr := math.Abs(oLen - qLen)
			totalOrigLen += oLen
			totalAbsErr += absErr
			if oLen > 0 {
				rel := absErr / oLen
				if rel > maxRel {
					maxRel = rel
				}
			}
			segments++
		}
	}

	summary := ErrorSummary{Segments: segments}
	if segments > 0 {
		summary.MeanAbsoluteErrorMeters = roundTo(totalAbsErr/float64(segments), 3)
	}
	if totalOrigLen > 0 {
		summary.MeanRelativeErrorPct = roundTo(totalAbsErr/totalOrigLen*100, 4)
	}
	summary.MaxRelativeErrorPct = roundTo(maxRel*100, 4)
	return summary
}

// Haversine returns the great-circle distance in meters between two
// lon/lat points.
func Haversine(lon1, lat1, lon2, lat2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadius * c
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
