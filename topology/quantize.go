package topology

import "math"

// DefaultQuantization gives a grid resolution of 1e-5 degrees, roughly
// one meter at the equator.
const DefaultQuantization = 100000

// Quantizer maps lon/lat coordinates onto a fixed integer grid with a
// cell size of 1/Q degrees per axis. The mapping is total: out-of-range
// input still yields integers and shows up as distortion in the error
// summary instead of failing a build.
type Quantizer struct {
	Q int
}

func NewQuantizer(q int) Quantizer {
	if q <= 0 {
		q = DefaultQuantization
	}
	return Quantizer{Q: q}
}

func (q Quantizer) Quantize(lon, lat float64) (int64, int64) {
	x := int64(math.Round((lon + 180) * float64(q.Q)))
	y := int64(math.Round((lat + 90) * float64(q.Q)))
	return x, y
}

func (q Quantizer) Dequantize(x, y int64) (float64, float64) {
	lon := float64(x)/float64(q.Q) - 180
	lat := float64(y)/float64(q.Q) - 90
	return lon, lat
}

// QuantizePoints converts a lon/lat polyline to grid coordinates.
func (q Quantizer) QuantizePoints(points [][]float64) [][]int64 {
	out := make([][]int64, len(points))
	for i, p := range points {
		x, y := q.Quantize(p[0], p[1])
		out[i] = []int64{x, y}
	}
	return out
}
