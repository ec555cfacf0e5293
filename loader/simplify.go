package loader

import (
	geo "github.com/paulmach/go.geo"
	"github.com/paulmach/go.geo/reducers"
)

// SimplifyLine reduces a polyline with the Visvalingam algorithm.
// Endpoints survive, so borders simplified with the same threshold
// still meet at their shared nodes.
func SimplifyLine(points [][]float64, threshold float64) [][]float64 {
	if len(points) < 3 {
		return points
	}

	path := geo.NewPathPreallocate(len(points), len(points))
	for i, p := range points {
		path.SetAt(i, &geo.Point{p[0], p[1]})
	}

	simplified := reducers.VisvalingamThreshold(path, threshold)

	length := simplified.Length()
	out := make([][]float64, 0, length)
	for i := 0; i < length; i++ {
		point := simplified.GetAt(i)
		out = append(out, []float64{point[0], point[1]})
	}
	return out
}
