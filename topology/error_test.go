package topology

import (
	"testing"

	"github.com/cheekybits/is"
)

func TestMeasureError(t *testing.T) {
	is := is.New(t)

	table := NewArcTable(NewQuantizer(100000))
	table.AddArc([][]float64{
		{-122.4194, 37.7749},
		{-122.4094, 37.7849},
	})

	summary := measureError(table)
	is.Equal(summary.Segments, 1)
	is.OK(summary.MaxRelativeErrorPct < 0.01)
	is.OK(summary.MeanRelativeErrorPct < 0.01)
}

func TestMeasureErrorDegenerateSegment(t *testing.T) {
	is := is.New(t)

	// A zero-length original segment is not an error, its relative
	// error is defined as 0.
	table := NewArcTable(NewQuantizer(100000))
	table.AddArc([][]float64{{1, 1}, {1, 1}})

	summary := measureError(table)
	is.Equal(summary.Segments, 1)
	is.Equal(summary.MaxRelativeErrorPct, 0.0)
	is.Equal(summary.MeanAbsoluteErrorMeters, 0.0)
}

func TestMeasureErrorEmpty(t *testing.T) {
	is := is.New(t)

	table := NewArcTable(NewQuantizer(100000))
	summary := measureError(table)
	is.Equal(summary.Segments, 0)
	is.Equal(summary.MeanAbsoluteErrorMeters, 0.0)
	is.Equal(summary.MeanRelativeErrorPct, 0.0)
}

func TestHaversine(t *testing.T) {
	is := is.New(t)

	// Paris - Brussels, roughly 264 km
	d := Haversine(2.3522, 48.8566, 4.3517, 50.8503)
	is.OK(d > 250000)
	is.OK(d < 280000)

	is.Equal(Haversine(1, 1, 1, 1), 0.0)
}
