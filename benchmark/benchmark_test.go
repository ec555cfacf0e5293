package benchmark

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/cheekybits/is"

	"github.com/Arch-Angel-Agency-LLC/starcom-app-sub011/topology"
)

func buildTopology(arcCount, refCount int) *topology.Topology {
	quant := topology.NewQuantizer(100000)

	arcs := make([][][]int64, arcCount)
	for i := 0; i < arcCount; i++ {
		arcs[i] = quant.QuantizePoints([][]float64{
			{float64(i), 0}, {float64(i), 1},
		})
	}

	features := make([]*topology.Feature, refCount)
	for i := 0; i < refCount; i++ {
		features[i] = &topology.Feature{
			ID:         "f",
			ArcIndices: []int{i % arcCount},
		}
	}

	return &topology.Topology{
		Quantization: 100000,
		Arcs:         arcs,
		LODs:         map[string][]*topology.Feature{"lod0": features},
	}
}

func TestReuseRatio(t *testing.T) {
	is := is.New(t)

	report := Run(buildTopology(10, 15))
	is.Equal(report.ArcReuse.UniqueArcCount, 10)
	is.Equal(report.ArcReuse.TotalArcReferences, 15)
	is.Equal(report.ArcReuse.AvgReferencesPerArc, 1.5)
	is.OK(strings.Contains(report.ArcReuse.ReuseRatioInterpretation, "meets"))
}

func TestReuseRatioNoSharing(t *testing.T) {
	is := is.New(t)

	report := Run(buildTopology(5, 5))
	is.Equal(report.ArcReuse.AvgReferencesPerArc, 1.0)
	is.OK(strings.Contains(report.ArcReuse.ReuseRatioInterpretation, "no sharing"))

	report = Run(buildTopology(5, 6))
	is.OK(strings.Contains(report.ArcReuse.ReuseRatioInterpretation, "below"))
}

func TestQuantizedSegmentLength(t *testing.T) {
	is := is.New(t)

	report := Run(buildTopology(3, 3))

	// Each arc spans one degree of latitude, about 111 km
	is.OK(report.Quantization.AvgQuantizedSegmentLen > 110000)
	is.OK(report.Quantization.AvgQuantizedSegmentLen < 112000)
	is.Equal(report.Quantization.Q, 100000)
	is.OK(strings.Contains(report.Quantization.Note, "uncomputable"))
}

func TestRunFile(t *testing.T) {
	is := is.New(t)

	topo := buildTopology(10, 15)
	filename := filepath.Join(t.TempDir(), "topology.json")
	is.NoErr(topo.WriteTo(filename))

	report, err := RunFile(filename)
	is.NoErr(err)
	is.Equal(report.ArcReuse.AvgReferencesPerArc, 1.5)

	_, err = RunFile(filepath.Join(t.TempDir(), "missing.json"))
	is.Err(err)
}

func TestEmptyTopology(t *testing.T) {
	is := is.New(t)

	report := Run(&topology.Topology{Quantization: 100000})
	is.Equal(report.ArcReuse.UniqueArcCount, 0)
	is.Equal(report.ArcReuse.AvgReferencesPerArc, 0.0)
	is.Equal(report.Quantization.AvgQuantizedSegmentLen, 0.0)
}
