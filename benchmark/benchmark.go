// Package benchmark inspects an already-built topology document and
// reports how effectively arcs are shared between features. It is a
// read-only diagnostic, a poor ratio never fails a build.
package benchmark

import (
	"encoding/json"
	"io"
	"math"

	"github.com/Arch-Angel-Agency-LLC/starcom-app-sub011/topology"
)

// reuseTarget is the advisory design target for avgReferencesPerArc.
const reuseTarget = 1.35

type ArcReuse struct {
	UniqueArcCount           int     `json:"uniqueArcCount"`
	TotalArcReferences       int     `json:"totalArcReferences"`
	AvgReferencesPerArc      float64 `json:"avgReferencesPerArc"`
	ReuseRatioInterpretation string  `json:"reuseRatioInterpretation"`
}

type Quantization struct {
	Q                      int     `json:"q"`
	AvgQuantizedSegmentLen float64 `json:"avgQuantizedSegmentLen"`
	Note                   string  `json:"note"`
}

type Report struct {
	ArcReuse     ArcReuse     `json:"arcReuse"`
	Quantization Quantization `json:"quantization"`
}

// Run computes the reuse statistics for a topology. The quantized
// segment length is a coarse self-consistency signal: without the
// pre-quantization floats the true distortion is uncomputable.
func Run(topo *topology.Topology) *Report {
	unique := len(topo.Arcs)
	refs := 0
	for _, features := range topo.LODs {
		for _, f := range features {
			refs += len(f.ArcIndices)
		}
	}

	avg := float64(0)
	if unique > 0 {
		avg = float64(refs) / float64(unique)
	}

	quant := topology.NewQuantizer(topo.Quantization)
	segments := 0
	total := float64(0)
	for _, arc := range topo.Arcs {
		for j := 1; j < len(arc); j++ {
			lon1, lat1 := quant.Dequantize(arc[j-1][0], arc[j-1][1])
			lon2, lat2 := quant.Dequantize(arc[j][0], arc[j][1])
			total += topology.Haversine(lon1, lat1, lon2, lat2)
			segments++
		}
	}

	avgLen := float64(0)
	if segments > 0 {
		avgLen = math.Round(total/float64(segments)*1000) / 1000
	}

	return &Report{
		ArcReuse: ArcReuse{
			UniqueArcCount:           unique,
			TotalArcReferences:       refs,
			AvgReferencesPerArc:      math.Round(avg*10000) / 10000,
			ReuseRatioInterpretation: interpret(avg),
		},
		Quantization: Quantization{
			Q:                      topo.Quantization,
			AvgQuantizedSegmentLen: avgLen,
			Note: "mean geodesic length of dequantized segments in meters; " +
				"true quantization distortion is uncomputable without the original coordinates",
		},
	}
}

// RunFile benchmarks a persisted topology document.
func RunFile(filename string) (*Report, error) {
	topo, err := topology.ReadTopology(filename)
	if err != nil {
		return nil, err
	}
	return Run(topo), nil
}

func (r *Report) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func interpret(avg float64) string {
	switch {
	case avg <= 1:
		return "no sharing: every arc is referenced at most once"
	case avg < reuseTarget:
		return "some sharing, below the 1.35 design target"
	default:
		return "healthy sharing, meets the 1.35 design target"
	}
}
