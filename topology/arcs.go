package topology

import (
	"strconv"
	"strings"
)

// Arc is one entry of the shared arc table: a quantized polyline
// referenced by index from one or more features.
type Arc struct {
	Index   int
	Points  [][]int64
	Hash    string
	ShortID string
}

// ArcTable deduplicates coordinate sequences into shared arcs. A
// sequence and its exact reverse resolve to the same arc: the
// first-seen orientation wins and orientation is discarded. The table
// belongs to a single build session and is not safe for concurrent
// writers, lookup-then-insert is not atomic.
type ArcTable struct {
	quant Quantizer
	arcs  []*Arc
	index map[string]int

	// originals keeps the pre-quantization coordinates per arc index
	// for the error pass. Dropped once the pass ran.
	originals [][][]float64
}

func NewArcTable(q Quantizer) *ArcTable {
	return &ArcTable{
		quant: q,
		index: make(map[string]int),
	}
}

// AddArc resolves a coordinate sequence to its arc index, inserting a
// new arc on first sight. Callers guarantee len(points) >= 2, shorter
// sequences are filtered upstream by the builder.
func (t *ArcTable) AddArc(points [][]float64) int {
	forward := arcKey(points, false)
	if idx, ok := t.index[forward]; ok {
		return idx
	}
	if idx, ok := t.index[arcKey(points, true)]; ok {
		return idx
	}

	quantized := t.quant.QuantizePoints(points)
	hash := ArcHash(quantized)
	arc := &Arc{
		Index:   len(t.arcs),
		Points:  quantized,
		Hash:    hash,
		ShortID: ShortID(hash),
	}
	t.arcs = append(t.arcs, arc)
	t.originals = append(t.originals, points)
	t.index[forward] = arc.Index
	return arc.Index
}

func (t *ArcTable) Len() int {
	return len(t.arcs)
}

func (t *ArcTable) Arcs() []*Arc {
	return t.arcs
}

func (t *ArcTable) dropOriginals() {
	t.originals = nil
}

func arcKey(points [][]float64, reversed bool) string {
	sb := strings.Builder{}
	n := len(points)
	for i := 0; i < n; i++ {
		p := points[i]
		if reversed {
			p = points[n-1-i]
		}
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.FormatFloat(p[0], 'g', -1, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(p[1], 'g', -1, 64))
	}
	return sb.String()
}
