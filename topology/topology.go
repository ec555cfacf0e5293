package topology

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// NormalizedFeature is the input record handed over by the loader:
// one border polyline with at least two lon/lat coordinate pairs.
type NormalizedFeature struct {
	ID             string      `json:"id"`
	Classification string      `json:"classification,omitempty"`
	Coordinates    [][]float64 `json:"coordinates"`
}

// Feature references shared arcs by index. The current build always
// emits exactly one arc per feature.
type Feature struct {
	ID             string `json:"id"`
	ArcIndices     []int  `json:"arcIndices"`
	Classification string `json:"classification,omitempty"`
}

type Meta struct {
	ArcCount          int               `json:"arcCount"`
	FeatureCounts     map[string]int    `json:"featureCounts"`
	Generated         string            `json:"generated"`
	Hashes            map[string]string `json:"hashes"`
	HashAlgorithm     string            `json:"hashAlgorithm"`
	QuantizationError ErrorSummary      `json:"quantizationError"`
}

// Topology is the shared border topology document: one deduplicated
// arc table plus per-LOD feature lists referencing it. It is built
// once from immutable inputs and frozen at serialization.
type Topology struct {
	Quantization int                   `json:"quantization"`
	Arcs         [][][]int64           `json:"arcs"`
	ArcHashes    []string              `json:"arcHashes"`
	ArcIDs       []string              `json:"arcIds"`
	LODs         map[string][]*Feature `json:"lods"`
	Meta         Meta                  `json:"meta"`
}

// MarshalJSON emits empty collections instead of null so consumers
// can index blindly.
func (t *Topology) MarshalJSON() ([]byte, error) {
	if t.Arcs == nil {
		t.Arcs = make([][][]int64, 0)
	}
	if t.ArcHashes == nil {
		t.ArcHashes = make([]string, 0)
	}
	if t.ArcIDs == nil {
		t.ArcIDs = make([]string, 0)
	}
	if t.LODs == nil {
		t.LODs = make(map[string][]*Feature)
	}
	return json.Marshal(*t)
}

// Source supplies per-LOD normalized feature lists. A load error is
// fatal and aborts the whole build.
type Source interface {
	LoadLOD(name string) ([]*NormalizedFeature, error)
}

// Builder assembles a Topology across an ordered set of LODs. All
// dedup state lives in the builder, so independent builds can run
// within one process without sharing anything.
type Builder struct {
	// Progress, when set, is called as the features of a LOD are
	// processed.
	Progress func(lod string, done, total int)

	quant Quantizer
	lods  []string
	table *ArcTable
}

func NewBuilder(quantization int, lods []string) *Builder {
	quant := NewQuantizer(quantization)
	return &Builder{
		quant: quant,
		lods:  lods,
		table: NewArcTable(quant),
	}
}

// Build pulls every configured LOD from src and assembles the final
// document. Features with fewer than 2 points are dropped silently
// and excluded from the counts.
func (b *Builder) Build(src Source) (*Topology, error) {
	lods := make(map[string][]*Feature)
	counts := make(map[string]int)

	for _, name := range b.lods {
		features, err := src.LoadLOD(name)
		if err != nil {
			return nil, fmt.Errorf("Failed to load %s: %s", name, err.Error())
		}

		out := make([]*Feature, 0, len(features))
		for i, f := range features {
			if len(f.Coordinates) < 2 {
				continue
			}

			idx := b.table.AddArc(f.Coordinates)
			out = append(out, &Feature{
				ID:             f.ID,
				ArcIndices:     []int{idx},
				Classification: f.Classification,
			})

			if b.Progress != nil {
				b.Progress(name, i+1, len(features))
			}
		}

		lods[name] = out
		counts[name] = len(out)
		log.Printf("Processed %s: %d features, %d arcs so far", name, len(out), b.table.Len())
	}

	hashes := make(map[string]string)
	for _, name := range b.lods {
		h, err := LODHash(lods[name])
		if err != nil {
			return nil, err
		}
		hashes[name] = h
	}

	quantErr := measureError(b.table)
	b.table.dropOriginals()

	arcs := make([][][]int64, b.table.Len())
	arcHashes := make([]string, b.table.Len())
	arcIDs := make([]string, b.table.Len())
	for i, arc := range b.table.Arcs() {
		arcs[i] = arc.Points
		arcHashes[i] = arc.Hash
		arcIDs[i] = arc.ShortID
	}

	return &Topology{
		Quantization: b.quant.Q,
		Arcs:         arcs,
		ArcHashes:    arcHashes,
		ArcIDs:       arcIDs,
		LODs:         lods,
		Meta: Meta{
			ArcCount:          b.table.Len(),
			FeatureCounts:     counts,
			Generated:         time.Now().UTC().Format(time.RFC3339),
			Hashes:            hashes,
			HashAlgorithm:     HashAlgorithm,
			QuantizationError: quantErr,
		},
	}, nil
}

// WriteTo persists the document with a temp file and a rename, so a
// failed run never leaves a partial file behind.
func (t *Topology) WriteTo(filename string) error {
	fp, err := os.CreateTemp(filepath.Dir(filename), ".topology-*")
	if err != nil {
		return err
	}

	err = json.NewEncoder(fp).Encode(t)
	if err != nil {
		fp.Close()
		os.Remove(fp.Name())
		return err
	}

	err = fp.Close()
	if err != nil {
		os.Remove(fp.Name())
		return err
	}

	return os.Rename(fp.Name(), filename)
}

func ReadTopology(filename string) (*Topology, error) {
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	t := &Topology{}
	err = json.NewDecoder(fp).Decode(t)
	if err != nil {
		return nil, err
	}
	return t, nil
}
