// Package loader reads per-LOD border feature documents and hands
// normalized feature lists to the topology builder. It accepts the
// native normalized document format as well as GeoJSON LineString
// feature collections.
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	geojson "github.com/paulmach/go.geojson"

	"github.com/Arch-Angel-Agency-LLC/starcom-app-sub011/topology"
)

// FeatureDocument is the native per-LOD input:
// { "features": [{ "id", "classification"?, "coordinates" }] }
type FeatureDocument struct {
	Features []*topology.NormalizedFeature `json:"features"`
}

// FileSource implements topology.Source over the configured LOD files.
type FileSource struct {
	lods map[string]*LODConfig
}

func NewFileSource(config *Config) *FileSource {
	lods := make(map[string]*LODConfig)
	for _, l := range config.LODs {
		lods[l.Name] = l
	}
	return &FileSource{lods: lods}
}

func (s *FileSource) LoadLOD(name string) ([]*topology.NormalizedFeature, error) {
	l, ok := s.lods[name]
	if !ok {
		return nil, fmt.Errorf("No input configured for LOD %s", name)
	}

	data, err := os.ReadFile(l.File)
	if err != nil {
		return nil, err
	}

	features, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %s", l.File, err.Error())
	}

	if l.Simplify > 0 {
		for _, f := range features {
			f.Coordinates = SimplifyLine(f.Coordinates, l.Simplify)
		}
	}

	return features, nil
}

// Parse decodes a per-LOD document, either the native normalized
// format or a GeoJSON FeatureCollection.
func Parse(data []byte) ([]*topology.NormalizedFeature, error) {
	probe := struct {
		Type string `json:"type"`
	}{}
	err := json.Unmarshal(data, &probe)
	if err != nil {
		return nil, err
	}

	if probe.Type == "FeatureCollection" {
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, err
		}
		return FromGeoJSON(fc)
	}

	doc := &FeatureDocument{}
	err = json.Unmarshal(data, doc)
	if err != nil {
		return nil, err
	}
	if doc.Features == nil {
		return nil, fmt.Errorf("document has no features")
	}
	return doc.Features, nil
}

// FromGeoJSON converts a GeoJSON LineString collection into normalized
// features. The id and classification are taken from the feature
// properties; features without an id get a positional one.
func FromGeoJSON(fc *geojson.FeatureCollection) ([]*topology.NormalizedFeature, error) {
	out := make([]*topology.NormalizedFeature, 0, len(fc.Features))
	for i, f := range fc.Features {
		if f.Geometry == nil || f.Geometry.Type != geojson.GeometryLineString {
			return nil, fmt.Errorf("unsupported geometry in feature %d, only LineString is accepted", i)
		}

		nf := &topology.NormalizedFeature{
			Coordinates: f.Geometry.LineString,
		}
		if id, err := f.PropertyString("id"); err == nil {
			nf.ID = id
		}
		if nf.ID == "" {
			nf.ID = fmt.Sprintf("feature-%d", i)
		}
		if c, err := f.PropertyString("classification"); err == nil {
			nf.Classification = c
		}

		out = append(out, nf)
	}
	return out, nil
}
