package geometry

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ErrInvalidGeoJSON is returned when input is not a GeoJSON geometry,
// Feature or FeatureCollection.
var ErrInvalidGeoJSON = errors.New("invalid geojson")

// DecodeGeoJSON reads a geometry from a GeoJSON document. Features yield their
// geometry; FeatureCollections yield the geometry of the first feature.
func DecodeGeoJSON(data []byte) (orb.Geometry, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGeoJSON, err)
	}

	switch head.Type {
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGeoJSON, err)
		}
		if f.Geometry == nil {
			return nil, fmt.Errorf("%w: feature without geometry", ErrInvalidGeoJSON)
		}
		return f.Geometry, nil

	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGeoJSON, err)
		}
		if len(fc.Features) == 0 || fc.Features[0].Geometry == nil {
			return nil, fmt.Errorf("%w: collection without features", ErrInvalidGeoJSON)
		}
		return fc.Features[0].Geometry, nil

	case "":
		return nil, fmt.Errorf("%w: missing type", ErrInvalidGeoJSON)

	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGeoJSON, err)
		}
		return g.Geometry(), nil
	}
}

// ResolveGeoJSON decodes data and resolves the resulting geometry.
func ResolveGeoJSON(data []byte) (Target, error) {
	g, err := DecodeGeoJSON(data)
	if err != nil {
		return Target{}, err
	}
	return Resolve(g)
}
