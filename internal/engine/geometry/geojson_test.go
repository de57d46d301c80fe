package geometry

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
)

func TestDecodeGeoJSON(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		kind Kind
	}{
		{"geometry", `{"type":"Point","coordinates":[-58.46,-34.55]}`, KindPoint},
		{"feature", `{"type":"Feature","properties":{"name":"plaza"},"geometry":{"type":"LineString","coordinates":[[0,0],[1,1]]}}`, KindLineString},
		{"collection", `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"MultiPoint","coordinates":[[0,0],[2,2]]}}]}`, KindMultiPoint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := DecodeGeoJSON([]byte(tt.doc))
			if err != nil {
				t.Fatalf("DecodeGeoJSON() error = %v", err)
			}
			if KindOf(g) != tt.kind {
				t.Errorf("kind = %v, want %v", KindOf(g), tt.kind)
			}
		})
	}
}

func TestResolveGeoJSONPolygon(t *testing.T) {
	doc := `{"type":"Polygon","coordinates":[[[-58.465,-34.55],[-58.455,-34.55],[-58.455,-34.54],[-58.465,-34.54],[-58.465,-34.55]]]}`
	target, err := ResolveGeoJSON([]byte(doc))
	if err != nil {
		t.Fatalf("ResolveGeoJSON() error = %v", err)
	}
	if !near(target.Center.Lon(), -58.46) || !near(target.Center.Lat(), -34.545) {
		t.Errorf("Center = %v", target.Center)
	}
	if !target.Bounds.Contains(orb.Point{-58.46, -34.545}) {
		t.Error("bounds should contain the center")
	}
}

func TestDecodeGeoJSONErrors(t *testing.T) {
	docs := map[string]string{
		"not json":      `{`,
		"no type":       `{"coordinates":[0,0]}`,
		"empty fc":      `{"type":"FeatureCollection","features":[]}`,
		"bad geometry":  `{"type":"Point","coordinates":"x"}`,
		"null geometry": `{"type":"Feature","properties":{},"geometry":null}`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodeGeoJSON([]byte(doc)); !errors.Is(err, ErrInvalidGeoJSON) {
				t.Errorf("DecodeGeoJSON() error = %v, want ErrInvalidGeoJSON", err)
			}
		})
	}
}

func TestResolveGeoJSONUnsupported(t *testing.T) {
	doc := `{"type":"MultiLineString","coordinates":[[[0,0],[1,1]]]}`
	if _, err := ResolveGeoJSON([]byte(doc)); !errors.Is(err, ErrUnsupportedGeometryKind) {
		t.Errorf("error = %v, want ErrUnsupportedGeometryKind", err)
	}
}
