// Package geometry turns proposal geometries into camera targets: a center,
// optional bounds and a default zoom, plus an exact fit zoom for a container.
package geometry

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/paulmach/orb"

	"github.com/civicmap/cinematic/pkg/math"
)

var (
	// ErrUnsupportedGeometryKind is returned for shapes other than Point,
	// Polygon, LineString and MultiPoint. Callers fall back to a default view.
	ErrUnsupportedGeometryKind = errors.New("unsupported geometry kind")
	// ErrEmptyGeometry is returned for shapes without coordinates.
	ErrEmptyGeometry = errors.New("empty geometry")
)

// Kind is the tag of a supported shape.
type Kind int

const (
	KindUnsupported Kind = iota
	KindPoint
	KindPolygon
	KindLineString
	KindMultiPoint
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindPolygon:
		return "Polygon"
	case KindLineString:
		return "LineString"
	case KindMultiPoint:
		return "MultiPoint"
	default:
		return "Unsupported"
	}
}

// Areal reports whether the shape covers an extent worth fitting to.
func (k Kind) Areal() bool {
	return k == KindPolygon || k == KindLineString
}

// Default zoom levels per shape.
const (
	BuildingZoom     = 17.0
	BlockZoom        = 16.0
	StreetZoom       = 15.0
	NeighborhoodZoom = 14.0
)

// Zoom limits of the map.
const (
	MinZoom = 0.0
	MaxZoom = 22.0
)

// KindOf classifies an orb geometry.
func KindOf(g orb.Geometry) Kind {
	switch g.(type) {
	case orb.Point:
		return KindPoint
	case orb.Polygon:
		return KindPolygon
	case orb.LineString:
		return KindLineString
	case orb.MultiPoint:
		return KindMultiPoint
	default:
		return KindUnsupported
	}
}

// Target is where the camera should look for a geometry. Bounds are only
// meaningful when HasBounds is set.
type Target struct {
	Kind          Kind
	Center        orb.Point
	Bounds        orb.Bound
	HasBounds     bool
	SuggestedZoom float64
}

// Resolve derives the camera target for g. The input is never modified.
func Resolve(g orb.Geometry) (Target, error) {
	switch shape := g.(type) {
	case orb.Point:
		return Target{Kind: KindPoint, Center: shape, SuggestedZoom: BuildingZoom}, nil

	case orb.Polygon:
		var pts []orb.Point
		for _, ring := range shape {
			pts = append(pts, ring...)
		}
		return boxTarget(KindPolygon, pts, BlockZoom)

	case orb.LineString:
		return boxTarget(KindLineString, shape, StreetZoom)

	case orb.MultiPoint:
		if len(shape) == 0 {
			return Target{}, fmt.Errorf("resolving MultiPoint: %w", ErrEmptyGeometry)
		}
		var sumLng, sumLat float64
		for _, p := range shape {
			sumLng += p.Lon()
			sumLat += p.Lat()
		}
		n := float64(len(shape))
		return Target{
			Kind:          KindMultiPoint,
			Center:        orb.Point{sumLng / n, sumLat / n},
			SuggestedZoom: NeighborhoodZoom,
		}, nil

	case nil:
		return Target{}, fmt.Errorf("resolving <nil>: %w", ErrUnsupportedGeometryKind)

	default:
		return Target{}, fmt.Errorf("resolving %s: %w", g.GeoJSONType(), ErrUnsupportedGeometryKind)
	}
}

func boxTarget(kind Kind, pts []orb.Point, zoom float64) (Target, error) {
	if len(pts) == 0 {
		return Target{}, fmt.Errorf("resolving %s: %w", kind, ErrEmptyGeometry)
	}
	b := orb.Bound{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.Extend(p)
	}
	return Target{
		Kind: kind,
		Center: orb.Point{
			(b.Min.Lon() + b.Max.Lon()) / 2,
			(b.Min.Lat() + b.Max.Lat()) / 2,
		},
		Bounds:        b,
		HasBounds:     true,
		SuggestedZoom: zoom,
	}, nil
}

// CalculateOptimalZoom returns the zoom at which bounds fill a container of
// width x height pixels, clamped to [MinZoom, MaxZoom]. A zero span on an
// axis does not constrain the zoom.
func CalculateOptimalZoom(bounds orb.Bound, width, height float64) float64 {
	if width <= 0 || height <= 0 {
		return MinZoom
	}
	dLat := gomath.Abs(bounds.Max.Lat() - bounds.Min.Lat())
	dLng := gomath.Abs(bounds.Max.Lon() - bounds.Min.Lon())

	zoom := MaxZoom
	if dLat > 0 {
		zoom = gomath.Min(zoom, gomath.Log2(height*360/(dLat*256)))
	}
	if dLng > 0 {
		zoom = gomath.Min(zoom, gomath.Log2(width*360/(dLng*256)))
	}
	return math.Clamp(zoom, MinZoom, MaxZoom)
}
