// Package geodetic holds the geographic primitives the geohash engine consumes:
// points, boxes and polygons in longitude/latitude degrees, line strings and spheroids.
//
// The types are thin wrappers around github.com/go-spatial/geom.
// This is not a geometry library, only what a grid of cells needs.
package geodetic

import (
	"errors"

	"github.com/go-spatial/geom"
	"github.com/go-spatial/geom/encoding/wkt"
	"github.com/muesli/reflow/truncate"
)

const (
	MinLon = -180.0
	MaxLon = 180.0
	MinLat = -90.0
	MaxLat = 90.0

	maxWKTLength = 120
)

var (
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrDegenerateRegion = errors.New("degenerate region")
)

// Point is a coordinate as (longitude, latitude) in degrees
type Point geom.Point

func NewPoint(lon, lat float64) Point {
	return Point{lon, lat}
}

func (p Point) Lon() float64 { return p[0] }

func (p Point) Lat() float64 { return p[1] }

func (p Point) ToGeomPoint() geom.Point {
	return geom.Point(p)
}

func (p Point) String() string {
	return wktTruncated(geom.Point(p))
}

// Polygon is consumed as is, only its envelope matters here
type Polygon = geom.Polygon

func wktTruncated(g geom.Geometry) string {
	s, err := wkt.EncodeString(g)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return truncate.StringWithTail(s, maxWKTLength, "...")
}
