package geodetic

import (
	"fmt"

	"github.com/go-spatial/geom"
	geojson "github.com/paulmach/go.geojson"
)

// LineString is an ordered sequence of points
type LineString struct {
	points []Point
}

// NewLineString builds a line string from parallel longitude and latitude arrays
func NewLineString(lons, lats []float64) (LineString, error) {
	if len(lons) != len(lats) {
		return LineString{}, fmt.Errorf("lons has %d elements, lats has %d: %w", len(lons), len(lats), ErrShapeMismatch)
	}
	ls := LineString{points: make([]Point, 0, len(lons))}
	for i := range lons {
		ls.Append(NewPoint(lons[i], lats[i]))
	}
	return ls, nil
}

// DeserializeLineString is the inverse of Serialize
func DeserializeLineString(lons, lats []float64) (LineString, error) {
	return NewLineString(lons, lats)
}

func (ls *LineString) Append(p Point) {
	ls.points = append(ls.points, p)
}

func (ls LineString) Len() int {
	return len(ls.points)
}

func (ls LineString) At(i int) Point {
	return ls.points[i]
}

// Points returns a copy of the vertices
func (ls LineString) Points() []Point {
	return append([]Point(nil), ls.points...)
}

// Serialize returns the vertices as parallel longitude and latitude arrays
func (ls LineString) Serialize() (lons, lats []float64) {
	lons = make([]float64, len(ls.points))
	lats = make([]float64, len(ls.points))
	for i, p := range ls.points {
		lons[i] = p.Lon()
		lats[i] = p.Lat()
	}
	return lons, lats
}

func (ls LineString) ToGeomLineString() geom.LineString {
	l := make(geom.LineString, len(ls.points))
	for i, p := range ls.points {
		l[i] = p
	}
	return l
}

func (ls LineString) String() string {
	return wktTruncated(ls.ToGeomLineString())
}

// LineStringFromGeoJSON parses a GeoJSON LineString geometry
func LineStringFromGeoJSON(data []byte) (LineString, error) {
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return LineString{}, err
	}
	if !g.IsLineString() {
		return LineString{}, fmt.Errorf("expected a LineString geometry, got %v", g.Type)
	}
	ls := LineString{points: make([]Point, 0, len(g.LineString))}
	for _, c := range g.LineString {
		p, err := pointFromGeoJSON(c)
		if err != nil {
			return LineString{}, err
		}
		ls.Append(p)
	}
	return ls, nil
}

func (ls LineString) ToGeoJSON() ([]byte, error) {
	coordinates := make([][]float64, len(ls.points))
	for i, p := range ls.points {
		coordinates[i] = []float64{p.Lon(), p.Lat()}
	}
	return geojson.NewLineStringGeometry(coordinates).MarshalJSON()
}

// PolygonFromGeoJSON parses a GeoJSON Polygon geometry
func PolygonFromGeoJSON(data []byte) (Polygon, error) {
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, err
	}
	if !g.IsPolygon() {
		return nil, fmt.Errorf("expected a Polygon geometry, got %v", g.Type)
	}
	polygon := make(Polygon, len(g.Polygon))
	for i, ring := range g.Polygon {
		polygon[i] = make([][2]float64, len(ring))
		for j, c := range ring {
			p, err := pointFromGeoJSON(c)
			if err != nil {
				return nil, err
			}
			polygon[i][j] = p
		}
	}
	return polygon, nil
}

func pointFromGeoJSON(c []float64) (Point, error) {
	if len(c) < 2 {
		return Point{}, fmt.Errorf("position %v needs at least 2 ordinates: %w", c, ErrShapeMismatch)
	}
	return NewPoint(c[0], c[1]), nil
}
