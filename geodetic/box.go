package geodetic

import (
	"fmt"
	"math"

	"github.com/go-spatial/geom"
)

// Box is an axis-aligned rectangle in degrees, min corner inclusive.
type Box struct {
	extent geom.Extent
}

func NewBox(minCorner, maxCorner Point) Box {
	return Box{extent: geom.Extent{minCorner[0], minCorner[1], maxCorner[0], maxCorner[1]}}
}

// WholeEarth returns the box covering every valid coordinate
func WholeEarth() Box {
	return NewBox(NewPoint(MinLon, MinLat), NewPoint(MaxLon, MaxLat))
}

// Envelope returns the minimal box enclosing all the vertices of the polygon
func Envelope(polygon Polygon) (Box, error) {
	n := 0
	for _, ring := range polygon {
		n += len(ring)
	}
	if n == 0 {
		return Box{}, fmt.Errorf("envelope of an empty polygon: %w", ErrDegenerateRegion)
	}
	extent, err := geom.NewExtentFromGeometry(polygon)
	if err != nil {
		return Box{}, fmt.Errorf("could not compute envelope of %v: %w", wktTruncated(polygon), err)
	}
	return Box{extent: *extent}, nil
}

func (b Box) MinCorner() Point {
	return NewPoint(b.extent.MinX(), b.extent.MinY())
}

func (b Box) MaxCorner() Point {
	return NewPoint(b.extent.MaxX(), b.extent.MaxY())
}

// Width is the span in longitude
func (b Box) Width() float64 {
	return b.extent.XSpan()
}

// Height is the span in latitude
func (b Box) Height() float64 {
	return b.extent.YSpan()
}

func (b Box) Centroid() Point {
	return NewPoint(
		(b.extent.MinX()+b.extent.MaxX())/2,
		(b.extent.MinY()+b.extent.MaxY())/2,
	)
}

// Round returns the centroid with each ordinate rounded to the coarsest
// number of decimals that still lands inside the box.
func (b Box) Round() Point {
	c := b.Centroid()
	return NewPoint(roundToSpan(c.Lon(), b.Width()), roundToSpan(c.Lat(), b.Height()))
}

func roundToSpan(mid, span float64) float64 {
	if span <= 0 {
		return mid
	}
	dec := int(math.Ceil(-math.Log10(span)))
	if dec < 0 {
		dec = 0
	}
	p := math.Pow10(dec)
	return math.Round(mid*p) / p
}

// Contains reports whether p lies in the box, edges included
func (b Box) Contains(p Point) bool {
	return b.extent.MinX() <= p.Lon() && p.Lon() <= b.extent.MaxX() &&
		b.extent.MinY() <= p.Lat() && p.Lat() <= b.extent.MaxY()
}

// Validate fails with ErrDegenerateRegion for a box that is inverted or not finite
func (b Box) Validate() error {
	for _, o := range b.extent {
		if math.IsNaN(o) || math.IsInf(o, 0) {
			return fmt.Errorf("box %v is not finite: %w", b, ErrDegenerateRegion)
		}
	}
	if b.extent.MinX() > b.extent.MaxX() || b.extent.MinY() > b.extent.MaxY() {
		return fmt.Errorf("box %v is inverted: %w", b, ErrDegenerateRegion)
	}
	return nil
}

// Area returns the flat area in square degrees when spheroid is nil,
// otherwise the area on the spheroid in square meters.
func (b Box) Area(spheroid *Spheroid) float64 {
	if spheroid == nil {
		return b.extent.Area()
	}
	return spheroid.rectangleArea(b)
}

func (b Box) Extent() geom.Extent {
	return b.extent
}

func (b Box) AsPolygon() geom.Polygon {
	return geom.Polygon{{
		{b.extent.MinX(), b.extent.MinY()},
		{b.extent.MaxX(), b.extent.MinY()},
		{b.extent.MaxX(), b.extent.MaxY()},
		{b.extent.MinX(), b.extent.MaxY()},
	}}
}

func (b Box) String() string {
	return wktTruncated(b.AsPolygon())
}
