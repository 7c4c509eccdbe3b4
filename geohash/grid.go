package geohash

import (
	"fmt"
	"math"

	"github.com/pdok/intgeohash/geodetic"
	"github.com/pdok/intgeohash/mathhelp"
)

// Grid is the block of cells covering a box at some precision
type Grid struct {
	// Code of the cell containing the box's min corner
	Origin Code `json:"origin"`
	// Number of cells along longitude
	Width uint64 `json:"width"`
	// Number of cells along latitude
	Height uint64 `json:"height"`
}

// Cells is Width x Height
func (g Grid) Cells() uint64 {
	return g.Width * g.Height
}

// span is a Grid in column/row space
type span struct {
	column, row   uint64
	width, height uint64
}

// GridProperties returns the grid of cells intersecting a box
func GridProperties(box geodetic.Box, precision uint) (Grid, error) {
	return defaultEngine.GridProperties(box, precision)
}

// BoundingBoxes returns the codes of all cells intersecting the box, or the whole world when box is nil
func BoundingBoxes(box *geodetic.Box, precision uint) ([]Code, error) {
	return defaultEngine.BoundingBoxes(box, precision)
}

// PolygonBoundingBoxes returns the codes of all cells intersecting the envelope of the polygon
func PolygonBoundingBoxes(polygon geodetic.Polygon, precision uint) ([]Code, error) {
	return defaultEngine.PolygonBoundingBoxes(polygon, precision)
}

// GridProperties returns the grid of cells intersecting a box.
// For a box aligned on cell edges Width is box.Width() / lon resolution, and likewise Height.
// A box touching a cell only on its min edge does not include that cell.
// The box is taken as is: longitudes are clamped to [-180, 180], not wrapped,
// so a box crossing the antimeridian must be split by the caller.
func (e *Engine) GridProperties(box geodetic.Box, precision uint) (Grid, error) {
	g, err := newCellGrid(precision)
	if err != nil {
		return Grid{}, err
	}
	s, err := e.span(g, box)
	if err != nil {
		return Grid{}, err
	}
	return Grid{Origin: g.interleave(s.column, s.row), Width: s.width, Height: s.height}, nil
}

func (e *Engine) span(g cellGrid, box geodetic.Box) (span, error) {
	if err := box.Validate(); err != nil {
		return span{}, err
	}
	minCorner, maxCorner := box.MinCorner(), box.MaxCorner()
	minLon := mathhelp.Clamp(minCorner.Lon(), geodetic.MinLon, geodetic.MaxLon)
	maxLon := mathhelp.Clamp(maxCorner.Lon(), geodetic.MinLon, geodetic.MaxLon)
	minLat := mathhelp.Clamp(minCorner.Lat(), geodetic.MinLat, geodetic.MaxLat)
	maxLat := mathhelp.Clamp(maxCorner.Lat(), geodetic.MinLat, geodetic.MaxLat)

	s := span{column: g.column(minLon), row: g.row(minLat)}
	s.width = max(upperIndex(maxLon, geodetic.MinLon, g.lonRes, g.lonCells), s.column+1) - s.column
	s.height = max(upperIndex(maxLat, geodetic.MinLat, g.latRes, g.latCells), s.row+1) - s.row

	cells, ok := mathhelp.CheckedMul(s.width, s.height)
	if !ok || cells > e.opts.MaxCells || cells > math.MaxInt {
		return span{}, fmt.Errorf("%d x %d cells at precision %d for %v (max %d): %w",
			s.width, s.height, g.precision, box, e.opts.MaxCells, ErrOverflow)
	}
	return s, nil
}

// BoundingBoxes returns the codes of all cells intersecting the box, or the whole world when box is nil.
// Codes are ordered row by row from south to north, west to east within a row.
func (e *Engine) BoundingBoxes(box *geodetic.Box, precision uint) ([]Code, error) {
	g, err := newCellGrid(precision)
	if err != nil {
		return nil, err
	}
	region := geodetic.WholeEarth()
	if box != nil {
		region = *box
	}
	s, err := e.span(g, region)
	if err != nil {
		return nil, err
	}
	codes := make([]Code, 0, s.width*s.height)
	for row := s.row; row < s.row+s.height; row++ {
		for column := s.column; column < s.column+s.width; column++ {
			codes = append(codes, g.interleave(column, row))
		}
	}
	return codes, nil
}

// PolygonBoundingBoxes returns the codes of all cells intersecting the envelope of the polygon.
// Cells are not tested against the polygon itself.
func (e *Engine) PolygonBoundingBoxes(polygon geodetic.Polygon, precision uint) ([]Code, error) {
	envelope, err := geodetic.Envelope(polygon)
	if err != nil {
		return nil, err
	}
	if envelope.Area(nil) == 0 {
		return nil, fmt.Errorf("envelope %v of polygon has no area: %w", envelope, ErrDegenerateRegion)
	}
	return e.BoundingBoxes(&envelope, precision)
}
