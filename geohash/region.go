package geohash

import "github.com/pdok/intgeohash/geodetic"

// BoundingBox returns the cell a code denotes at a precision.
// Bits above the precision are ignored.
func BoundingBox(code Code, precision uint) (geodetic.Box, error) {
	g, err := newCellGrid(precision)
	if err != nil {
		return geodetic.Box{}, err
	}
	return g.boundingBox(code), nil
}

func (g cellGrid) boundingBox(code Code) geodetic.Box {
	return g.cell(g.deinterleave(code))
}

// Area returns the area of the cell: square degrees without a spheroid, square meters on one
func Area(code Code, precision uint, spheroid *geodetic.Spheroid) (float64, error) {
	box, err := BoundingBox(code, precision)
	if err != nil {
		return 0, err
	}
	return box.Area(spheroid), nil
}
