package geohash

import "github.com/pdok/intgeohash/mathhelp"

// Direction indexes the result of Neighbors
type Direction int

const (
	NorthWest Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
)

// column and row offsets per Direction, clockwise from the northwest
var offsets = [8][2]int{
	NorthWest: {-1, 1},
	North:     {0, 1},
	NorthEast: {1, 1},
	East:      {1, 0},
	SouthEast: {1, -1},
	South:     {0, -1},
	SouthWest: {-1, -1},
	West:      {-1, 0},
}

// Neighbors returns the codes of the eight cells around a cell, indexed by Direction:
//
//	0 1 2
//	7 x 3
//	6 5 4
//
// Columns wrap around the antimeridian. Rows stop at the poles: north of the
// northernmost row is that row itself, so codes repeat near the poles.
func Neighbors(code Code, precision uint) ([8]Code, error) {
	var neighbors [8]Code
	g, err := newCellGrid(precision)
	if err != nil {
		return neighbors, err
	}
	column, row := g.deinterleave(code)
	for d, offset := range offsets {
		c := column
		switch {
		case offset[0] < 0:
			c = (column + g.lonCells - 1) % g.lonCells
		case offset[0] > 0:
			c = (column + 1) % g.lonCells
		}
		r := uint64(mathhelp.Clamp(int64(row)+int64(offset[1]), 0, int64(g.latCells)-1))
		neighbors[d] = g.interleave(c, r)
	}
	return neighbors, nil
}
