package geohash

import (
	"fmt"
	"math"

	"github.com/pdok/intgeohash/geodetic"
	"github.com/pdok/intgeohash/mathhelp"
	"github.com/pdok/intgeohash/morton"
)

const (
	MinPrecision = 1
	MaxPrecision = 64
)

// BitSplit returns how many bits of a code at this precision encode latitude and longitude.
// Longitude gets the extra bit of an odd precision.
func BitSplit(precision uint) (latBits, lonBits uint, err error) {
	if err = validatePrecision(precision); err != nil {
		return 0, 0, err
	}
	latBits, lonBits = splitBits(precision)
	return latBits, lonBits, nil
}

// AngularResolution returns the width and height in degrees of a cell at this precision
func AngularResolution(precision uint) (lonDeg, latDeg float64) {
	latBits, lonBits := splitBits(precision)
	return 360 * math.Ldexp(1, -int(lonBits)), 180 * math.Ldexp(1, -int(latBits))
}

func splitBits(precision uint) (latBits, lonBits uint) {
	latBits = precision >> 1
	return latBits, precision - latBits
}

func validatePrecision(precision uint) error {
	if precision < MinPrecision || precision > MaxPrecision {
		return fmt.Errorf("precision %d not in [%d, %d]: %w", precision, MinPrecision, MaxPrecision, ErrInvalidPrecision)
	}
	return nil
}

// cellGrid is the grid of cells at one precision.
// Columns count eastward from -180, rows northward from -90.
type cellGrid struct {
	precision uint
	latBits   uint
	lonBits   uint
	lonRes    float64
	latRes    float64
	lonCells  uint64
	latCells  uint64
}

func newCellGrid(precision uint) (cellGrid, error) {
	latBits, lonBits, err := BitSplit(precision)
	if err != nil {
		return cellGrid{}, err
	}
	lonRes, latRes := AngularResolution(precision)
	return cellGrid{
		precision: precision,
		latBits:   latBits,
		lonBits:   lonBits,
		lonRes:    lonRes,
		latRes:    latRes,
		lonCells:  mathhelp.Pow2(lonBits),
		latCells:  mathhelp.Pow2(latBits),
	}, nil
}

// column returns the column containing a longitude in [-180, 180]
func (g cellGrid) column(lon float64) uint64 {
	return lowerIndex(lon, geodetic.MinLon, g.lonRes, g.lonCells)
}

// row returns the row containing a latitude in [-90, 90]
func (g cellGrid) row(lat float64) uint64 {
	return lowerIndex(lat, geodetic.MinLat, g.latRes, g.latCells)
}

// lowerIndex returns the cell i with origin+i*res <= v < origin+(i+1)*res, clamped to the last cell.
// The floor is checked against the same edge expressions cell() uses, so the cell always contains v.
func lowerIndex(v, origin, res float64, cells uint64) uint64 {
	x := math.Floor((v - origin) / res)
	if x <= 0 {
		return 0
	}
	if x >= float64(cells) {
		return cells - 1
	}
	i := uint64(x)
	for i > 0 && origin+float64(i)*res > v {
		i--
	}
	for i < cells-1 && origin+float64(i+1)*res <= v {
		i++
	}
	return i
}

// upperIndex returns the smallest i with origin+i*res >= v, at most cells
func upperIndex(v, origin, res float64, cells uint64) uint64 {
	x := math.Ceil((v - origin) / res)
	if x <= 0 {
		return 0
	}
	if x >= float64(cells) {
		return cells
	}
	i := uint64(x)
	for i > 0 && origin+float64(i-1)*res >= v {
		i--
	}
	for i < cells && origin+float64(i)*res < v {
		i++
	}
	return i
}

func (g cellGrid) interleave(column, row uint64) Code {
	if g.lonBits == g.latBits {
		return morton.MustToZ(row, column)
	}
	return morton.MustToZ(column, row)
}

func (g cellGrid) deinterleave(code Code) (column, row uint64) {
	if g.precision < MaxPrecision {
		code &= mathhelp.Pow2(g.precision) - 1
	}
	if g.lonBits == g.latBits {
		row, column = morton.FromZ(code)
		return column, row
	}
	return morton.FromZ(code)
}

func (g cellGrid) cell(column, row uint64) geodetic.Box {
	minLon := geodetic.MinLon + float64(column)*g.lonRes
	minLat := geodetic.MinLat + float64(row)*g.latRes
	return geodetic.NewBox(
		geodetic.NewPoint(minLon, minLat),
		geodetic.NewPoint(minLon+g.lonRes, minLat+g.latRes),
	)
}
