// Package geohash implements an integer geohash: a coordinate is quantized on a
// grid of 2^lonBits by 2^latBits cells covering the whole earth and the cell's
// column and row are bit-interleaved (longitude first) into a uint64 code.
//
//	precision 5, lon bits 3, lat bits 2
//	code bits: lon2 lat1 lon1 lat0 lon0
//
// A code only means something together with its precision.
// All functions are pure, batch functions may fan out over goroutines.
package geohash

import (
	"errors"

	"github.com/pdok/intgeohash/geodetic"
)

// Code is the bit-interleaved address of a cell at a given precision
type Code = uint64

var (
	ErrInvalidPrecision  = errors.New("invalid precision")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrOverflow          = errors.New("grid exceeds the maximum number of cells")
	ErrShapeMismatch     = geodetic.ErrShapeMismatch
	ErrDegenerateRegion  = geodetic.ErrDegenerateRegion
)
