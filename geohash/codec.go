package geohash

import (
	"fmt"
	"math"

	"github.com/pdok/intgeohash/geodetic"
	"github.com/pdok/intgeohash/mathhelp"
)

// Encode returns the code of the cell containing the point.
// Longitude is wrapped into [-180, 180), latitude clamped into [-90, 90].
func Encode(point geodetic.Point, precision uint) (Code, error) {
	g, err := newCellGrid(precision)
	if err != nil {
		return 0, err
	}
	return g.encode(point)
}

func MustEncode(point geodetic.Point, precision uint) Code {
	code, err := Encode(point, precision)
	if err != nil {
		panic(err)
	}
	return code
}

func (g cellGrid) encode(point geodetic.Point) (Code, error) {
	lon, lat := point.Lon(), point.Lat()
	if math.IsNaN(lon) || math.IsInf(lon, 0) || math.IsNaN(lat) || math.IsInf(lat, 0) {
		return 0, fmt.Errorf("cannot encode %v, %v: %w", lon, lat, ErrInvalidCoordinate)
	}
	lon = mathhelp.WrapLongitude(lon)
	lat = mathhelp.Clamp(lat, geodetic.MinLat, geodetic.MaxLat)
	return g.interleave(g.column(lon), g.row(lat)), nil
}

// Decode returns the centroid of the cell, or when round is set
// the centroid rounded to the number of decimals the cell size allows.
func Decode(code Code, precision uint, round bool) (geodetic.Point, error) {
	box, err := BoundingBox(code, precision)
	if err != nil {
		return geodetic.Point{}, err
	}
	if round {
		return box.Round(), nil
	}
	return box.Centroid(), nil
}

// EncodeMany encodes parallel arrays of longitudes and latitudes
func EncodeMany(lons, lats []float64, precision uint) ([]Code, error) {
	return defaultEngine.EncodeMany(lons, lats, precision)
}

// DecodeMany decodes codes into parallel arrays of longitudes and latitudes
func DecodeMany(codes []Code, precision uint, round bool) (lons, lats []float64, err error) {
	return defaultEngine.DecodeMany(codes, precision, round)
}

func (e *Engine) EncodeMany(lons, lats []float64, precision uint) ([]Code, error) {
	if len(lons) != len(lats) {
		return nil, fmt.Errorf("lons has %d elements, lats has %d: %w", len(lons), len(lats), ErrShapeMismatch)
	}
	g, err := newCellGrid(precision)
	if err != nil {
		return nil, err
	}
	codes := make([]Code, len(lons))
	err = e.forEachChunk(len(lons), func(from, to int) error {
		for i := from; i < to; i++ {
			code, err := g.encode(geodetic.NewPoint(lons[i], lats[i]))
			if err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
			codes[i] = code
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return codes, nil
}

func (e *Engine) DecodeMany(codes []Code, precision uint, round bool) (lons, lats []float64, err error) {
	g, err := newCellGrid(precision)
	if err != nil {
		return nil, nil, err
	}
	lons = make([]float64, len(codes))
	lats = make([]float64, len(codes))
	err = e.forEachChunk(len(codes), func(from, to int) error {
		for i := from; i < to; i++ {
			box := g.boundingBox(codes[i])
			p := box.Centroid()
			if round {
				p = box.Round()
			}
			lons[i], lats[i] = p.Lon(), p.Lat()
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return lons, lats, nil
}
