package geohash

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/pdok/intgeohash/geodetic"
	"github.com/pdok/intgeohash/mathhelp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name      string
		pt        geodetic.Point
		precision uint
		want      Code
		wantErr   error
	}{
		{name: "origin quadrant", pt: geodetic.NewPoint(0, 0), precision: 2, want: 0b11},
		{name: "south west corner", pt: geodetic.NewPoint(-180, -90), precision: 5, want: 0},
		{name: "south west corner full precision", pt: geodetic.NewPoint(-180, -90), precision: 64, want: 0},
		{name: "north east corner", pt: geodetic.NewPoint(179.9999, 89.9999), precision: 5, want: 0b11111},
		{name: "north pole is clamped", pt: geodetic.NewPoint(179.9999, 90), precision: 5, want: 0b11111},
		{name: "beyond the north pole", pt: geodetic.NewPoint(179.9999, 120), precision: 5, want: 0b11111},
		{name: "antimeridian wraps", pt: geodetic.NewPoint(180, 0), precision: 5, want: 0b01000},
		{name: "east of the antimeridian", pt: geodetic.NewPoint(190, 0), precision: 5, want: 0b01000},
		// column 6 (0b110), row 1 (0b01): lon2 lat1 lon1 lat0 lon0
		{name: "interleaving", pt: geodetic.NewPoint(100, -30), precision: 5, want: 0b10110},
		{name: "one bit", pt: geodetic.NewPoint(10, -80), precision: 1, want: 1},
		{name: "nan", pt: geodetic.NewPoint(math.NaN(), 0), precision: 5, wantErr: ErrInvalidCoordinate},
		{name: "inf", pt: geodetic.NewPoint(0, math.Inf(1)), precision: 5, wantErr: ErrInvalidCoordinate},
		{name: "precision too high", pt: geodetic.NewPoint(0, 0), precision: 65, wantErr: ErrInvalidPrecision},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.pt, tt.precision)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equalf(t, tt.want, got, "want %b, got %b", tt.want, got)
		})
	}
}

func TestEncode_OriginCell(t *testing.T) {
	code := MustEncode(geodetic.NewPoint(0, 0), 2)
	box, err := BoundingBox(code, 2)
	require.NoError(t, err)
	// the origin is the corner shared by the four cells at precision 2
	require.Equal(t, geodetic.NewPoint(0, 0), box.MinCorner())
	require.Equal(t, geodetic.NewPoint(180, 90), box.MaxCorner())

	centroid, err := Decode(code, 2, false)
	require.NoError(t, err)
	require.Equal(t, geodetic.NewPoint(90, 45), centroid)
	rounded, err := Decode(code, 2, true)
	require.NoError(t, err)
	require.Equal(t, geodetic.NewPoint(90, 45), rounded)
}

func randomPoints(n int) []geodetic.Point {
	r := rand.New(rand.NewSource(42))
	points := []geodetic.Point{
		geodetic.NewPoint(-180, -90),
		geodetic.NewPoint(-180, 90),
		geodetic.NewPoint(179.999999999, 90),
		geodetic.NewPoint(0, 0),
		geodetic.NewPoint(4.8952, 52.3702),
	}
	for i := 0; i < n; i++ {
		points = append(points, geodetic.NewPoint(r.Float64()*360-180, r.Float64()*180-90))
	}
	return points
}

func TestBoundingBox_ContainsEncodedPoint(t *testing.T) {
	for _, precision := range []uint{1, 2, 3, 5, 12, 25, 32, 47, 52, 63, 64} {
		lonRes, latRes := AngularResolution(precision)
		for _, pt := range randomPoints(200) {
			code, err := Encode(pt, precision)
			require.NoError(t, err)
			box, err := BoundingBox(code, precision)
			require.NoError(t, err)
			normalized := geodetic.NewPoint(mathhelp.WrapLongitude(pt.Lon()), pt.Lat())
			require.Truef(t, box.Contains(normalized), "precision %d: %v not in %v", precision, normalized, box)
			require.Equal(t, lonRes, box.Width())
			require.Equal(t, latRes, box.Height())
		}
	}
}

func TestBoundingBox(t *testing.T) {
	box, err := BoundingBox(0b10110, 5)
	require.NoError(t, err)
	require.Equal(t, geodetic.NewBox(geodetic.NewPoint(90, -45), geodetic.NewPoint(135, 0)), box)

	// bits above the precision are ignored
	same, err := BoundingBox(0b1110110, 5)
	require.NoError(t, err)
	require.Equal(t, box, same)

	_, err = BoundingBox(0, 0)
	require.ErrorIs(t, err, ErrInvalidPrecision)
}

func TestDecode_RoundedStaysInCell(t *testing.T) {
	for _, precision := range []uint{5, 20, 40, 64} {
		for _, pt := range randomPoints(50) {
			code := MustEncode(pt, precision)
			box, err := BoundingBox(code, precision)
			require.NoError(t, err)
			rounded, err := Decode(code, precision, true)
			require.NoError(t, err)
			require.True(t, box.Contains(rounded), "%v not in %v", rounded, box)
		}
	}
}

func TestArea(t *testing.T) {
	area, err := Area(0b11, 2, nil)
	require.NoError(t, err)
	require.Equal(t, 180.0*90.0, area)

	wgs84 := geodetic.WGS84
	area, err = Area(0b11, 2, &wgs84)
	require.NoError(t, err)
	r := wgs84.AuthalicRadius()
	// a quarter of the earth
	require.InEpsilon(t, math.Pi*r*r, area, 1e-9)

	_, err = Area(0, 70, nil)
	require.ErrorIs(t, err, ErrInvalidPrecision)
}

func TestEncodeMany(t *testing.T) {
	points := randomPoints(1000)
	lons := make([]float64, len(points))
	lats := make([]float64, len(points))
	for i, pt := range points {
		lons[i], lats[i] = pt.Lon(), pt.Lat()
	}
	engines := map[string]*Engine{
		"default":  defaultEngine,
		"parallel": MustNew(Options{Workers: 4, MinChunk: 10}),
	}
	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			codes, err := engine.EncodeMany(lons, lats, 30)
			require.NoError(t, err)
			require.Len(t, codes, len(points))
			for i, pt := range points {
				require.Equal(t, MustEncode(pt, 30), codes[i])
			}

			gotLons, gotLats, err := engine.DecodeMany(codes, 30, false)
			require.NoError(t, err)
			for i, code := range codes {
				want, err := Decode(code, 30, false)
				require.NoError(t, err)
				require.Equal(t, want, geodetic.NewPoint(gotLons[i], gotLats[i]))
			}

			lats[len(lats)/2] = math.NaN()
			_, err = engine.EncodeMany(lons, lats, 30)
			lats[len(lats)/2] = points[len(lats)/2].Lat()
			require.ErrorIs(t, err, ErrInvalidCoordinate)
		})
	}
}

func TestEncodeMany_Errors(t *testing.T) {
	_, err := EncodeMany([]float64{1, 2}, []float64{1}, 10)
	require.ErrorIs(t, err, ErrShapeMismatch)
	_, err = EncodeMany([]float64{1}, []float64{1}, 0)
	require.ErrorIs(t, err, ErrInvalidPrecision)
	_, _, err = DecodeMany([]Code{1}, 65, false)
	require.ErrorIs(t, err, ErrInvalidPrecision)

	codes, err := EncodeMany(nil, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func ExampleEncode() {
	code, _ := Encode(geodetic.NewPoint(100, -30), 5)
	box, _ := BoundingBox(code, 5)
	fmt.Printf("%05b %v %v %v %v\n", code, box.MinCorner().Lon(), box.MinCorner().Lat(), box.MaxCorner().Lon(), box.MaxCorner().Lat())
	// Output: 10110 90 -45 135 0
}
