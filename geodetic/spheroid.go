package geodetic

import (
	"fmt"
	"math"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/golang/geo/r1"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Spheroid is a reference ellipsoid of revolution.
// The zero value gets the WGS 84 parameters through NewSpheroid.
type Spheroid struct {
	// Semi-major axis in meters
	SemiMajorAxis float64 `default:"6378137" validate:"gt=0" json:"semiMajorAxis"`
	// Flattening (a - b) / a
	Flattening float64 `default:"0.0033528106647474805" validate:"gte=0,lt=1" json:"flattening"`
}

var WGS84 = Spheroid{SemiMajorAxis: 6378137, Flattening: 1 / 298.257223563}

// NewSpheroid fills in the WGS 84 defaults for unset fields and validates the result
func NewSpheroid(s Spheroid) (*Spheroid, error) {
	if err := defaults.Set(&s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Spheroid) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid spheroid: %w", err)
	}
	return nil
}

func (s *Spheroid) eccentricity() float64 {
	return math.Sqrt(s.Flattening * (2 - s.Flattening))
}

// q is the authalic latitude helper function, see Snyder, Map Projections (1987), eq. 3-12
func (s *Spheroid) q(sinPhi float64) float64 {
	e := s.eccentricity()
	if e == 0 {
		return 2 * sinPhi
	}
	e2 := e * e
	esin := e * sinPhi
	return (1 - e2) * (sinPhi/(1-esin*esin) - 1/(2*e)*math.Log((1-esin)/(1+esin)))
}

// AuthalicRadius is the radius of the sphere with the same surface as the spheroid
func (s *Spheroid) AuthalicRadius() float64 {
	return s.SemiMajorAxis * math.Sqrt(s.q(1)/2)
}

// AuthalicLatitude maps a geodetic latitude (degrees) to the latitude (degrees) on the authalic sphere
func (s *Spheroid) AuthalicLatitude(lat float64) float64 {
	sinPhi := math.Sin(lat * math.Pi / 180)
	ratio := s.q(sinPhi) / s.q(1)
	return math.Asin(math.Max(-1, math.Min(1, ratio))) * 180 / math.Pi
}

func (s *Spheroid) rectangleArea(b Box) float64 {
	rect := s2.Rect{
		Lat: r1.Interval{
			Lo: degrees(s.AuthalicLatitude(b.extent.MinY())),
			Hi: degrees(s.AuthalicLatitude(b.extent.MaxY())),
		},
		Lng: s1.Interval{
			Lo: degrees(b.extent.MinX()),
			Hi: degrees(b.extent.MaxX()),
		},
	}
	r := s.AuthalicRadius()
	return rect.Area() * r * r
}

func degrees(d float64) float64 {
	return (s1.Angle(d) * s1.Degree).Radians()
}
