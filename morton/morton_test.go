package morton

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToZ(t *testing.T) {
	tests := []struct {
		x     uint64
		y     uint64
		z     Z
		notOK bool
	}{
		{x: 0b0, y: 0b0, z: 0b0},
		{x: 0b1, y: 0b1, z: 0b11},
		{x: 0b11, y: 0b0, z: 0b0101},
		{x: 0b0, y: 0b11, z: 0b1010},
		{x: 0b1111111111111111, y: 0b0, z: 0b01010101010101010101010101010101},
		{x: 0b11111111111111111111111111111111, y: 0b0, z: 0b0101010101010101010101010101010101010101010101010101010101010101},
		{x: math.MaxUint32, y: math.MaxUint32, z: math.MaxUint64},
		{x: 0b100000000000000000000000000000000, notOK: true},
		{y: 0b100000000000000000000000000000000, notOK: true},
	}
	for _, tt := range tests {
		name := fmt.Sprintf(`ToZ(%b, %b)`, tt.x, tt.y)
		t.Run(name, func(t *testing.T) {
			got, ok := ToZ(tt.x, tt.y)
			if tt.notOK {
				require.False(t, ok)
				require.Panics(t, func() { MustToZ(tt.x, tt.y) })
			} else {
				require.True(t, ok)
				require.Equalf(t, tt.z, got, `%032b and %032b should interleave into: %064b, got: %064b`, tt.x, tt.y, tt.z, got)
			}
		})
	}
}

func TestFromZ(t *testing.T) {
	tests := []struct {
		z Z
		x uint64
		y uint64
	}{
		{z: 0b0, x: 0b0, y: 0b0},
		{z: 0b11, x: 0b1, y: 0b1},
		{z: 0b0101, x: 0b11, y: 0b0},
		{z: 0b1010, x: 0b0, y: 0b11},
		{z: 0b01010101010101010101010101010101, x: 0b1111111111111111, y: 0b0},
		{z: 0b0101010101010101010101010101010101010101010101010101010101010101, x: 0b11111111111111111111111111111111, y: 0b0},
		{z: math.MaxUint64, x: math.MaxUint32, y: math.MaxUint32},
	}
	for _, tt := range tests {
		name := fmt.Sprintf(`FromZ(%b)`, tt.z)
		t.Run(name, func(t *testing.T) {
			gotX, gotY := FromZ(tt.z)
			require.Equalf(t, [2]uint64{tt.x, tt.y}, [2]uint64{gotX, gotY}, `%064b should deinterleave into: [%032b,%032b], got: [%032b,%032b]`, tt.z, tt.x, tt.y, gotX, gotY)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, xy := range [][2]uint64{{12345, 678}, {math.MaxUint32, 0}, {0xDEADBEEF, 0xCAFEBABE}} {
		z := MustToZ(xy[0], xy[1])
		x, y := FromZ(z)
		require.Equal(t, xy, [2]uint64{x, y})
	}
}
