package geohash

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// RangeGroup is the block of an array occupied by one code, as half-open index ranges
type RangeGroup struct {
	RowStart int `json:"rowStart"`
	RowEnd   int `json:"rowEnd"`
	ColStart int `json:"colStart"`
	ColEnd   int `json:"colEnd"`
}

// Cells is the number of array cells in the group
func (r RangeGroup) Cells() int {
	return (r.RowEnd - r.RowStart) * (r.ColEnd - r.ColStart)
}

func (r RangeGroup) add(row, col int) RangeGroup {
	r.RowStart = min(r.RowStart, row)
	r.RowEnd = max(r.RowEnd, row+1)
	r.ColStart = min(r.ColStart, col)
	r.ColEnd = max(r.ColEnd, col+1)
	return r
}

func (r RangeGroup) union(o RangeGroup) RangeGroup {
	return RangeGroup{
		RowStart: min(r.RowStart, o.RowStart),
		RowEnd:   max(r.RowEnd, o.RowEnd),
		ColStart: min(r.ColStart, o.ColStart),
		ColEnd:   max(r.ColEnd, o.ColEnd),
	}
}

// Groups maps each distinct code to its RangeGroup, in order of first occurrence (row major)
type Groups = orderedmap.OrderedMap[Code, RangeGroup]

// Where returns for each distinct code of a 2-D array the rows and columns it occupies
func Where(codes [][]Code) (*Groups, error) {
	return defaultEngine.Where(codes)
}

// Where returns for each distinct code of a 2-D array the rows and columns it occupies.
//
// Each code is expected to fill a single rectangular block of the array, as codes
// of a regular lon/lat grid sampled at a coarser precision do. Otherwise the range
// of a code is the bounding rectangle of all its occurrences and may overlap others,
// unless Options.CheckContiguity is set, which turns that into ErrDegenerateRegion.
func (e *Engine) Where(codes [][]Code) (*Groups, error) {
	cols := 0
	if len(codes) > 0 {
		cols = len(codes[0])
	}
	for i, row := range codes {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, row 0 has %d: %w", i, len(row), cols, ErrShapeMismatch)
		}
	}

	bounds := chunks(len(codes), e.opts.workers(), max(e.opts.MinChunk/max(cols, 1), 1))
	partials := make([]*Groups, len(bounds))
	counts := make([]map[Code]int, len(bounds))
	err := runChunks(bounds, func(i, from, to int) error {
		partials[i], counts[i] = groupRows(codes, from, to)
		return nil
	})
	if err != nil {
		return nil, err
	}

	groups := orderedmap.New[Code, RangeGroup]()
	count := make(map[Code]int)
	for i, partial := range partials {
		for p := partial.Oldest(); p != nil; p = p.Next() {
			if existing, ok := groups.Get(p.Key); ok {
				groups.Set(p.Key, existing.union(p.Value))
			} else {
				groups.Set(p.Key, p.Value)
			}
			count[p.Key] += counts[i][p.Key]
		}
	}

	if e.opts.CheckContiguity {
		for p := groups.Oldest(); p != nil; p = p.Next() {
			if p.Value.Cells() != count[p.Key] {
				return nil, fmt.Errorf("code %d occurs %d times but spans %+v: %w",
					p.Key, count[p.Key], p.Value, ErrDegenerateRegion)
			}
		}
	}
	return groups, nil
}

func groupRows(codes [][]Code, from, to int) (*Groups, map[Code]int) {
	groups := orderedmap.New[Code, RangeGroup]()
	count := make(map[Code]int)
	for r := from; r < to; r++ {
		for c, code := range codes[r] {
			count[code]++
			if existing, ok := groups.Get(code); ok {
				groups.Set(code, existing.add(r, c))
			} else {
				groups.Set(code, RangeGroup{RowStart: r, RowEnd: r + 1, ColStart: c, ColEnd: c + 1})
			}
		}
	}
	return groups, count
}
