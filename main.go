package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/iancoleman/strcase"
	"github.com/umpc/go-sortedmap"
	"github.com/urfave/cli/v2"

	"github.com/pdok/intgeohash/geodetic"
	"github.com/pdok/intgeohash/geohash"
)

const OPTIONS string = `options`
const PRECISION string = `precision`
const LON string = `lon`
const LAT string = `lat`
const CODE string = `code`
const ROUND string = `round`
const BOX string = `box`
const GEOJSON string = `geojson`
const INPUT string = `input`

//nolint:funlen
func main() {
	app := cli.NewApp()
	app.Name = "intgeohash"
	app.Usage = "Integer geohash encoding, decoding and grid enumeration"
	app.Version = versioninfo.Short()

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    OPTIONS,
			Usage:   `JSON file with engine options. E.g.: {"maxCells": 1000000, "workers": 4}`,
			EnvVars: []string{strcase.ToScreamingSnake(OPTIONS)},
		},
	}
	precisionFlag := &cli.UintFlag{
		Name:     PRECISION,
		Aliases:  []string{"p"},
		Usage:    "Number of bits of the code, 1 to 64",
		Required: true,
		EnvVars:  []string{strcase.ToScreamingSnake(PRECISION)},
	}
	codeFlag := &cli.Uint64Flag{
		Name:     CODE,
		Aliases:  []string{"c"},
		Usage:    "Code of a cell",
		Required: true,
	}
	boxFlag := &cli.StringFlag{
		Name:    BOX,
		Aliases: []string{"b"},
		Usage:   `Box as a JSON array [minLon, minLat, maxLon, maxLat]. E.g.: [3.2,50.7,7.3,53.6]`,
	}

	app.Commands = []*cli.Command{
		{
			Name:  "encode",
			Usage: "Code of the cell containing a point",
			Flags: []cli.Flag{
				precisionFlag,
				&cli.Float64Flag{Name: LON, Usage: "Longitude in degrees", Required: true},
				&cli.Float64Flag{Name: LAT, Usage: "Latitude in degrees", Required: true},
			},
			Action: func(c *cli.Context) error {
				code, err := geohash.Encode(geodetic.NewPoint(c.Float64(LON), c.Float64(LAT)), c.Uint(PRECISION))
				if err != nil {
					return err
				}
				return printJSON(c.App.Writer, code)
			},
		},
		{
			Name:  "decode",
			Usage: "Center of a cell",
			Flags: []cli.Flag{
				precisionFlag,
				codeFlag,
				&cli.BoolFlag{Name: ROUND, Aliases: []string{"r"}, Usage: "Round to the number of decimals the cell size allows"},
			},
			Action: func(c *cli.Context) error {
				p, err := geohash.Decode(c.Uint64(CODE), c.Uint(PRECISION), c.Bool(ROUND))
				if err != nil {
					return err
				}
				return printJSON(c.App.Writer, [2]float64{p.Lon(), p.Lat()})
			},
		},
		{
			Name:  "bbox",
			Usage: "Bounds and area of a cell",
			Flags: []cli.Flag{precisionFlag, codeFlag},
			Action: func(c *cli.Context) error {
				box, err := geohash.BoundingBox(c.Uint64(CODE), c.Uint(PRECISION))
				if err != nil {
					return err
				}
				return printJSON(c.App.Writer, newCellOutput(box))
			},
		},
		{
			Name:  "neighbors",
			Usage: "Codes of the eight surrounding cells, clockwise from the north west",
			Flags: []cli.Flag{precisionFlag, codeFlag},
			Action: func(c *cli.Context) error {
				neighbors, err := geohash.Neighbors(c.Uint64(CODE), c.Uint(PRECISION))
				if err != nil {
					return err
				}
				return printJSON(c.App.Writer, neighbors)
			},
		},
		{
			Name:  "grid",
			Usage: "Origin and size of the block of cells covering a box",
			Flags: []cli.Flag{precisionFlag, boxFlag},
			Action: func(c *cli.Context) error {
				engine, err := loadEngine(c.String(OPTIONS))
				if err != nil {
					return err
				}
				box := geodetic.WholeEarth()
				if c.String(BOX) != "" {
					if box, err = parseBox(c.String(BOX)); err != nil {
						return err
					}
				}
				grid, err := engine.GridProperties(box, c.Uint(PRECISION))
				if err != nil {
					return err
				}
				return printJSON(c.App.Writer, grid)
			},
		},
		{
			Name:  "bboxes",
			Usage: "Codes of all cells covering a box, a polygon's envelope or the whole world",
			Flags: []cli.Flag{
				precisionFlag,
				boxFlag,
				&cli.StringFlag{Name: GEOJSON, Aliases: []string{"g"}, Usage: "File with a GeoJSON Polygon geometry"},
			},
			Action: func(c *cli.Context) error {
				engine, err := loadEngine(c.String(OPTIONS))
				if err != nil {
					return err
				}
				codes, err := boundingBoxes(engine, c.String(BOX), c.String(GEOJSON), c.Uint(PRECISION))
				if err != nil {
					return err
				}
				log.Printf("%d cells", len(codes))
				return printJSON(c.App.Writer, codes)
			},
		},
		{
			Name:  "where",
			Usage: "Rows and columns occupied by each code of a 2-D JSON array, sorted by code",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: INPUT, Aliases: []string{"i"}, Usage: "JSON file, - for stdin", Value: "-"},
			},
			Action: func(c *cli.Context) error {
				engine, err := loadEngine(c.String(OPTIONS))
				if err != nil {
					return err
				}
				var codes [][]geohash.Code
				if err = readJSON(c.String(INPUT), c.App.Reader, &codes); err != nil {
					return err
				}
				groups, err := engine.Where(codes)
				if err != nil {
					return err
				}
				log.Printf("%d distinct codes", groups.Len())
				return printJSON(c.App.Writer, sortByCode(groups))
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func loadEngine(optionsPath string) (*geohash.Engine, error) {
	if optionsPath == "" {
		return geohash.New(geohash.DefaultOptions())
	}
	var opts geohash.Options
	if err := readJSON(optionsPath, nil, &opts); err != nil {
		return nil, fmt.Errorf("could not load options: %w", err)
	}
	return geohash.New(opts)
}

func parseBox(s string) (geodetic.Box, error) {
	var ordinates [4]float64
	if err := json.Unmarshal([]byte(s), &ordinates); err != nil {
		return geodetic.Box{}, fmt.Errorf("could not parse box %q: %w", s, err)
	}
	return geodetic.NewBox(
		geodetic.NewPoint(ordinates[0], ordinates[1]),
		geodetic.NewPoint(ordinates[2], ordinates[3]),
	), nil
}

func boundingBoxes(engine *geohash.Engine, box, geojsonPath string, precision uint) ([]geohash.Code, error) {
	switch {
	case box != "" && geojsonPath != "":
		return nil, fmt.Errorf("use either --%s or --%s", BOX, GEOJSON)
	case box != "":
		b, err := parseBox(box)
		if err != nil {
			return nil, err
		}
		return engine.BoundingBoxes(&b, precision)
	case geojsonPath != "":
		data, err := os.ReadFile(geojsonPath)
		if err != nil {
			return nil, err
		}
		polygon, err := geodetic.PolygonFromGeoJSON(data)
		if err != nil {
			return nil, err
		}
		return engine.PolygonBoundingBoxes(polygon, precision)
	default:
		return engine.BoundingBoxes(nil, precision)
	}
}

type cellOutput struct {
	Min [2]float64 `json:"min"`
	Max [2]float64 `json:"max"`
	// square meters on WGS 84
	Area float64 `json:"area"`
}

func newCellOutput(box geodetic.Box) cellOutput {
	wgs84 := geodetic.WGS84
	minCorner, maxCorner := box.MinCorner(), box.MaxCorner()
	return cellOutput{
		Min:  [2]float64{minCorner.Lon(), minCorner.Lat()},
		Max:  [2]float64{maxCorner.Lon(), maxCorner.Lat()},
		Area: box.Area(&wgs84),
	}
}

type codeRange struct {
	Code geohash.Code `json:"code"`
	geohash.RangeGroup
}

func sortByCode(groups *geohash.Groups) []codeRange {
	sorted := sortedmap.New(groups.Len(), func(x, y interface{}) bool {
		return x.(codeRange).Code < y.(codeRange).Code
	})
	for p := groups.Oldest(); p != nil; p = p.Next() {
		sorted.Insert(p.Key, codeRange{Code: p.Key, RangeGroup: p.Value})
	}
	ranges := make([]codeRange, 0, groups.Len())
	mmap := sorted.Map()
	for _, key := range sorted.Keys() {
		ranges = append(ranges, mmap[key].(codeRange))
	}
	return ranges
}

func readJSON(path string, stdin io.Reader, v any) error {
	var data []byte
	var err error
	if path == "-" && stdin != nil {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
