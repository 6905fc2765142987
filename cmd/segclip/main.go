package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	segrtree "github.com/geomys/seg-rtree"
	"github.com/tdewolff/argp"
)

type Clip struct {
	XMin  float64 `desc:"Left bound of the clip rectangle"`
	YMin  float64 `desc:"Bottom bound of the clip rectangle"`
	XMax  float64 `desc:"Right bound of the clip rectangle"`
	YMax  float64 `desc:"Top bound of the clip rectangle"`
	Input string  `index:"0" desc:"WKT LINESTRING or POLYGON, or - for stdin"`
}

func main() {
	root := argp.NewCmd(&Clip{}, "Clip WKT linestrings and polygon rings by a rectangle")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Clip) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	input := cmd.Input
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		input = strings.TrimSpace(string(data))
	}

	rect := segrtree.Envelope{XMin: cmd.XMin, YMin: cmd.YMin, XMax: cmd.XMax, YMax: cmd.YMax}
	if rect.XMax < rect.XMin || rect.YMax < rect.YMin {
		fmt.Println("ERROR: clip rectangle has negative extent")
		return argp.ShowUsage
	}

	var lineStrings []*segrtree.LineString
	switch {
	case strings.HasPrefix(strings.ToUpper(input), "LINESTRING"):
		ls, err := segrtree.LineStringFromWKT(input)
		if err != nil {
			return err
		}
		lineStrings = append(lineStrings, ls)
	case strings.HasPrefix(strings.ToUpper(input), "POLYGON"):
		poly, err := segrtree.PolygonFromWKT(input)
		if err != nil {
			return err
		}
		lineStrings = append(lineStrings, &poly.Shell().LineString)
		for _, hole := range poly.Holes() {
			lineStrings = append(lineStrings, &hole.LineString)
		}
	default:
		return fmt.Errorf("unsupported WKT geometry: %s", input)
	}

	for _, ls := range lineStrings {
		for _, coords := range ls.Clip(rect) {
			fmt.Println(segrtree.NewLineString(coords).WKT())
		}
	}
	return nil
}
