// Package pointset reads point sets from text or JSON input and writes hulls
// back out.
//
// The text format holds one point per line. Coordinates are separated by
// whitespace or commas, '#' starts a comment and a third coordinate is
// ignored:
//
//	# x y
//	0 0
//	4.5, 0, 1
//
// The JSON format is an array of [x, y] or [x, y, z] arrays, or of objects
// with "x" and "y" fields.
package pointset

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/neilotoole/streamcache"
	"github.com/quasilyte/gmath"

	"github.com/oliverbestmann/giftwrap/hull"
)

var logger = loggo.GetLogger("giftwrap.pointset")

type Format int

const (
	FormatText Format = iota
	FormatJSON
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	default:
		return "text"
	}
}

// ReadFile reads a point set from the named file, "-" reads stdin.
func ReadFile(ctx context.Context, path string) ([]gmath.Vec, error) {
	if path == "-" {
		points, err := Read(ctx, os.Stdin)
		return points, errors.Annotate(err, "reading stdin")
	}

	fp, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}

	defer func() { _ = fp.Close() }()

	points, err := Read(ctx, fp)
	return points, errors.Annotatef(err, "reading %q", path)
}

// Read detects the format of r and decodes all points from it. The input does
// not need to be seekable.
func Read(ctx context.Context, r io.Reader) ([]gmath.Vec, error) {
	cache := streamcache.New(r)

	// both readers see the stream from its first byte
	sniffer := cache.NewReader(ctx)
	decoder := cache.NewReader(ctx)
	cache.Seal()

	defer func() { _ = decoder.Close() }()

	format, err := sniff(sniffer)
	_ = sniffer.Close()

	if err != nil {
		return nil, errors.Trace(err)
	}

	logger.Debugf("reading points as %s", format)

	var points []gmath.Vec
	switch format {
	case FormatJSON:
		points, err = decodeJSON(decoder)
	default:
		points, err = decodeText(decoder)
	}

	if err != nil {
		return nil, errors.Trace(err)
	}

	if err := hull.Validate(points); err != nil {
		return nil, errors.Trace(err)
	}

	logger.Debugf("read %d points", len(points))

	return points, nil
}

// Write encodes points in the text format.
func Write(w io.Writer, points []gmath.Vec) error {
	buf := bufio.NewWriter(w)

	var line []byte
	for _, p := range points {
		line = strconv.AppendFloat(line[:0], p.X, 'g', -1, 64)
		line = append(line, ' ')
		line = strconv.AppendFloat(line, p.Y, 'g', -1, 64)
		line = append(line, '\n')

		if _, err := buf.Write(line); err != nil {
			return errors.Trace(err)
		}
	}

	return errors.Trace(buf.Flush())
}

func sniff(r io.Reader) (Format, error) {
	buf := bufio.NewReader(r)
	for {
		ch, _, err := buf.ReadRune()
		switch {
		case err == io.EOF:
			return FormatText, nil

		case err != nil:
			return FormatText, errors.Trace(err)

		case unicode.IsSpace(ch):
			continue

		case ch == '[':
			return FormatJSON, nil

		default:
			return FormatText, nil
		}
	}
}

func decodeText(r io.Reader) ([]gmath.Vec, error) {
	var points []gmath.Vec

	scanner := bufio.NewScanner(r)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}

		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})

		if len(fields) == 0 {
			continue
		}

		coords, err := parseCoords(fields)
		if err != nil {
			return nil, errors.Annotatef(err, "line %d", lineNo)
		}

		points = append(points, gmath.Vec{X: coords[0], Y: coords[1]})
	}

	return points, errors.Trace(scanner.Err())
}

func parseCoords(fields []string) ([]float64, error) {
	if len(fields) < 2 || len(fields) > 3 {
		return nil, errors.NotValidf("%d coordinates", len(fields))
	}

	coords := make([]float64, len(fields))
	for idx, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, errors.NotValidf("coordinate %q", field)
		}

		coords[idx] = value
	}

	return coords, nil
}

type jsonPoint struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

func decodeJSON(r io.Reader) ([]gmath.Vec, error) {
	dec := json.NewDecoder(r)

	var items []json.RawMessage
	if err := dec.Decode(&items); err != nil {
		return nil, errors.NewNotValid(err, "json point list")
	}

	// only whitespace may follow the list
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.NotValidf("data after json point list")
	}

	points := make([]gmath.Vec, 0, len(items))
	for idx, item := range items {
		point, err := decodeJSONPoint(item)
		if err != nil {
			return nil, errors.Annotatef(err, "item %d", idx)
		}

		points = append(points, point)
	}

	return points, nil
}

func decodeJSONPoint(item json.RawMessage) (gmath.Vec, error) {
	var coords []float64
	if err := json.Unmarshal(item, &coords); err == nil {
		if len(coords) < 2 || len(coords) > 3 {
			return gmath.Vec{}, errors.NotValidf("%d coordinates", len(coords))
		}

		return gmath.Vec{X: coords[0], Y: coords[1]}, nil
	}

	var obj jsonPoint
	if err := json.Unmarshal(item, &obj); err != nil || obj.X == nil || obj.Y == nil {
		return gmath.Vec{}, errors.NotValidf("point %s", item)
	}

	return gmath.Vec{X: *obj.X, Y: *obj.Y}, nil
}
