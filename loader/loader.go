// Package loader ingests road-segment datasets into a core.RoadGraph.
//
// The input is CSV, one road segment per record:
//
//	from_junction,to_junction,length_m,speed_kmh,direction
//
// Field semantics:
//
//   - from_junction, to_junction: int64 junction ids; registered on first
//     sight.
//   - length_m: segment length in meters, must be non-negative.
//   - speed_kmh: posted speed; blank or zero falls back to DefaultSpeedKMH.
//   - direction: traffic flow over the segment — "Both" (or blank) inserts
//     edges both ways, "Positive" only from→to, "Negative" only to→from.
//
// Edge weight is either expected travel time in hours
// (length_km / speed_kmh) or the raw length in meters, selected by
// Options.Weight. The produced graph is directed: a two-way segment is two
// directed edges, which is what the direction column models.
//
// An optional header record is detected (first field not numeric) and
// skipped. Any malformed record aborts the load with ErrBadRecord naming the
// offending line; a partially valid dataset never yields a partial graph to
// the caller.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/velora-dev/roadroute/core"
)

// DefaultSpeedKMH is assumed for segments without a posted speed limit.
const DefaultSpeedKMH = 34.0

// Sentinel errors for dataset ingestion.
var (
	// ErrBadRecord indicates a malformed segment record; the wrapped message
	// carries the line number and field.
	ErrBadRecord = errors.New("loader: bad segment record")

	// ErrBadWeightKind indicates an unrecognized weight-kind name.
	ErrBadWeightKind = errors.New("loader: unknown weight kind")
)

// WeightKind selects what edge weights represent.
type WeightKind int

const (
	// WeightTravelTime weighs segments by expected travel time in hours.
	WeightTravelTime WeightKind = iota

	// WeightDistance weighs segments by length in meters.
	WeightDistance
)

// ParseWeightKind maps the dataset configuration names "travel_time" and
// "distance" to a WeightKind.
func ParseWeightKind(s string) (WeightKind, error) {
	switch s {
	case "travel_time":
		return WeightTravelTime, nil
	case "distance":
		return WeightDistance, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadWeightKind, s)
	}
}

// Options configures a load.
type Options struct {
	// Weight selects the edge-weight metric. Default: WeightTravelTime.
	Weight WeightKind
}

// Load reads segment records from r and builds a directed road graph.
// Returns ErrBadRecord (wrapped with the line number) on the first malformed
// record.
func Load(r io.Reader, opts Options) (*core.RoadGraph, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 5
	cr.TrimLeadingSpace = true

	g := core.NewRoadGraph(core.WithDirected(true))

	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line+1, err)
		}
		line++

		// Header: the first record may carry column names.
		if line == 1 {
			if _, convErr := strconv.ParseInt(strings.TrimSpace(rec[0]), 10, 64); convErr != nil {
				continue
			}
		}

		if err := addSegment(g, rec, line, opts.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// LoadFile opens path and delegates to Load.
func LoadFile(path string, opts Options) (*core.RoadGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, opts)
}

// addSegment parses one record and installs its junctions and directed
// edge(s) into g.
func addSegment(g *core.RoadGraph, rec []string, line int, kind WeightKind) error {
	from, err := strconv.ParseInt(strings.TrimSpace(rec[0]), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: line %d: from_junction %q", ErrBadRecord, line, rec[0])
	}
	to, err := strconv.ParseInt(strings.TrimSpace(rec[1]), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: line %d: to_junction %q", ErrBadRecord, line, rec[1])
	}

	length, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
	if err != nil || length < 0 {
		return fmt.Errorf("%w: line %d: length_m %q", ErrBadRecord, line, rec[2])
	}

	speed := DefaultSpeedKMH
	if s := strings.TrimSpace(rec[3]); s != "" {
		speed, err = strconv.ParseFloat(s, 64)
		if err != nil || speed < 0 {
			return fmt.Errorf("%w: line %d: speed_kmh %q", ErrBadRecord, line, rec[3])
		}
		if speed == 0 {
			speed = DefaultSpeedKMH
		}
	}

	var weight float64
	switch kind {
	case WeightDistance:
		weight = length
	default:
		weight = (length / 1000.0) / speed // hours
	}

	if err := ensureVertex(g, from); err != nil {
		return err
	}
	if err := ensureVertex(g, to); err != nil {
		return err
	}

	switch dir := strings.TrimSpace(rec[4]); dir {
	case "", "Both":
		if err := g.AddEdge(from, to, weight); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}
		if err := g.AddEdge(to, from, weight); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}
	case "Positive":
		if err := g.AddEdge(from, to, weight); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}
	case "Negative":
		if err := g.AddEdge(to, from, weight); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}
	default:
		return fmt.Errorf("%w: line %d: direction %q", ErrBadRecord, line, dir)
	}

	return nil
}

// ensureVertex registers a junction id, tolerating repeats: many segments
// share endpoints.
func ensureVertex(g *core.RoadGraph, id int64) error {
	err := g.AddVertex(id)
	if err != nil && !errors.Is(err, core.ErrDuplicateVertex) {
		return err
	}

	return nil
}
