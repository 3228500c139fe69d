package Transformer

import (
	"errors"
	"fmt"
)

// ErrUnsupportedGeometry marks an entity or shape kind outside the
// supported set. The caller logs it and moves on; it never aborts a file.
var ErrUnsupportedGeometry = errors.New("unsupported geometry kind")

// Point2D is a plain XY coordinate.
type Point2D struct {
	X float64
	Y float64
}

// GeomKind tags the Geometry variant.
type GeomKind int

const (
	GeomPoint GeomKind = iota
	GeomPolyline
	GeomPolygon
)

func (k GeomKind) String() string {
	switch k {
	case GeomPoint:
		return "point"
	case GeomPolyline:
		return "polyline"
	case GeomPolygon:
		return "polygon"
	}
	return "unknown"
}

// Geometry is the canonical shape passed between the two codecs.
// Parts is always populated, a single-part shape holds one slice, so
// downstream code never special-cases single versus multi part data.
// For GeomPolygon every part is one ring, closed on output.
type Geometry struct {
	Kind  GeomKind
	Parts [][]Point2D
}

// NewPointGeom wraps a coordinate as a point geometry.
func NewPointGeom(p Point2D) Geometry {
	return Geometry{Kind: GeomPoint, Parts: [][]Point2D{{p}}}
}

// NewPolylineGeom wraps parts as an open polyline geometry.
func NewPolylineGeom(parts [][]Point2D) Geometry {
	return Geometry{Kind: GeomPolyline, Parts: parts}
}

// NewPolygonGeom wraps rings as a polygon geometry. Rings are closed
// here so the invariant holds no matter where the geometry came from.
func NewPolygonGeom(rings [][]Point2D) Geometry {
	closed := make([][]Point2D, 0, len(rings))
	for _, ring := range rings {
		closed = append(closed, CloseRing(ring))
	}
	return Geometry{Kind: GeomPolygon, Parts: closed}
}

// Point returns the coordinate of a point geometry.
func (g Geometry) Point() Point2D {
	return g.Parts[0][0]
}

// CloseRing appends the first point when the ring is not already
// closed. Comparison is exact, matching the drawing side closed flag
// semantics rather than any tolerance.
func CloseRing(pts []Point2D) []Point2D {
	if len(pts) == 0 || pts[0] == pts[len(pts)-1] {
		return pts
	}
	out := make([]Point2D, 0, len(pts)+1)
	out = append(out, pts...)
	return append(out, pts[0])
}

// FeatureRecord is one translated feature: geometry plus the attribute
// values every output row carries. Built once per source entity or
// shape and read exactly once by the output side.
type FeatureRecord struct {
	Geom       Geometry
	Layer      string
	SourceKind string
	Color      ColorSpec
}

// Counts tallies features per output bucket.
type Counts struct {
	Points   int
	Lines    int
	Polygons int
}

// Merge adds o into c.
func (c *Counts) Merge(o Counts) {
	c.Points += o.Points
	c.Lines += o.Lines
	c.Polygons += o.Polygons
}

func (c Counts) String() string {
	return fmt.Sprintf("%d points, %d lines, %d polygons", c.Points, c.Lines, c.Polygons)
}

// FeatureBuckets groups mapped features by output shape kind.
type FeatureBuckets struct {
	Points   []FeatureRecord
	Lines    []FeatureRecord
	Polygons []FeatureRecord
}

// Counts reports the bucket sizes.
func (b *FeatureBuckets) Counts() Counts {
	return Counts{Points: len(b.Points), Lines: len(b.Lines), Polygons: len(b.Polygons)}
}

// RouteEntity maps one drawing entity into the output buckets with its
// already resolved color. Closure comes from the entity flag alone, a
// polyline whose endpoints happen to coincide stays a polyline.
func (b *FeatureBuckets) RouteEntity(e *DxfEntity, c ColorSpec) error {
	switch e.Kind {
	case "POINT":
		if len(e.Parts) == 0 || len(e.Parts[0]) == 0 {
			return ErrUnsupportedGeometry
		}
		b.Points = append(b.Points, FeatureRecord{
			Geom:       NewPointGeom(e.Parts[0][0]),
			Layer:      e.Layer,
			SourceKind: e.Kind,
			Color:      c,
		})
	case "LINE":
		if len(e.Parts) == 0 || len(e.Parts[0]) < 2 {
			return ErrUnsupportedGeometry
		}
		b.Lines = append(b.Lines, FeatureRecord{
			Geom:       NewPolylineGeom([][]Point2D{e.Parts[0]}),
			Layer:      e.Layer,
			SourceKind: e.Kind,
			Color:      c,
		})
	case "LWPOLYLINE", "POLYLINE":
		b.routePolyline(e, c)
	default:
		return ErrUnsupportedGeometry
	}
	return nil
}

// routePolyline handles both polyline families. A closed source with a
// ring-eligible part (three or more points) yields one polygon feature
// per part; everything else stays in the line bucket with the vertex
// sequence untouched.
func (b *FeatureBuckets) routePolyline(e *DxfEntity, c ColorSpec) {
	var open [][]Point2D
	for _, part := range e.Parts {
		if len(part) == 0 {
			continue
		}
		if e.Closed && len(part) >= 3 {
			b.Polygons = append(b.Polygons, FeatureRecord{
				Geom:       NewPolygonGeom([][]Point2D{part}),
				Layer:      e.Layer,
				SourceKind: e.Kind,
				Color:      c,
			})
			continue
		}
		open = append(open, part)
	}
	if len(open) == 0 {
		return
	}
	if e.Closed {
		// Closed flag set but the parts were too short for rings; each
		// one becomes its own line feature, mirroring the polygon split.
		for _, part := range open {
			b.Lines = append(b.Lines, FeatureRecord{
				Geom:       NewPolylineGeom([][]Point2D{part}),
				Layer:      e.Layer,
				SourceKind: e.Kind,
				Color:      c,
			})
		}
		return
	}
	b.Lines = append(b.Lines, FeatureRecord{
		Geom:       NewPolylineGeom(open),
		Layer:      e.Layer,
		SourceKind: e.Kind,
		Color:      c,
	})
}

// EntityOut is one drawing entity ready to be written.
type EntityOut struct {
	Kind   string
	Points []Point2D
	Closed bool
	Layer  string
	Color  ColorSpec
}

// ToEntities expands features into writable drawing entities. Polyline
// parts come out one entity each; polygon rings come out closed, one
// entity per ring. A feature that originated as a two point LINE turns
// back into a LINE entity, everything else polyline-like is written as
// a lightweight polyline.
func ToEntities(features []FeatureRecord) []EntityOut {
	var out []EntityOut
	for _, f := range features {
		switch f.Geom.Kind {
		case GeomPoint:
			out = append(out, EntityOut{
				Kind:   "POINT",
				Points: []Point2D{f.Geom.Point()},
				Layer:  f.Layer,
				Color:  f.Color,
			})
		case GeomPolyline:
			for _, part := range f.Geom.Parts {
				if len(part) == 0 {
					continue
				}
				kind := "LWPOLYLINE"
				if f.SourceKind == "LINE" && len(f.Geom.Parts) == 1 && len(part) == 2 {
					kind = "LINE"
				}
				out = append(out, EntityOut{
					Kind:   kind,
					Points: part,
					Layer:  f.Layer,
					Color:  f.Color,
				})
			}
		case GeomPolygon:
			for _, ring := range f.Geom.Parts {
				if len(ring) == 0 {
					continue
				}
				out = append(out, EntityOut{
					Kind:   "LWPOLYLINE",
					Points: CloseRing(ring),
					Closed: true,
					Layer:  f.Layer,
					Color:  f.Color,
				})
			}
		}
	}
	return out
}
