package Transformer

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gitee.com/LJ_COOL/go-shp"

	"github.com/KartForge/ShpDxfBridge/crs"
)

// shapeFields is the fixed attribute schema of every converted
// shapefile: source layer name, source entity kind, canonical color
// text.
func shapeFields() []shp.Field {
	return []shp.Field{
		shp.StringField([]byte("layer"), 64),
		shp.StringField([]byte("etype"), 16),
		shp.StringField([]byte("RGB_text"), 16),
	}
}

var shapeTypes = map[GeomKind]shp.ShapeType{
	GeomPoint:    shp.POINT,
	GeomPolyline: shp.POLYLINE,
	GeomPolygon:  shp.POLYGON,
}

var shapeSuffixes = map[GeomKind]string{
	GeomPoint:    "_points.shp",
	GeomPolyline: "_lines.shp",
	GeomPolygon:  "_polygons.shp",
}

type shapeWriter struct {
	writer *shp.Writer
	rows   int
}

// WriterSet holds the point, line and polygon shapefiles of one
// conversion. Each writer is created on first use, so kinds with no
// features leave no file behind.
type WriterSet struct {
	base    string
	writers map[GeomKind]*shapeWriter
}

// NewWriterSet prepares a set writing to base+"_points.shp",
// base+"_lines.shp" and base+"_polygons.shp".
func NewWriterSet(base string) *WriterSet {
	return &WriterSet{base: base, writers: make(map[GeomKind]*shapeWriter)}
}

func (ws *WriterSet) writerFor(kind GeomKind) (*shapeWriter, error) {
	if sw, ok := ws.writers[kind]; ok {
		return sw, nil
	}
	path := ws.base + shapeSuffixes[kind]
	w, err := shp.Create(path, shapeTypes[kind])
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	w.SetFields(shapeFields())
	sw := &shapeWriter{writer: w}
	ws.writers[kind] = sw
	return sw, nil
}

// Add writes one feature and its attribute record.
func (ws *WriterSet) Add(f FeatureRecord) error {
	sw, err := ws.writerFor(f.Geom.Kind)
	if err != nil {
		return err
	}
	switch f.Geom.Kind {
	case GeomPoint:
		p := f.Geom.Point()
		sw.writer.Write(&shp.Point{X: p.X, Y: p.Y})
	default:
		sw.writer.Write(shp.NewPolyLine(shapeParts(f.Geom.Parts)))
	}
	for col, v := range []string{f.Layer, f.SourceKind, RGBText(f.Color)} {
		if aerr := sw.writer.WriteAttribute(sw.rows, col, v); aerr != nil {
			log.Println(aerr.Error())
		}
	}
	sw.rows++
	return nil
}

// Close flushes every writer that was opened and declares its
// encoding. Called once per conversion, on every exit path, since an
// unclosed shapefile is corrupt.
func (ws *WriterSet) Close() {
	for kind, sw := range ws.writers {
		sw.writer.Close()
		if err := crs.WriteCpgIfMissing(ws.base + shapeSuffixes[kind]); err != nil {
			log.Println(err.Error())
		}
	}
	ws.writers = make(map[GeomKind]*shapeWriter)
}

func shapeParts(parts [][]Point2D) [][]shp.Point {
	out := make([][]shp.Point, 0, len(parts))
	for _, part := range parts {
		pts := make([]shp.Point, 0, len(part))
		for _, p := range part {
			pts = append(pts, shp.Point{X: p.X, Y: p.Y})
		}
		out = append(out, pts)
	}
	return out
}

// ConvertDxfFile converts one drawing into up to three shapefiles
// under outDir, named after the source file. Entities the shapefile
// model cannot carry are logged and skipped; an unreadable source or
// unwritable destination fails the whole file.
func ConvertDxfFile(dxfPath, outDir string) (Counts, error) {
	entities, layers, err := ScanDxf(dxfPath)
	if err != nil {
		return Counts{}, err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return Counts{}, err
	}

	var buckets FeatureBuckets
	for i := range entities {
		e := &entities[i]
		c := ColorFromEntity(e, layers)
		if rerr := buckets.RouteEntity(e, c); rerr != nil {
			log.Printf("%s: skipping %s entity: %v", filepath.Base(dxfPath), e.Kind, rerr)
		}
	}

	ws := NewWriterSet(outputBase(dxfPath, outDir))
	defer ws.Close()
	for _, bucket := range [][]FeatureRecord{buckets.Points, buckets.Lines, buckets.Polygons} {
		for _, f := range bucket {
			if werr := ws.Add(f); werr != nil {
				return Counts{}, werr
			}
		}
	}
	return buckets.Counts(), nil
}

// ConvertDxfDir converts every drawing under inDir and reports the
// summed counts. A file that fails is logged and skipped so the rest
// still convert.
func ConvertDxfDir(inDir, outDir string) (Counts, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return Counts{}, err
	}
	files := FindFiles(inDir, "dxf")
	if len(files) == 0 {
		log.Printf("no .dxf files under %s", inDir)
	}

	var total Counts
	for _, f := range files {
		counts, err := ConvertDxfFile(f, outDir)
		if err != nil {
			log.Printf("convert %s failed: %v", f, err)
			continue
		}
		log.Printf("%s done: %s", filepath.Base(f), counts.String())
		total.Merge(counts)
	}
	return total, nil
}

func outputBase(srcPath, outDir string) string {
	name := filepath.Base(srcPath)
	return filepath.Join(outDir, strings.TrimSuffix(name, filepath.Ext(name)))
}
