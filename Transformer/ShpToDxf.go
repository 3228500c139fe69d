package Transformer

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gitee.com/LJ_COOL/go-shp"
)

// splitParts cuts the flat point list of a multipart shape at its
// part-start offsets. A shape without a part array is treated as one
// part.
func splitParts(points []shp.Point, parts []int32) [][]Point2D {
	if len(points) == 0 {
		return nil
	}
	if len(parts) == 0 {
		parts = []int32{0}
	}
	var out [][]Point2D
	for i, start := range parts {
		end := len(points)
		if i+1 < len(parts) {
			end = int(parts[i+1])
		}
		s := int(start)
		if s < 0 || s > end || end > len(points) {
			continue
		}
		part := make([]Point2D, 0, end-s)
		for _, p := range points[s:end] {
			part = append(part, Point2D{p.X, p.Y})
		}
		out = append(out, part)
	}
	return out
}

// readShpFeatures loads every shape of one shapefile as a feature
// record, resolving layer and color from its attribute row. Attribute
// text is decoded per the sidecar declaration, or a sniffed charset
// when no declaration exists. Shape kinds outside point, polyline and
// polygon are logged and skipped.
func readShpFeatures(shpPath string) ([]FeatureRecord, error) {
	reader, err := shp.Open(shpPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", shpPath, err)
	}
	defer reader.Close()

	fields := reader.Fields()
	names := make([]string, len(fields))
	for i := range fields {
		names[i] = fields[i].String()
	}

	sample, _ := os.ReadFile(sidecarFor(shpPath, ".dbf"))
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	tr := NewTextReader(shpPath, sample)

	var features []FeatureRecord
	for reader.Next() {
		n, p := reader.Shape()

		values := make([]string, len(names))
		for k := range names {
			values[k] = tr.Decode(reader.ReadAttribute(n, k))
		}
		attrs := NewAttributeRecord(names, values)
		layer, _ := attrs.Get("layer")
		if len(layer) > 255 {
			layer = layer[:255]
		}
		c := ColorFromAttributes(attrs)

		switch s := p.(type) {
		case *shp.Point:
			features = append(features, pointFeature(s.X, s.Y, layer, c))
		case *shp.PointZ:
			features = append(features, pointFeature(s.X, s.Y, layer, c))
		case *shp.PointM:
			features = append(features, pointFeature(s.X, s.Y, layer, c))
		case *shp.PolyLine:
			features = append(features, lineFeature(splitParts(s.Points, s.Parts), layer, c))
		case *shp.PolyLineZ:
			features = append(features, lineFeature(splitParts(s.Points, s.Parts), layer, c))
		case *shp.PolyLineM:
			features = append(features, lineFeature(splitParts(s.Points, s.Parts), layer, c))
		case *shp.Polygon:
			features = append(features, ringFeature(splitParts(s.Points, s.Parts), layer, c))
		case *shp.PolygonZ:
			features = append(features, ringFeature(splitParts(s.Points, s.Parts), layer, c))
		case *shp.PolygonM:
			features = append(features, ringFeature(splitParts(s.Points, s.Parts), layer, c))
		default:
			log.Printf("%s: unsupported shape type %T, skipping", filepath.Base(shpPath), p)
		}
	}
	return features, nil
}

func pointFeature(x, y float64, layer string, c ColorSpec) FeatureRecord {
	return FeatureRecord{Geom: NewPointGeom(Point2D{x, y}), Layer: layer, SourceKind: "POINT", Color: c}
}

func lineFeature(parts [][]Point2D, layer string, c ColorSpec) FeatureRecord {
	return FeatureRecord{Geom: NewPolylineGeom(parts), Layer: layer, SourceKind: "POLYLINE", Color: c}
}

func ringFeature(rings [][]Point2D, layer string, c ColorSpec) FeatureRecord {
	return FeatureRecord{Geom: NewPolygonGeom(rings), Layer: layer, SourceKind: "POLYGON", Color: c}
}

func sidecarFor(shpPath, ext string) string {
	return shpPath[:len(shpPath)-len(filepath.Ext(shpPath))] + ext
}

// ConvertShpFile converts one shapefile into a drawing under outDir,
// named after the source file. Returns the per-kind feature counts.
func ConvertShpFile(shpPath, outDir string) (Counts, error) {
	features, err := readShpFeatures(shpPath)
	if err != nil {
		return Counts{}, err
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return Counts{}, err
	}

	var counts Counts
	for _, f := range features {
		switch f.Geom.Kind {
		case GeomPoint:
			counts.Points++
		case GeomPolyline:
			counts.Lines++
		case GeomPolygon:
			counts.Polygons++
		}
	}

	w := NewDxfWriter()
	for _, e := range ToEntities(features) {
		if aerr := w.Add(e); aerr != nil {
			log.Printf("%s: skipping %s entity: %v", filepath.Base(shpPath), e.Kind, aerr)
		}
	}

	out := outputBase(shpPath, outDir) + ".dxf"
	if serr := w.SaveAs(out); serr != nil {
		return counts, fmt.Errorf("save %s: %w", out, serr)
	}
	return counts, nil
}

// ConvertShpDir converts every shapefile under inDir and reports the
// summed counts. A file that fails is logged and skipped so the rest
// still convert.
func ConvertShpDir(inDir, outDir string) (Counts, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return Counts{}, err
	}
	files := FindFiles(inDir, "shp")
	if len(files) == 0 {
		log.Printf("no .shp files under %s", inDir)
	}

	var total Counts
	for _, f := range files {
		counts, err := ConvertShpFile(f, outDir)
		if err != nil {
			log.Printf("convert %s failed: %v", f, err)
			continue
		}
		log.Printf("%s done: %s", filepath.Base(f), counts.String())
		total.Merge(counts)
	}
	return total, nil
}
