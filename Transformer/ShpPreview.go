package Transformer

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ShpToGeoJSON previews one shapefile as a GeoJSON feature collection
// for the map client. Every feature carries the converted attribute
// view: layer, source entity kind and canonical color text.
func ShpToGeoJSON(shpPath string) (*geojson.FeatureCollection, error) {
	features, err := readShpFeatures(shpPath)
	if err != nil {
		return nil, err
	}

	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		var feature *geojson.Feature
		switch f.Geom.Kind {
		case GeomPoint:
			p := f.Geom.Point()
			feature = geojson.NewFeature(orb.Point{p.X, p.Y})
		case GeomPolyline:
			if len(f.Geom.Parts) == 1 {
				feature = geojson.NewFeature(orb.LineString(orbPoints(f.Geom.Parts[0])))
			} else {
				ms := make(orb.MultiLineString, 0, len(f.Geom.Parts))
				for _, part := range f.Geom.Parts {
					ms = append(ms, orb.LineString(orbPoints(part)))
				}
				feature = geojson.NewFeature(ms)
			}
		case GeomPolygon:
			poly := make(orb.Polygon, 0, len(f.Geom.Parts))
			for _, ring := range f.Geom.Parts {
				poly = append(poly, orbPoints(ring))
			}
			feature = geojson.NewFeature(poly)
		default:
			continue
		}
		feature.Properties["layer"] = f.Layer
		feature.Properties["etype"] = f.SourceKind
		feature.Properties["RGB_text"] = RGBText(f.Color)
		fc.Append(feature)
	}
	return fc, nil
}

func orbPoints(part []Point2D) []orb.Point {
	pts := make([]orb.Point, 0, len(part))
	for _, p := range part {
		pts = append(pts, orb.Point{p.X, p.Y})
	}
	return pts
}
