package Transformer

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/rpaloschi/dxf-go/document"
	"github.com/rpaloschi/dxf-go/entities"
)

// previewFeature builds one GeoJSON feature from a vertex run. The
// closed flag decides between ring and line; endpoint coincidence
// never does.
func previewFeature(coords []orb.Point, layer, kind string, closed bool) *geojson.Feature {
	if len(coords) < 2 {
		return nil
	}

	var feature *geojson.Feature
	if closed && len(coords) >= 3 {
		ring := coords
		if ring[0] != ring[len(ring)-1] {
			ring = append([]orb.Point{}, coords...)
			ring = append(ring, coords[0])
		}
		feature = geojson.NewFeature(orb.Polygon{ring})
	} else {
		feature = geojson.NewFeature(orb.LineString(coords))
	}
	feature.Properties["layer"] = layer
	feature.Properties["etype"] = kind
	return feature
}

// DxfToGeoJSON previews one drawing as a GeoJSON feature collection
// for the map client: LWPOLYLINE and legacy POLYLINE entities, in
// model space and inside block definitions.
func DxfToGeoJSON(dxfPath string) (*geojson.FeatureCollection, error) {
	file, err := os.Open(dxfPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dxfPath, err)
	}
	defer file.Close()

	doc, err := document.DxfDocumentFromStream(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", dxfPath, err)
	}

	fc := geojson.NewFeatureCollection()
	add := func(e interface{}) {
		switch v := e.(type) {
		case *entities.Polyline:
			coords := make([]orb.Point, 0, len(v.Vertices))
			for _, vertex := range v.Vertices {
				coords = append(coords, orb.Point{vertex.Location.X, vertex.Location.Y})
			}
			if f := previewFeature(coords, v.LayerName, "POLYLINE", false); f != nil {
				fc.Append(f)
			}
		case *entities.LWPolyline:
			coords := make([]orb.Point, 0, len(v.Points))
			for _, vertex := range v.Points {
				coords = append(coords, orb.Point{vertex.Point.X, vertex.Point.Y})
			}
			if f := previewFeature(coords, v.LayerName, "LWPOLYLINE", v.Closed); f != nil {
				fc.Append(f)
			}
		}
	}

	for _, e := range doc.Entities.Entities {
		add(e)
	}
	for _, block := range doc.Blocks {
		for _, e := range block.Entities {
			add(e)
		}
	}
	return fc, nil
}
