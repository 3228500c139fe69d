package Transformer

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DxfEntity is one decoded drawing entity. ACI carries the raw group 62
// value and defaults to 256 (ByLayer) when absent; TrueColor carries
// group 420 and is -1 when absent. Parts holds the vertex lists, one
// per sub-part; POINT and LINE always have exactly one.
type DxfEntity struct {
	Kind      string
	Layer     string
	Parts     [][]Point2D
	Closed    bool
	ACI       int
	TrueColor int64
}

type dxfTag struct {
	code  int
	value string
}

// ScanDxf decodes the entities and the layer color table of one DXF
// file. All model-space entity kinds are returned, including ones the
// mapper does not support, so the caller can log what it skipped.
//
// The reader library used for the GeoJSON preview exposes geometry and
// layer names only; the color chain also needs entity group 62/420 and
// the LAYER table colors, so this scanner works on the raw group codes.
func ScanDxf(path string) ([]DxfEntity, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open dxf: %w", err)
	}
	defer f.Close()
	tags, err := readTags(f)
	if err != nil {
		return nil, nil, fmt.Errorf("read dxf tags: %w", err)
	}
	ents, layers := parseTags(tags)
	return ents, layers, nil
}

// readTags consumes the code/value line pairs of a DXF text stream.
// Lines that do not form a valid pair are dropped rather than failing
// the whole file.
func readTags(r io.Reader) ([]dxfTag, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var tags []dxfTag
	for sc.Scan() {
		codeText := strings.TrimSpace(sc.Text())
		if !sc.Scan() {
			break
		}
		code, err := strconv.Atoi(codeText)
		if err != nil {
			continue
		}
		tags = append(tags, dxfTag{code: code, value: sc.Text()})
	}
	return tags, sc.Err()
}

func parseTags(tags []dxfTag) ([]DxfEntity, map[string]int) {
	layers := make(map[string]int)
	var ents []DxfEntity
	section := ""
	i := 0
	for i < len(tags) {
		t := tags[i]
		if t.code != 0 {
			i++
			continue
		}
		switch v := strings.TrimSpace(t.value); v {
		case "SECTION":
			if i+1 < len(tags) && tags[i+1].code == 2 {
				section = strings.TrimSpace(tags[i+1].value)
				i += 2
				continue
			}
			i++
		case "ENDSEC":
			section = ""
			i++
		case "EOF":
			return ents, layers
		default:
			switch section {
			case "TABLES":
				if v == "LAYER" {
					i = parseLayerRow(tags, i+1, layers)
					continue
				}
				i++
			case "ENTITIES":
				var e DxfEntity
				switch v {
				case "POINT":
					e, i = parsePoint(tags, i+1)
				case "LINE":
					e, i = parseLine(tags, i+1)
				case "LWPOLYLINE":
					e, i = parseLwPolyline(tags, i+1)
				case "POLYLINE":
					e, i = parsePolyline(tags, i+1)
				case "VERTEX", "SEQEND":
					// Stray continuation records outside a POLYLINE.
					i = entityEnd(tags, i+1)
					continue
				default:
					e = newDxfEntity(v)
					i = entityEnd(tags, i+1)
				}
				ents = append(ents, e)
			default:
				i++
			}
		}
	}
	return ents, layers
}

func newDxfEntity(kind string) DxfEntity {
	return DxfEntity{Kind: kind, ACI: 256, TrueColor: -1}
}

// entityEnd returns the index of the next code 0 tag at or after i.
func entityEnd(tags []dxfTag, i int) int {
	for i < len(tags) && tags[i].code != 0 {
		i++
	}
	return i
}

func tagFloat(t dxfTag) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(t.value), 64)
	return v
}

func tagInt(t dxfTag) int {
	v, _ := strconv.Atoi(strings.TrimSpace(t.value))
	return v
}

// applyCommon folds the groups every entity kind shares.
func applyCommon(e *DxfEntity, t dxfTag) bool {
	switch t.code {
	case 8:
		e.Layer = strings.TrimSpace(t.value)
	case 62:
		e.ACI = tagInt(t)
	case 420:
		v, err := strconv.ParseInt(strings.TrimSpace(t.value), 10, 64)
		if err == nil {
			e.TrueColor = v
		}
	default:
		return false
	}
	return true
}

func parsePoint(tags []dxfTag, i int) (DxfEntity, int) {
	e := newDxfEntity("POINT")
	var p Point2D
	for ; i < len(tags) && tags[i].code != 0; i++ {
		t := tags[i]
		if applyCommon(&e, t) {
			continue
		}
		switch t.code {
		case 10:
			p.X = tagFloat(t)
		case 20:
			p.Y = tagFloat(t)
		}
	}
	e.Parts = [][]Point2D{{p}}
	return e, i
}

func parseLine(tags []dxfTag, i int) (DxfEntity, int) {
	e := newDxfEntity("LINE")
	var start, end Point2D
	for ; i < len(tags) && tags[i].code != 0; i++ {
		t := tags[i]
		if applyCommon(&e, t) {
			continue
		}
		switch t.code {
		case 10:
			start.X = tagFloat(t)
		case 20:
			start.Y = tagFloat(t)
		case 11:
			end.X = tagFloat(t)
		case 21:
			end.Y = tagFloat(t)
		}
	}
	e.Parts = [][]Point2D{{start, end}}
	return e, i
}

func parseLwPolyline(tags []dxfTag, i int) (DxfEntity, int) {
	e := newDxfEntity("LWPOLYLINE")
	var pts []Point2D
	for ; i < len(tags) && tags[i].code != 0; i++ {
		t := tags[i]
		if applyCommon(&e, t) {
			continue
		}
		switch t.code {
		case 70:
			e.Closed = tagInt(t)&1 != 0
		case 10:
			pts = append(pts, Point2D{X: tagFloat(t)})
		case 20:
			if len(pts) > 0 {
				pts[len(pts)-1].Y = tagFloat(t)
			}
		}
	}
	e.Parts = [][]Point2D{pts}
	return e, i
}

// parsePolyline reads the legacy POLYLINE container including its
// VERTEX records up to the closing SEQEND.
func parsePolyline(tags []dxfTag, i int) (DxfEntity, int) {
	e := newDxfEntity("POLYLINE")
	for ; i < len(tags) && tags[i].code != 0; i++ {
		t := tags[i]
		if applyCommon(&e, t) {
			continue
		}
		if t.code == 70 {
			e.Closed = tagInt(t)&1 != 0
		}
	}
	var pts []Point2D
	for i < len(tags) {
		if tags[i].code != 0 {
			i++
			continue
		}
		switch strings.TrimSpace(tags[i].value) {
		case "VERTEX":
			var p Point2D
			for i++; i < len(tags) && tags[i].code != 0; i++ {
				switch tags[i].code {
				case 10:
					p.X = tagFloat(tags[i])
				case 20:
					p.Y = tagFloat(tags[i])
				}
			}
			pts = append(pts, p)
		case "SEQEND":
			i = entityEnd(tags, i+1)
			e.Parts = [][]Point2D{pts}
			return e, i
		default:
			// Missing SEQEND; the next entity starts here.
			e.Parts = [][]Point2D{pts}
			return e, i
		}
	}
	e.Parts = [][]Point2D{pts}
	return e, i
}

// parseLayerRow reads one LAYER table row into the name to color map.
func parseLayerRow(tags []dxfTag, i int, layers map[string]int) int {
	name := ""
	color := 0
	for ; i < len(tags) && tags[i].code != 0; i++ {
		t := tags[i]
		switch t.code {
		case 2:
			name = strings.TrimSpace(t.value)
		case 62:
			color = tagInt(t)
		}
	}
	if name != "" {
		layers[name] = color
	}
	return i
}
