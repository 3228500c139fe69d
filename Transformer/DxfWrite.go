package Transformer

import (
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/entity"
)

// DxfWriter accumulates entities into a drawing and saves it once.
// The drawing format carries color per layer as a palette index, so a
// layer takes the nearest palette match of the first color written to
// it; features keep their exact RGB in the attribute row of the
// opposite direction.
type DxfWriter struct {
	drawing *drawing.Drawing
}

// NewDxfWriter starts an empty drawing.
func NewDxfWriter() *DxfWriter {
	d := dxf.NewDrawing()
	d.Header().LtScale = 1.0
	return &DxfWriter{drawing: d}
}

// useLayer creates the layer on first sight and makes it current.
// Creating an existing layer fails inside the library and leaves the
// original color in place, which is exactly the behavior wanted here.
func (w *DxfWriter) useLayer(name string, c ColorSpec) {
	if name == "" {
		return
	}
	w.drawing.AddLayer(name, color.ColorNumber(NearestACI(c)), dxf.DefaultLineType, true)
	w.drawing.ChangeLayer(name)
}

// Add writes one entity into the drawing.
func (w *DxfWriter) Add(e EntityOut) error {
	w.useLayer(e.Layer, e.Color)
	switch e.Kind {
	case "POINT":
		if len(e.Points) < 1 {
			return ErrUnsupportedGeometry
		}
		w.drawing.Point(e.Points[0].X, e.Points[0].Y, 0.0)
	case "LINE":
		if len(e.Points) < 2 {
			return ErrUnsupportedGeometry
		}
		w.drawing.Line(e.Points[0].X, e.Points[0].Y, 0.0, e.Points[1].X, e.Points[1].Y, 0.0)
	case "LWPOLYLINE":
		if len(e.Points) == 0 {
			return ErrUnsupportedGeometry
		}
		lwp := entity.NewLwPolyline(len(e.Points))
		for i, p := range e.Points {
			lwp.Vertices[i] = []float64{p.X, p.Y}
		}
		if e.Closed {
			lwp.Close()
		}
		w.drawing.AddEntity(lwp)
	default:
		return ErrUnsupportedGeometry
	}
	return nil
}

// SaveAs finalizes the drawing to path.
func (w *DxfWriter) SaveAs(path string) error {
	return w.drawing.SaveAs(path)
}
