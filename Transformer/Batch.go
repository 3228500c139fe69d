package Transformer

import (
	"github.com/KartForge/ShpDxfBridge/crs"
)

// Batch is one conversion run between a source and a destination
// directory. CRS optionally names the projection stamped on shapefile
// output.
type Batch struct {
	SourceDir string
	DestDir   string
	CRS       string
}

// RunDxfToShp converts every drawing under SourceDir into shapefiles
// under DestDir. When CRS is set the selection is resolved before any
// file is written, so a bad token makes no changes, and the produced
// shapefiles are stamped once conversion finishes.
func (b Batch) RunDxfToShp() (Counts, error) {
	var entry crs.Entry
	if b.CRS != "" {
		e, err := crs.Resolve(b.CRS)
		if err != nil {
			return Counts{}, err
		}
		entry = e
	}

	counts, err := ConvertDxfDir(b.SourceDir, b.DestDir)
	if err != nil {
		return counts, err
	}

	if b.CRS != "" {
		if _, err := crs.Apply(b.DestDir, entry); err != nil {
			return counts, err
		}
	}
	return counts, nil
}

// RunShpToDxf converts every shapefile under SourceDir into drawings
// under DestDir. The CRS selection does not apply in this direction;
// drawings carry no projection sidecar.
func (b Batch) RunShpToDxf() (Counts, error) {
	return ConvertShpDir(b.SourceDir, b.DestDir)
}
