package crs

import (
	"log"
	"os"
	"path/filepath"
	"strings"
)

// WritePrj writes the projection sidecar next to one shapefile. The
// descriptor text always ends with a single newline. An existing .prj
// is overwritten, that is what applying a selection means.
func WritePrj(shpPath string, wkt string) error {
	return os.WriteFile(sidecarPath(shpPath, ".prj"), []byte(wkt+"\n"), 0644)
}

// WriteCpgIfMissing declares UTF-8 attribute encoding for a shapefile
// unless a declaration is already present. Existing declarations are
// kept because they describe how the .dbf was actually written.
func WriteCpgIfMissing(shpPath string) error {
	cpg := sidecarPath(shpPath, ".cpg")
	if _, err := os.Stat(cpg); err == nil {
		return nil
	}
	return os.WriteFile(cpg, []byte("UTF-8"), 0644)
}

// WriteSidecars stamps one shapefile with the selected descriptor and
// the encoding declaration.
func WriteSidecars(shpPath string, e Entry) error {
	if err := WritePrj(shpPath, e.WKT); err != nil {
		return err
	}
	return WriteCpgIfMissing(shpPath)
}

// Apply stamps every shapefile under dir, recursively, with the
// selected descriptor. A file that cannot be stamped is logged and
// skipped so one bad path does not stop the rest. Returns the number
// of files stamped.
func Apply(dir string, e Entry) (int, error) {
	count := 0
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || strings.ToLower(filepath.Ext(path)) != ".shp" {
			return nil
		}
		if werr := WriteSidecars(path, e); werr != nil {
			log.Printf("apply CRS failed for %s: %v", path, werr)
			return nil
		}
		count++
		return nil
	})
	return count, err
}

func sidecarPath(shpPath, ext string) string {
	return strings.TrimSuffix(shpPath, filepath.Ext(shpPath)) + ext
}
