package Transformer

import (
	"os"
	"path/filepath"
	"strings"
)

// FindFiles walks root and collects every file whose name ends in
// "."+ext, case-insensitively. ext is given without the dot.
func FindFiles(root string, ext string) []string {
	var files []string
	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(strings.ToLower(info.Name()), "."+ext) {
			files = append(files, path)
		}
		return nil
	})
	return files
}
