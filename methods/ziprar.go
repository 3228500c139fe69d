package methods

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archiver/v3"
)

// Unzip unpacks an uploaded archive into a directory named after the
// archive, next to it. Zip is handled natively, rar through archiver.
func Unzip(src string) error {
	switch strings.ToLower(filepath.Ext(src)) {
	case ".zip":
		return UnzipZip(src)
	case ".rar":
		return UnzipRar(src)
	default:
		return errors.New("unsupported archive format")
	}
}

func UnzipZip(src string) error {
	dirpath, _ := filepath.Split(src)
	fileName := filepath.Base(src)
	fileExt := filepath.Ext(src)
	unpath := filepath.Join(dirpath, fileName[0:len(fileName)-len(fileExt)])

	if _, err := os.Stat(unpath); os.IsNotExist(err) {
		if err := os.Mkdir(unpath, os.ModePerm); err != nil {
			return err
		}
	}

	reader, err := zip.OpenReader(src)
	if err != nil {
		return err
	}
	defer reader.Close()

	for _, file := range reader.File {
		if err := extractFile(file, unpath); err != nil {
			return err
		}
	}
	return nil
}

func extractFile(zf *zip.File, dest string) error {
	fpath := filepath.Join(dest, zf.Name)

	// Reject entries that would land outside the destination.
	if !strings.HasPrefix(fpath, filepath.Clean(dest)+string(os.PathSeparator)) {
		return fmt.Errorf("%s: illegal file path", fpath)
	}

	if zf.FileInfo().IsDir() {
		os.MkdirAll(fpath, os.ModePerm)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(fpath), os.ModePerm); err != nil {
		return err
	}
	outFile, err := os.OpenFile(fpath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, zf.Mode())
	if err != nil {
		return err
	}
	rc, err := zf.Open()
	if err != nil {
		outFile.Close()
		return err
	}
	_, err = io.Copy(outFile, rc)
	rc.Close()
	outFile.Close()
	return err
}

func UnzipRar(src string) error {
	dirpath, _ := filepath.Split(src)
	fileName := filepath.Base(src)
	fileExt := filepath.Ext(src)
	unpath := filepath.Join(dirpath, fileName[0:len(fileName)-len(fileExt)])
	os.Mkdir(unpath, os.ModePerm)
	return archiver.Unarchive(src, unpath)
}

// ZipFileOut packs a result directory into an in-memory zip for
// download responses. Existing archives inside are skipped.
func ZipFileOut(folderPath string) ([]byte, error) {
	var buf bytes.Buffer
	zipWriter := zip.NewWriter(&buf)
	err := filepath.Walk(folderPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || strings.HasSuffix(path, ".zip") {
			return nil
		}
		relPath, err := filepath.Rel(folderPath, path)
		if err != nil {
			return err
		}
		zipFileHeader, err := zipWriter.Create(relPath)
		if err != nil {
			return err
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		_, err = io.Copy(zipFileHeader, file)
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := zipWriter.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
