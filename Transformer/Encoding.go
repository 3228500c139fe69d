package Transformer

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// ReadCpgEncoding returns the encoding name declared by the .cpg file
// next to a shapefile, or "" when no declaration exists.
func ReadCpgEncoding(shpPath string) string {
	dir := filepath.Dir(shpPath)
	base := filepath.Base(shpPath)
	cpgPath := filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".cpg")
	content, err := os.ReadFile(cpgPath)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(content))
}

// DetectCharset sniffs the charset of raw attribute bytes. Used when a
// shapefile carries no .cpg declaration.
func DetectCharset(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil {
		return ""
	}
	return result.Charset
}

// textDecoder maps an encoding name onto a decoder. UTF-8 and plain
// ASCII need no decoding and come back nil.
func textDecoder(name string) encoding.Encoding {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "UTF-8", "UTF8", "ASCII", "US-ASCII":
		return nil
	case "ISO-8859-1", "LATIN1", "8859":
		return charmap.ISO8859_1
	case "WINDOWS-1252", "CP1252", "ANSI 1252":
		return charmap.Windows1252
	case "GBK", "GB2312", "GB-2312", "GB18030":
		return simplifiedchinese.GB18030
	default:
		return nil
	}
}

// TextReader decodes shapefile attribute text read as raw bytes.
type TextReader struct {
	enc encoding.Encoding
}

// NewTextReader picks the decoder for one shapefile: the .cpg
// declaration when present, otherwise a charset sniff of the sample
// bytes handed in by the caller.
func NewTextReader(shpPath string, sample []byte) *TextReader {
	name := ReadCpgEncoding(shpPath)
	if name == "" {
		name = DetectCharset(sample)
	}
	return &TextReader{enc: textDecoder(name)}
}

// Decode converts one raw attribute value to UTF-8. Values that fail
// to decode pass through unchanged rather than dropping the feature.
func (tr *TextReader) Decode(s string) string {
	if tr == nil || tr.enc == nil || s == "" {
		return s
	}
	reader := transform.NewReader(bytes.NewReader([]byte(s)), tr.enc.NewDecoder())
	d, err := io.ReadAll(reader)
	if err != nil {
		return s
	}
	return string(d)
}
