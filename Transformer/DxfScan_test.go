package Transformer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDxf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drawing.dxf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// Group code lines carry the leading spaces CAD exporters emit.
const scanFixture = `  0
SECTION
  2
TABLES
  0
TABLE
  2
LAYER
 70
     2
  0
LAYER
  2
A
 70
     0
 62
     5
  0
LAYER
  2
B
 70
     0
 62
    -3
  0
ENDTAB
  0
ENDSEC
  0
SECTION
  2
ENTITIES
  0
POINT
  8
A
 62
     1
 10
10.5
 20
20.25
  0
LINE
  8
B
420
16711680
 10
0.0
 20
0.0
 11
3.0
 21
4.0
  0
LWPOLYLINE
  8
A
 90
     4
 70
     1
 10
0.0
 20
0.0
 10
4.0
 20
0.0
 10
4.0
 20
4.0
 10
0.0
 20
4.0
  0
POLYLINE
  8
B
 66
     1
 70
     0
  0
VERTEX
  8
B
 10
1.0
 20
1.0
  0
VERTEX
  8
B
 10
2.0
 20
2.0
  0
SEQEND
  8
B
  0
CIRCLE
  8
A
 10
5.0
 20
5.0
 40
2.0
  0
ENDSEC
  0
EOF
`

func TestScanDxf(t *testing.T) {
	ents, layers, err := ScanDxf(writeDxf(t, scanFixture))
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"A": 5, "B": -3}, layers)
	require.Len(t, ents, 5)

	pt := ents[0]
	assert.Equal(t, "POINT", pt.Kind)
	assert.Equal(t, "A", pt.Layer)
	assert.Equal(t, 1, pt.ACI)
	assert.Equal(t, int64(-1), pt.TrueColor)
	assert.Equal(t, Point2D{X: 10.5, Y: 20.25}, pt.Parts[0][0])

	line := ents[1]
	assert.Equal(t, "LINE", line.Kind)
	assert.Equal(t, int64(16711680), line.TrueColor)
	assert.Equal(t, 256, line.ACI)
	assert.Equal(t, [][]Point2D{{{X: 0, Y: 0}, {X: 3, Y: 4}}}, line.Parts)

	lwp := ents[2]
	assert.Equal(t, "LWPOLYLINE", lwp.Kind)
	assert.True(t, lwp.Closed)
	require.Len(t, lwp.Parts[0], 4)
	assert.Equal(t, Point2D{X: 0, Y: 4}, lwp.Parts[0][3])

	pl := ents[3]
	assert.Equal(t, "POLYLINE", pl.Kind)
	assert.False(t, pl.Closed)
	assert.Equal(t, [][]Point2D{{{X: 1, Y: 1}, {X: 2, Y: 2}}}, pl.Parts)

	// Unsupported kinds still come back so the caller can log them.
	assert.Equal(t, "CIRCLE", ents[4].Kind)
	assert.Empty(t, ents[4].Parts)
}

// A POLYLINE whose SEQEND is missing ends at the next entity record.
const truncatedPolylineFixture = `  0
SECTION
  2
ENTITIES
  0
POLYLINE
 70
     1
  0
VERTEX
 10
0.0
 20
0.0
  0
VERTEX
 10
2.0
 20
0.0
  0
VERTEX
 10
1.0
 20
2.0
  0
LINE
 10
0.0
 20
0.0
 11
1.0
 21
1.0
  0
ENDSEC
  0
EOF
`

func TestScanDxfPolylineWithoutSeqend(t *testing.T) {
	ents, _, err := ScanDxf(writeDxf(t, truncatedPolylineFixture))
	require.NoError(t, err)
	require.Len(t, ents, 2)

	pl := ents[0]
	assert.Equal(t, "POLYLINE", pl.Kind)
	assert.True(t, pl.Closed)
	assert.Len(t, pl.Parts[0], 3)
	assert.Equal(t, "LINE", ents[1].Kind)
}

const strayRecordsFixture = `not-a-code
whatever
  0
SECTION
  2
ENTITIES
  0
VERTEX
 10
9.0
 20
9.0
  0
SEQEND
  0
POINT
 10
1.0
 20
2.0
`

func TestScanDxfToleratesStrayRecords(t *testing.T) {
	// Malformed leading pair, orphaned VERTEX/SEQEND and a missing EOF
	// marker; the point must still come through.
	ents, _, err := ScanDxf(writeDxf(t, strayRecordsFixture))
	require.NoError(t, err)
	require.Len(t, ents, 1)
	assert.Equal(t, "POINT", ents[0].Kind)
	assert.Equal(t, Point2D{X: 1, Y: 2}, ents[0].Parts[0][0])
	// No color groups at all leaves the ByLayer defaults in place.
	assert.Equal(t, 256, ents[0].ACI)
	assert.Equal(t, int64(-1), ents[0].TrueColor)
}

func TestScanDxfMissingFile(t *testing.T) {
	_, _, err := ScanDxf(filepath.Join(t.TempDir(), "nope.dxf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open dxf")
}
