package Transformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRGBTextRoundTrip(t *testing.T) {
	colors := []ColorSpec{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
		{R: 12, G: 34, B: 56},
		{R: 255, G: 255, B: 255},
	}
	for _, c := range colors {
		text := RGBText(c)
		got, ok := ParseRGBText(text)
		assert.True(t, ok, text)
		assert.Equal(t, c, got, text)
	}
}

func TestRGBTextFormat(t *testing.T) {
	assert.Equal(t, "rgb(255,0,0)", RGBText(ColorSpec{R: 255}))
	assert.Equal(t, "rgb(0,0,0)", RGBText(ColorSpec{}))
	assert.Equal(t, "rgb(10,20,30)", RGBText(ColorSpec{R: 10, G: 20, B: 30}))
}

func TestParseRGBTextVariants(t *testing.T) {
	cases := map[string]ColorSpec{
		"rgb(255,0,0)":            {R: 255},
		"RGB(1,2,3)":              {R: 1, G: 2, B: 3},
		"Rgb(0, 0, 255)":          {B: 255},
		"  rgb( 10 , 20 , 30 )  ": {R: 10, G: 20, B: 30},
	}
	for in, want := range cases {
		got, ok := ParseRGBText(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseRGBTextRejects(t *testing.T) {
	bad := []string{
		"",
		"rgb",
		"rgb()",
		"rgb(1,2)",
		"rgb(1,2,3,4)",
		"rgb(256,0,0)",
		"rgb(-1,0,0)",
		"rgb(a,b,c)",
		"rgb(1,2,3",
		"1,2,3",
		"hsl(1,2,3)",
	}
	for _, in := range bad {
		_, ok := ParseRGBText(in)
		assert.False(t, ok, in)
	}
}

// The resolver chain tries rgb_text, then the three channel fields,
// then a hex color field, then the same field as a CSV triple, then an
// index field. Deleting the winner at each step must hand the record to
// the next resolver.
func TestColorResolutionOrder(t *testing.T) {
	rec := AttributeRecord{
		"rgb_text": "rgb(1,2,3)",
		"r":        "10",
		"g":        "20",
		"b":        "30",
		"color":    "ff8000",
		"aci":      "5",
	}

	assert.Equal(t, ColorSpec{R: 1, G: 2, B: 3}, ColorFromAttributes(rec))

	delete(rec, "rgb_text")
	assert.Equal(t, ColorSpec{R: 10, G: 20, B: 30}, ColorFromAttributes(rec))

	delete(rec, "g")
	assert.Equal(t, ColorSpec{R: 255, G: 128}, ColorFromAttributes(rec))

	delete(rec, "color")
	assert.Equal(t, ColorSpec{B: 255}, ColorFromAttributes(rec))

	delete(rec, "aci")
	assert.Equal(t, ColorSpec{}, ColorFromAttributes(rec))
}

func TestColorFromAttributesChannelFields(t *testing.T) {
	rec := AttributeRecord{"r": "255", "g": "0", "b": "128"}
	assert.Equal(t, ColorSpec{R: 255, B: 128}, ColorFromAttributes(rec))

	// All three channels must be present and in range.
	assert.Equal(t, ColorSpec{}, ColorFromAttributes(AttributeRecord{"r": "1", "g": "2"}))
	assert.Equal(t, ColorSpec{}, ColorFromAttributes(AttributeRecord{"r": "300", "g": "0", "b": "0"}))
	assert.Equal(t, ColorSpec{}, ColorFromAttributes(AttributeRecord{"r": "x", "g": "0", "b": "0"}))
}

func TestColorFromAttributesHexField(t *testing.T) {
	cases := map[string]ColorSpec{
		"ff0000":  {R: 255},
		"#00FF00": {G: 255},
		"0000ff":  {B: 255},
	}
	for in, want := range cases {
		assert.Equal(t, want, ColorFromAttributes(AttributeRecord{"colour": in}), in)
	}
}

func TestColorFromAttributesCsvField(t *testing.T) {
	cases := map[string]ColorSpec{
		"12,34,56":     {R: 12, G: 34, B: 56},
		"(255, 0, 0)":  {R: 255},
		" 0 , 0 , 255": {B: 255},
	}
	for in, want := range cases {
		assert.Equal(t, want, ColorFromAttributes(AttributeRecord{"clr": in}), in)
	}
}

// The first color field present decides; a malformed value in it falls
// through the chain instead of consulting the next field name.
func TestColorFieldPresenceShadowing(t *testing.T) {
	rec := AttributeRecord{"color": "notacolor", "colour": "00ff00"}
	assert.Equal(t, ColorSpec{}, ColorFromAttributes(rec))

	rec = AttributeRecord{"aci": "banana", "autocadcolorindex": "1"}
	assert.Equal(t, ColorSpec{}, ColorFromAttributes(rec))
}

func TestColorFromAttributesIndexField(t *testing.T) {
	assert.Equal(t, ColorSpec{R: 255}, ColorFromAttributes(AttributeRecord{"aci": "1"}))
	assert.Equal(t, ColorSpec{B: 255}, ColorFromAttributes(AttributeRecord{"autocadcolorindex": "5"}))

	// ByBlock and ByLayer sentinels and out-of-range values go black.
	for _, v := range []string{"0", "256", "300", "-1", "banana"} {
		assert.Equal(t, ColorSpec{}, ColorFromAttributes(AttributeRecord{"aci": v}), v)
	}
}

func TestColorFromAttributesFieldNamesCaseInsensitive(t *testing.T) {
	rec := NewAttributeRecord([]string{"RGB_Text"}, []string{"rgb(9,8,7)"})
	assert.Equal(t, ColorSpec{R: 9, G: 8, B: 7}, ColorFromAttributes(rec))
}

func TestColorFromAttributesEmpty(t *testing.T) {
	assert.Equal(t, ColorSpec{}, ColorFromAttributes(AttributeRecord{}))
	assert.Equal(t, ColorSpec{}, ColorFromAttributes(nil))
}

func TestColorFromEntityTrueColorWins(t *testing.T) {
	e := &DxfEntity{Kind: "POINT", Layer: "A", ACI: 5, TrueColor: 0xFF0000}
	layers := map[string]int{"A": 3}
	assert.Equal(t, ColorSpec{R: 255}, ColorFromEntity(e, layers))

	// True color zero is explicit black, not an unset marker.
	e = &DxfEntity{Kind: "POINT", Layer: "A", ACI: 5, TrueColor: 0}
	assert.Equal(t, ColorSpec{}, ColorFromEntity(e, layers))
}

func TestColorFromEntityIndexColor(t *testing.T) {
	layers := map[string]int{"A": 3}
	e := &DxfEntity{Kind: "POINT", Layer: "A", ACI: 5, TrueColor: -1}
	assert.Equal(t, ColorSpec{B: 255}, ColorFromEntity(e, layers))

	// ByBlock (0) and ByLayer (256) defer to the layer color.
	e = &DxfEntity{Kind: "POINT", Layer: "A", ACI: 0, TrueColor: -1}
	assert.Equal(t, ColorSpec{G: 255}, ColorFromEntity(e, layers))
	e = &DxfEntity{Kind: "POINT", Layer: "A", ACI: 256, TrueColor: -1}
	assert.Equal(t, ColorSpec{G: 255}, ColorFromEntity(e, layers))

	// An index outside the palette falls through to the layer too.
	e = &DxfEntity{Kind: "POINT", Layer: "A", ACI: 300, TrueColor: -1}
	assert.Equal(t, ColorSpec{G: 255}, ColorFromEntity(e, layers))
}

func TestColorFromEntityLayerFallbacks(t *testing.T) {
	e := &DxfEntity{Kind: "POINT", Layer: "missing", ACI: 256, TrueColor: -1}
	assert.Equal(t, ColorSpec{}, ColorFromEntity(e, map[string]int{"A": 1}))

	// Empty entity layer means layer "0".
	e = &DxfEntity{Kind: "POINT", ACI: 256, TrueColor: -1}
	assert.Equal(t, ColorSpec{R: 255}, ColorFromEntity(e, map[string]int{"0": 1}))

	// Layer color zero falls back to index 7.
	e = &DxfEntity{Kind: "POINT", Layer: "A", ACI: 256, TrueColor: -1}
	assert.Equal(t, ColorSpec{R: 255, G: 255, B: 255}, ColorFromEntity(e, map[string]int{"A": 0}))

	// Off layers store a negated index; the color is the absolute value.
	assert.Equal(t, ColorSpec{B: 255}, ColorFromEntity(e, map[string]int{"A": -5}))

	assert.Equal(t, ColorSpec{}, ColorFromEntity(e, nil))
}
