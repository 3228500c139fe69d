package Transformer

import (
	"fmt"
	"strconv"
	"strings"
)

// ColorSpec is a resolved RGB triple. The zero value is black, which
// is also the fallback of every resolution chain.
type ColorSpec struct {
	R uint8
	G uint8
	B uint8
}

// RGBText renders c in the canonical attribute form, e.g. "rgb(255,0,0)".
// This is the only color format the converters ever write.
func RGBText(c ColorSpec) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// ParseRGBText parses the canonical "rgb(R,G,B)" form. The prefix is
// matched case-insensitively and the channel values may carry spaces.
func ParseRGBText(s string) (ColorSpec, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 5 || !strings.EqualFold(s[:4], "rgb(") || !strings.HasSuffix(s, ")") {
		return ColorSpec{}, false
	}
	return parseTriple(strings.Split(s[4:len(s)-1], ","))
}

func parseTriple(parts []string) (ColorSpec, bool) {
	if len(parts) != 3 {
		return ColorSpec{}, false
	}
	var ch [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return ColorSpec{}, false
		}
		ch[i] = n
	}
	return ColorSpec{R: uint8(ch[0]), G: uint8(ch[1]), B: uint8(ch[2])}, true
}

// attributeResolvers are tried in order; the first hit wins. A field
// that is present but malformed falls through to the next step, so a
// bad value can never abort a feature.
var attributeResolvers = []func(AttributeRecord) (ColorSpec, bool){
	rgbTextColor,
	channelFieldsColor,
	hexFieldColor,
	csvFieldColor,
	aciFieldColor,
}

// ColorFromAttributes resolves a feature color from its attribute row.
// Total function: black when nothing matches.
func ColorFromAttributes(rec AttributeRecord) ColorSpec {
	for _, resolve := range attributeResolvers {
		if c, ok := resolve(rec); ok {
			return c
		}
	}
	return ColorSpec{}
}

func rgbTextColor(rec AttributeRecord) (ColorSpec, bool) {
	v, ok := rec.Get("rgb_text")
	if !ok {
		return ColorSpec{}, false
	}
	return ParseRGBText(v)
}

func channelFieldsColor(rec AttributeRecord) (ColorSpec, bool) {
	r, okR := rec.Int("r")
	g, okG := rec.Int("g")
	b, okB := rec.Int("b")
	if !okR || !okG || !okB {
		return ColorSpec{}, false
	}
	if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
		return ColorSpec{}, false
	}
	return ColorSpec{R: uint8(r), G: uint8(g), B: uint8(b)}, true
}

// colorField returns the first present field among the accepted names.
// Presence decides, not content: an empty "color" field shadows a
// populated "colour" one.
func colorField(rec AttributeRecord) (string, bool) {
	for _, name := range []string{"color", "colour", "clr"} {
		if v, ok := rec.Get(name); ok {
			return v, true
		}
	}
	return "", false
}

func hexFieldColor(rec AttributeRecord) (ColorSpec, bool) {
	v, ok := colorField(rec)
	if !ok {
		return ColorSpec{}, false
	}
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) != 6 {
		return ColorSpec{}, false
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return ColorSpec{}, false
	}
	return ColorSpec{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, true
}

func csvFieldColor(rec AttributeRecord) (ColorSpec, bool) {
	v, ok := colorField(rec)
	if !ok {
		return ColorSpec{}, false
	}
	s := strings.NewReplacer("(", "", ")", "").Replace(v)
	return parseTriple(strings.Split(s, ","))
}

func aciFieldColor(rec AttributeRecord) (ColorSpec, bool) {
	for _, name := range []string{"aci", "autocadcolorindex"} {
		v, ok := rec.Get(name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n == 0 || n == 256 {
			return ColorSpec{}, false
		}
		return AciToRGB(n)
	}
	return ColorSpec{}, false
}

// ColorFromEntity resolves a drawing entity color: explicit true color
// first, then the entity color index, then the color of its layer.
// The index sentinels 0 (ByBlock) and 256 (ByLayer) skip the entity
// step. A layer whose own color is unset counts as index 7. The chain
// never fails; anything unresolvable comes back black.
func ColorFromEntity(e *DxfEntity, layers map[string]int) ColorSpec {
	if e.TrueColor >= 0 {
		v := uint32(e.TrueColor)
		return ColorSpec{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
	}
	if e.ACI != 0 && e.ACI != 256 {
		if c, ok := AciToRGB(e.ACI); ok {
			return c
		}
	}
	name := e.Layer
	if name == "" {
		name = "0"
	}
	aci, ok := layers[name]
	if !ok {
		return ColorSpec{}
	}
	if aci < 0 {
		// Off layers store a negated color index.
		aci = -aci
	}
	if aci == 0 {
		aci = 7
	}
	if c, ok := AciToRGB(aci); ok {
		return c
	}
	return ColorSpec{}
}
