package Transformer

// aciPalette holds the standard AutoCAD color index palette as 0xRRGGBB.
// Index 0 is the ByBlock sentinel and has no color of its own; valid
// lookups are 1..255. Index 256 (ByLayer) is likewise a sentinel and
// never reaches this table.
var aciPalette = [256]uint32{
	0x000000, 0xFF0000, 0xFFFF00, 0x00FF00, 0x00FFFF, 0x0000FF, 0xFF00FF, 0xFFFFFF,
	0x414141, 0x808080, 0xFF0000, 0xFFAAAA, 0xBD0000, 0xBD7E7E, 0x810000, 0x815656,
	0x680000, 0x684545, 0x4F0000, 0x4F3535, 0xFF3F00, 0xFFB9AA, 0xBD2E00, 0xBD897E,
	0x811F00, 0x815E56, 0x681900, 0x684B45, 0x4F1300, 0x4F3935, 0xFF7F00, 0xFFD4AA,
	0xBD5E00, 0xBD9D7E, 0x814000, 0x816B56, 0x683400, 0x685445, 0x4F2700, 0x4F4035,
	0xFFBF00, 0xFFEAAA, 0xBD8D00, 0xBDB17E, 0x816000, 0x817856, 0x684E00, 0x685E45,
	0x4F3B00, 0x4F4735, 0xFFFF00, 0xFFFFAA, 0xBDBD00, 0xBDBD7E, 0x818100, 0x818156,
	0x686800, 0x686845, 0x4F4F00, 0x4F4F35, 0xBFFF00, 0xEAFFAA, 0x8DBD00, 0xB1BD7E,
	0x608100, 0x788156, 0x4E6800, 0x5E6845, 0x3B4F00, 0x474F35, 0x7FFF00, 0xD4FFAA,
	0x5EBD00, 0x9DBD7E, 0x408100, 0x6B8156, 0x346800, 0x546845, 0x274F00, 0x404F35,
	0x3FFF00, 0xB9FFAA, 0x2EBD00, 0x89BD7E, 0x1F8100, 0x5E8156, 0x196800, 0x4B6845,
	0x134F00, 0x394F35, 0x00FF00, 0xAAFFAA, 0x00BD00, 0x7EBD7E, 0x008100, 0x568156,
	0x006800, 0x456845, 0x004F00, 0x354F35, 0x00FF3F, 0xAAFFB9, 0x00BD2E, 0x7EBD89,
	0x00811F, 0x56815E, 0x006819, 0x45684B, 0x004F13, 0x354F39, 0x00FF7F, 0xAAFFD4,
	0x00BD5E, 0x7EBD9D, 0x008140, 0x56816B, 0x006834, 0x456854, 0x004F27, 0x354F40,
	0x00FFBF, 0xAAFFEA, 0x00BD8D, 0x7EBDB1, 0x008160, 0x568178, 0x00684E, 0x45685E,
	0x004F3B, 0x354F47, 0x00FFFF, 0xAAFFFF, 0x00BDBD, 0x7EBDBD, 0x008181, 0x568181,
	0x006868, 0x456868, 0x004F4F, 0x354F4F, 0x00BFFF, 0xAAEAFF, 0x008DBD, 0x7EB1BD,
	0x006081, 0x567881, 0x004E68, 0x455E68, 0x003B4F, 0x35474F, 0x007FFF, 0xAAD4FF,
	0x005EBD, 0x7E9DBD, 0x004081, 0x566B81, 0x003468, 0x455468, 0x00274F, 0x35404F,
	0x003FFF, 0xAAB9FF, 0x002EBD, 0x7E89BD, 0x001F81, 0x565E81, 0x001968, 0x454B68,
	0x00134F, 0x35394F, 0x0000FF, 0xAAAAFF, 0x0000BD, 0x7E7EBD, 0x000081, 0x565681,
	0x000068, 0x454568, 0x00004F, 0x35354F, 0x3F00FF, 0xB9AAFF, 0x2E00BD, 0x897EBD,
	0x1F0081, 0x5E5681, 0x190068, 0x4B4568, 0x13004F, 0x39354F, 0x7F00FF, 0xD4AAFF,
	0x5E00BD, 0x9D7EBD, 0x400081, 0x6B5681, 0x340068, 0x544568, 0x27004F, 0x40354F,
	0xBF00FF, 0xEAAAFF, 0x8D00BD, 0xB17EBD, 0x600081, 0x785681, 0x4E0068, 0x5E4568,
	0x3B004F, 0x47354F, 0xFF00FF, 0xFFAAFF, 0xBD00BD, 0xBD7EBD, 0x810081, 0x815681,
	0x680068, 0x684568, 0x4F004F, 0x4F354F, 0xFF00BF, 0xFFAAEA, 0xBD008D, 0xBD7EB1,
	0x810060, 0x815678, 0x68004E, 0x68455E, 0x4F003B, 0x4F3547, 0xFF007F, 0xFFAAD4,
	0xBD005E, 0xBD7E9D, 0x810040, 0x81566B, 0x680034, 0x684554, 0x4F0027, 0x4F3540,
	0xFF003F, 0xFFAAB9, 0xBD002E, 0xBD7E89, 0x81001F, 0x81565E, 0x680019, 0x68454B,
	0x4F0013, 0x4F3539, 0x333333, 0x505050, 0x696969, 0x828282, 0xBEBEBE, 0xFFFFFF,
}

// AciToRGB resolves an AutoCAD color index to its palette color.
// The sentinels 0 and 256 and any out-of-range value report ok=false.
func AciToRGB(index int) (ColorSpec, bool) {
	if index < 1 || index > 255 {
		return ColorSpec{}, false
	}
	v := aciPalette[index]
	return ColorSpec{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, true
}

// NearestACI picks the palette index 1..255 closest to c by squared
// RGB distance. Ties resolve to the lowest index, so repeated calls
// are deterministic.
func NearestACI(c ColorSpec) int {
	best := 1
	bestDist := int64(1) << 62
	for i := 1; i <= 255; i++ {
		v := aciPalette[i]
		dr := int64(uint8(v>>16)) - int64(c.R)
		dg := int64(uint8(v>>8)) - int64(c.G)
		db := int64(uint8(v)) - int64(c.B)
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
