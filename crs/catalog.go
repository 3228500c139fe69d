// Package crs builds the descriptor text for the projected zone
// systems commonly used for Norwegian vector data and matches
// free-form selection tokens against that catalog.
//
// EUREF89 is the Scandinavian name of the ETRS89 frame. The labels and
// selection keys say EUREF89 while the embedded GEOGCS/DATUM keep the
// EPSG-official ETRS89 naming; both spellings are intentional.
package crs

import (
	"fmt"
	"strconv"
)

// Entry is one catalog row. WKT is the exact descriptor text written
// into .prj sidecars. EPSG is shown to users and never participates in
// selection matching.
type Entry struct {
	Label string
	Key   string
	EPSG  int
	WKT   string
}

const (
	geogcsWGS84  = `GEOGCS["WGS 84",DATUM["WGS_1984",SPHEROID["WGS 84",6378137,298.257223563]],PRIMEM["Greenwich",0],UNIT["degree",0.0174532925199433]]`
	geogcsETRS89 = `GEOGCS["ETRS89",DATUM["ETRS_1989",SPHEROID["GRS 1980",6378137,298.257222101]],PRIMEM["Greenwich",0],UNIT["degree",0.0174532925199433]]`
)

// buildTM renders a WKT1 transverse-Mercator PROJCS. The numeric
// parameters arrive preformatted so the descriptor stays stable down
// to the digit.
func buildTM(name, geogcs, lat0, lon0, k0, fe, fn string) string {
	return `PROJCS["` + name + `",` + geogcs +
		`,PROJECTION["Transverse_Mercator"]` +
		`,PARAMETER["latitude_of_origin",` + lat0 + `]` +
		`,PARAMETER["central_meridian",` + lon0 + `]` +
		`,PARAMETER["scale_factor",` + k0 + `]` +
		`,PARAMETER["false_easting",` + fe + `]` +
		`,PARAMETER["false_northing",` + fn + `]` +
		`,UNIT["metre",1]]`
}

// UtmEuref89 builds the EUREF89 / UTM descriptor for one zone.
// UTM north zones: central meridian 6*zone-183, scale 0.9996,
// false easting 500000.
func UtmEuref89(zone int) Entry {
	name := fmt.Sprintf("EUREF89 / UTM zone %dN", zone)
	return Entry{
		Label: name,
		Key:   fmt.Sprintf("EUREF89/UTM%d", zone),
		EPSG:  25800 + zone,
		WKT:   buildTM(name, geogcsETRS89, "0", strconv.Itoa(6*zone-183), "0.9996", "500000.0", "0.0"),
	}
}

// UtmWgs84 builds the WGS 84 / UTM descriptor for one zone. Identical
// projection parameters to the EUREF89 family, different datum.
func UtmWgs84(zone int) Entry {
	name := fmt.Sprintf("WGS 84 / UTM zone %dN", zone)
	return Entry{
		Label: name,
		Key:   fmt.Sprintf("WGS84/UTM%d", zone),
		EPSG:  32600 + zone,
		WKT:   buildTM(name, geogcsWGS84, "0", strconv.Itoa(6*zone-183), "0.9996", "500000.0", "0.0"),
	}
}

// Ntm builds the EUREF89 / NTM descriptor for one zone. NTM bands are
// one degree wide, centered on the half degree, with scale 1 and the
// engineering false origin 100000/1000000.
func Ntm(zone int) Entry {
	name := fmt.Sprintf("EUREF89 / NTM zone %d", zone)
	return Entry{
		Label: name,
		Key:   fmt.Sprintf("NTM/%d", zone),
		EPSG:  5100 + zone,
		WKT:   buildTM(name, geogcsETRS89, "0.0", fmt.Sprintf("%d.5", zone), "1.0", "100000.0", "1000000.0"),
	}
}

// utmZones are the UTM zones covering the Norwegian mainland.
var utmZones = []int{32, 33, 35}

var catalog = buildCatalog()

var keyIndex = buildKeyIndex()

func buildCatalog() []Entry {
	entries := make([]Entry, 0, 22)
	for _, z := range utmZones {
		entries = append(entries, UtmEuref89(z))
	}
	for _, z := range utmZones {
		entries = append(entries, UtmWgs84(z))
	}
	for z := 5; z <= 20; z++ {
		entries = append(entries, Ntm(z))
	}
	return entries
}

func buildKeyIndex() map[string]int {
	m := make(map[string]int, len(catalog))
	for i, e := range catalog {
		m[e.Key] = i
	}
	return m
}

// Catalog returns the fixed selection list: the EUREF89/UTM zones,
// then the WGS84/UTM zones, then the NTM bands 5 to 20. Callers must
// treat the slice as read-only.
func Catalog() []Entry {
	return catalog
}

// Lookup finds a catalog entry by its canonical key, e.g. "NTM/10".
func Lookup(key string) (Entry, bool) {
	i, ok := keyIndex[key]
	if !ok {
		return Entry{}, false
	}
	return catalog[i], true
}
