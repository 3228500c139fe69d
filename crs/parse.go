package crs

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Selection errors. Both are fatal to the selection; there is no
// fallback projection.
var (
	ErrInvalidSelection = errors.New("invalid CRS selection")
	ErrZoneOutOfRange   = errors.New("CRS zone out of range")
)

const usageHint = "use an index (1..22), 'UTM33' (EUREF89), 'WGS/UTM32' or 'WGS84/UTM32', 'EUREF89/UTM35', or 'NTM/10'"

// The token patterns are tried in order. The WGS84 form must come
// before the bare UTM form: both end in UTM<zone> and only the prefix
// tells them apart, and a bare zone always means EUREF89.
var (
	digitsPattern   = regexp.MustCompile(`^\d+$`)
	wgsUtmPattern   = regexp.MustCompile(`^(WGS|WGS84)/UTM(\d{2})N?$`)
	eurefUtmPattern = regexp.MustCompile(`^((EUREF89|ETRS89)/)?UTM(\d{2})N?$`)
	ntmPattern      = regexp.MustCompile(`^NTM/(\d{1,2})$`)
)

// Resolve matches a selection token against the catalog and returns
// the chosen entry. A token of digits only is a 1-based catalog index;
// anything else is matched case-insensitively with spaces removed.
// EUREF89 and ETRS89 prefixes are interchangeable, as are WGS and
// WGS84, and a trailing N on UTM zones is optional.
func Resolve(token string) (Entry, error) {
	s := strings.TrimSpace(token)

	if digitsPattern.MatchString(s) {
		idx, err := strconv.Atoi(s)
		if err != nil || idx < 1 || idx > len(catalog) {
			return Entry{}, fmt.Errorf("%w: index %q out of range 1..%d", ErrInvalidSelection, s, len(catalog))
		}
		return catalog[idx-1], nil
	}

	t := strings.ToUpper(strings.ReplaceAll(s, " ", ""))

	if m := wgsUtmPattern.FindStringSubmatch(t); m != nil {
		return lookupUtm("WGS84/UTM" + m[2])
	}
	if m := eurefUtmPattern.FindStringSubmatch(t); m != nil {
		return lookupUtm("EUREF89/UTM" + m[3])
	}
	if m := ntmPattern.FindStringSubmatch(t); m != nil {
		zone, _ := strconv.Atoi(m[1])
		if zone < 5 || zone > 20 {
			return Entry{}, fmt.Errorf("%w: NTM zone must be 5-20 for mainland Norway", ErrZoneOutOfRange)
		}
		e, _ := Lookup(fmt.Sprintf("NTM/%d", zone))
		return e, nil
	}

	return Entry{}, fmt.Errorf("%w: %q; %s", ErrInvalidSelection, token, usageHint)
}

// lookupUtm resolves a UTM catalog key, reporting a range error for
// zones the catalog does not carry.
func lookupUtm(key string) (Entry, error) {
	if e, ok := Lookup(key); ok {
		return e, nil
	}
	return Entry{}, fmt.Errorf("%w: %s is not in the catalog (UTM zones 32, 33 and 35 only)", ErrZoneOutOfRange, key)
}
