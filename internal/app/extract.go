package app

import (
	"strconv"
	"strings"
)

/********** alias registries (single source of truth) **********/

// Upstream records are loosely typed: the generative process that produces
// them is not consistent about field names. Each logical field gets an
// ordered alias list; extraction takes the first non-empty hit.

var idAliases = []string{
	"hotel_id", "hotelId", "hotelID", "id",
	"Hotel_ID", "HotelID", "agoda_id", "agodaId",
	"propertyId", "property_id",
}

var nameAliases = []string{
	"hotel_name", "hotelName", "HotelName", "Hotel_Name",
	"name", "title", "propertyName", "property_name",
}

var locationAliases = []string{
	"city", "location", "destination", "address", "region",
}

/********** tiny helpers **********/

// coerceString turns JSON scalars into strings; ids in particular arrive as
// numbers as often as strings.
func coerceString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	}
	return ""
}

// firstNonEmpty scans aliases in order, returning the first non-empty
// trimmed value.
func firstNonEmpty(m map[string]any, aliases []string) (string, bool) {
	for _, k := range aliases {
		v, ok := m[k]
		if !ok {
			continue
		}
		if s := strings.TrimSpace(coerceString(v)); s != "" {
			return s, true
		}
	}
	return "", false
}
