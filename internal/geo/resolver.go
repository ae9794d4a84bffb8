// Package geo reconciles the inconsistent country and customs-office
// names found in the trade spreadsheets against static reference
// tables: region buckets, ISO alpha-3 codes, English names and map
// coordinates.
package geo

import (
	"strings"
)

// Resolver answers name lookups. All indexes are lowercased once at
// construction so per-request lookups never re-normalize the tables.
type Resolver struct {
	isoByName    map[string]string // lowercased country name -> ISO
	isoOrder     []isoEntry        // table order, for substring scans
	nameByISO    map[string]string
	coordsByName map[string][2]float64
	officeCoords map[string][2]float64
	officeOrder  []officeEntry
	regionOrder  []regionBucket
}

type isoEntry struct {
	lower string
	iso   string
}

type officeEntry struct {
	lower  string
	coords [2]float64
}

type regionBucket struct {
	name    string
	members []memberEntry
}

type memberEntry struct {
	lower string
	words []string
}

// NewResolver builds the lookup indexes from the reference tables.
func NewResolver() *Resolver {
	r := &Resolver{
		isoByName:    make(map[string]string, len(countryISOOrder)),
		isoOrder:     make([]isoEntry, 0, len(countryISOOrder)),
		nameByISO:    isoName,
		coordsByName: countryCoords,
		officeCoords: officeCoords,
		officeOrder:  make([]officeEntry, 0, len(officeCoordsOrder)),
		regionOrder:  make([]regionBucket, 0, len(regionTable)),
	}

	for _, e := range countryISOOrder {
		lower := strings.ToLower(e.name)
		if _, ok := r.isoByName[lower]; !ok {
			r.isoByName[lower] = e.iso
		}
		r.isoOrder = append(r.isoOrder, isoEntry{lower: lower, iso: e.iso})
	}

	for _, name := range officeCoordsOrder {
		r.officeOrder = append(r.officeOrder, officeEntry{
			lower:  strings.ToLower(name),
			coords: officeCoords[name],
		})
	}

	for _, bucket := range regionTable {
		rb := regionBucket{name: bucket.name, members: make([]memberEntry, 0, len(bucket.members))}
		for _, m := range bucket.members {
			lower := strings.ToLower(strings.TrimSpace(m))
			rb.members = append(rb.members, memberEntry{
				lower: lower,
				words: strings.Fields(lower),
			})
		}
		r.regionOrder = append(r.regionOrder, rb)
	}

	return r
}

// ISO resolves a country name to its ISO alpha-3 code. Lookup runs in
// three stages: exact case-insensitive match, then a bidirectional
// substring scan in table order. Unknown names return "".
func (r *Resolver) ISO(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	lower := strings.ToLower(trimmed)

	if iso, ok := r.isoByName[lower]; ok {
		return iso
	}

	for _, e := range r.isoOrder {
		if strings.Contains(lower, e.lower) || strings.Contains(e.lower, lower) {
			return e.iso
		}
	}

	return ""
}

// EnglishName maps an ISO code back to its English country name,
// returning fallback for unknown codes.
func (r *Resolver) EnglishName(iso, fallback string) string {
	if name, ok := r.nameByISO[iso]; ok {
		return name
	}
	return fallback
}

// Coordinates returns map marker coordinates for a country name.
// Exact match only.
func (r *Resolver) Coordinates(name string) ([2]float64, bool) {
	coords, ok := r.coordsByName[strings.TrimSpace(name)]
	return coords, ok
}

// OfficeCoordinates returns coordinates for a customs office, trying
// an exact match and then a bidirectional substring scan.
func (r *Resolver) OfficeCoordinates(name string) ([2]float64, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return [2]float64{}, false
	}

	if coords, ok := r.officeCoords[trimmed]; ok {
		return coords, true
	}

	lower := strings.ToLower(trimmed)
	for _, e := range r.officeOrder {
		if strings.Contains(lower, e.lower) || strings.Contains(e.lower, lower) {
			return e.coords, true
		}
	}

	return [2]float64{}, false
}

// RegionOther is the fallback bucket for unmatched countries.
const RegionOther = "Other"

// Region buckets a country name into a world region. Matching per
// bucket member: exact match first; in North America the US aliases
// (usa, us, america) are equivalent to "united states"; elsewhere a
// word-set subset in either direction counts as a match. Unmatched
// names land in RegionOther.
func (r *Resolver) Region(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return RegionOther
	}
	words := strings.Fields(lower)

	for _, bucket := range r.regionOrder {
		for _, m := range bucket.members {
			if lower == m.lower {
				return bucket.name
			}

			if bucket.name == "North America" {
				if (lower == "usa" && m.lower == "united states") ||
					(lower == "united states" && m.lower == "usa") ||
					(lower == "us" && m.lower == "united states") ||
					(lower == "america" && m.lower == "united states") {
					return bucket.name
				}
				continue
			}

			if wordsSubset(m.words, words) || wordsSubset(words, m.words) {
				return bucket.name
			}
		}
	}

	return RegionOther
}

// wordsSubset reports whether every word of a appears in b.
func wordsSubset(a, b []string) bool {
	if len(a) == 0 {
		return false
	}
	for _, w := range a {
		found := false
		for _, v := range b {
			if w == v {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
