package entities

import (
	"fmt"
)

// DistributionPair holds the 32-bit and 64-bit identifiers published for one family
type DistributionPair struct {
	Bits32 string
	Bits64 string
}

// Select returns the identifier built for the given pointer width
func (p DistributionPair) Select(w Width) (string, error) {
	switch w {
	case Width32:
		return p.Bits32, nil
	case Width64:
		return p.Bits64, nil
	default:
		return "", &UnrecognizedWidthError{Value: w.String()}
	}
}

// DistributionTable maps every supported family to its distribution pair.
// The zero value is empty; build one with NewDistributionTable or DefaultTable.
type DistributionTable struct {
	darwin  DistributionPair
	linux   DistributionPair
	windows DistributionPair
}

// NewDistributionTable validates entries and returns an immutable table.
// Every supported family must be present with both identifiers set.
func NewDistributionTable(entries map[Family]DistributionPair) (*DistributionTable, error) {
	t := &DistributionTable{}
	for family, pair := range entries {
		if !family.Valid() {
			return nil, &UnrecognizedPlatformError{Family: family.String()}
		}
		if pair.Bits32 == "" || pair.Bits64 == "" {
			return nil, fmt.Errorf("distribution table entry %s: both identifiers are required", family)
		}
		*t.slot(family) = pair
	}

	for _, family := range Families() {
		if _, ok := entries[family]; !ok {
			return nil, fmt.Errorf("distribution table is missing family %s", family)
		}
	}

	return t, nil
}

// DefaultTable returns the Xerces-C 3.0.1 distributions the build consumes
func DefaultTable() *DistributionTable {
	return &DistributionTable{
		darwin: DistributionPair{
			Bits32: "xerces-c-3.0.1-x86-macosx-gcc-4.0",
			Bits64: "xerces-c-3.0.1-x86-macosx-gcc-4.0",
		},
		linux: DistributionPair{
			Bits32: "xerces-c-3.0.1-x86-linux-gcc-3.4",
			Bits64: "xerces-c-3.0.1-x86_64-linux-gcc-3.4",
		},
		windows: DistributionPair{
			Bits32: "xerces-c-3.0.1-x86-windows-vc-9.0",
			Bits64: "xerces-c-3.0.1-x86_64-windows-vc-9.0",
		},
	}
}

// Lookup returns the pair for family.
// A slot left unset (zero-value table) fails the same way as an unknown family.
func (t *DistributionTable) Lookup(family Family) (DistributionPair, error) {
	if !family.Valid() {
		return DistributionPair{}, &UnrecognizedPlatformError{Family: family.String()}
	}
	pair := *t.slot(family)
	if pair.Bits32 == "" || pair.Bits64 == "" {
		return DistributionPair{}, &UnrecognizedPlatformError{Family: family.String()}
	}
	return pair, nil
}

// TableEntry is one row of a DistributionTable
type TableEntry struct {
	Family Family
	Pair   DistributionPair
}

// Entries returns a copy of every row in family order
func (t *DistributionTable) Entries() []TableEntry {
	families := Families()
	entries := make([]TableEntry, 0, len(families))
	for _, family := range families {
		entries = append(entries, TableEntry{Family: family, Pair: *t.slot(family)})
	}
	return entries
}

// slot must only be called with a valid family
func (t *DistributionTable) slot(family Family) *DistributionPair {
	//exhaustive:enforce
	switch family {
	case Darwin:
		return &t.darwin
	case Linux:
		return &t.linux
	case Windows:
		return &t.windows
	}
	panic(fmt.Sprintf("distribution table has no slot for %s", family))
}

// Selection is the distribution resolved for one host
type Selection struct {
	Host Host
	Pair DistributionPair
	Name string

	// IsZip is true when the distribution ships as a zip archive (Windows only)
	IsZip bool

	// Is64 is true when the host is 32-bit. The inverted name is kept because
	// existing build scripts read the flag under this polarity.
	Is64 bool
}

// ArchiveName returns the file name of the distribution archive
func (s Selection) ArchiveName() string {
	if s.IsZip {
		return s.Name + ".zip"
	}
	return s.Name + ".tar.gz"
}
