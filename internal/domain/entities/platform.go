// Package entities defines core domain models and data structures.
package entities

import (
	"strconv"
	"strings"
)

// Family is an operating system family with a published Xerces-C distribution
type Family int

// Supported families, in table order
const (
	Darwin Family = iota
	Linux
	Windows

	familyCount
)

var familyNames = [familyCount]string{
	Darwin:  "Darwin",
	Linux:   "Linux",
	Windows: "Windows",
}

// Families returns every supported family in table order
func Families() []Family {
	families := make([]Family, 0, familyCount)
	for f := Darwin; f < familyCount; f++ {
		families = append(families, f)
	}
	return families
}

// Valid reports whether f is one of the supported families
func (f Family) Valid() bool {
	return f >= Darwin && f < familyCount
}

func (f Family) String() string {
	if !f.Valid() {
		return "Family(" + strconv.Itoa(int(f)) + ")"
	}
	return familyNames[f]
}

// ParseFamily maps an OS family name to a Family.
// Accepts the canonical name ("Linux") or the GOOS spelling ("linux").
func ParseFamily(name string) (Family, error) {
	trimmed := strings.TrimSpace(name)
	for f := Darwin; f < familyCount; f++ {
		if strings.EqualFold(trimmed, familyNames[f]) {
			return f, nil
		}
	}
	return 0, &UnrecognizedPlatformError{Family: name}
}

// Width is the pointer width of a host process
type Width int

// Supported pointer widths
const (
	Width32 Width = 32
	Width64 Width = 64
)

// archWordSize maps GOARCH values to their pointer width
var archWordSize = map[string]Width{
	"386":      Width32,
	"arm":      Width32,
	"mips":     Width32,
	"mipsle":   Width32,
	"amd64":    Width64,
	"arm64":    Width64,
	"loong64":  Width64,
	"mips64":   Width64,
	"mips64le": Width64,
	"ppc64":    Width64,
	"ppc64le":  Width64,
	"riscv64":  Width64,
	"s390x":    Width64,
	"wasm":     Width64,
}

func (w Width) String() string {
	switch w {
	case Width32:
		return "32bit"
	case Width64:
		return "64bit"
	default:
		return "Width(" + strconv.Itoa(int(w)) + ")"
	}
}

// ParseWidth accepts "32", "64", "32bit", "64bit" or a GOARCH value
func ParseWidth(s string) (Width, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "32", "32bit":
		return Width32, nil
	case "64", "64bit":
		return Width64, nil
	}
	if w, ok := archWordSize[v]; ok {
		return w, nil
	}
	return 0, &UnrecognizedWidthError{Value: s}
}

// WidthFromBits converts a word size in bits (e.g. bits.UintSize)
func WidthFromBits(n int) (Width, error) {
	switch n {
	case 32:
		return Width32, nil
	case 64:
		return Width64, nil
	default:
		return 0, &UnrecognizedWidthError{Value: strconv.Itoa(n)}
	}
}

// Host identifies the platform a distribution is resolved for
type Host struct {
	Family Family
	Width  Width
}

func (h Host) String() string {
	return h.Family.String() + "/" + h.Width.String()
}
