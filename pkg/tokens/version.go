package tokens

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// Version selects a Commodore BASIC keyword table.
type Version string

const (
	V1 Version = "1"
	V2 Version = "2"
	V3 Version = "3"
	V4 Version = "4"
	V7 Version = "7"
)

var versionNames = map[Version]string{
	V1: "Basic v1.0  PET",
	V2: "Basic v2.0  C64/VIC20/PET",
	V3: "Basic v3.5  C16/C116/Plus/4",
	V4: "Basic v4.0  PET/CBM2",
	V7: "Basic v7.0  C128",
}

func (v Version) String() string {
	if name, ok := versionNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Version(%q)", string(v))
}

// Versions lists every accepted version selector, including those that have
// no keyword table yet.
func Versions() []Version {
	vs := make([]Version, 0, len(versionNames))
	for v := range versionNames {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// ParseVersion validates a version selector.
func ParseVersion(s string) (Version, error) {
	v := Version(s)
	if _, ok := versionNames[v]; !ok {
		return "", errors.Errorf("unknown BASIC version %q", s)
	}
	return v, nil
}

// UnsupportedDialectError reports an accepted BASIC version that has no
// keyword table.
type UnsupportedDialectError struct {
	Version string
}

func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("BASIC version %s has no keyword table", e.Version)
}
