package inspect

import (
	"fmt"
	"regexp"
)

// Version is a coarse major.minor pair used for engine compatibility checks.
type Version struct {
	Major int
	Minor int
}

// String returns the version as "major.minor".
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// majorMinorRe matches the first two dot-separated numeric groups; anything
// after them (patch level, suffixes like "-preview") is ignored.
var majorMinorRe = regexp.MustCompile(`^\s*(\d+)\.(\d+)`)

// ParseMajorMinor extracts a major.minor version from a free-form string. It
// fails soft: unparseable input yields nil, never an error.
func ParseMajorMinor(s string) *Version {
	m := majorMinorRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	var v Version
	// The regexp guarantees numeric groups; Sscanf cannot fail here.
	if _, err := fmt.Sscanf(m[1]+" "+m[2], "%d %d", &v.Major, &v.Minor); err != nil {
		return nil
	}
	return &v
}
