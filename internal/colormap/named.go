package colormap

import (
	"sort"
	"strings"
)

var builtin = map[string]Scalar{
	"jet":      Jet,
	"hsv":      HSV,
	"viridis":  Viridis,
	"plasma":   Plasma,
	"seismic":  Seismic,
	"twilight": Twilight,
	"gray":     Gray,
	"grey":     Gray,
}

// Lookup returns the built-in colormap with the given name (case-insensitive).
func Lookup(name string) (Scalar, bool) {
	cm, ok := builtin[strings.ToLower(strings.TrimSpace(name))]
	return cm, ok
}

// Names lists the built-in colormap names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for n := range builtin {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
