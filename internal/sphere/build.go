package sphere

import (
	"strings"

	"github.com/cockroachdb/errors"

	"sphere-colormap/internal/colormap"
)

// Params names a scheme and its configuration. Colormap and Asymmetric are
// only used by Inc and Azy.
type Params struct {
	Scheme string
	Options
	Colormap   colormap.Scalar
	Asymmetric bool
}

var schemeNames = []string{"Tre", "Uno", "Duo", "Ico", "Inc", "Azy"}

// Names lists the available schemes.
func Names() []string {
	return append([]string(nil), schemeNames...)
}

// Build constructs the scheme named by s.Scheme (case-insensitive).
func Build(s Params) (Map, error) {
	so := ScalarOptions{Options: s.Options, Colormap: s.Colormap, Asymmetric: s.Asymmetric}
	var (
		m   Map
		err error
	)
	switch strings.ToLower(strings.TrimSpace(s.Scheme)) {
	case "tre":
		m, err = NewTre(s.Options)
	case "uno":
		m, err = NewUno(s.Options)
	case "duo":
		m, err = NewDuo(s.Options)
	case "ico":
		m, err = NewIco(s.Options)
	case "inc":
		m, err = NewInc(so)
	case "azy":
		m, err = NewAzy(so)
	default:
		return nil, errors.Wrapf(ErrUnknownScheme, "sphere: %q (want one of %s)", s.Scheme, strings.Join(schemeNames, ", "))
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}
