package colormap

import "math"

// HueWheel is a cyclic map running once around the fully saturated hue
// circle: red at 0 and 1, green at 1/3, blue at 2/3. Values outside [0,1]
// wrap, so At(t) == At(t+1).
type HueWheel struct{}

func (HueWheel) At(t float64) RGB {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		t = 0
	}
	h := t - math.Floor(t)
	return hsv2rgb(h, 1, 1)
}

// HSV is the default cyclic colormap.
var HSV Scalar = HueWheel{}

func hsv2rgb(h, s, v float64) RGB {
	i := math.Floor(h * 6)
	f := h*6 - i
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)
	switch int(i) % 6 {
	case 0:
		return RGB{v, t, p}
	case 1:
		return RGB{q, v, p}
	case 2:
		return RGB{p, v, t}
	case 3:
		return RGB{p, q, v}
	case 4:
		return RGB{t, p, v}
	default:
		return RGB{v, p, q}
	}
}
