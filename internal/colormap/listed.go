package colormap

// Listed interpolates linearly between evenly spaced colors.
type Listed []RGB

func (l Listed) At(t float64) RGB {
	if len(l) == 0 {
		return RGB{}
	}
	t = clamp01(t)
	idx := t * float64(len(l)-1)
	lower := int(idx)
	if lower >= len(l)-1 {
		return l[len(l)-1]
	}
	return l[lower].Lerp(l[lower+1], idx-float64(lower))
}

func listed8(rgb ...[3]uint8) Listed {
	l := make(Listed, len(rgb))
	for i, c := range rgb {
		l[i] = RGB{float64(c[0]) / 255, float64(c[1]) / 255, float64(c[2]) / 255}
	}
	return l
}

// Viridis colormap (perceptually uniform, sequential).
var Viridis = listed8(
	[3]uint8{68, 1, 84},
	[3]uint8{72, 35, 116},
	[3]uint8{64, 67, 135},
	[3]uint8{52, 94, 141},
	[3]uint8{41, 120, 142},
	[3]uint8{32, 144, 140},
	[3]uint8{34, 167, 132},
	[3]uint8{68, 190, 112},
	[3]uint8{121, 209, 81},
	[3]uint8{189, 222, 38},
	[3]uint8{253, 231, 37},
)

// Plasma colormap.
var Plasma = listed8(
	[3]uint8{13, 8, 135},
	[3]uint8{75, 3, 161},
	[3]uint8{125, 3, 168},
	[3]uint8{168, 34, 150},
	[3]uint8{203, 70, 121},
	[3]uint8{229, 107, 93},
	[3]uint8{248, 148, 65},
	[3]uint8{253, 195, 40},
	[3]uint8{240, 249, 33},
)

// Seismic is a diverging dark blue → white → dark red map.
var Seismic = Listed{
	{0, 0, 0.3},
	{0, 0, 1},
	{1, 1, 1},
	{1, 0, 0},
	{0.5, 0, 0},
}

// Gray runs from black to white.
var Gray = Listed{{0, 0, 0}, {1, 1, 1}}

// Twilight is a cyclic map (light, blue, dark purple, red, light) whose
// ends meet, for azimuth-like data.
var Twilight = listed8(
	[3]uint8{226, 217, 226},
	[3]uint8{200, 205, 218},
	[3]uint8{165, 186, 207},
	[3]uint8{128, 162, 199},
	[3]uint8{99, 135, 193},
	[3]uint8{93, 104, 183},
	[3]uint8{95, 71, 164},
	[3]uint8{88, 40, 123},
	[3]uint8{47, 20, 54},
	[3]uint8{91, 27, 74},
	[3]uint8{129, 39, 79},
	[3]uint8{161, 62, 73},
	[3]uint8{183, 94, 75},
	[3]uint8{198, 129, 98},
	[3]uint8{208, 164, 141},
	[3]uint8{218, 196, 190},
	[3]uint8{226, 217, 226},
)
