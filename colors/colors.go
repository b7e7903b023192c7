// Package colors contains functions to quickly and easily generate orbital.Color instances by name (i.e. "White()", "Planet()", etc).
package colors

import "github.com/solarlune/orbital"

// White generates a white orbital.Color.
func White() orbital.Color {
	return orbital.NewColor(1, 1, 1, 1)
}

// Black generates a black orbital.Color.
func Black() orbital.Color {
	return orbital.NewColor(0, 0, 0, 1)
}

// Planet generates the default green of the planet's surface ("#00ff83"), in linear space.
func Planet() orbital.Color {
	return orbital.NewColorFromRGB255(0x00, 0xff, 0x83)
}
