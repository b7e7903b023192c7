package orbital

import (
	"math"
	"testing"
)

func TestColorFromHex(t *testing.T) {

	tests := []struct {
		hex     string
		r, g, b uint8
	}{
		{"#00ff83", 0, 255, 131},
		{"#fff", 255, 255, 255},
		{"#000000", 0, 0, 0},
		{"#808080", 128, 128, 128},
	}

	for _, test := range tests {

		c, err := NewColorFromHex(test.hex)
		if err != nil {
			t.Fatalf("%s: %v", test.hex, err)
		}

		if r, g, b := c.RGB255(); r != test.r || g != test.g || b != test.b {
			t.Errorf("%s round tripped to rgb(%d, %d, %d)", test.hex, r, g, b)
		}

	}

	if _, err := NewColorFromHex("green"); err == nil {
		t.Error("expected an error for a color name")
	}

}

func TestColorIsLinear(t *testing.T) {

	gray, err := NewColorFromHex("#808080")
	if err != nil {
		t.Fatal(err)
	}

	// sRGB 50% gray is about 21.6% in linear space.
	if math.Abs(float64(gray.R)-0.2158) > 0.001 {
		t.Fatalf("expected a linear value of about 0.216, got %v", gray.R)
	}

	if srgb := gray.SRGB(); math.Abs(float64(srgb.R)-128.0/255) > 0.001 {
		t.Errorf("converting back to sRGB gave %v", srgb.R)
	}

	if NewColorFromRGB255(255, 0, 150).String() != "rgb(255, 0, 150)" {
		t.Errorf("unexpected string: %s", NewColorFromRGB255(255, 0, 150))
	}

}

func TestColorSRGBClamps(t *testing.T) {
	c := NewColor(4, -1, 0.5, 1).SRGB()
	if c.R != 1 || c.G != 0 {
		t.Errorf("overbright and negative channels should clamp, got %v", c)
	}
}
