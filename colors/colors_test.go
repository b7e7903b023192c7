package colors

import (
	"testing"

	"github.com/solarlune/orbital"
)

func TestHex(t *testing.T) {

	tests := []struct {
		name  string
		color orbital.Color
		hex   string
	}{
		{"White", White(), "#ffffff"},
		{"Black", Black(), "#000000"},
		{"Planet", Planet(), "#00ff83"},
	}

	for _, test := range tests {
		if got := test.color.Hex(); got != test.hex {
			t.Errorf("%s() is %s, expected %s", test.name, got, test.hex)
		}
	}

}

func TestToRGBA64(t *testing.T) {
	c := Planet().ToRGBA64()
	if c.R != 0 || c.G != 0xffff || c.B != 0x8383 || c.A != 0xffff {
		t.Errorf("unexpected color %v", c)
	}
}
