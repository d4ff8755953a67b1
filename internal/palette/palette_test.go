package palette

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHex_RoundTrip(t *testing.T) {
	got, err := ParseHex("#aabbcc")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if want := RGBA(0xaa, 0xbb, 0xcc, 255); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseHex_CaseInsensitive(t *testing.T) {
	upper, err := ParseHex("#AABBCC")
	if err != nil {
		t.Fatalf("ParseHex upper: %v", err)
	}
	lower := MustParseHex("#aabbcc")
	if upper != lower {
		t.Errorf("expected case-insensitive parse, got %v vs %v", upper, lower)
	}
}

func TestParseHex_Invalid(t *testing.T) {
	cases := []string{"not-a-color", "", "#abc", "aabbcc", "#aabbcg", "#aabbccdd", " #aabbcc"}
	for _, s := range cases {
		if _, err := ParseHex(s); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("ParseHex(%q): expected ErrInvalidFormat, got %v", s, err)
		}
	}
}

func TestMustParseHex_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for malformed color")
		}
	}()
	MustParseHex("nope")
}

func TestRGBA_ClampsChannels(t *testing.T) {
	got := RGBA(-10, 300, 128, 999)
	want := color.RGBA{R: 0, G: 255, B: 128, A: 255}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestHex(t *testing.T) {
	if got := Hex(RGBA(1, 0xab, 255, 0)); got != "#01abff" {
		t.Errorf("expected #01abff, got %s", got)
	}
}

func TestShade(t *testing.T) {
	c := RGBA(200, 100, 50, 255)
	if Shade(c, 0) != c {
		t.Errorf("zero shade should be identity")
	}
	if got := Shade(c, 1); got != Black {
		t.Errorf("full shade should be black, got %v", got)
	}
	half := Shade(c, 0.5)
	if half.R >= c.R || half.A != 255 {
		t.Errorf("half shade should darken and keep alpha, got %v", half)
	}
}
