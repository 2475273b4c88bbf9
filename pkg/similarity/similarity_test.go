package similarity

import "testing"

func TestScoreIdentity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "equal strings", a: "smith", b: "smith", want: 1.0},
		{name: "both empty", a: "", b: "", want: 1.0},
		{name: "left empty", a: "", b: "smith", want: 0.0},
		{name: "right empty", a: "smith", b: "", want: 0.0},
		{name: "case folded equal", a: "SMITH", b: "smith", want: 1.0},
		{name: "mixed case equal", a: "McDonald", b: "mcdonald", want: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.a, tt.b); got != tt.want {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestScoreSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"smith", "smyth"},
		{"jones", "johns"},
		{"main street", "maine st"},
		{"", "anything"},
		{"abc", "xyz"},
	}

	for _, p := range pairs {
		if ab, ba := Score(p[0], p[1]), Score(p[1], p[0]); ab != ba {
			t.Errorf("Score(%q, %q) = %v but Score(%q, %q) = %v", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestVowelSubstitutionCheaper(t *testing.T) {
	vowelSwap := Score("smith", "smyth")
	consonantSwap := Score("smith", "smkth")

	if vowelSwap <= consonantSwap {
		t.Errorf("vowel swap %v should score higher than consonant swap %v", vowelSwap, consonantSwap)
	}
}

func TestScoreRange(t *testing.T) {
	pairs := [][2]string{
		{"a", "zzzzzzzzzz"},
		{"completely", "different"},
		{"x", "y"},
		{"longer string here", "s"},
	}

	for _, p := range pairs {
		got := Score(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("Score(%q, %q) = %v, outside [0,1]", p[0], p[1], got)
		}
	}
}

func TestScoreOrdering(t *testing.T) {
	// Closer strings must score higher.
	tests := []struct {
		name           string
		base, near, far string
	}{
		{name: "single letter vs word", base: "johnson", near: "johnsen", far: "smith"},
		{name: "typo vs rename", base: "oak lane", near: "oak land", far: "birch rd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			near := Score(tt.base, tt.near)
			far := Score(tt.base, tt.far)
			if near <= far {
				t.Errorf("Score(%q, %q) = %v should beat Score(%q, %q) = %v",
					tt.base, tt.near, near, tt.base, tt.far, far)
			}
		})
	}
}

func TestMeterReuse(t *testing.T) {
	m := NewMeter()

	// Interleave lengths to exercise buffer regrowth.
	inputs := [][2]string{
		{"a", "b"},
		{"washington boulevard apartment twelve", "washingtn blvd apt 12"},
		{"oe", "oa"},
	}
	for _, p := range inputs {
		got := m.Score(p[0], p[1])
		want := Score(p[0], p[1])
		if got != want {
			t.Errorf("Meter.Score(%q, %q) = %v, want %v", p[0], p[1], got, want)
		}
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "negative clamps", in: -0.5, want: 0},
		{name: "above one clamps", in: 1.5, want: 1},
		{name: "exact passes", in: 0.75, want: 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round(tt.in); got != tt.want {
				t.Errorf("Round(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
