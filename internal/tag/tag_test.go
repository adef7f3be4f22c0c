package tag

import "testing"

func TestBase(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"VERB₁", "VERB"},
		{"VERB_SING₂", "VERB_SING"},
		{"noun", "NOUN"},
		{"DET", "DET"},
		{"", ""},
		{"₃", ""}, // marker-only tag normalizes to an empty base
	}

	for _, c := range cases {
		if got := Base(c.in); got != c.want {
			t.Errorf("Base(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMarker(t *testing.T) {
	m, ok := Marker("VERB₁")
	if !ok || m != "₁" {
		t.Errorf("Marker(VERB₁) = %q, %v", m, ok)
	}

	if _, ok := Marker("VERB"); ok {
		t.Error("Marker(VERB) should report no marker")
	}

	// Markers only count at the end of the tag.
	if _, ok := Marker("VERB₁X"); ok {
		t.Error("Marker(VERB₁X) should report no marker")
	}
}

// A tag with a marker must be reconstructible from its parts.
func TestBaseMarkerRoundTrip(t *testing.T) {
	for _, in := range []string{"VERB₁", "AUX_VERB₉", "NOUN₅"} {
		base := Base(in)
		marker, ok := Marker(in)
		if !ok {
			t.Fatalf("Marker(%q) missing", in)
		}
		if base+marker != in {
			t.Errorf("round trip %q: got %q", in, base+marker)
		}
	}
}

func TestIsVerb(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"VERB₁", true},
		{"VERB_SING", true},
		{"AUX_VERB_PL₂", true},
		{"verb_pl", true},
		{"NOUN", false},
		{"ADVERB", true}, // substring contract, inherited from the data format
	}

	for _, c := range cases {
		if got := IsVerb(c.in); got != c.want {
			t.Errorf("IsVerb(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
